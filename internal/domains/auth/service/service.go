package service

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/jwt"
	"gymhub/infras/otel"
	"gymhub/internal/domains/auth/model/dto"
	userModel "gymhub/internal/domains/user/model"
	userRepo "gymhub/internal/domains/user/repository"
	userService "gymhub/internal/domains/user/service"
	"gymhub/shared"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
	"gymhub/shared/password"
	"gymhub/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return shared.WithNotDeleted(gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    userModel.TableName,
			},
		},
	}, userModel.TableName)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	res.ID, err = s.userRepo.Insert(ctx, req.ToUserModel(constant.ContextGuest, hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return res, nil
}

// Login rotates the user's API key and issues a fresh web session.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	apiKey := uuid.NewString()
	updatedFields := map[string]any{
		userModel.FieldAuthenticationKey: apiKey,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user.Email,
	}

	if err = s.userRepo.Update(ctx, updatedFields, shared.ActiveByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store api key")

		return res, fmt.Errorf("failed to store api key: %w", err)
	}

	s.forgetAPIKey(ctx, user.AuthenticationKey)

	session, err := s.jwtService.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return res, fmt.Errorf("failed to issue session: %w", err)
	}

	res.FromSession(apiKey, user.Role, session)

	return res, nil
}

// Logout revokes the caller's API key.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return failure.MissingPrincipalError
	}

	filter := shared.ActiveByID(actor.ID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 || user.AuthenticationKey == nil {
		return nil
	}

	updatedFields := map[string]any{
		userModel.FieldAuthenticationKey: nil,
		constant.FieldModifiedAt:         timezone.Now(),
		constant.FieldModifiedBy:         user.Email,
	}

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke api key")

		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	s.forgetAPIKey(ctx, user.AuthenticationKey)

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return failure.MissingPrincipalError
	}

	filter := shared.ActiveByID(actor.ID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, actor.Email), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) forgetAPIKey(ctx context.Context, apiKey *string) {
	if apiKey == nil {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(userService.CacheAPIKeyPrincipal, *apiKey)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate api key cache")
		}
	}()
}
