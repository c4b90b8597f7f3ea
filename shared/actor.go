package shared

import (
	"context"
	"gymhub/shared/constant"
	"strings"
)

// Actor is the authenticated principal attached to a request.
type Actor struct {
	ID    int64
	Email string
	Role  string
	Name  string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, actor.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, actor.Name)

	return ctx
}

// ActorFromContext returns the request principal. ok is false for anonymous requests.
func ActorFromContext(ctx context.Context) (actor Actor, ok bool) {
	actor.ID, ok = ctx.Value(constant.ContextKeyUserID).(int64)
	actor.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	actor.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)
	actor.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)

	return actor, ok && actor.ID > 0
}

// ActorName is the audit name written to created_by and modified_by.
func ActorName(ctx context.Context) string {
	if email, _ := ctx.Value(constant.ContextKeyUserEmail).(string); email != "" {
		return email
	}

	return constant.ContextGuest
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// FullName joins given and family names, skipping blanks.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.Join([]string{strings.TrimSpace(firstName), strings.TrimSpace(lastName)}, " "))
}
