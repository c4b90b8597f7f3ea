package dto

import (
	"gymhub/internal/domains/user/model"
	"gymhub/shared"
	gDto "gymhub/shared/dto"
	gModel "gymhub/shared/model"
	"strings"
)

type CreateUserRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Role      string `json:"role"       validate:"required,oneof=member trainer admin"`
}

func (r *CreateUserRequest) ToModel(actor string, hashedPassword string) model.User {
	return model.User{
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Role:      r.Role,
		Metadata:  gModel.NewMetadata(actor),
	}
}

type UpdateUserRequest struct {
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Role      string `db:"role"       json:"role"       validate:"omitempty,oneof=member trainer admin"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// Principal is the cached identity resolved from an API key.
type Principal struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (p *Principal) FromModel(model model.User) {
	p.ID = model.ID
	p.Email = model.Email
	p.FirstName = model.FirstName
	p.LastName = model.LastName
	p.Role = model.Role
}

func (p Principal) ToActor() shared.Actor {
	return shared.Actor{
		ID:    p.ID,
		Email: p.Email,
		Role:  p.Role,
		Name:  shared.FullName(p.FirstName, p.LastName),
	}
}
