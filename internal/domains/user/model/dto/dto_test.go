package dto_test

import (
	"testing"

	"gymhub/internal/domains/user/model"
	"gymhub/internal/domains/user/model/dto"
	"gymhub/shared/constant"
	gModel "gymhub/shared/model"
	"gymhub/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:     " Ada@Gym.Test ",
		Password:  "password123",
		FirstName: "Ada ",
		LastName:  "L",
		Role:      constant.RoleTrainer,
	}

	user := req.ToModel("admin@gym.test", "hashed")

	assert.Zero(t, user.ID, "id is generated by the database")
	assert.Equal(t, "ada@gym.test", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, constant.RoleTrainer, user.Role)
	assert.Nil(t, user.AuthenticationKey)
	assert.Equal(t, "admin@gym.test", user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserResponse_FromModel(t *testing.T) {
	key := "secret-key"
	user := model.User{
		ID:                7,
		Email:             "member@gym.test",
		Password:          "hashed",
		FirstName:         "Jo Anne",
		LastName:          "O'Brien",
		Role:              constant.RoleMember,
		AuthenticationKey: &key,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "guest",
			ModifiedBy: "guest",
		},
	}

	var response dto.UserResponse
	response.FromModel(user)

	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, "Jo Anne", response.FirstName)
	assert.Equal(t, "O'Brien", response.LastName)
	assert.Equal(t, "guest", response.CreatedBy)
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	users := []model.User{{ID: 1}, {ID: 2}, {ID: 3}}

	var response dto.GetUsersResponse
	response.FromModels(users, 23, 10)

	assert.Len(t, response.Users, 3)
	assert.Equal(t, 23, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
}

func TestPrincipal_ToActor(t *testing.T) {
	var principal dto.Principal
	principal.FromModel(model.User{ID: 9, Email: "ada@gym.test", FirstName: "Ada", LastName: "L", Role: constant.RoleTrainer})

	actor := principal.ToActor()

	assert.Equal(t, int64(9), actor.ID)
	assert.Equal(t, "Ada L", actor.Name)
	assert.Equal(t, constant.RoleTrainer, actor.Role)
}
