package service

import (
	"context"
	"testing"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	repomocks "github.com/aryaduta/ecommerce-admin-service/internal/repository/mocks"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/aryaduta/ecommerce-admin-service/pkg/rbac"
	"github.com/aryaduta/ecommerce-admin-service/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func TestUserService_Register(t *testing.T) {
	ctx := context.TODO()

	t.Run("first account becomes admin", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "owner@example.com").Return(domain.User{}, errs.ErrNotFound).Once()
		mockRepo.On("CountUsers", ctx).Return(int64(0), nil).Once()
		mockRepo.On("AddUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == rbac.RoleAdmin && u.Email == "owner@example.com" && u.IsActive
		})).Return(primitive.NewObjectID(), nil).Once()

		resp, err := svc.Register(ctx, dto.RegisterRequest{
			Name:     "Owner",
			Email:    "  Owner@Example.COM ",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, string(rbac.RoleAdmin), resp.Role)
		assert.Equal(t, "owner@example.com", resp.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("subsequent accounts become viewer", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "second@example.com").Return(domain.User{}, errs.ErrNotFound).Once()
		mockRepo.On("CountUsers", ctx).Return(int64(1), nil).Once()
		mockRepo.On("AddUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == rbac.RoleViewer
		})).Return(primitive.NewObjectID(), nil).Once()

		resp, err := svc.Register(ctx, dto.RegisterRequest{
			Name:     "Second",
			Email:    "second@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		assert.Equal(t, string(rbac.RoleViewer), resp.Role)
	})

	t.Run("duplicate email is rejected without creating a user", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "taken@example.com").Return(domain.User{Email: "taken@example.com"}, nil).Once()

		_, err := svc.Register(ctx, dto.RegisterRequest{
			Name:     "Dup",
			Email:    "taken@example.com",
			Password: "s3cret-pass",
		})
		assert.Equal(t, errs.ErrEmailAlreadyUsed, err)
		mockRepo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("password is stored hashed, never verbatim", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "hash@example.com").Return(domain.User{}, errs.ErrNotFound).Once()
		mockRepo.On("CountUsers", ctx).Return(int64(5), nil).Once()
		mockRepo.On("AddUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.HashedPassword != "s3cret-pass" &&
				bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("s3cret-pass")) == nil
		})).Return(primitive.NewObjectID(), nil).Once()

		_, err := svc.Register(ctx, dto.RegisterRequest{
			Name:     "Hash",
			Email:    "hash@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.TODO()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	active := domain.User{
		ID:             primitive.NewObjectID(),
		Name:           "Editor",
		Email:          "editor@example.com",
		HashedPassword: string(hash),
		Role:           rbac.RoleEditor,
		IsActive:       true,
	}

	t.Run("valid credentials return a parseable token", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "editor@example.com").Return(active, nil).Once()

		resp, err := svc.Login(ctx, dto.LoginRequest{Email: "Editor@Example.com", Password: "s3cret-pass"})
		require.NoError(t, err)

		claims, err := utils.ParseJWTToken(resp.Token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, active.ID.Hex(), claims.UserID)
		assert.Equal(t, string(rbac.RoleEditor), claims.Role)
		assert.Equal(t, active.Email, resp.User.Email)
	})

	t.Run("unknown email and wrong password share one error", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "nobody@example.com").Return(domain.User{}, errs.ErrNotFound).Once()
		mockRepo.On("GetUserByEmail", ctx, "editor@example.com").Return(active, nil).Once()

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.Equal(t, errs.ErrInvalidCredentials, err)

		_, err = svc.Login(ctx, dto.LoginRequest{Email: "editor@example.com", Password: "wrong-pass"})
		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("disabled account cannot log in even with the right password", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		disabled := active
		disabled.IsActive = false
		mockRepo.On("GetUserByEmail", ctx, "editor@example.com").Return(disabled, nil).Once()

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "editor@example.com", Password: "s3cret-pass"})
		assert.Equal(t, errs.ErrAccountDisabled, err)
	})
}

func TestUserService_AddUser(t *testing.T) {
	ctx := context.TODO()

	t.Run("admin creates a user with an explicit role", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "new@example.com").Return(domain.User{}, errs.ErrNotFound).Once()
		mockRepo.On("AddUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.Role == rbac.RoleEditor
		})).Return(primitive.NewObjectID(), nil).Once()

		resp, err := svc.AddUser(ctx, dto.CreateUserRequest{
			Name:     "New Editor",
			Email:    "new@example.com",
			Password: "s3cret-pass",
			Role:     "editor",
		})
		require.NoError(t, err)
		assert.Equal(t, "editor", resp.Role)
	})

	t.Run("unknown role is a client error", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		mockRepo.On("GetUserByEmail", ctx, "new@example.com").Return(domain.User{}, errs.ErrNotFound).Once()

		_, err := svc.AddUser(ctx, dto.CreateUserRequest{
			Name:     "New",
			Email:    "new@example.com",
			Password: "s3cret-pass",
			Role:     "superuser",
		})
		assert.Equal(t, errs.ErrClient, err)
		mockRepo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.TODO()

	t.Run("empty payload is rejected", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		_, err := svc.UpdateUser(ctx, primitive.NewObjectID().Hex(), dto.UpdateUserRequest{})
		assert.Equal(t, errs.ErrEmptyUpdate, err)
	})

	t.Run("role change flows through", func(t *testing.T) {
		mockRepo := new(repomocks.MockUserRepository)
		svc := CreateUserService(mockRepo, testJWTSecret)

		id := primitive.NewObjectID()
		role := "editor"
		req := dto.UpdateUserRequest{Role: &role}

		mockRepo.On("UpdateUser", ctx, id, req).Return(domain.User{ID: id, Role: rbac.RoleEditor}, nil).Once()

		resp, err := svc.UpdateUser(ctx, id.Hex(), req)
		require.NoError(t, err)
		assert.Equal(t, "editor", resp.Role)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.TODO()

	mockRepo := new(repomocks.MockUserRepository)
	svc := CreateUserService(mockRepo, testJWTSecret)

	assert.Equal(t, errs.ErrClient, svc.DeleteUser(ctx, "bogus"))

	id := primitive.NewObjectID()
	mockRepo.On("DeleteUser", ctx, id).Return(errs.ErrNotFound).Once()
	assert.Equal(t, errs.ErrNotFound, svc.DeleteUser(ctx, id.Hex()))
}
