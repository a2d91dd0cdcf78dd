package service

import (
	"context"
	"strings"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/repository"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/aryaduta/ecommerce-admin-service/pkg/rbac"
	"github.com/aryaduta/ecommerce-admin-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo      repository.UserRepository
	jwtSecret string
}

func CreateUserService(repo repository.UserRepository, jwtSecret string) UserService {
	return &UserServiceImpl{repo: repo, jwtSecret: jwtSecret}
}

func (s *UserServiceImpl) Register(ctx context.Context, data dto.RegisterRequest) (resp dto.UserResponse, err error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	_, err = s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return resp, err
	}

	// The very first account gets admin; everyone after that self-registers
	// as viewer. The count check runs inside the same request that creates
	// the user rather than as ambient state.
	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return resp, err
	}

	role := rbac.RoleViewer
	if count == 0 {
		role = rbac.RoleAdmin
	}

	return s.createUser(ctx, data.Name, email, data.Password, role)
}

func (s *UserServiceImpl) createUser(ctx context.Context, name string, email string, password string, role rbac.Role) (resp dto.UserResponse, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "createUser").Msg("")
		return resp, errs.ErrInternalServer
	}

	now := time.Now().UTC()
	user := domain.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
		Role:           role,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return resp, err
	}

	user.ID = id
	return dto.UserResponseFrom(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, data dto.LoginRequest) (resp dto.LoginResponse, err error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == errs.ErrNotFound {
			return resp, errs.ErrInvalidCredentials
		}
		return resp, err
	}

	if !user.IsActive {
		return resp, errs.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(data.Password)) != nil {
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, user.Email, string(user.Role), s.jwtSecret)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	resp.User = dto.UserResponseFrom(user)

	return resp, nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) (resp []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return
	}

	resp = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.UserResponseFrom(user))
	}

	return resp, nil
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.CreateUserRequest) (resp dto.UserResponse, err error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	_, err = s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return resp, err
	}

	role, err := rbac.ParseRole(data.Role)
	if err != nil {
		return resp, errs.ErrClient
	}

	return s.createUser(ctx, data.Name, email, data.Password, role)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, data dto.UpdateUserRequest) (resp dto.UserResponse, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return resp, errs.ErrClient
	}

	if data.IsEmpty() {
		return resp, errs.ErrEmptyUpdate
	}

	user, err := s.repo.UpdateUser(ctx, objectID, data)
	if err != nil {
		return resp, err
	}

	return dto.UserResponseFrom(user), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	return s.repo.DeleteUser(ctx, objectID)
}
