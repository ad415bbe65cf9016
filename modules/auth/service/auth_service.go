package service

import (
	"context"
	"strings"

	"campus-events-api/core/cache"
	"campus-events-api/core/constants"
	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/core/utils"
	"campus-events-api/modules/auth/dto"
	"campus-events-api/modules/auth/entity"
	"campus-events-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError)
}

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	if user.StudentID != nil {
		resp.StudentID = *user.StudentID
	}
	if user.Department != nil {
		resp.Department = *user.Department
	}
	return resp
}

// Signup creates an account and issues its first token. A failure after the
// insert deletes the just-created row so no partial account survives.
func (service *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := service.repo.EmailExists(ctx, email)
	if err != nil {
		logger.Error("AuthService:Signup:EmailExists:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Signup:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = string(entity.RoleStudent)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     entity.Role(role),
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if req.StudentID != "" {
		studentID := strings.TrimSpace(req.StudentID)
		user.StudentID = &studentID
	}
	if req.Department != "" {
		user.Department = &req.Department
	}

	if err := service.repo.CreateUser(ctx, user); err != nil {
		logger.Error("AuthService:Signup:CreateUser:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error("AuthService:Signup:GenerateToken:Error:", err)
		// Compensating delete: the caller must never observe a half-created
		// account that cannot log in.
		if delErr := service.repo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Error("AuthService:Signup:CompensatingDelete:Error:", delErr, "user_id", user.ID)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := service.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:GetUserByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	if err := service.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is informational.
		logger.Warn("AuthService:Login:UpdateLastLogin:Error:", "error", err, "user_id", user.ID)
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// Logout blacklists the presented token for the rest of its lifetime.
func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	if err := service.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (service *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.Error("AuthService:GetUser:GetUserByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}
