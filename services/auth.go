package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kids-in-business/kib_api/dto"
	"github.com/kids-in-business/kib_api/model"
	"github.com/kids-in-business/kib_api/shared"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *PostgresService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := req.Role
	if role == "" {
		role = shared.RoleTeacher
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	userID, _ := uuid.NewV7()
	user := &model.User{
		ID:           userID.String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := svc.sqlSvc.Db().Create(user).Error; err != nil {
		return nil, shared.NewBadRequestError(err, "Email or username already taken")
	}

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.ToLower(strings.TrimSpace(req.Login))

	var user model.User
	err := svc.sqlSvc.Db().
		Where("email = ? OR username = ?", login, req.Login).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
		}
		return nil, shared.NewInternalError(err, "Failed to look up account")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	return &dto.LoginResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}

func (svc *AuthService) GetProfile(userID string) (*dto.UserProfileResponse, error) {
	var user model.User
	err := svc.sqlSvc.Db().Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Account not found")
		}
		return nil, shared.NewInternalError(err, "Failed to load account")
	}

	return &dto.UserProfileResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
