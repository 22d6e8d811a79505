package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/internal/repo/persistent"
	"skillsphere/pkg/jwt"
	"skillsphere/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, log *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     log,
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, firstName, lastName, password string) (*entity.User, string, error) {
	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", fmt.Errorf("%w: user with this email already exists", apperr.ErrInvalidRequest)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hashedPassword),
		Role:      entity.RoleMember,
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
