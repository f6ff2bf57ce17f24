package services

import (
	"context"
	"errors"
	"time"

	"loja-backend/models"
	"loja-backend/repositories"
	"loja-backend/utils"
)

// UserStore is the persistence surface AuthService depends on.
type UserStore interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.CustomerProfile) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error)
	UpdateProfile(ctx context.Context, profile *models.CustomerProfile) error
}

type AuthService struct {
	userRepo UserStore
}

func NewAuthService() *AuthService {
	return NewAuthServiceWith(repositories.NewUserRepository())
}

func NewAuthServiceWith(users UserStore) *AuthService {
	return &AuthService{userRepo: users}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, models.NewValidationError("birth_date", "expected format YYYY-MM-DD")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "customer",
	}
	profile := &models.CustomerProfile{
		Address:   req.Address,
		Phone:     req.Phone,
		BirthDate: birthDate,
	}

	// A duplicate email or phone surfaces as ErrDuplicate with no rows
	// left behind.
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	userWithProfile, err := s.userRepo.GetUserWithProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *userWithProfile,
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	return s.userRepo.GetUserWithProfile(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (*models.UserWithProfile, error) {
	current, err := s.userRepo.GetUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.CustomerProfile{
		UserID:    userID,
		Address:   current.Address,
		Phone:     current.Phone,
		BirthDate: current.BirthDate,
	}

	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, models.NewValidationError("birth_date", "expected format YYYY-MM-DD")
		}
		profile.BirthDate = birthDate
	}

	if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.userRepo.GetUserWithProfile(ctx, userID)
}
