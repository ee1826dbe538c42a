package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"backend/config"
	customerrors "backend/customErrors"
	"backend/dto"
	"backend/repository"
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Private(ctx context.Context, userID int64) (*dto.PrivateResponse, error)
	CheckToken(ctx context.Context, userID int64) (*dto.ValidateTokenResponse, error)
	Me(ctx context.Context, userID int64) (*dto.MeResponse, error)
	Logout(ctx context.Context, userID int64) (*dto.LogoutResponse, error)
	HealthCheck(ctx context.Context) (*dto.HealthResponse, error)
}

type AuthServiceImpl struct {
	repo repository.UserRepository
	jwt  config.Token
	db   *sql.DB
}

func NewAuthService(repo repository.UserRepository, jwt config.Token, db *sql.DB) AuthService {
	return &AuthServiceImpl{repo: repo, jwt: jwt, db: db}
}

func (s *AuthServiceImpl) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, customerrors.ErrMissingCredentials
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, req.Email, passwordHash, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Message: "User created successfully",
		User:    dto.NewUserResponse(user),
	}, nil
}

// Login collapses unknown email and wrong password into the same error so
// the response never reveals which one failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, customerrors.ErrMissingCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, customerrors.ErrUserNotFound) {
			return nil, customerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(req.Password, user.PasswordHash) {
		return nil, customerrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.NewUserResponse(user),
		Message:     "Login successful",
	}, nil
}

func (s *AuthServiceImpl) Private(ctx context.Context, userID int64) (*dto.PrivateResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.PrivateResponse{
		Message:       "You have reached your private route",
		User:          dto.NewUserResponse(user),
		LoggedInAs:    user.FullName(),
		AccessGranted: true,
	}, nil
}

func (s *AuthServiceImpl) CheckToken(ctx context.Context, userID int64) (*dto.ValidateTokenResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ValidateTokenResponse{
		Valid:   true,
		User:    dto.NewUserResponse(user),
		Message: "Token is valid",
	}, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		User:     dto.NewUserResponse(user),
		FullName: user.FullName(),
	}, nil
}

// Logout is advisory only: the token stays valid until it expires. A user
// deleted after the token was issued still gets a confirmation.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID int64) (*dto.LogoutResponse, error) {
	userEmail := "unknown"

	user, err := s.repo.GetUserByID(ctx, userID)
	switch {
	case err == nil:
		userEmail = user.Email
	case !errors.Is(err, customerrors.ErrUserNotFound):
		return nil, err
	}

	return &dto.LogoutResponse{
		Message:   "Logout successful",
		UserEmail: userEmail,
	}, nil
}

func (s *AuthServiceImpl) HealthCheck(ctx context.Context) (*dto.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return nil, customerrors.ErrDbUnreachable
	}

	return &dto.HealthResponse{
		Status:   "OK",
		Database: "connected",
	}, nil
}
