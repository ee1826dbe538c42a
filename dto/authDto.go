package dto

import "github.com/go-playground/validator/v10"

type SignupRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName *string `json:"first_name" validate:"omitzero"`
	LastName  *string `json:"last_name" validate:"omitzero"`
}

func (s *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}

type SignupResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
	Message     string        `json:"message"`
}

type PrivateResponse struct {
	Message       string        `json:"message"`
	User          *UserResponse `json:"user"`
	LoggedInAs    string        `json:"logged_in_as"`
	AccessGranted bool          `json:"access_granted"`
}

type ValidateTokenResponse struct {
	Valid   bool          `json:"valid"`
	User    *UserResponse `json:"user,omitempty"`
	Message string        `json:"message"`
}

type MeResponse struct {
	User     *UserResponse `json:"user"`
	FullName string        `json:"full_name"`
}

type LogoutResponse struct {
	Message   string `json:"message"`
	UserEmail string `json:"user_email"`
}

type HelloResponse struct {
	Message string `json:"message"`
}
