package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"backend/config"
	customerrors "backend/customErrors"
	"backend/dto"
	"backend/middleware"
	"backend/service"
)

type AuthController struct {
	authService service.AuthService
	jwt         config.Token
}

func NewAuthController(authService service.AuthService, jwt config.Token) *AuthController {
	return &AuthController{authService: authService, jwt: jwt}
}

func (c *AuthController) Hello(w http.ResponseWriter, r *http.Request) error {
	res := &dto.HelloResponse{
		Message: "Hello! I'm a message that came from the backend",
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) error {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return customerrors.ErrBadRequest
	}

	res, err := c.authService.Signup(r.Context(), req)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusCreated, res)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) error {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return customerrors.ErrBadRequest
	}

	res, err := c.authService.Login(r.Context(), req)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) Private(w http.ResponseWriter, r *http.Request) error {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		return err
	}

	res, err := c.authService.Private(r.Context(), userID)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

// ValidateToken checks the token itself instead of going through the auth
// middleware, because its failure bodies carry a "valid" flag instead of the
// plain error shape.
func (c *AuthController) ValidateToken(w http.ResponseWriter, r *http.Request) error {
	tokenString, err := middleware.BearerToken(r)
	if err != nil {
		return c.respondInvalidToken(w, err)
	}

	claims, err := c.jwt.ValidateJWT(tokenString)
	if err != nil {
		return c.respondInvalidToken(w, err)
	}

	res, err := c.authService.CheckToken(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, customerrors.ErrUserNotFound) {
			return c.respondInvalidToken(w, err)
		}
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) error {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		return err
	}

	res, err := c.authService.Me(r.Context(), userID)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) error {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		return err
	}

	res, err := c.authService.Logout(r.Context(), userID)
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) HealthCheck(w http.ResponseWriter, r *http.Request) error {
	res, err := c.authService.HealthCheck(r.Context())
	if err != nil {
		return err
	}

	return c.respond(w, http.StatusOK, res)
}

func (c *AuthController) respond(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func (c *AuthController) respondInvalidToken(w http.ResponseWriter, err error) error {
	res := &dto.ValidateTokenResponse{
		Valid:   false,
		Message: customerrors.GetMessage(err),
	}

	return c.respond(w, customerrors.GetStatus(err), res)
}
