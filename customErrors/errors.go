package customerrors

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingCredentials   = &Error{Status: 400, Message: "email and password are required"}
	ErrUserAlreadyExists    = &Error{Status: 400, Message: "user already exists"}
	ErrBadRequest           = &Error{Status: 400, Message: "bad request"}
	ErrInvalidCredentials   = &Error{Status: 401, Message: "invalid credentials"}
	ErrMissingToken         = &Error{Status: 401, Message: "missing authorization token"}
	ErrTokenExpired         = &Error{Status: 401, Message: "token expired"}
	ErrTokenMalformed       = &Error{Status: 401, Message: "invalid token"}
	ErrTokenBadSignature    = &Error{Status: 401, Message: "invalid token signature"}
	ErrUserNotFound         = &Error{Status: 404, Message: "user not found"}
	ErrHttpMethodNotAllowed = &Error{Status: 405, Message: "http method not allowed"}
	ErrInternalServer       = &Error{Status: 500, Message: "internal server error"}
	ErrDbUnreachable        = &Error{Status: 503, Message: "database unreachable"}
)

func GetStatus(err error) int {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Status
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrSignatureInvalid):
		return 401

	default:
		return 500
	}
}

// GetMessage never leaks internal error detail: anything that is not a
// customerrors.Error comes back as the generic 500 message.
func GetMessage(err error) string {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return ErrInternalServer.Message
}
