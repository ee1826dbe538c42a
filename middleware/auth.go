package middleware

import (
	"context"
	"net/http"
	"strings"

	"backend/config"
	customerrors "backend/customErrors"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates the bearer token and stores the subject id in the
// request context. A missing token is reported distinctly from an expired or
// malformed one.
func AuthMiddleware(token config.Token) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			tokenString, err := BearerToken(r)
			if err != nil {
				return err
			}

			claims, err := token.ValidateJWT(tokenString)
			if err != nil {
				return err
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			return next(w, r.WithContext(ctx))
		}
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", customerrors.ErrMissingToken
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", customerrors.ErrMissingToken
	}

	return tokenString, nil
}

func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, customerrors.ErrMissingToken
	}
	return userID, nil
}
