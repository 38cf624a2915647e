package middleware

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-insights-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired admits only valid access tokens issued for a known role.
// It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			if errors.Is(err, jwtauth.ErrExpired) {
				response.HandleError(w, auth.ErrTokenExpired)
				return
			}
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if !user.Role(role).IsValid() {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
