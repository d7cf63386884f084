package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanadhr/backoffice-go/internal/domain/auth"
	"github.com/sanadhr/backoffice-go/internal/domain/user"
	"github.com/sanadhr/backoffice-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext pulls the authenticated user's ID and role out of the
// verified token claims.
func ActorFromContext(r *http.Request) (userID string, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}

	userID, ok = claims["user_id"].(string)
	if !ok {
		return "", "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", false
	}
	role, ok = user.ParseRole(roleStr)
	if !ok {
		return "", "", false
	}

	return userID, role, true
}
