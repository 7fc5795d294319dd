package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"parikshamitra/internal/app/user"
	"parikshamitra/internal/pkg/auth/jwt"
	"parikshamitra/internal/pkg/errs"
	"parikshamitra/internal/pkg/logx"
	"parikshamitra/internal/pkg/resp"
)

// contextKey is a private type for request-context values, preventing key
// collisions with other packages.
type contextKey string

// contextUserKey stores the authenticated *user.User resolved by Authenticate.
const contextUserKey contextKey = "auth_user"

// Authenticate gates a route behind a valid bearer token.
//
// The request moves through a fixed sequence: no Authorization header means
// 401 (absent token), a present but unverifiable token means 401 (invalid
// token), and a verified token whose user has since been deleted means 404.
// On success the freshly loaded identity, with the password hash stripped,
// is attached to the request context. Role and profile come from the store,
// never from token claims.
func Authenticate(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
				return
			}

			payload, err := jwt.ParseToken(parts[1], deps.Config.JWTSecret)
			if err != nil {
				logx.Warn("Rejected invalid or expired JWT", "error", err)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidToken))
				return
			}

			u, err := deps.Users.GetByID(r.Context(), payload.UserID)
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
					return
				}
				logx.Error(err, "Failed to load user for valid token", "user_id", payload.UserID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}

			ctx := context.WithValue(r.Context(), contextUserKey, u.Public())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user attached by Authenticate.
// A nil return means the route was reached without the middleware.
func UserFromContext(r *http.Request) *user.User {
	u, ok := r.Context().Value(contextUserKey).(*user.User)
	if !ok {
		return nil
	}
	return u
}

// RequireRole permits the request only when the authenticated identity holds
// the required role. It composes after Authenticate and never runs standalone.
func RequireRole(role user.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFromContext(r)
			if u == nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
				return
			}

			if u.Role != role {
				resp.RespondError(w, r, errs.NewError(errs.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
