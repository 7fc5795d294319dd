/*
Package handler provides the HTTP handlers and routing setup for the Pariksha Mitra API.

This file implements the authentication surface: registration with role
selection and invite-code gating, credential login, and password change.
*/
package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"parikshamitra/internal/app/user"
	"parikshamitra/internal/pkg/auth/jwt"
	"parikshamitra/internal/pkg/errs"
	"parikshamitra/internal/pkg/logx"
	"parikshamitra/internal/pkg/req"
	"parikshamitra/internal/pkg/resp"
)

// userResponse is the client-facing projection of an account: identity and
// role only, never the password hash.
func userResponse(ctx context.Context, deps *AppDeps, u *user.User) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"avatarUrl": deps.AvatarURL(ctx, u.AvatarURL),
	}
}

// issueToken signs a fresh identity token for the given user id.
func issueToken(deps *AppDeps, userID string) (string, *errs.CustomError) {
	token, err := jwt.GenerateToken(&jwt.Payload{UserID: userID}, deps.Config.JWTSecret, jwt.UserIdentityExpiration)
	if err != nil {
		logx.Error(err, "JWT generation failed", "user_id", userID)
		return "", errs.NewError(errs.ErrUnknown)
	}
	return token, nil
}

// validPassword bounds passwords to at least 6 characters and at most 72
// bytes. The cap is in bytes because that is bcrypt's input limit; a
// multibyte password can exceed it with far fewer characters.
func validPassword(s string) bool {
	return utf8.RuneCountInString(s) >= 6 && len(s) <= 72
}

// inviteCodeMatches compares a submitted invitation code against the
// configured secret in constant time. An unset secret never matches.
func inviteCodeMatches(deps *AppDeps, submitted string) bool {
	secret := deps.Config.InviteCode
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(secret)) == 1
}

type RegisterInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	InvitationCode string `json:"invitationCode,omitempty"`
}

// HandleRegister processes the request to create a new account.
// Teacher self-registration additionally requires the invitation code.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		role := user.Role(input.Role)
		if !role.SelfServe() {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRole))
			return
		}

		if role == user.RoleTeacher && !inviteCodeMatches(deps, input.InvitationCode) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidInviteCode))
			return
		}

		if !validPassword(input.Password) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		email := user.NormalizeEmail(input.Email)

		var account user.User
		if err := account.SetPassword(input.Password); err != nil {
			logx.Error(err, "Password hashing failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		created, err := deps.Users.Create(r.Context(), user.CreateParams{
			Name:         input.Name,
			Email:        email,
			PasswordHash: account.PasswordHash,
			Role:         role,
		})
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				logx.Warn("Registration conflict: email already exists", "email", email)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
				return
			}

			logx.Error(err, "Failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		token, customErr := issueToken(deps, created.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusCreated, map[string]any{
			"message": "User registered successfully",
			"user":    userResponse(r.Context(), deps, created),
			"token":   token,
		})
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues an identity token.
// Unknown email and wrong password produce byte-identical responses so the
// endpoint cannot be used to enumerate accounts.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingCredentials))
			return
		}

		email := user.NormalizeEmail(input.Email)

		account, err := deps.Users.GetByEmail(r.Context(), email)
		if err != nil {
			if !errors.Is(err, user.ErrNotFound) {
				logx.Error(err, "Login: user lookup failed")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			logx.Warn("Login: unknown email", "email", email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if !account.CheckPassword(input.Password) {
			logx.Warn("Login: password mismatch", "email", email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		token, customErr := issueToken(deps, account.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Login successful",
			"user":    userResponse(r.Context(), deps, account),
			"token":   token,
		})
	}
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// HandleChangePassword re-hashes the account credential after verifying the
// current password, and returns a fresh token.
func HandleChangePassword(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := UserFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		var input ChangePasswordInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !validPassword(input.NewPassword) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		// The context identity has the hash stripped; reload the full record.
		account, err := deps.Users.GetByID(r.Context(), identity.ID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		if !account.CheckPassword(input.OldPassword) {
			resp.RespondError(w, r, errs.NewError(errs.ErrOldPasswordInvalid))
			return
		}

		if err := account.SetPassword(input.NewPassword); err != nil {
			logx.Error(err, "Password hashing failed", "user_id", account.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.Users.UpdatePassword(r.Context(), account.ID, account.PasswordHash); err != nil {
			logx.Error(err, "Failed to update password in database", "user_id", account.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		token, customErr := issueToken(deps, account.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Password updated successfully",
			"token":   token,
		})
	}
}
