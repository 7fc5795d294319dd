/*
Package handler provides the HTTP handlers and routing setup for the Pariksha Mitra API.

This file implements the profile surface: reading the current account,
updating name and avatar, and issuing presigned avatar upload URLs.
*/
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"parikshamitra/internal/pkg/errs"
	"parikshamitra/internal/pkg/logx"
	"parikshamitra/internal/pkg/req"
	"parikshamitra/internal/pkg/resp"
)

const (
	// presignedURLDuration bounds how long an issued upload/download URL stays valid.
	presignedURLDuration = 15 * time.Minute

	// maxAvatarSize is the upload limit for avatar images.
	maxAvatarSize int64 = 5 << 20 // 5 MB
)

// avatarMimeTypes maps the accepted avatar content types to their extensions.
var avatarMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// HandleGetMe returns the authenticated user's profile.
func HandleGetMe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := UserFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"user": userResponse(r.Context(), deps, identity),
		})
	}
}

type UpdateProfileInput struct {
	Name      string `json:"name"`
	AvatarUrl string `json:"avatarUrl"`
}

// HandleUpdateProfile updates the display name and avatar of the
// authenticated user. A replaced avatar object is deleted in the background.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := UserFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		var input UpdateProfileInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		avatarKey, err := deps.NormalizeAssetKey(input.AvatarUrl)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		updated, err := deps.Users.UpdateProfile(r.Context(), identity.ID, input.Name, avatarKey)
		if err != nil {
			logx.Error(err, "Failed to update profile", "user_id", identity.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		oldKey := identity.AvatarURL
		if deps.Storage != nil && oldKey != "" && oldKey != avatarKey {
			go func(k string) {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = deps.Storage.Delete(ctx, k)
			}(oldKey)
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"message": "Profile updated successfully",
			"user":    userResponse(r.Context(), deps, updated),
		})
	}
}

type PresignAvatarInput struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignAvatar issues a time-limited presigned URL for uploading an
// avatar image, scoped under the authenticated user's key namespace.
func HandlePresignAvatar(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := UserFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoToken))
			return
		}

		if deps.Storage == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageUnavailable))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		ext, ok := avatarMimeTypes[input.MimeType]
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnsupportedFileType))
			return
		}

		if input.FileSize <= 0 || input.FileSize > maxAvatarSize {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileSizeTooLarge))
			return
		}

		// The key extension comes from the content type, not from whatever
		// the client named the file.
		fileKey := fmt.Sprintf("%s%s/%s%s", avatarKeyPrefix, identity.ID, uuid.New().String(), ext)

		url, err := deps.Storage.PresignUpload(
			r.Context(),
			fileKey,
			input.MimeType,
			input.FileSize,
			presignedURLDuration,
		)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		resp.RespondJSON(w, r, http.StatusOK, map[string]any{
			"presignedUrl": url,
			"fileKey":      fileKey,
			"avatarUrl":    deps.AvatarURL(r.Context(), fileKey),
		})
	}
}
