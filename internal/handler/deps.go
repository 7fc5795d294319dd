package handler

import (
	"context"
	"fmt"
	"strings"

	"parikshamitra/internal/app/storage"
	"parikshamitra/internal/app/user"
	"parikshamitra/internal/configs"
	"parikshamitra/internal/pkg/logx"
)

// AppDeps bundles the collaborators every handler closure needs.
type AppDeps struct {
	Config *configs.AppConfig
	Users  user.Store

	// Storage is nil when the S3 settings block is not configured;
	// avatar endpoints report storage as unavailable in that case.
	Storage storage.StorageService
}

// avatarKeyPrefix is the object-key namespace for avatar uploads.
const avatarKeyPrefix = "avatars/"

// AvatarURL converts a stored object key into a URL the client can fetch.
// With a public base URL configured the key maps onto it directly; without
// one, a short-lived presigned download URL is issued instead, so private
// buckets work too. Empty keys map to empty URLs so absent avatars stay
// absent.
func (d *AppDeps) AvatarURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}
	if d.Config.S3PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", d.Config.S3PublicBaseURL, key)
	}
	if d.Storage == nil {
		return key
	}

	url, err := d.Storage.PresignDownload(ctx, key, presignedURLDuration)
	if err != nil {
		logx.Error(err, "Failed to presign avatar download", "key", key)
		return key
	}
	return url
}

// NormalizeAssetKey reduces a client-submitted avatar URL or key back to the
// bare object key. Public and presigned URL forms are both accepted; anything
// outside the avatar namespace is rejected, which stops a client from
// pointing its profile at arbitrary objects.
func (d *AppDeps) NormalizeAssetKey(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	key := raw
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	if d.Config.S3PublicBaseURL != "" {
		key = strings.TrimPrefix(key, d.Config.S3PublicBaseURL+"/")
	}
	if i := strings.Index(key, "/"+avatarKeyPrefix); i >= 0 {
		key = key[i+1:]
	}

	if !strings.HasPrefix(key, avatarKeyPrefix) || strings.Contains(key, "..") {
		return "", fmt.Errorf("asset key %q is outside the avatar namespace", key)
	}

	return key, nil
}
