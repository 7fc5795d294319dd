package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parikshamitra/internal/pkg/auth/jwt"
)

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router http.Handler, name, email, role string) string {
	t.Helper()

	body := `{"name":"` + name + `","email":"` + email + `","password":"Secret1!","role":"` + role + `"`
	if role == "teacher" {
		body += `,"invitationCode":"` + testInviteCode + `"`
	}
	body += `}`

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["token"].(string)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided, authorization denied", decodeBody(t, rec)["error"])

	// A malformed Authorization header counts as absent.
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Token abcdef")
	out := httptest.NewRecorder()
	router.ServeHTTP(out, req)
	assert.Equal(t, http.StatusUnauthorized, out.Code)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	// Well-formed but signed with a different secret.
	forged, err := jwt.GenerateToken(&jwt.Payload{UserID: uuid.New().String()}, "other-secret", jwt.UserIdentityExpiration)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", forged)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is not valid", decodeBody(t, rec)["error"])

	// Expired token signed with the right secret.
	expired, err := jwt.GenerateToken(&jwt.Payload{UserID: uuid.New().String()}, deps.Config.JWTSecret, -time.Minute)
	require.NoError(t, err)

	rec = doJSON(t, router, http.MethodGet, "/api/users/me", "", expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	token := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	userData := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "ann@x.com", userData["email"])
	assert.Equal(t, "Ann", userData["name"])
	assert.Equal(t, "student", userData["role"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthenticateUserGone(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	// Valid signature, but the referenced account never existed.
	token, err := jwt.GenerateToken(&jwt.Payload{UserID: uuid.New().String()}, deps.Config.JWTSecret, jwt.UserIdentityExpiration)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestRoleGate(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	teacherToken := registerUser(t, router, "Tim", "tim@x.com", "teacher")
	studentToken := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodGet, "/api/teacher/overview", "", teacherToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "tim@x.com", decodeBody(t, rec)["teacher"].(map[string]any)["email"])

	rec = doJSON(t, router, http.MethodGet, "/api/teacher/overview", "", studentToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied, insufficient privileges", decodeBody(t, rec)["error"])

	rec = doJSON(t, router, http.MethodGet, "/api/teacher/overview", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	token := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodPut, "/api/users/me",
		`{"name":"Ann Sharma","avatarUrl":"avatars/u1/pic.png"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	userData := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "Ann Sharma", userData["name"])
	assert.Equal(t, "avatars/u1/pic.png", userData["avatarUrl"])

	// Keys outside the avatar namespace are rejected.
	rec = doJSON(t, router, http.MethodPut, "/api/users/me",
		`{"name":"Ann Sharma","avatarUrl":"secrets/other.png"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresignAvatarWithoutStorage(t *testing.T) {
	deps, _ := newTestDeps()
	router := Router(deps)

	token := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodPost, "/api/users/avatar/presign",
		`{"fileName":"me.png","mimeType":"image/png","fileSize":1024}`, token)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "File storage is not configured", decodeBody(t, rec)["error"])
}

func TestAvatarURLPresignedWithoutPublicBase(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Storage = &fakeStorage{}
	router := Router(deps)

	token := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodPut, "/api/users/me",
		`{"name":"Ann","avatarUrl":"avatars/u1/pic.png"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// No public base URL configured, so the stored key comes back as a
	// short-lived download URL instead of a raw key.
	userData := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "https://s3.test/avatars/u1/pic.png?X-Amz-Signature=download", userData["avatarUrl"])

	// A previously issued presigned URL normalizes back to the same key.
	rec = doJSON(t, router, http.MethodPut, "/api/users/me",
		`{"name":"Ann","avatarUrl":"https://s3.test/avatars/u1/pic.png?X-Amz-Signature=download"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	userData = decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, "https://s3.test/avatars/u1/pic.png?X-Amz-Signature=download", userData["avatarUrl"])
}

func TestPresignAvatar(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Storage = &fakeStorage{}
	router := Router(deps)

	token := registerUser(t, router, "Ann", "ann@x.com", "student")

	rec := doJSON(t, router, http.MethodPost, "/api/users/avatar/presign",
		`{"fileName":"me.png","mimeType":"image/png","fileSize":1024}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	fileKey := body["fileKey"].(string)
	assert.True(t, strings.HasPrefix(fileKey, "avatars/"))
	assert.True(t, strings.HasSuffix(fileKey, ".png"))
	assert.Contains(t, body["presignedUrl"], "X-Amz-Signature=upload")
	assert.Contains(t, body["avatarUrl"], "X-Amz-Signature=download")
}
