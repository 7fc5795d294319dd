/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors internally;
clients only ever see the associated message and HTTP status.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 3xxx: Account, Session, and Authorization Errors
const (
	// ErrMissingFields indicates a registration request with a missing or empty required field.
	ErrMissingFields = 3001

	// ErrMissingCredentials indicates a login request without an email or password.
	ErrMissingCredentials = 3002

	// ErrInvalidRole indicates a registration role outside the self-service set (student, teacher).
	ErrInvalidRole = 3003

	// ErrInvalidInviteCode indicates a teacher registration whose invitation code did not match.
	ErrInvalidInviteCode = 3004

	// ErrEmailTaken indicates that a record with the normalized email already exists.
	ErrEmailTaken = 3005

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The message is intentionally identical for the two cases.
	ErrInvalidCredentials = 3006

	// ErrNoToken indicates a protected request without an Authorization bearer token.
	ErrNoToken = 3007

	// ErrInvalidToken indicates a malformed, tampered, or expired bearer token.
	ErrInvalidToken = 3008

	// ErrUserNotFound indicates a valid token whose referenced user no longer exists.
	ErrUserNotFound = 3009

	// ErrForbidden indicates an authenticated identity without the role a route requires.
	ErrForbidden = 3010

	// ErrInvalidPassword indicates a password outside the accepted length bounds.
	ErrInvalidPassword = 3011

	// ErrOldPasswordInvalid indicates a password change whose current-password check failed.
	ErrOldPasswordInvalid = 3012
)

// 4xxx: File Storage Errors
const (
	// ErrStorageUnavailable indicates that the avatar storage backend is not configured.
	ErrStorageUnavailable = 4001

	// ErrFileStorageFailed indicates a failure talking to the storage backend.
	ErrFileStorageFailed = 4002

	// ErrUnsupportedFileType indicates an avatar upload with a non-image content type.
	ErrUnsupportedFileType = 4003

	// ErrFileSizeTooLarge indicates an avatar upload above the size limit.
	ErrFileSizeTooLarge = 4004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
