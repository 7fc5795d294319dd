/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling. Entries without an
explicit Status default to 400 Bad Request.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters"},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format"},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format"},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data"},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests from this IP, please try again later.", Status: http.StatusTooManyRequests},

	// 3xxx: Account, Session, and Authorization Errors
	ErrMissingFields:      {Code: ErrMissingFields, Message: "Please provide all required fields"},
	ErrMissingCredentials: {Code: ErrMissingCredentials, Message: "Please provide email and password"},
	ErrInvalidRole:        {Code: ErrInvalidRole, Message: "Invalid role selected"},
	ErrInvalidInviteCode:  {Code: ErrInvalidInviteCode, Message: "Invalid invitation code for teacher role"},
	ErrEmailTaken:         {Code: ErrEmailTaken, Message: "User already exists with this email"},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid credentials"},
	ErrNoToken:            {Code: ErrNoToken, Message: "No token provided, authorization denied", Status: http.StatusUnauthorized},
	ErrInvalidToken:       {Code: ErrInvalidToken, Message: "Token is not valid", Status: http.StatusUnauthorized},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found", Status: http.StatusNotFound},
	ErrForbidden:          {Code: ErrForbidden, Message: "Access denied, insufficient privileges", Status: http.StatusForbidden},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Password must be between 6 and 72 characters"},
	ErrOldPasswordInvalid: {Code: ErrOldPasswordInvalid, Message: "Current password is incorrect"},

	// 4xxx: File Storage Errors
	ErrStorageUnavailable:  {Code: ErrStorageUnavailable, Message: "File storage is not configured", Status: http.StatusServiceUnavailable},
	ErrFileStorageFailed:   {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again.", Status: http.StatusInternalServerError},
	ErrUnsupportedFileType: {Code: ErrUnsupportedFileType, Message: "Unsupported image type"},
	ErrFileSizeTooLarge:    {Code: ErrFileSizeTooLarge, Message: "Image is too large"},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Server error", Status: http.StatusInternalServerError},
}
