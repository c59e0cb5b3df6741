package errs

import "net/http"

// errorMap holds the user-facing message and HTTP status for every application code.
// A zero Status means http.StatusBadRequest.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 21xx: Appointment call signaling errors
	ErrJoinParamsInvalid: {Code: ErrJoinParamsInvalid, Message: "Both room and user identifiers are required to join."},
	ErrAlreadyJoined:     {Code: ErrAlreadyJoined, Message: "This connection has already joined a room."},
	ErrNotJoined:         {Code: ErrNotJoined, Message: "Join a room before sending signaling data."},
	ErrUnsupportedFrame:  {Code: ErrUnsupportedFrame, Message: "Unsupported message."},

	// 22xx: Clinical record errors
	ErrResourceNotFound: {Code: ErrResourceNotFound, Message: "Record not found.", Status: http.StatusNotFound},
	ErrInvalidGender:    {Code: ErrInvalidGender, Message: "Invalid gender value. It must be one of: %s."},
	ErrFileTypeInvalid:  {Code: ErrFileTypeInvalid, Message: "Only image files are allowed."},
	ErrFileSizeTooLarge: {Code: ErrFileSizeTooLarge, Message: "File is too large (max %d MB).", Status: http.StatusRequestEntityTooLarge},

	// 3xxx: User, Session, and Security Errors
	ErrPowChallengeRequired: {Code: ErrPowChallengeRequired, Message: "Verification required. Please try again.", Status: http.StatusForbidden},
	ErrPowChallengeInvalid:  {Code: ErrPowChallengeInvalid, Message: "Verification failed. Please try again.", Status: http.StatusForbidden},
	ErrPowChallengeInternal: {Code: ErrPowChallengeInternal, Message: "Verification service error. Please try again later.", Status: http.StatusInternalServerError},
	ErrUnauthorized:         {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrUserAlreadyExists:    {Code: ErrUserAlreadyExists, Message: "An account with this email already exists.", Status: http.StatusConflict},
	ErrInvalidCredentials:   {Code: ErrInvalidCredentials, Message: "Invalid email or password."},
	ErrUserNotFound:         {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},

	// 4xxx: Upstream Provider Errors
	ErrTranslationFailed:  {Code: ErrTranslationFailed, Message: "An error occurred during language detection or translation.", Status: http.StatusBadGateway},
	ErrPrescriptionFailed: {Code: ErrPrescriptionFailed, Message: "Failed to generate prescription. Please try again later.", Status: http.StatusBadGateway},
	ErrQuotaExceeded:      {Code: ErrQuotaExceeded, Message: "API quota exceeded. Please try again later or contact support.", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown:           {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrFileStorageFailed: {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again.", Status: http.StatusInternalServerError},
	ErrDatabase:          {Code: ErrDatabase, Message: "Database error.", Status: http.StatusInternalServerError},
}
