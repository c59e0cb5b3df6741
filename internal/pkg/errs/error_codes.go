/*
Package errs provides custom error types and application-level error code constants.

Codes are shared by HTTP responses and real-time error frames so clients can branch on a
single numeric value.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 21xx: Appointment call signaling errors
const (
	// ErrJoinParamsInvalid indicates a join-room frame without a usable room or user id.
	ErrJoinParamsInvalid = 2101

	// ErrAlreadyJoined indicates a second join-room on a connection that is already in a room.
	ErrAlreadyJoined = 2102

	// ErrNotJoined indicates a room-scoped frame from a connection that never joined.
	ErrNotJoined = 2103

	// ErrUnsupportedFrame indicates an unknown or unparsable real-time frame.
	ErrUnsupportedFrame = 2104
)

// 22xx: Clinical record errors
const (
	// ErrResourceNotFound indicates the addressed record does not exist.
	ErrResourceNotFound = 2201

	// ErrInvalidGender indicates a gender outside the accepted set.
	ErrInvalidGender = 2202

	// ErrFileTypeInvalid indicates an uploaded file that is not an accepted image.
	ErrFileTypeInvalid = 2203

	// ErrFileSizeTooLarge indicates an uploaded file above the size limit.
	ErrFileSizeTooLarge = 2204
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrPowChallengeRequired indicates the client must complete a Proof-of-Work challenge first.
	ErrPowChallengeRequired = 3001

	// ErrPowChallengeInvalid indicates that the PoW proof provided by the client is incorrect.
	ErrPowChallengeInvalid = 3002

	// ErrPowChallengeInternal indicates an internal error in PoW generation or validation.
	ErrPowChallengeInternal = 3003

	// ErrUnauthorized indicates a missing or invalid identity token.
	ErrUnauthorized = 3101

	// ErrUserAlreadyExists indicates a registration with an email that is already taken.
	ErrUserAlreadyExists = 3102

	// ErrInvalidCredentials indicates a login with an unknown email or wrong password.
	ErrInvalidCredentials = 3103

	// ErrUserNotFound indicates the addressed user does not exist.
	ErrUserNotFound = 3104
)

// 4xxx: Upstream Provider Errors
const (
	// ErrTranslationFailed indicates the language detection or translation provider failed.
	ErrTranslationFailed = 4001

	// ErrPrescriptionFailed indicates the chat-completion provider failed.
	ErrPrescriptionFailed = 4002

	// ErrQuotaExceeded indicates the provider account ran out of quota.
	ErrQuotaExceeded = 4003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates the object store rejected a read or write.
	ErrFileStorageFailed = 5001

	// ErrDatabase indicates a failed database operation.
	ErrDatabase = 5002
)
