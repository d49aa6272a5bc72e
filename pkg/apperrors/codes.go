package apperrors

// ErrorCode is a machine-readable error code
type ErrorCode string

// Cross-cutting, non-domain error codes
const (
	// System and unknown errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeCascadeFailed ErrorCode = "CASCADE_FAILED"

	// Generic business-logic codes (used by the factories)
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeConflict           ErrorCode = "CONFLICT"
	CodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"
	CodeInvalidStatus      ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation   ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
