package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain error taxonomy:
validation, not-found, conflict, authorization, precondition-failed and
cascade failures. Services return these; the Gin boundary maps them.
*/

// =========================================================================
// Factory functions (used to wrap repository-level errors)
// =========================================================================

// ErrNotFound wraps a lookup miss (404).
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation (409).
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict builds a generic conflict (409).
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus builds an invalid status-transition error (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrPreconditionFailed builds a precondition violation (412).
func ErrPreconditionFailed(domain, message string) *AppError {
	return New(CodePreconditionFailed, domain, message, http.StatusPreconditionFailed)
}

// ErrCascadeFailed wraps an unexpected failure inside a cascading fan-out
// (500). The originating message is preserved through the wrapped cause.
func ErrCascadeFailed(err error, domain, message string) *AppError {
	return Wrap(err, CodeCascadeFailed, domain, message, http.StatusInternalServerError)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInvalidCredentials - login with a bad username/password pair.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - the actor cannot act on this resource.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrAlreadyApplied - the helper already applied to this task.
var ErrAlreadyApplied = New(
	CodeConflict,
	"task",
	"Helper already applied",
	http.StatusConflict,
)

// ErrTaskHasAssignedHelper - a task with an assigned helper can never be
// deleted.
var ErrTaskHasAssignedHelper = New(
	CodePreconditionFailed,
	"task",
	"Task has an assigned helper and cannot be deleted",
	http.StatusPreconditionFailed,
)

// ErrHasAssignedTasks - a helper with assigned tasks cannot deactivate the
// account.
var ErrHasAssignedTasks = New(
	CodePreconditionFailed,
	"helper",
	"Helper has assigned tasks and cannot be deleted",
	http.StatusPreconditionFailed,
)

// ErrInvalidRating - review rating outside [1,5].
var ErrInvalidRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)

// ErrInvalidCoordinates - latitude/longitude outside valid ranges.
var ErrInvalidCoordinates = New(
	CodeValidationFailed,
	"validation",
	"Invalid coordinates",
	http.StatusBadRequest,
)
