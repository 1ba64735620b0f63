package plerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeUnknownPattern = "UNKNOWN_PATTERN"
	CodeStaleEdit      = "STALE_EDIT"
	CodeOrphanedResult = "ORPHANED_RESULT"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusBadRequest, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidInput is returned when a request carries a malformed clear status,
	// patch value or line category. The caller must fix the request before resending.
	ErrInvalidInput = New(fiber.StatusBadRequest, CodeInvalidInput, "invalid input: some or all request parameters are invalid")

	// ErrUnknownPattern is returned when a submission references a pattern that is
	// not present (or not yet accepted) in the catalog. The client should hold the
	// submission until its catalog sync completes.
	ErrUnknownPattern = New(fiber.StatusBadRequest, CodeUnknownPattern, "submission references an unknown pattern")

	// ErrStaleEdit is returned when a level edit carries an older timestamp than the
	// currently stored value. The caller may retry with current data.
	ErrStaleEdit = New(fiber.StatusConflict, CodeStaleEdit, "edit is older than the currently stored value")

	// ErrOrphanedResult guards pattern removal: a pattern still referenced by any
	// result must never be deleted, as cascading would destroy player history.
	ErrOrphanedResult = New(fiber.StatusConflict, CodeOrphanedResult, "pattern is still referenced by existing results")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type PlatinaError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_INPUT"`
	Message    string `example:"invalid input: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PlatinaError {
	return &PlatinaError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with a formatted message, leaving the
// original sentinel value untouched.
func (e PlatinaError) Msg(format string, parts ...interface{}) *PlatinaError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PlatinaError) WithExtras(extras Extras) *PlatinaError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *PlatinaError {
	e := *ErrInvalidInput
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *PlatinaError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
