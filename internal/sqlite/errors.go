package sqlite

import (
	"context"
	"errors"
	"fmt"
)

// PlaySQL error codes
const (
	ErrorCodeEmptyQuery       = "EMPTY_QUERY"
	ErrorCodeForbiddenKeyword = "FORBIDDEN_KEYWORD"
	ErrorCodeSQLError         = "SQL_ERROR"
	ErrorCodeQueryTimeout     = "QUERY_TIMEOUT"
	ErrorCodeInternalError    = "INTERNAL_ERROR"
)

// GenericInternalMessage is the only text internal failures may show a
// caller. Implementation detail never leaks into a response.
const GenericInternalMessage = "An unexpected error occurred"

// PlayError carries a machine code and the exact user-facing message
// for one failure outcome.
type PlayError struct {
	Code    string
	Message string
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPlayError creates a new PlaySQL error
func NewPlayError(code, message string) *PlayError {
	return &PlayError{
		Code:    code,
		Message: message,
	}
}

// NewSQLError wraps an engine-reported message in the user-facing
// "SQL Error: " form.
func NewSQLError(engineMessage string) *PlayError {
	return NewPlayError(ErrorCodeSQLError, "SQL Error: "+engineMessage)
}

// NewInternalError creates an internal error. The detail is kept in
// the wrapped message for logs; callers only ever see the generic text.
func NewInternalError() *PlayError {
	return NewPlayError(ErrorCodeInternalError, GenericInternalMessage)
}

// TranslateQueryError classifies a failure that arose while running
// the user's statement. Anything the engine reports about the
// statement becomes an SQL_ERROR; hitting the execution deadline
// becomes a QUERY_TIMEOUT.
func TranslateQueryError(err error) *PlayError {
	if err == nil {
		return nil
	}

	var playErr *PlayError
	if errors.As(err, &playErr) {
		return playErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewPlayError(
			ErrorCodeQueryTimeout,
			"Query execution timed out",
		)
	}

	if errors.Is(err, context.Canceled) {
		return NewPlayError(
			ErrorCodeQueryTimeout,
			"Query execution was canceled",
		)
	}

	return NewSQLError(err.Error())
}

// UserMessage extracts the user-facing message for any error reaching
// a response boundary. Untyped errors collapse to the generic text.
func UserMessage(err error) string {
	var playErr *PlayError
	if errors.As(err, &playErr) {
		return playErr.Message
	}
	return GenericInternalMessage
}
