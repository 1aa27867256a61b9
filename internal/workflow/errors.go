package workflow

import (
	"errors"
	"fmt"
)

// Not-found sentinels. The transport layer maps these to 404s.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrPathNotFound     = errors.New("learning path not found")
)

// ValidationError reports a missing or malformed client-supplied field.
// Never retried internally; the transport layer maps it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
