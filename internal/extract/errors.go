package extract

import (
	"errors"
	"fmt"

	"pyapi/internal/diag"
	"pyapi/internal/source"
)

var (
	// ErrStreamExhausted reports that the token stream ended before the
	// depth-zero colon closing a definition header.
	ErrStreamExhausted = errors.New("token stream exhausted before end of signature")
	// ErrMissingName reports a definition keyword with no identifier
	// anywhere in its header.
	ErrMissingName = errors.New("definition has no name")
)

// PositionedError ties an extraction failure to a source span and a
// diagnostic code. It wraps one of the sentinel errors above.
type PositionedError struct {
	Code diag.Code
	Span source.Span
	Err  error
}

func (e *PositionedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Err)
}

func (e *PositionedError) Unwrap() error { return e.Err }

func streamExhausted(sp source.Span) error {
	return &PositionedError{Code: diag.ExtStreamExhausted, Span: sp, Err: ErrStreamExhausted}
}

func missingName(sp source.Span) error {
	return &PositionedError{Code: diag.ExtMissingName, Span: sp, Err: ErrMissingName}
}
