package relayer

import (
	"errors"
	"fmt"
)

// ErrorKind tags a relay failure with the stage that produced it.
type ErrorKind string

const (
	KindEncoding           ErrorKind = "EncodingError"
	KindChainQuery         ErrorKind = "ChainQueryError"
	KindSigning            ErrorKind = "SigningError"
	KindSubmission         ErrorKind = "SubmissionError"
	KindAccountUnavailable ErrorKind = "AccountUnavailable"
)

// Sentinels usable with errors.Is against any *RelayError of the same kind.
var (
	ErrEncoding           = &RelayError{Kind: KindEncoding}
	ErrChainQuery         = &RelayError{Kind: KindChainQuery}
	ErrSigning            = &RelayError{Kind: KindSigning}
	ErrSubmission         = &RelayError{Kind: KindSubmission}
	ErrAccountUnavailable = &RelayError{Kind: KindAccountUnavailable}
)

// RelayError is the tagged failure returned by every relay stage.
type RelayError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *RelayError) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a RelayError of the same kind.
func (e *RelayError) Is(target error) bool {
	t, ok := target.(*RelayError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, op string, err error) *RelayError {
	return &RelayError{Kind: kind, Op: op, Err: err}
}

// EncodingError wraps err as an EncodingError.
func EncodingError(op string, err error) error { return newError(KindEncoding, op, err) }

// ChainQueryError wraps err as a ChainQueryError.
func ChainQueryError(op string, err error) error { return newError(KindChainQuery, op, err) }

// SigningError wraps err as a SigningError.
func SigningError(op string, err error) error { return newError(KindSigning, op, err) }

// SubmissionError wraps err as a SubmissionError.
func SubmissionError(op string, err error) error { return newError(KindSubmission, op, err) }

// AccountUnavailableError wraps err as an AccountUnavailable failure.
func AccountUnavailableError(op string, err error) error {
	return newError(KindAccountUnavailable, op, err)
}

// KindOf returns the kind of the outermost RelayError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var re *RelayError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// IsKind reports whether err carries a RelayError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return errors.Is(err, &RelayError{Kind: kind})
}

// asKind returns err unchanged when it already carries a RelayError, otherwise tags it with kind.
func asKind(kind ErrorKind, op string, err error) error {
	if KindOf(err) != "" {
		return err
	}
	return newError(kind, op, err)
}
