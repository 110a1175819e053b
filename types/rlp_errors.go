package types

import (
	"errors"
	"fmt"
)

var (
	ErrRlpExpectedToBeList = errors.New("rlp: expected list")
	ErrRlpIncorrectListLen = errors.New("rlp: incorrect list length")
	ErrRlpMalformedItem    = errors.New("rlp: malformed item")
)

// DecodeErrorKind classifies a decoding failure
type DecodeErrorKind int

const (
	// KindNotList is returned when a list is expected but a string was found
	KindNotList DecodeErrorKind = iota + 1
	// KindIncorrectListLen is returned on a field count mismatch, or when
	// the input does not even hold the list header
	KindIncorrectListLen
	// KindMalformedItem is returned when the input is not valid rlp or an
	// item does not fit its field
	KindMalformedItem
)

func (k DecodeErrorKind) String() string {
	switch k {
	case KindNotList:
		return "not a list"
	case KindIncorrectListLen:
		return "incorrect list length"
	case KindMalformedItem:
		return "malformed item"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

func (k DecodeErrorKind) sentinel() error {
	switch k {
	case KindNotList:
		return ErrRlpExpectedToBeList
	case KindIncorrectListLen:
		return ErrRlpIncorrectListLen
	default:
		return ErrRlpMalformedItem
	}
}

// DecodeError is the error returned by the withdrawal decoders. Index is the
// position of the offending record inside a list, -1 for the outer value.
type DecodeError struct {
	Kind  DecodeErrorKind
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := e.Kind.sentinel().Error()

	if e.Index >= 0 {
		msg = fmt.Sprintf("%s (record %d)", msg, e.Index)
	}

	if e.Field != "" {
		msg = fmt.Sprintf("%s, field %s", msg, e.Field)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind
func (e *DecodeError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsShapeError reports whether err is a list shape mismatch rather than a
// malformed item.
func IsShapeError(err error) bool {
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		return false
	}

	return decErr.Kind == KindNotList || decErr.Kind == KindIncorrectListLen
}

func newDecodeError(kind DecodeErrorKind, index int, field string, err error) *DecodeError {
	return &DecodeError{
		Kind:  kind,
		Index: index,
		Field: field,
		Err:   err,
	}
}
