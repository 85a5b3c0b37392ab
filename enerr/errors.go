package enerr

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
)

// Tag classifies a structural parse failure
type Tag int

const (
	// TagMalformedMarkup indicates the input is not well-formed XML
	TagMalformedMarkup Tag = iota
	// TagReadFailure indicates the underlying input stream failed
	TagReadFailure
	// TagCanceled indicates the parse was canceled by its context
	TagCanceled
)

func (t Tag) String() string {
	switch t {
	case TagMalformedMarkup:
		return "malformed-markup"
	case TagReadFailure:
		return "read-failure"
	case TagCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

func (t *Tag) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "malformed-markup":
		*t = TagMalformedMarkup
	case "read-failure":
		*t = TagReadFailure
	case "canceled":
		*t = TagCanceled
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (t Tag) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Error is the single terminal error returned by a failed parse.
//
// Line is the input line the failure was detected on, or zero when
// unknown. Err is the underlying cause.
type Error struct {
	Tag     Tag
	Line    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	s := "endnote xml " + e.Tag.String()
	if e.Line > 0 {
		s += fmt.Sprintf(" line:%d", e.Line)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Cause returns the underlying cause (github.com/pkg/errors.Cause)
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

func MalformedMarkup(opts ...Option) *Error {
	e := &Error{Tag: TagMalformedMarkup}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func ReadFailure(opts ...Option) *Error {
	e := &Error{Tag: TagReadFailure}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Canceled(opts ...Option) *Error {
	e := &Error{Tag: TagCanceled}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromTokenError classifies an error returned while reading the next
// XML token into a terminal *Error.
func FromTokenError(err error) *Error {
	var se *xml.SyntaxError
	switch {
	case errors.As(err, &se):
		return MalformedMarkup(WithLine(se.Line), WithCause(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Canceled(WithCause(err))
	default:
		return ReadFailure(WithCause(err))
	}
}

// IsStructural returns the terminal *Error carried by err, if any
func IsStructural(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
