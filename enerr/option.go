package enerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithLine(line int) Option      { return func(e *Error) { e.Line = line } }
func WithCause(err error) Option    { return func(e *Error) { e.Err = err } }
