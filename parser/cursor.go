package parser

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// cursor is a forward-only view of the token stream which tracks the
// element nesting depth of the last token read.
type cursor struct {
	ctx     context.Context
	src     xml.TokenReader
	depth   int
	pending error
}

// next reads the next token. io.EOF is returned unwrapped; any other
// error is annotated with a stack.
func (c *cursor) next() (xml.Token, error) {
	// check for context cancellation before Token() blocks.
	if err := c.ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := c.pending; err != nil {
		c.pending = nil
		return nil, wrapTokenErr(err)
	}

	token, err := c.src.Token()
	if token == nil {
		if err == nil {
			err = io.EOF
		}
		return nil, wrapTokenErr(err)
	}
	// a token source may report an error together with its last token
	c.pending = err

	token = xml.CopyToken(token)
	switch token.(type) {
	case xml.StartElement:
		c.depth++
	case xml.EndElement:
		c.depth--
	}
	return token, nil
}

func wrapTokenErr(err error) error {
	if err == io.EOF {
		return err
	}
	return errors.WithStack(err)
}

// walk consumes the element most recently opened (its start element
// having just been read) up to and including its end element, calling
// fn with every token in between. The scope ends on the end element
// which returns the cursor to the depth it had before the element was
// opened, so same-named descendants cannot end it early.
func (c *cursor) walk(fn func(xml.Token) error) error {
	base := c.depth
	for {
		token, err := c.next()
		if err != nil {
			return err
		}
		if _, ok := token.(xml.EndElement); ok && c.depth < base {
			return nil
		}
		if err := fn(token); err != nil {
			return err
		}
	}
}

// skip consumes the element most recently opened without interpreting it
func (c *cursor) skip() error {
	return c.walk(func(xml.Token) error { return nil })
}
