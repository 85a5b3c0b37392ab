package enerr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err   *Error
		error string
	}{
		{
			err:   MalformedMarkup(WithLine(3), WithCause(errors.New("boom"))),
			error: "endnote xml malformed-markup line:3: boom",
		},
		{
			err:   ReadFailure(WithMessage("reading record"), WithCause(io.ErrClosedPipe)),
			error: "endnote xml read-failure reading record: io: read/write on closed pipe",
		},
		{
			err:   Canceled(),
			error: "endnote xml canceled",
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err.Tag), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())
			check.Equal(tc.err.Err, errors.Cause(tc.err))
		})
	}
}

func TestTagText(t *testing.T) {
	check := assert.New(t)
	for _, tag := range []Tag{TagMalformedMarkup, TagReadFailure, TagCanceled} {
		b, err := tag.MarshalText()
		check.NoError(err)
		var got Tag = -1
		check.NoError(got.UnmarshalText(b))
		check.Equal(tag, got)
	}
	var tag Tag
	check.Error(tag.UnmarshalText([]byte("nope")))
	check.Equal("Tag(9)", Tag(9).String())
}

func TestFromTokenError(t *testing.T) {
	var syntaxErr error
	d := xml.NewDecoder(strings.NewReader("<a>\n<b></a>"))
	for syntaxErr == nil {
		_, syntaxErr = d.Token()
	}

	for _, tc := range []struct {
		name     string
		err      error
		wantTag  Tag
		wantLine int
	}{
		{name: "syntax", err: syntaxErr, wantTag: TagMalformedMarkup, wantLine: 2},
		{name: "wrapped syntax", err: errors.WithStack(syntaxErr), wantTag: TagMalformedMarkup, wantLine: 2},
		{name: "canceled", err: errors.WithStack(context.Canceled), wantTag: TagCanceled},
		{name: "deadline", err: context.DeadlineExceeded, wantTag: TagCanceled},
		{name: "read", err: io.ErrClosedPipe, wantTag: TagReadFailure},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			e := FromTokenError(tc.err)
			check.Equal(tc.wantTag, e.Tag)
			check.Equal(tc.wantLine, e.Line)
			check.ErrorIs(e, errors.Cause(tc.err))

			got, ok := IsStructural(errors.Wrap(e, "import"))
			check.True(ok)
			check.Same(e, got)
		})
	}

	_, ok := IsStructural(io.EOF)
	assert.False(t, ok)
}
