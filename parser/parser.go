package parser

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/golang/glog"

	"github.com/andaru/endnote/enerr"
	"github.com/andaru/endnote/entry"
)

// Option is a parser option function
type Option func(*options)

type options struct {
	builder entry.Builder
}

// WithKeywordSeparator sets the separator used to join each entry's
// keywords (see entry.Builder).
func WithKeywordSeparator(sep string) Option {
	return func(o *options) { o.builder.KeywordSeparator = sep }
}

// Parse reads an EndNote XML document from r and returns one entry per
// <record> element, in document order.
//
// On malformed markup, a read error or context cancellation, Parse
// returns nil and a single *enerr.Error; no partial result is returned.
func Parse(ctx context.Context, r io.Reader, opts ...Option) ([]*entry.Entry, error) {
	return ParseTokens(ctx, xml.NewDecoder(r), opts...)
}

// ParseTokens is Parse for an already tokenized document.
//
// A token source which ends with io.EOF inside a record causes that
// record to be dropped. (*xml.Decoder reports unclosed elements at the
// end of input as a syntax error instead.)
func ParseTokens(ctx context.Context, tr xml.TokenReader, opts ...Option) ([]*entry.Entry, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	c := &cursor{ctx: ctx, src: tr}

	entries := []*entry.Entry{}
	for {
		token, err := c.next()
		if err == io.EOF {
			return entries, nil
		} else if err != nil {
			return nil, fail(err)
		}
		if se, ok := token.(xml.StartElement); !ok || se.Name.Local != elemRecord {
			continue
		}

		rc, err := parseRecord(c)
		if err == io.EOF {
			glog.Warningf("input ended inside record %d; record dropped", len(entries)+1)
			return entries, nil
		} else if err != nil {
			return nil, fail(err)
		}
		e := o.builder.Build(rc.typ, rc.fields, rc.keywords)
		entries = append(entries, e)
		glog.V(1).Infof("record %d: %s, %d fields, %d keywords",
			len(entries), e.Type(), len(rc.fields), len(rc.keywords))
	}
}

func fail(err error) error {
	glog.V(1).Infof("could not parse document: %+v", err)
	return enerr.FromTokenError(err)
}
