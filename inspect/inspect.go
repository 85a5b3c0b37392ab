package inspect

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/andaru/endnote/entry"
	"github.com/andaru/endnote/parser"
)

var (
	// outermost <record> elements, matching what the streaming parser
	// treats as records
	xpRecord  = xpath.MustCompile(`//record[not(ancestor::record)]`)
	xpRefType = xpath.MustCompile(`ref-type`)
)

// NoRefType is the RefTypes key for records without a ref-type name
const NoRefType = "(none)"

// Summary describes an EndNote XML document
type Summary struct {
	// Records is the number of records in the document
	Records int
	// RefTypes counts records by their raw ref-type name
	RefTypes map[string]int
	// EntryTypes counts records by the entry type their ref-type maps to
	EntryTypes map[entry.Type]int
}

// Summarize reads a whole document from r into memory and summarizes it.
func Summarize(r io.Reader) (*Summary, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	s := &Summary{RefTypes: map[string]int{}, EntryTypes: map[entry.Type]int{}}
	for _, rec := range xmlquery.QuerySelectorAll(doc, xpRecord) {
		s.Records++
		name := NoRefType
		if rt := xmlquery.QuerySelector(rec, xpRefType); rt != nil {
			if v := rt.SelectAttr("name"); v != "" {
				name = v
			}
		}
		s.RefTypes[name]++
		s.EntryTypes[parser.EntryTypeFor(name)]++
	}
	return s, nil
}

// RefTypeNames returns the ref-type names seen, sorted lexically
func (s *Summary) RefTypeNames() []string {
	names := lo.Keys(s.RefTypes)
	sort.Strings(names)
	return names
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "records: %d\n", s.Records)
	for _, name := range s.RefTypeNames() {
		fmt.Fprintf(&b, "  %-24s %5d  (%s)\n", name, s.RefTypes[name], parser.EntryTypeFor(name))
	}
	return b.String()
}

// MismatchError reports a document whose streamed entry count differs
// from its record count.
type MismatchError struct {
	Records int
	Entries int
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("document has %d records but the parser produced %d entries", e.Records, e.Entries)
}

// Verify summarizes data and parses it with the streaming parser,
// returning a MismatchError if the record and entry counts differ.
func Verify(ctx context.Context, data []byte, opts ...parser.Option) (*Summary, []*entry.Entry, error) {
	s, err := Summarize(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	entries, err := parser.Parse(ctx, bytes.NewReader(data), opts...)
	if err != nil {
		return s, nil, err
	}
	if len(entries) != s.Records {
		return s, entries, errors.WithStack(MismatchError{Records: s.Records, Entries: len(entries)})
	}
	return s, entries, nil
}
