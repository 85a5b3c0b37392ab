package entry

import (
	"sort"
	"strings"
)

// Entry is one bibliographic entry. Entries are created by a Builder
// and never change afterwards.
type Entry struct {
	typ      Type
	fields   Fields
	keywords []string
	kwString string
}

// Type returns the entry type
func (e *Entry) Type() Type { return e.typ }

// Field returns the value of f, or the empty string if f is not set
func (e *Entry) Field(f Field) string { return e.fields[f] }

// Lookup returns the value of f and whether it is set
func (e *Entry) Lookup(f Field) (string, bool) {
	v, ok := e.fields[f]
	return v, ok
}

// Fields returns a copy of the entry's fields
func (e *Entry) Fields() Fields {
	out := make(Fields, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// FieldNames returns the set field identifiers, sorted lexically
func (e *Entry) FieldNames() []Field {
	names := make([]Field, 0, len(e.fields))
	for k := range e.fields {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Keywords returns the entry's keywords in encounter order, duplicates
// included.
func (e *Entry) Keywords() []string {
	if e.keywords == nil {
		return nil
	}
	return append([]string(nil), e.keywords...)
}

// KeywordString returns the keywords joined with the separator the
// entry was built with.
func (e *Entry) KeywordString() string { return e.kwString }

type yamlEntry struct {
	Type     Type              `yaml:"type"`
	Fields   map[string]string `yaml:"fields,omitempty"`
	Keywords []string          `yaml:"keywords,omitempty"`
}

// MarshalYAML implements yaml.Marshaler
func (e *Entry) MarshalYAML() (interface{}, error) {
	out := yamlEntry{Type: e.typ, Keywords: e.Keywords()}
	if len(e.fields) > 0 {
		out.Fields = make(map[string]string, len(e.fields))
		for k, v := range e.fields {
			out.Fields[string(k)] = v
		}
	}
	return out, nil
}

// Builder materializes entries from accumulated record state.
//
// KeywordSeparator is the host preference used to join keywords.
type Builder struct {
	KeywordSeparator string
}

// DefaultKeywordSeparator is used by builders with an empty separator
const DefaultKeywordSeparator = ","

// Build returns a new Entry of type t holding a copy of fields and
// keywords. Non-empty keyword lists are also realized as the Keywords
// field.
func (b Builder) Build(t Type, fields Fields, keywords []string) *Entry {
	e := &Entry{typ: t, fields: make(Fields, len(fields)+1)}
	for k, v := range fields {
		e.fields[k] = v
	}
	if len(keywords) > 0 {
		sep := b.KeywordSeparator
		if sep == "" {
			sep = DefaultKeywordSeparator
		}
		e.keywords = append([]string(nil), keywords...)
		e.kwString = strings.Join(keywords, sep)
		e.fields[Keywords] = e.kwString
	}
	return e
}
