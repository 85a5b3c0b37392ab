package bibtex

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/endnote/entry"
)

func build(t entry.Type, fields entry.Fields) *entry.Entry {
	return entry.Builder{}.Build(t, fields, nil)
}

func TestKey(t *testing.T) {
	for _, tc := range []struct {
		name   string
		fields entry.Fields
		want   string
	}{
		{name: "empty", want: FallbackKey},
		{
			name:   "surname first",
			fields: entry.Fields{entry.Author: "Smith, John and Doe, Jane", entry.Year: "2001", entry.Title: "Foo Bar"},
			want:   "smith2001foo",
		},
		{
			name:   "given name first",
			fields: entry.Fields{entry.Author: "John Smith", entry.Year: "2001"},
			want:   "smith2001",
		},
		{
			name:   "stop words skipped",
			fields: entry.Fields{entry.Author: "Smith, J.", entry.Title: "The Art of War"},
			want:   "smithart",
		},
		{
			name:   "punctuation dropped",
			fields: entry.Fields{entry.Author: "O'Brien, P.", entry.Year: "c. 1999?", entry.Title: "\"Quoted\": a title"},
			want:   "obrien1999quoted",
		},
		{
			name:   "unicode letters kept",
			fields: entry.Fields{entry.Author: "Gödel, Kurt", entry.Title: "Über formal"},
			want:   "gödelüber",
		},
		{
			name:   "empty author",
			fields: entry.Fields{entry.Author: "", entry.Year: "2020", entry.Title: "Title"},
			want:   "2020title",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.New(t).Equal(tc.want, Key(build(entry.Article, tc.fields)))
		})
	}
}

func TestKeysDisambiguated(t *testing.T) {
	check := assert.New(t)
	same := entry.Fields{entry.Author: "Smith, J.", entry.Year: "2001", entry.Title: "Foo"}
	entries := []*entry.Entry{
		build(entry.Article, same),
		build(entry.Book, same),
		build(entry.Article, entry.Fields{entry.Author: "Doe, J."}),
		build(entry.Report, same),
		build(entry.Misc, nil),
		build(entry.Misc, nil),
	}
	check.Equal([]string{"smith2001foo", "smith2001fooa", "doe", "smith2001foob", "entry", "entrya"}, Keys(entries))
}

func TestKeysAvoidExistingSuffix(t *testing.T) {
	entries := []*entry.Entry{
		build(entry.Article, entry.Fields{entry.Author: "Aa"}),
		build(entry.Article, entry.Fields{entry.Author: "A"}),
		build(entry.Article, entry.Fields{entry.Author: "A"}),
	}
	assert.New(t).Equal([]string{"aa", "a", "ab"}, Keys(entries))
}

func TestSuffix(t *testing.T) {
	check := assert.New(t)
	for n, want := range map[int]string{1: "a", 2: "b", 26: "z", 27: "aa", 28: "ab", 52: "az", 53: "ba", 702: "zz", 703: "aaa"} {
		check.Equal(want, suffix(n), "n=%d", n)
	}
}

func TestTypeName(t *testing.T) {
	check := assert.New(t)
	check.Equal("article", TypeName(entry.Article))
	check.Equal("inbook", TypeName(entry.InBook))
	check.Equal("techreport", TypeName(entry.Report))
	check.Equal("misc", TypeName(entry.Type(99)))
}

func TestWrite(t *testing.T) {
	check := assert.New(t)
	entries := []*entry.Entry{
		entry.Builder{}.Build(entry.Book, entry.Fields{
			entry.Author:           "Smith, J.",
			entry.Year:             "2001",
			entry.Title:            "A {Braced} Title",
			entry.Unknown("label"): "x",
		}, []string{"k1", "k2"}),
		build(entry.Electronic, nil),
	}
	var buf bytes.Buffer
	check.NoError(Write(&buf, entries))
	check.Equal(`@book{smith2001braced,
  author = {Smith, J.},
  keywords = {k1,k2},
  label = {x},
  title = {A \{Braced\} Title},
  year = {2001},
}

@electronic{entry,
}

`, buf.String())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteError(t *testing.T) {
	check := assert.New(t)
	errWrite := errors.New("disk full")
	err := Write(failWriter{errWrite}, []*entry.Entry{build(entry.Misc, nil)})
	check.ErrorIs(err, errWrite)
	check.Contains(err.Error(), "write entry entry")

	// nothing is written for no entries
	check.NoError(Write(failWriter{iotest.ErrTimeout}, nil))
}
