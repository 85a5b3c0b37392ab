package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestType(t *testing.T) {
	for _, tc := range []struct {
		typ  Type
		text string
	}{
		{typ: Article, text: "article"},
		{typ: Book, text: "book"},
		{typ: InBook, text: "inbook"},
		{typ: Misc, text: "misc"},
		{typ: Electronic, text: "electronic"},
		{typ: Report, text: "report"},
	} {
		t.Run(tc.text, func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.text, tc.typ.String())
			var got Type = -1
			if check.NoError(got.UnmarshalText([]byte(" " + tc.text + "\n"))) {
				check.Equal(tc.typ, got)
			}
		})
	}

	check := assert.New(t)
	check.Equal("Type(42)", Type(42).String())
	var typ Type
	check.Error(typ.UnmarshalText([]byte("thesis")))
	check.Equal(Article, typ, "zero value must be Article")
}

func TestField(t *testing.T) {
	check := assert.New(t)
	check.True(DOI.Standard())
	check.True(Keywords.Standard())
	check.False(Unknown("endnote-label").Standard())
	check.Equal("endnote-label", Unknown("endnote-label").String())

	m := Fields{}
	m.SetIf(Pages, "1-2", true)
	m.SetIf(Pages, "3-4", false)
	m.SetIf(Volume, "", false)
	check.Equal(Fields{Pages: "1-2"}, m)
}

func TestBuilder(t *testing.T) {
	for _, tc := range []struct {
		name       string
		sep        string
		keywords   []string
		wantKW     string
		wantKWList []string
		wantField  bool
	}{
		{name: "no keywords", sep: ";"},
		{
			name:       "duplicates kept in order",
			sep:        "; ",
			keywords:   []string{"k1", "k2", "k1"},
			wantKW:     "k1; k2; k1",
			wantKWList: []string{"k1", "k2", "k1"},
			wantField:  true,
		},
		{
			name:       "default separator",
			keywords:   []string{"a", "b"},
			wantKW:     "a,b",
			wantKWList: []string{"a", "b"},
			wantField:  true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			fields := Fields{Title: "T", Unknown("endnote-label"): "L"}
			e := Builder{KeywordSeparator: tc.sep}.Build(Book, fields, tc.keywords)

			check.Equal(Book, e.Type())
			check.Equal("T", e.Field(Title))
			check.Equal(tc.wantKW, e.KeywordString())
			check.Equal(tc.wantKWList, e.Keywords())
			kw, ok := e.Lookup(Keywords)
			check.Equal(tc.wantField, ok)
			check.Equal(tc.wantKW, kw)

			// the entry must not alias the builder's inputs
			fields[Title] = "changed"
			check.Equal("T", e.Field(Title))
			if len(tc.keywords) > 0 {
				tc.keywords[0] = "changed"
				check.Equal(tc.wantKWList, e.Keywords())
			}
		})
	}
}

func TestEntryAccessors(t *testing.T) {
	check := assert.New(t)
	e := Builder{}.Build(Article, Fields{Year: "2019", Author: "A"}, nil)

	check.Equal([]Field{Author, Year}, e.FieldNames())
	_, ok := e.Lookup(URL)
	check.False(ok)

	f := e.Fields()
	f[Year] = "2020"
	check.Equal("2019", e.Field(Year))
}

func TestEntryYAML(t *testing.T) {
	check := assert.New(t)
	e := Builder{KeywordSeparator: ";"}.Build(Report, Fields{Year: "2001"}, []string{"x"})
	b, err := yaml.Marshal(e)
	check.NoError(err)
	check.Equal("type: report\nfields:\n    keywords: x\n    year: \"2001\"\nkeywords:\n    - x\n", string(b))
}
