package parser

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/andaru/endnote/entry"
)

const elemStyle = "style"

// styleText consumes the <style> element just opened and returns the
// character data directly inside it. CDATA sections and text split by
// comments or processing instructions are joined into one run. ok is
// false when the run holds no character data at all.
func styleText(c *cursor) (text string, ok bool, err error) {
	depth := c.depth
	var b strings.Builder
	err = c.walk(func(t xml.Token) error {
		if cd, isText := t.(xml.CharData); isText && c.depth == depth {
			b.Write(cd)
			ok = true
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return b.String(), ok, nil
}

// isStyle returns true if t opens a style run
func isStyle(t xml.Token) bool {
	se, ok := t.(xml.StartElement)
	return ok && se.Name.Local == elemStyle
}

type normalizer func(string) string

// normalizers is the per-field normalization policy for values read by
// the generic style-text field parser. Fields not listed are stored
// verbatim.
var normalizers = map[entry.Field]normalizer{
	entry.Abstract: strings.TrimSpace,
	entry.DOI:      strings.TrimSpace,
	entry.Note:     strings.TrimSpace,
	entry.ISBN:     clean,
	entry.Journal:  clean,
}

func normalize(f entry.Field, value string) string {
	if n, ok := normalizers[f]; ok {
		return n(value)
	}
	return value
}

var (
	lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	spaceRuns  = regexp.MustCompile(` {2,}`)
)

// clean replaces line breaks with single spaces, trims the result and
// collapses runs of spaces.
func clean(s string) string {
	s = strings.TrimSpace(lineBreaks.Replace(s))
	return spaceRuns.ReplaceAllString(s, " ")
}
