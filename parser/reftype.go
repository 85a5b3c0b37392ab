package parser

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/andaru/endnote/entry"
)

// refTypes maps case-folded EndNote ref-type names to entry types
var refTypes = map[string]entry.Type{
	"artwork":            entry.Misc,
	"generic":            entry.Misc,
	"electronic article": entry.Electronic,
	"book section":       entry.InBook,
	"book":               entry.Book,
	"report":             entry.Report,
}

// EntryTypeFor returns the entry type for an EndNote ref-type name.
// Lookup ignores case and surrounding whitespace; unknown names map to
// entry.Article.
func EntryTypeFor(refName string) entry.Type {
	key := cases.Fold().String(strings.TrimSpace(refName))
	if t, ok := refTypes[key]; ok {
		return t
	}
	return entry.Article
}
