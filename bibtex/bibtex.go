package bibtex

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/blevesearch/segment"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/andaru/endnote/entry"
)

var typeNames = map[entry.Type]string{
	entry.Article:    "article",
	entry.Book:       "book",
	entry.InBook:     "inbook",
	entry.Misc:       "misc",
	entry.Electronic: "electronic",
	entry.Report:     "techreport",
}

// TypeName returns the BibTeX entry type for t
func TypeName(t entry.Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "misc"
}

// FallbackKey is the citation key base used when an entry has no
// author, year or title to build one from.
const FallbackKey = "entry"

var (
	yearDigits = regexp.MustCompile(`[0-9]{4}`)
	escaper    = strings.NewReplacer(`{`, `\{`, `}`, `\}`)
	// words skipped when picking the title word of a key
	stopWords = map[string]bool{
		"a": true, "an": true, "the": true, "on": true, "of": true,
		"in": true, "and": true, "for": true, "to": true,
	}
)

// Key returns the undisambiguated citation key for e: the first
// author's surname, the year and the first significant title word, all
// lower case.
func Key(e *entry.Entry) string {
	key := surname(e.Field(entry.Author)) +
		yearDigits.FindString(e.Field(entry.Year)) +
		titleWord(e.Field(entry.Title))
	if key == "" {
		return FallbackKey
	}
	return key
}

func surname(authors string) string {
	first, _, _ := strings.Cut(authors, " and ")
	first = strings.TrimSpace(first)
	if last, _, found := strings.Cut(first, ","); found {
		first = last
	} else if words := strings.Fields(first); len(words) > 0 {
		first = words[len(words)-1]
	}
	return keyChars(first)
}

func titleWord(title string) string {
	seg := segment.NewWordSegmenter(strings.NewReader(title))
	for seg.Segment() {
		if seg.Type() == segment.None {
			continue
		}
		if w := keyChars(seg.Text()); w != "" && !stopWords[w] {
			return w
		}
	}
	return ""
}

// keyChars lower cases s and drops everything but letters and digits
func keyChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// Keys returns a unique citation key for each entry, in order. The
// first entry with a given key keeps it; later ones get the suffixes
// a, b, c and so on.
func Keys(entries []*entry.Entry) []string {
	keys := make([]string, len(entries))
	used := map[string]bool{}
	dups := map[string]int{}
	for i, e := range entries {
		base := Key(e)
		key := base
		for used[key] {
			dups[base]++
			key = base + suffix(dups[base])
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

// suffix returns the n-th (from 1) letter suffix: a..z, aa, ab...
func suffix(n int) string {
	var b []byte
	for ; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return string(b)
}

// Write renders entries to w as BibTeX, fields sorted by name.
func Write(w io.Writer, entries []*entry.Entry) error {
	keys := Keys(entries)
	for i, e := range entries {
		if _, err := io.WriteString(w, render(keys[i], e)); err != nil {
			return errors.Wrapf(err, "write entry %s", keys[i])
		}
	}
	return nil
}

func render(key string, e *entry.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", TypeName(e.Type()), key)
	fields := e.Fields()
	names := lo.Keys(fields)
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		fmt.Fprintf(&b, "  %s = {%s},\n", name, escaper.Replace(fields[name]))
	}
	b.WriteString("}\n\n")
	return b.String()
}
