package parser

import (
	"encoding/xml"
	"strings"

	"github.com/golang/glog"

	"github.com/andaru/endnote/entry"
	"github.com/andaru/endnote/xmlutil"
)

const (
	elemAuthor         = "author"
	elemTitle          = "title"
	elemSecondaryTitle = "secondary-title"
	elemYear           = "year"
	elemRelatedURLs    = "related-urls"
	elemPDFURLs        = "pdf-urls"
	elemURL            = "url"
	elemKeyword        = "keyword"
)

// authorSeparator joins author names into the author field
const authorSeparator = " and "

// parseStyleField reads the style runs of the element just opened into
// field f, normalized per the field's policy. A later run overwrites an
// earlier one.
func parseStyleField(c *cursor, rc *recordContext, f entry.Field) error {
	return c.walk(func(t xml.Token) error {
		if !isStyle(t) {
			return nil
		}
		text, ok, err := styleText(c)
		if err != nil {
			return err
		}
		rc.fields.SetIf(f, normalize(f, text), ok)
		return nil
	})
}

// firstStyleText returns the text of the first style run within the
// element just opened, consuming the whole element.
func firstStyleText(c *cursor) (text string, found bool, err error) {
	err = c.walk(func(t xml.Token) error {
		if found || !isStyle(t) {
			return nil
		}
		var terr error
		text, found, terr = styleText(c)
		return terr
	})
	return text, found, err
}

// parseContributors sets the author field from every <author> found
// below <contributors>, joined in encounter order. The field is set
// even if no author names were found.
func parseContributors(c *cursor, rc *recordContext) error {
	var names []string
	err := c.walk(func(t xml.Token) error {
		if se, ok := t.(xml.StartElement); !ok || se.Name.Local != elemAuthor {
			return nil
		}
		name, ok, err := firstStyleText(c)
		if ok {
			names = append(names, name)
		}
		return err
	})
	if err != nil {
		return err
	}
	rc.fields[entry.Author] = strings.Join(names, authorSeparator)
	return nil
}

// parseTitles handles <title> and <secondary-title> below <titles>.
func parseTitles(c *cursor, rc *recordContext) error {
	return c.walk(func(t xml.Token) error {
		se, ok := t.(xml.StartElement)
		if !ok {
			return nil
		}
		switch se.Name.Local {
		case elemTitle:
			return parseTitle(c, rc)
		case elemSecondaryTitle:
			return parseStyleField(c, rc, entry.Journal)
		default:
			return c.skip()
		}
	})
}

// parseTitle concatenates every style run of <title>, which may be
// split by formatting changes, and stores the cleaned result.
func parseTitle(c *cursor, rc *recordContext) error {
	var runs []string
	err := c.walk(func(t xml.Token) error {
		if !isStyle(t) {
			return nil
		}
		text, ok, err := styleText(c)
		if ok {
			runs = append(runs, text)
		}
		return err
	})
	if err == nil && len(runs) > 0 {
		rc.fields[entry.Title] = clean(strings.Join(runs, ""))
	}
	return err
}

// parseDates sets the year field from style runs anywhere below
// <dates> up to the end of <year>. Style runs after </year> are
// ignored.
func parseDates(c *cursor, rc *recordContext) error {
	var yearDone bool
	return c.walk(func(t xml.Token) error {
		switch t := t.(type) {
		case xml.EndElement:
			yearDone = yearDone || xmlutil.LocalName(t) == elemYear
		case xml.StartElement:
			if yearDone || t.Name.Local != elemStyle {
				return nil
			}
			text, ok, err := styleText(c)
			if err != nil {
				return err
			}
			rc.fields.SetIf(entry.Year, text, ok)
		}
		return nil
	})
}

// parseURLs handles <related-urls> and <pdf-urls> below <urls>.
func parseURLs(c *cursor, rc *recordContext) error {
	return c.walk(func(t xml.Token) error {
		se, ok := t.(xml.StartElement)
		if !ok {
			return nil
		}
		switch se.Name.Local {
		case elemRelatedURLs:
			text, ok, err := firstStyleText(c)
			rc.fields.SetIf(entry.URL, text, ok)
			return err
		case elemPDFURLs:
			return parsePDFURLs(c, rc)
		default:
			return c.skip()
		}
	})
}

func parsePDFURLs(c *cursor, rc *recordContext) error {
	return c.walk(func(t xml.Token) error {
		se, ok := t.(xml.StartElement)
		if !ok {
			return nil
		}
		if se.Name.Local != elemURL {
			return c.skip()
		}
		return parsePDFURL(c, rc)
	})
}

// parsePDFURL sets the file field from a <url> below <pdf-urls>. The
// location is either wrapped in a style run or, when the url has no
// style run at all, given as bare character data directly inside <url>.
func parsePDFURL(c *cursor, rc *recordContext) error {
	depth := c.depth
	var (
		styled bool
		bare   strings.Builder
	)
	err := c.walk(func(t xml.Token) error {
		switch t := t.(type) {
		case xml.StartElement:
			if t.Name.Local != elemStyle {
				return nil
			}
			styled = true
			text, ok, err := styleText(c)
			if err != nil {
				return err
			}
			rc.fields.SetIf(entry.File, text, ok)
		case xml.CharData:
			if c.depth == depth {
				bare.Write(t)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !styled && len(strings.TrimSpace(bare.String())) > 0 {
		rc.fields[entry.File] = bare.String()
	}
	return nil
}

// parseKeywords appends the style text of each <keyword> below
// <keywords> to the record's keyword list, in encounter order.
func parseKeywords(c *cursor, rc *recordContext) error {
	return c.walk(func(t xml.Token) error {
		se, ok := t.(xml.StartElement)
		if !ok {
			return nil
		}
		if se.Name.Local != elemKeyword {
			glog.V(2).Infof("skipping <%s> in <keywords>", se.Name.Local)
			return c.skip()
		}
		text, ok, err := firstStyleText(c)
		if ok {
			rc.keywords = append(rc.keywords, text)
		}
		return err
	})
}
