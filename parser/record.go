package parser

import (
	"encoding/xml"

	"github.com/golang/glog"

	"github.com/andaru/endnote/entry"
	"github.com/andaru/endnote/xmlutil"
)

const (
	elemRecord  = "record"
	attrRefName = "name"
)

// recordContext accumulates the state of the record being read. Each
// record gets its own context, which is discarded once the entry has
// been built.
type recordContext struct {
	typ      entry.Type
	fields   entry.Fields
	keywords []string
}

func newRecordContext() *recordContext {
	return &recordContext{typ: entry.Article, fields: entry.Fields{}}
}

// elementKind identifies the record children the parser interprets
type elementKind int

const (
	kindUnknown elementKind = iota
	kindRefType
	kindContributors
	kindTitles
	kindStyleField
	kindDates
	kindURLs
	kindKeywords
)

type recordChild struct {
	kind  elementKind
	field entry.Field // for kindStyleField
}

var recordChildren = map[string]recordChild{
	"ref-type":                {kind: kindRefType},
	"contributors":            {kind: kindContributors},
	"titles":                  {kind: kindTitles},
	"pages":                   {kind: kindStyleField, field: entry.Pages},
	"volume":                  {kind: kindStyleField, field: entry.Volume},
	"number":                  {kind: kindStyleField, field: entry.Number},
	"notes":                   {kind: kindStyleField, field: entry.Note},
	"abstract":                {kind: kindStyleField, field: entry.Abstract},
	"isbn":                    {kind: kindStyleField, field: entry.ISBN},
	"publisher":               {kind: kindStyleField, field: entry.Publisher},
	"electronic-resource-num": {kind: kindStyleField, field: entry.DOI},
	"label":                   {kind: kindStyleField, field: entry.Unknown("endnote-label")},
	"dates":                   {kind: kindDates},
	"urls":                    {kind: kindURLs},
	"keywords":                {kind: kindKeywords},
}

// parseRecord reads the <record> element just opened and returns its
// context. Only direct children of the record are dispatched; any
// other child element is skipped whole.
func parseRecord(c *cursor) (*recordContext, error) {
	rc := newRecordContext()
	err := c.walk(func(t xml.Token) error {
		se, ok := t.(xml.StartElement)
		if !ok {
			return nil
		}
		return dispatch(c, rc, se)
	})
	return rc, err
}

func dispatch(c *cursor, rc *recordContext, se xml.StartElement) error {
	child := recordChildren[se.Name.Local]
	switch child.kind {
	case kindRefType:
		name, _ := xmlutil.Attr(se, attrRefName)
		rc.typ = EntryTypeFor(name)
		return c.skip()
	case kindContributors:
		return parseContributors(c, rc)
	case kindTitles:
		return parseTitles(c, rc)
	case kindStyleField:
		return parseStyleField(c, rc, child.field)
	case kindDates:
		return parseDates(c, rc)
	case kindURLs:
		return parseURLs(c, rc)
	case kindKeywords:
		return parseKeywords(c, rc)
	default:
		glog.V(2).Infof("skipping <%s> in <record>", se.Name.Local)
		return c.skip()
	}
}
