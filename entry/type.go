package entry

import (
	"bytes"
	"errors"
	"fmt"
)

// Type represents the canonical entry type of a bibliographic entry
type Type int

const (
	// Article is a journal article, and the default entry type
	Article Type = iota
	// Book is a complete book
	Book
	// InBook is a section or chapter of a book
	InBook
	// Misc is anything without a better fitting type (artwork, generic)
	Misc
	// Electronic is an electronic (online) resource
	Electronic
	// Report is a technical or institutional report
	Report
)

func (t Type) String() string {
	switch t {
	case Article:
		return "article"
	case Book:
		return "book"
	case InBook:
		return "inbook"
	case Misc:
		return "misc"
	case Electronic:
		return "electronic"
	case Report:
		return "report"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t *Type) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "article":
		*t = Article
	case "book":
		*t = Book
	case "inbook":
		*t = InBook
	case "misc":
		*t = Misc
	case "electronic":
		*t = Electronic
	case "report":
		*t = Report
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
