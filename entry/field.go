package entry

// Field identifies one attribute of an entry. Well-known fields are
// declared below; any other name is a free-form field (see Unknown).
type Field string

// Well-known field identifiers
const (
	Author    Field = "author"
	Title     Field = "title"
	Journal   Field = "journal"
	Pages     Field = "pages"
	Volume    Field = "volume"
	Number    Field = "number"
	Year      Field = "year"
	Note      Field = "note"
	Abstract  Field = "abstract"
	ISBN      Field = "isbn"
	DOI       Field = "doi"
	Publisher Field = "publisher"
	URL       Field = "url"
	File      Field = "file"
	Keywords  Field = "keywords"
)

var standardFields = map[Field]struct{}{
	Author: {}, Title: {}, Journal: {}, Pages: {}, Volume: {}, Number: {},
	Year: {}, Note: {}, Abstract: {}, ISBN: {}, DOI: {}, Publisher: {},
	URL: {}, File: {}, Keywords: {},
}

// Unknown returns the free-form field identifier name
func Unknown(name string) Field { return Field(name) }

// Standard returns true if f is a well-known field identifier
func (f Field) Standard() bool {
	_, ok := standardFields[f]
	return ok
}

func (f Field) String() string { return string(f) }

// Fields is a field identifier to value map. Keys are unique; later
// writes overwrite earlier ones.
type Fields map[Field]string

// SetIf stores value for f only when ok is true, leaving any previous
// value in place otherwise.
func (m Fields) SetIf(f Field, value string, ok bool) {
	if ok {
		m[f] = value
	}
}
