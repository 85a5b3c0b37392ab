/*
Package endnote reads EndNote XML library exports.

An EndNote XML document holds a list of <record> elements, each describing
one bibliographic reference. The parser package streams such a document and
produces one immutable entry.Entry per record, holding the entry type, a set
of named fields and the record's keywords.

	entries, err := parser.Parse(ctx, f, parser.WithKeywordSeparator("; "))

Structural failures (malformed markup, read errors and cancellation) are
reported as a single *enerr.Error, and no partial result is returned.

The bibtex package renders entries as BibTeX, the inspect package produces
DOM based summaries used to cross-check the parser, and cmd/endnote wraps it
all in a command line tool.
*/
package endnote
