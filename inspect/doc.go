// Package inspect summarizes EndNote XML documents using an in-memory
// DOM and XPath, independently of the streaming parser.
//
// It is intended for diagnostics: counting records, listing the
// ref-type names a document uses and cross-checking that the parser
// produced one entry per record.
package inspect
