// Package bibtex renders entries as BibTeX.
//
// Each entry gets a citation key made of the first author's surname, the
// year and the first significant word of the title. Entries sharing a key
// are told apart with letter suffixes in document order.
package bibtex
