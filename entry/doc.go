/*
Package entry defines the canonical bibliographic entry produced by the
EndNote XML parser.

An Entry carries an entry Type, a map of Field identifiers to string
values and an ordered keyword list. Well-known fields (author, year,
doi, ...) are declared as constants; any other name is a free-form
field created with Unknown.

Entries are immutable. They are created by a Builder once a record has
been fully read, with the keyword separator supplied by the caller.
*/
package entry
