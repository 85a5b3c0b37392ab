// Package parser converts EndNote XML exports into bibliographic
// entries.
//
// Parsing is a single forward pass over the XML token stream. Each
// <record> element becomes one entry.Entry; the direct children of a
// record listed below are interpreted and everything else is skipped.
//
//	ref-type                      entry type, from the "name" attribute
//	contributors                  author (every <author>, joined by " and ")
//	titles                        title, journal (secondary-title)
//	pages, volume, number         pages, volume, number
//	notes, abstract, isbn         note, abstract, isbn
//	publisher                     publisher
//	electronic-resource-num       doi
//	label                         endnote-label
//	dates                         year
//	urls                          url (related-urls), file (pdf-urls)
//	keywords                      keywords
//
// Text content is read from <style> runs, the formatting wrapper
// EndNote places around character data.
//
// # Element scopes
//
// Every interpreted element is consumed up to its own end element, as
// determined by nesting depth rather than by name, so a same-named
// element nested elsewhere cannot end a scope early.
//
// # Errors
//
// Missing or unrecognized content is never an error: the field is
// left unset, or the entry type defaults to entry.Article. Malformed
// markup, input read errors and context cancellation end the parse
// with a single *enerr.Error and no entries.
//
// # Format detection
//
// IsRecognizedFormat is a cheap probe over the first lines of input,
// independent of Parse.
package parser
