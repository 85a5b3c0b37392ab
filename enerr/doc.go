// Package enerr provides the terminal error type reported when an
// EndNote XML document cannot be parsed.
//
// Only structural failures are errors: malformed markup, a failing
// input stream or a canceled context. Missing or unrecognized content
// is never reported.
package enerr
