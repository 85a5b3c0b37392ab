package xmlutil

import "encoding/xml"

// LocalName returns the local element name of a start or end element
// token, or the empty string for any other token.
func LocalName(t xml.Token) string {
	switch t := t.(type) {
	case xml.StartElement:
		return t.Name.Local
	case xml.EndElement:
		return t.Name.Local
	}
	return ""
}

// Attr returns the value of the first attribute of se with the local
// name local, ignoring namespaces.
func Attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
