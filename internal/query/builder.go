// Package query assembles URL query strings from an ordered set of optional
// filter fields.
//
// Values are forwarded exactly as supplied: no escaping and no validation is
// performed. Rejecting malformed values is the backend's responsibility.
package query

import "strings"

// Field is a single named filter value. An empty Value means "not set".
type Field struct {
	Key   string
	Value string
}

// Build joins the non-empty fields as key=value pairs separated by "&",
// preserving the order in which the fields were given.
func Build(fields ...Field) string {
	var b strings.Builder
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}

// Join appends "?query" to path when query is non-empty.
func Join(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}
