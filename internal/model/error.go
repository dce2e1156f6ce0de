package model

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field name to a human-readable message. A nil map
// means the value validated cleanly.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a field, or the empty string.
func (v ValidationErrors) Field(name string) string {
	return v[name]
}
