package entities

import "strings"

// ValidationErrors collects every rule a request violated, one human-readable
// message per rule. Callers report the whole list, not just the first hit.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
