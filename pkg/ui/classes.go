package ui

import "strings"

// cn joins class fragments, skipping empties. It is the utility-class
// composer used by every component in this package.
func cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// cnIf returns class when the condition holds, otherwise the empty string.
func cnIf(condition bool, class string) string {
	if condition {
		return class
	}
	return ""
}
