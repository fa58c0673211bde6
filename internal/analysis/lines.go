package analysis

import "strings"

// Lines splits source into physical lines; line i (0-based) is reported as
// line number i+1. A trailing newline does not yield a final empty line, and
// a carriage return before the terminator is dropped. Empty source has zero
// lines.
func Lines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
