package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "empty source has zero lines", source: "", want: nil},
		{name: "single line without trailing newline", source: "contract A {}", want: []string{"contract A {}"}},
		{name: "trailing newline adds no empty line", source: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", source: "a\nb", want: []string{"a", "b"}},
		{name: "crlf terminators are stripped", source: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "interior empty lines survive", source: "a\n\nb\n", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.source))
		})
	}
}

func TestLinesNumbering(t *testing.T) {
	lines := Lines("one\ntwo\nthree\n")
	assert.Len(t, lines, 3)
	// line index i reports as line i+1
	assert.Equal(t, "three", lines[2])
}
