package editor

import (
	"math"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseCounter(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "150", want: 150},
		{input: "  42", want: 42},
		{input: "+7", want: 7},
		{input: "12abc", want: 12},
		{input: "3.9", want: 3},
		{input: "abc", want: 0},
		{input: "", want: 0},
		{input: "-5", want: 0},
		{input: "99999999999999999999999", want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCounter(tt.input))
		})
	}
}
