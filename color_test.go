package svgdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		input string
		want  Color
	}{
		{input: "green", want: Color{0, 128, 0}},
		{input: "Red", want: Color{255, 0, 0}},
		{input: "#fff", want: Color{255, 255, 255}},
		{input: "#0000ff", want: Color{0, 0, 255}},
		{input: "rgb(1,2,3)", want: Color{1, 2, 3}},
		{input: "rgb(100%, 0%, 50%)", want: Color{255, 0, 128}},
		{input: " black ", want: Color{0, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := ParseColor(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"", "notacolor", "#12", "#12345", "rgb(1,2)", "hsl(1,2,3)"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			assert.Error(t, err)
		})
	}
}

func TestColorWrite(t *testing.T) {
	write := func(c Color, opts *WriteOptions) string {
		var b strings.Builder
		c.writeTo(&b, opts)
		return b.String()
	}

	opts := DefaultWriteOptions()
	assert.Equal(t, "#008000", write(Color{0, 128, 0}, opts))
	assert.Equal(t, "#ffffff", write(Color{255, 255, 255}, opts))

	opts.TrimHexColors = true
	assert.Equal(t, "#fff", write(Color{255, 255, 255}, opts))
	assert.Equal(t, "#008000", write(Color{0, 128, 0}, opts))
}
