package svgdom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransform(t *testing.T) {
	cases := []struct {
		input string
		want  Transform
	}{
		{input: "translate(10 20)", want: NewTranslate(10, 20)},
		{input: "translate(10)", want: NewTranslate(10, 0)},
		{input: "scale(2)", want: NewScale(2, 2)},
		{input: "scale(2, 3)", want: NewScale(2, 3)},
		{input: "matrix(1 0 0 1 5 6)", want: NewTranslate(5, 6)},
		{input: "translate(10,20) scale(2)", want: Transform{A: 2, D: 2, E: 10, F: 20}},
		{input: " rotate( 90 ) ", want: NewRotate(90)},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := ParseTransform(c.input)
			require.NoError(t, err)
			assert.True(t, got.fuzzyEq(c.want), "got %+v want %+v", got, c.want)
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, input := range []string{"", "foo(1)", "scale()", "rotate(1 2)", "matrix(1 2 3)", "translate 10"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTransform(input)
			assert.Error(t, err)
		})
	}
}

func TestTransformDecomposition(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.True(t, NewTranslate(1, 2).IsTranslate())
	assert.True(t, NewScale(2, 3).IsScale())
	assert.False(t, NewScale(2, 3).IsProportionalScale())
	assert.True(t, NewScale(2, 2).IsProportionalScale())
	assert.True(t, NewRotate(30).IsRotate())
	assert.True(t, NewSkewX(15).IsSkewX())
	assert.True(t, NewSkewY(15).IsSkewY())
	assert.False(t, NewTranslate(1, 2).IsScale())
}

func TestTransformApply(t *testing.T) {
	x, y := NewTranslate(1, 2).Apply(3, 4)
	assert.InDelta(t, 4, x, 1e-12)
	assert.InDelta(t, 6, y, 1e-12)

	x, y = NewRotate(90).Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestTransformWrite(t *testing.T) {
	write := func(tr Transform, opts *WriteOptions) string {
		var b strings.Builder
		tr.writeTo(&b, opts)
		return b.String()
	}

	opts := DefaultWriteOptions()
	assert.Equal(t, "matrix(1 0 0 1 10 20)", write(NewTranslate(10, 20), opts))

	opts.SimplifyTransformMatrices = true
	assert.Equal(t, "translate(10 20)", write(NewTranslate(10, 20), opts))
	assert.Equal(t, "translate(10)", write(NewTranslate(10, 0), opts))
	assert.Equal(t, "scale(2)", write(NewScale(2, 2), opts))
	assert.Equal(t, "scale(2 3)", write(NewScale(2, 3), opts))
	assert.Equal(t, "rotate(45)", write(NewRotate(45), opts))
	assert.Equal(t, "skewX(15)", write(NewSkewX(15), opts))
	assert.Equal(t, "matrix(1 2 3 4 5 6)", write(Transform{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}, opts))
}
