package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{input: "10", want: 10},
		{input: " .5 ", want: 0.5},
		{input: "-3.2e2", want: -320},
		{input: "+4", want: 4},
		{input: "00001.500", want: 1.5},
		{input: "1E2", want: 100},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := ParseNumber(c.input)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-12)
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "10px", "1 2", "--4", "0x10", "NaN", "Inf"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseNumber(input)
			assert.Error(t, err)
		})
	}
}

func TestParseNumberList(t *testing.T) {
	got, err := ParseNumberList("1 2,3, 4\t5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)

	got, err = ParseNumberList("  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name      string
		v         float64
		precision int
		noZero    bool
		want      string
	}{
		{name: "integer", v: 100, precision: 11, want: "100"},
		{name: "plain", v: 1.5, precision: 11, want: "1.5"},
		{name: "trailing zeros", v: 1.50, precision: 11, want: "1.5"},
		{name: "leading zero kept", v: 0.5, precision: 11, want: "0.5"},
		{name: "leading zero removed", v: 0.5, precision: 11, noZero: true, want: ".5"},
		{name: "negative leading zero", v: -0.5, precision: 11, noZero: true, want: "-.5"},
		{name: "rounds to precision", v: 1.0 / 3.0, precision: 4, want: "0.3333"},
		{name: "near-integer rounds", v: 1.9999999999999998, precision: 11, want: "2"},
		{name: "negative zero", v: -0.0, precision: 11, want: "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, formatNumber(c.v, c.precision, c.noZero))
		})
	}
}

func TestFuzzyEq(t *testing.T) {
	assert.True(t, fuzzyEq(0.1+0.2, 0.3))
	assert.True(t, fuzzyZero(1e-12))
	assert.False(t, fuzzyEq(1, 1.001))
}
