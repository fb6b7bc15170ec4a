package svgdom

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

func isXMLSpace(b byte) bool {
	switch b {
	case 0x09, 0x0a, 0x0c, 0x0d, 0x20:
		return true
	}
	return false
}

// numScanner walks a byte string the way the SVG grammars expect: numbers,
// optional commas, runs of whitespace.
type numScanner struct {
	s   string
	pos int
}

func (sc *numScanner) atEnd() bool { return sc.pos >= len(sc.s) }

func (sc *numScanner) skipSpace() {
	for sc.pos < len(sc.s) && isXMLSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipCommaSpace consumes `comma_wsp` and reports whether a separator or a
// following coordinate was found.
func (sc *numScanner) skipCommaSpace() bool {
	start := sc.pos
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
		return true
	}
	return sc.pos > start || !sc.atEnd()
}

var errInvalidNumber = errors.New("invalid number")

// number consumes one number per the SVG number grammar. Unlike
// strconv.ParseFloat alone it rejects hex floats, infinities and NaNs.
func (sc *numScanner) number() (float64, error) {
	start := sc.pos
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
		sc.pos++
	}
	digits := 0
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
		digits++
	}
	if sc.pos < len(sc.s) && sc.s[sc.pos] == '.' {
		sc.pos++
		for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, errInvalidNumber
	}
	// Exponent part. 'e' may also start the `em`/`ex` units, so only consume
	// it when followed by a digit or a signed digit.
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		p := sc.pos + 1
		if p < len(sc.s) && (sc.s[p] == '+' || sc.s[p] == '-') {
			p++
		}
		if p < len(sc.s) && sc.s[p] >= '0' && sc.s[p] <= '9' {
			for p < len(sc.s) && sc.s[p] >= '0' && sc.s[p] <= '9' {
				p++
			}
			sc.pos = p
		}
	}
	f, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		sc.pos = start
		return 0, errInvalidNumber
	}
	return f, nil
}

// flag consumes a path arc flag.
func (sc *numScanner) flag() (bool, error) {
	if sc.atEnd() || sc.s[sc.pos] != '0' && sc.s[sc.pos] != '1' {
		return false, errors.New("expected a flag")
	}
	v := sc.s[sc.pos] == '1'
	sc.pos++
	return v, nil
}

// ParseNumber parses a standalone SVG number, tolerating surrounding
// whitespace.
func ParseNumber(s string) (float64, error) {
	sc := numScanner{s: s}
	sc.skipSpace()
	f, err := sc.number()
	if err != nil {
		return 0, err
	}
	sc.skipSpace()
	if !sc.atEnd() {
		return 0, errInvalidNumber
	}
	return f, nil
}

// ParseNumberList parses a comma/whitespace separated number list.
func ParseNumberList(s string) ([]float64, error) {
	sc := numScanner{s: s}
	sc.skipSpace()
	var list []float64
	for !sc.atEnd() {
		f, err := sc.number()
		if err != nil {
			return nil, err
		}
		list = append(list, f)
		sc.skipCommaSpace()
	}
	return list, nil
}

const fuzzyEpsilon = 1e-9

func fuzzyEq(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= fuzzyEpsilon*scale
}

func fuzzyZero(a float64) bool { return fuzzyEq(a, 0) }

func roundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// formatNumber renders v with the requested significant precision, no
// trailing zeros and no exponent notation.
func formatNumber(v float64, precision int, removeLeadingZero bool) string {
	v = roundSignificant(v, precision)
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if removeLeadingZero {
		if strings.HasPrefix(s, "0.") {
			s = s[1:]
		} else if strings.HasPrefix(s, "-0.") {
			s = "-" + s[2:]
		}
	}
	return s
}
