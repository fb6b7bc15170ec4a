package svgdom

import (
	"fmt"
	"strings"
)

// LengthUnit is the unit suffix of an SVG <length>.
type LengthUnit int

const (
	UnitNone LengthUnit = iota
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var lengthUnitNames = [...]string{
	UnitNone: "", UnitEm: "em", UnitEx: "ex", UnitPx: "px", UnitIn: "in",
	UnitCm: "cm", UnitMm: "mm", UnitPt: "pt", UnitPc: "pc", UnitPercent: "%",
}

func (u LengthUnit) String() string { return lengthUnitNames[u] }

func lookupLengthUnit(s string) (LengthUnit, bool) {
	for u, name := range lengthUnitNames {
		if name == s {
			return LengthUnit(u), true
		}
	}
	return UnitNone, false
}

// Length is an SVG <length>: a number with an optional unit.
type Length struct {
	Num  float64
	Unit LengthUnit
}

func (Length) isValue() {}

func (sc *numScanner) length() (Length, error) {
	n, err := sc.number()
	if err != nil {
		return Length{}, err
	}
	// Snip the unit off the tail. No unit name is a prefix of another, so the
	// first match is the whole unit.
	rest := sc.s[sc.pos:]
	for _, u := range []LengthUnit{UnitEm, UnitEx, UnitPx, UnitIn, UnitCm, UnitMm, UnitPt, UnitPc, UnitPercent} {
		name := lengthUnitNames[u]
		if strings.HasPrefix(rest, name) {
			sc.pos += len(name)
			return Length{Num: n, Unit: u}, nil
		}
	}
	return Length{Num: n}, nil
}

// ParseLength parses a standalone SVG <length>.
func ParseLength(s string) (Length, error) {
	sc := numScanner{s: s}
	sc.skipSpace()
	l, err := sc.length()
	if err != nil {
		return Length{}, err
	}
	sc.skipSpace()
	if !sc.atEnd() {
		return Length{}, fmt.Errorf("trailing data in length %q", s)
	}
	return l, nil
}

// ParseLengthList parses a comma/whitespace separated list of lengths.
func ParseLengthList(s string) ([]Length, error) {
	sc := numScanner{s: s}
	sc.skipSpace()
	var list []Length
	for !sc.atEnd() {
		l, err := sc.length()
		if err != nil {
			return nil, err
		}
		list = append(list, l)
		sc.skipCommaSpace()
	}
	return list, nil
}

func (l Length) fuzzyEq(o Length) bool {
	return l.Unit == o.Unit && fuzzyEq(l.Num, o.Num)
}
