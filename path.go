package svgdom

import (
	"errors"
	"fmt"
	"strings"
)

// SegmentKind discriminates path segments.
type SegmentKind uint8

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegHLineTo
	SegVLineTo
	SegCurveTo
	SegSmoothCurveTo
	SegQuadratic
	SegSmoothQuadratic
	SegArcTo
	SegClosePath
)

var segmentLetters = [...]byte{
	SegMoveTo: 'M', SegLineTo: 'L', SegHLineTo: 'H', SegVLineTo: 'V',
	SegCurveTo: 'C', SegSmoothCurveTo: 'S', SegQuadratic: 'Q',
	SegSmoothQuadratic: 'T', SegArcTo: 'A', SegClosePath: 'Z',
}

// Segment is a single path command. Only the fields its kind uses are
// meaningful: H uses X, V uses Y, curves use the control points, arcs use
// the radii/rotation/flags.
type Segment struct {
	Kind SegmentKind
	Abs  bool

	X, Y           float64
	X1, Y1, X2, Y2 float64
	Rx, Ry, Rot    float64
	LargeArc, Sweep bool
}

// Path is an ordered sequence of segments.
type Path []Segment

func (Path) isValue() {}

// ParsePath parses SVG path data per the SVG path grammar. A moveto with
// extra coordinate pairs produces implicit lineto segments.
func ParsePath(s string) (Path, error) {
	sc := numScanner{s: s}
	sc.skipSpace()

	var p Path
	haveMove := false
	for !sc.atEnd() {
		cmd := sc.s[sc.pos]
		sc.pos++
		sc.skipSpace()

		abs := cmd >= 'A' && cmd <= 'Z'
		if !haveMove && cmd != 'M' && cmd != 'm' {
			return nil, errors.New("path must start with a moveto")
		}

		switch cmd {
		case 'M', 'm':
			haveMove = true
			first := true
			for {
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				kind := SegLineTo
				if first {
					kind = SegMoveTo
					first = false
				}
				p = append(p, Segment{Kind: kind, Abs: abs, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'L', 'l':
			for {
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegLineTo, Abs: abs, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'H', 'h':
			for {
				x, err := sc.number()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegHLineTo, Abs: abs, X: x})
				sc.skipCommaSpace()
				if !sc.startsCoord() {
					break
				}
			}
		case 'V', 'v':
			for {
				y, err := sc.number()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegVLineTo, Abs: abs, Y: y})
				sc.skipCommaSpace()
				if !sc.startsCoord() {
					break
				}
			}
		case 'C', 'c':
			for {
				x1, y1, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				x2, y2, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegCurveTo, Abs: abs, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'S', 's':
			for {
				x2, y2, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegSmoothCurveTo, Abs: abs, X2: x2, Y2: y2, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'Q', 'q':
			for {
				x1, y1, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegQuadratic, Abs: abs, X1: x1, Y1: y1, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'T', 't':
			for {
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{Kind: SegSmoothQuadratic, Abs: abs, X: x, Y: y})
				if !sc.moreCoords() {
					break
				}
			}
		case 'A', 'a':
			for {
				rx, ry, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				rot, err := sc.number()
				if err != nil {
					return nil, err
				}
				sc.skipCommaSpace()
				largeArc, err := sc.flag()
				if err != nil {
					return nil, err
				}
				sc.skipCommaSpace()
				sweep, err := sc.flag()
				if err != nil {
					return nil, err
				}
				sc.skipCommaSpace()
				x, y, err := sc.coordPair()
				if err != nil {
					return nil, err
				}
				p = append(p, Segment{
					Kind: SegArcTo, Abs: abs,
					Rx: rx, Ry: ry, Rot: rot, LargeArc: largeArc, Sweep: sweep,
					X: x, Y: y,
				})
				if !sc.moreCoords() {
					break
				}
			}
		case 'Z', 'z':
			p = append(p, Segment{Kind: SegClosePath, Abs: abs})
			sc.skipSpace()
		default:
			return nil, fmt.Errorf("unexpected path command %q", string(cmd))
		}
	}
	return p, nil
}

func (sc *numScanner) coordPair() (float64, float64, error) {
	x, err := sc.number()
	if err != nil {
		return 0, 0, err
	}
	sc.skipCommaSpace()
	y, err := sc.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (sc *numScanner) startsCoord() bool {
	if sc.atEnd() {
		return false
	}
	c := sc.s[sc.pos]
	return c == '-' || c == '+' || c == '.' || c >= '0' && c <= '9'
}

func (sc *numScanner) moreCoords() bool {
	sc.skipCommaSpace()
	return sc.startsCoord()
}

// shift offsets the coordinate fields the segment kind actually uses.
func (s Segment) shift(dx, dy float64) Segment {
	switch s.Kind {
	case SegMoveTo, SegLineTo, SegSmoothQuadratic:
		s.X += dx
		s.Y += dy
	case SegHLineTo:
		s.X += dx
	case SegVLineTo:
		s.Y += dy
	case SegCurveTo:
		s.X1 += dx
		s.Y1 += dy
		s.X2 += dx
		s.Y2 += dy
		s.X += dx
		s.Y += dy
	case SegSmoothCurveTo:
		s.X2 += dx
		s.Y2 += dy
		s.X += dx
		s.Y += dy
	case SegQuadratic:
		s.X1 += dx
		s.Y1 += dy
		s.X += dx
		s.Y += dy
	case SegArcTo:
		s.X += dx
		s.Y += dy
	}
	return s
}

// ToAbsolute converts every segment to absolute coordinates. The rendered
// curve is unchanged and the conversion is idempotent.
func (p Path) ToAbsolute() Path {
	out := make(Path, len(p))
	var cx, cy, sx, sy float64
	for i, s := range p {
		if !s.Abs {
			s = s.shift(cx, cy)
			s.Abs = true
		}
		cx, cy = s.advance(cx, cy, sx, sy)
		if s.Kind == SegMoveTo {
			sx, sy = s.X, s.Y
		}
		out[i] = s
	}
	return out
}

// ToRelative converts every segment to relative coordinates. The first
// moveto stays absolute in effect since the current point starts at 0,0.
func (p Path) ToRelative() Path {
	out := make(Path, len(p))
	var cx, cy, sx, sy float64
	for i, s := range p {
		abs := s.absolutized(cx, cy)
		ncx, ncy := abs.advance(cx, cy, sx, sy)
		if abs.Kind == SegMoveTo {
			sx, sy = abs.X, abs.Y
		}
		if s.Abs {
			s = s.shift(-cx, -cy)
			s.Abs = false
		}
		cx, cy = ncx, ncy
		out[i] = s
	}
	return out
}

func (s Segment) absolutized(cx, cy float64) Segment {
	if s.Abs {
		return s
	}
	s = s.shift(cx, cy)
	s.Abs = true
	return s
}

// advance returns the current point after an absolute segment.
func (s Segment) advance(cx, cy, sx, sy float64) (float64, float64) {
	switch s.Kind {
	case SegHLineTo:
		return s.X, cy
	case SegVLineTo:
		return cx, s.Y
	case SegClosePath:
		return sx, sy
	default:
		return s.X, s.Y
	}
}

func (p Path) fuzzyEq(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		a, b := p[i], o[i]
		if a.Kind != b.Kind || a.Abs != b.Abs ||
			a.LargeArc != b.LargeArc || a.Sweep != b.Sweep {
			return false
		}
		if !fuzzyEq(a.X, b.X) || !fuzzyEq(a.Y, b.Y) ||
			!fuzzyEq(a.X1, b.X1) || !fuzzyEq(a.Y1, b.Y1) ||
			!fuzzyEq(a.X2, b.X2) || !fuzzyEq(a.Y2, b.Y2) ||
			!fuzzyEq(a.Rx, b.Rx) || !fuzzyEq(a.Ry, b.Ry) ||
			!fuzzyEq(a.Rot, b.Rot) {
			return false
		}
	}
	return true
}

// pathEmitter writes path data with minimal whitespace.
type pathEmitter struct {
	b       *strings.Builder
	opts    *WriteOptions
	prec    int
	lastNum bool
}

func (e *pathEmitter) letter(c byte) {
	e.b.WriteByte(c)
	e.lastNum = false
}

func (e *pathEmitter) num(v float64) {
	s := formatNumber(v, e.prec, e.opts.RemoveLeadingZero)
	if e.lastNum {
		if !e.opts.UseCompactPathNotation || s[0] != '-' && s[0] != '.' {
			e.b.WriteByte(' ')
		}
	}
	e.b.WriteString(s)
	e.lastNum = true
}

func (e *pathEmitter) boolFlag(v bool) {
	if e.lastNum {
		e.b.WriteByte(' ')
	}
	if v {
		e.b.WriteByte('1')
	} else {
		e.b.WriteByte('0')
	}
	e.lastNum = true
}

func (e *pathEmitter) joinedFlags(a, b bool) {
	e.boolFlag(a)
	if b {
		e.b.WriteByte('1')
	} else {
		e.b.WriteByte('0')
	}
	e.lastNum = true
}

func (p Path) writeTo(b *strings.Builder, opts *WriteOptions) {
	e := pathEmitter{b: b, opts: opts, prec: opts.pathsPrecision()}

	var prev *Segment
	for i := range p {
		s := &p[i]
		letter := segmentLetters[s.Kind]
		if !s.Abs {
			letter += 'a' - 'A'
		}

		implicit := false
		if prev != nil && prev.Kind == s.Kind && prev.Abs == s.Abs &&
			s.Kind != SegMoveTo && s.Kind != SegClosePath &&
			opts.RemoveDuplicatedPathCommands {
			implicit = true
		}
		if opts.UseImplicitLineToCommands && s.Kind == SegLineTo && prev != nil &&
			prev.Abs == s.Abs && (prev.Kind == SegMoveTo || prev.Kind == SegLineTo) {
			implicit = true
		}
		if !implicit {
			e.letter(letter)
		}

		switch s.Kind {
		case SegMoveTo, SegLineTo, SegSmoothQuadratic:
			e.num(s.X)
			e.num(s.Y)
		case SegHLineTo:
			e.num(s.X)
		case SegVLineTo:
			e.num(s.Y)
		case SegCurveTo:
			e.num(s.X1)
			e.num(s.Y1)
			e.num(s.X2)
			e.num(s.Y2)
			e.num(s.X)
			e.num(s.Y)
		case SegSmoothCurveTo:
			e.num(s.X2)
			e.num(s.Y2)
			e.num(s.X)
			e.num(s.Y)
		case SegQuadratic:
			e.num(s.X1)
			e.num(s.Y1)
			e.num(s.X)
			e.num(s.Y)
		case SegArcTo:
			e.num(s.Rx)
			e.num(s.Ry)
			e.num(s.Rot)
			if opts.JoinArcToFlags {
				e.joinedFlags(s.LargeArc, s.Sweep)
			} else {
				e.boolFlag(s.LargeArc)
				e.boolFlag(s.Sweep)
			}
			e.num(s.X)
			e.num(s.Y)
		case SegClosePath:
			// no arguments
		}
		prev = s
	}
}
