package svgdom

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// Color is an opaque sRGB color. SVG 1.1 paints carry no alpha; opacity is a
// separate attribute.
type Color struct {
	R, G, B uint8
}

func (Color) isValue() {}

func parseColorFunction(tokens []cssToken) (Color, error) {
	if tokens[0].Value != "rgb(" {
		return Color{}, fmt.Errorf("unknown color function %q", tokens[0].Value)
	}

	tokens = tokens[1:]
	var args []uint8
	for {
		if len(tokens) == 0 {
			return Color{}, errors.New("expected a number or ')'")
		}
		switch tokens[0].Type {
		case css.NumberToken:
			n, err := strconv.ParseFloat(tokens[0].Value, 64)
			if err != nil {
				return Color{}, err
			}
			args = append(args, clampChannel(n))
		case css.PercentageToken:
			p, err := strconv.ParseFloat(tokens[0].Value[:len(tokens[0].Value)-1], 64)
			if err != nil {
				return Color{}, err
			}
			args = append(args, clampChannel(p*255/100))
		default:
			return Color{}, errors.New("expected a number or percentage")
		}
		tokens = tokens[1:]

		if len(tokens) == 0 {
			return Color{}, errors.New("expected ',' or ')'")
		}
		if tokens[0].Type == css.RightParenthesisToken {
			tokens = tokens[1:]
			break
		}
		if tokens[0].Type != css.CommaToken {
			return Color{}, errors.New("expected ','")
		}
		tokens = tokens[1:]
	}
	if len(tokens) != 0 {
		return Color{}, errors.New("trailing tokens after color function")
	}
	if len(args) != 3 {
		return Color{}, errors.New("rgb() requires 3 arguments")
	}
	return Color{R: args[0], G: args[1], B: args[2]}, nil
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func parseHexColor(v string) (Color, error) {
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
		// OK
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", v)
	}

	bytes, err := hex.DecodeString(v)
	if err != nil {
		return Color{}, err
	}
	return Color{R: bytes[0], G: bytes[1], B: bytes[2]}, nil
}

func parseColorTokens(tokens []cssToken) (Color, error) {
	tokens = dropSpaceTokens(tokens)
	if len(tokens) == 0 {
		return Color{}, errors.New("expected a color")
	}
	if tokens[0].Type == css.FunctionToken {
		return parseColorFunction(tokens)
	}
	if len(tokens) != 1 {
		return Color{}, errors.New("unexpected token")
	}
	switch tokens[0].Type {
	case css.IdentToken:
		c, ok := colornames.Map[strings.ToLower(tokens[0].Value)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color %q", tokens[0].Value)
		}
		return Color{R: c.R, G: c.G, B: c.B}, nil
	case css.HashToken:
		return parseHexColor(tokens[0].Value[1:])
	default:
		return Color{}, errors.New("expected an identifier or hex color")
	}
}

// ParseColor parses an SVG <color>: a keyword, #rgb, #rrggbb or rgb().
func ParseColor(s string) (Color, error) {
	tokens, err := cssTokens(s)
	if err != nil {
		return Color{}, err
	}
	return parseColorTokens(tokens)
}

func (c Color) writeTo(b *strings.Builder, opts *WriteOptions) {
	b.WriteByte('#')
	if opts.TrimHexColors && c.R>>4 == c.R&0xf && c.G>>4 == c.G&0xf && c.B>>4 == c.B&0xf {
		fmt.Fprintf(b, "%x%x%x", c.R&0xf, c.G&0xf, c.B&0xf)
		return
	}
	fmt.Fprintf(b, "%02x%02x%02x", c.R, c.G, c.B)
}
