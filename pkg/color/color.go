// Package color validates and parses the CSS color strings used as bar fill
// colors.
//
// The accepted grammar is deliberately small: hex notation (#rgb, #rgba,
// #rrggbb, #rrggbbaa) and the functional rgb(), rgba(), hsl() and hsla()
// forms. Named colors are not accepted. Matching is case-insensitive and
// surrounding whitespace is ignored.
//
// Vector surfaces pass the validated string through unchanged; raster
// surfaces call [Parse] to obtain an [image/color.NRGBA].
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var cssColor = regexp.MustCompile(`(?i)^(#(?:[0-9a-f]{2}){2,4}|#[0-9a-f]{3}|(rgb|hsl)a?\((-?\d+%?[,\s]+){2,3}\s*(?:\d+(?:\.\d+)?|\.\d+)%?\))$`)

// Valid reports whether s is a CSS color that Parse accepts.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse converts a CSS color string into a non-premultiplied RGBA color.
func Parse(s string) (stdcolor.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !cssColor.MatchString(s) {
		return stdcolor.NRGBA{}, fmt.Errorf("invalid css color: %q", s)
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	return parseFunc(s)
}

// MustParse is like Parse but panics on invalid input.
// Intended for package-level defaults.
func MustParse(s string) stdcolor.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (stdcolor.NRGBA, error) {
	digits := s[1:]
	alpha := uint8(255)

	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return stdcolor.NRGBA{}, err
		}
		alpha = uint8(a)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return stdcolor.NRGBA{}, err
		}
		alpha = uint8(a)
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return stdcolor.NRGBA{}, fmt.Errorf("invalid css color: %q: %w", s, err)
	}
	return toNRGBA(c, alpha), nil
}

func parseFunc(s string) (stdcolor.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	name := strings.TrimSuffix(s[:open], "a")
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	alpha := uint8(255)
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return stdcolor.NRGBA{}, err
		}
		alpha = a
	}

	v := make([]float64, 3)
	for i := range v {
		f, err := strconv.ParseFloat(strings.TrimSuffix(args[i], "%"), 64)
		if err != nil {
			return stdcolor.NRGBA{}, fmt.Errorf("invalid css color component %q: %w", args[i], err)
		}
		v[i] = f
	}

	var c colorful.Color
	switch name {
	case "rgb":
		for i, arg := range args[:3] {
			if strings.HasSuffix(arg, "%") {
				v[i] = v[i] / 100
			} else {
				v[i] = v[i] / 255
			}
		}
		c = colorful.Color{R: v[0], G: v[1], B: v[2]}
	case "hsl":
		h := math.Mod(v[0], 360)
		if h < 0 {
			h += 360
		}
		c = colorful.Hsl(h, v[1]/100, v[2]/100)
	default:
		return stdcolor.NRGBA{}, fmt.Errorf("invalid css color function %q", name)
	}
	return toNRGBA(c.Clamped(), alpha), nil
}

func parseAlpha(s string) (uint8, error) {
	pct := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid css alpha %q: %w", s, err)
	}
	if pct {
		f /= 100
	}
	f = math.Max(0, math.Min(1, f))
	return uint8(math.Round(f * 255)), nil
}

func toNRGBA(c colorful.Color, alpha uint8) stdcolor.NRGBA {
	r, g, b := c.RGB255()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: alpha}
}
