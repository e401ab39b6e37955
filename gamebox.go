package gamebox

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/image/colornames"
)

// Color is any color value accepted by the library. It is the standard
// library's color.Color; use a NamedColor for CSS-style names like "red".
//
// Note that two Color values that describe the same color through different
// representations (NamedColor("red") vs. color.RGBA{255, 0, 0, 255}) are
// distinct cache keys in the text renderer. This is a documented limitation,
// not a bug: colors are compared structurally, never normalized.
type Color = color.Color

// NamedColor is a CSS/SVG color name such as "red" or "dodgerblue".
// Lookup is case-insensitive. An unknown name resolves to transparent black;
// use ParseColor to validate a name up front.
type NamedColor string

// RGBA implements color.Color.
func (n NamedColor) RGBA() (r, g, b, a uint32) {
	c, ok := colornames.Map[strings.ToLower(string(n))]
	if !ok {
		return 0, 0, 0, 0
	}
	return c.RGBA()
}

// Valid reports whether the name is a known color name.
func (n NamedColor) Valid() bool {
	_, ok := colornames.Map[strings.ToLower(string(n))]
	return ok
}

// ParseColor resolves a color name to a Color. An unknown name yields an
// InvalidArgumentError whose message suggests the most similar known name.
func ParseColor(name string) (Color, error) {
	n := NamedColor(name)
	if n.Valid() {
		return n, nil
	}
	return nil, &InvalidArgumentError{
		Reason: fmt.Sprintf("%q is not a valid color name. Did you mean %q?",
			name, closestMatch(strings.ToLower(name), colornames.Names)),
	}
}

// closestMatch returns the candidate most similar to want, using the same
// sequence-similarity ratio the suggestions in key lookup use.
func closestMatch(want string, candidates []string) string {
	best := ""
	bestRatio := -1.0
	wantChars := strings.Split(want, "")
	// Deterministic order so ties resolve the same way every time.
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	for _, cand := range sorted {
		m := difflib.NewMatcher(wantChars, strings.Split(cand, ""))
		if r := m.Ratio(); r > bestRatio {
			bestRatio = r
			best = cand
		}
	}
	return best
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
