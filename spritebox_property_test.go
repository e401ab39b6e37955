package gamebox

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propBox(x, y, w, h int) *SpriteBox {
	b, _ := FromColor(float64(x), float64(y), NamedColor("gray"), float64(w), float64(h))
	return b
}

// The push returned by Overlap always separates the boxes: applying it and
// asking again yields the zero vector.
func TestPropertyOverlapPushSeparates(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("applying the push ends the overlap", prop.ForAll(
		func(ax, ay, bx, by, w, h int) bool {
			a := propBox(ax, ay, w, h)
			b := propBox(bx, by, w, h)
			o := a.Overlap(b)
			a.Move(o.X, o.Y)
			return a.Overlap(b) == Vec2{}
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.Property("the push is axis-aligned", prop.ForAll(
		func(ax, ay, bx, by, w, h int) bool {
			a := propBox(ax, ay, w, h)
			b := propBox(bx, by, w, h)
			o := a.Overlap(b)
			return o.X == 0 || o.Y == 0
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}

// Touches agrees with Overlap: a nonzero push implies touching, and
// separated boxes produce a zero push.
func TestPropertyTouchesConsistentWithOverlap(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("nonzero push implies Touches", prop.ForAll(
		func(ax, ay, bx, by, aw, ah, bw, bh int) bool {
			a := propBox(ax, ay, aw, ah)
			b := propBox(bx, by, bw, bh)
			if a.Overlap(b) == (Vec2{}) {
				return true
			}
			return a.Touches(b) && b.Touches(a)
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.Property("Touches is symmetric", prop.ForAll(
		func(ax, ay, bx, by, aw, ah, bw, bh int) bool {
			a := propBox(ax, ay, aw, ah)
			b := propBox(bx, by, bw, bh)
			return a.Touches(b) == b.Touches(a)
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}

// Angle normalization always lands in [0, 360) and is stable under full
// turns.
func TestPropertyAngleNormalization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("normalized angle is in [0, 360)", prop.ForAll(
		func(angle int) bool {
			a := normalizeAngle(float64(angle))
			return a >= 0 && a < 360
		},
		gen.IntRange(-100000, 100000),
	))

	properties.Property("adding a full turn changes nothing", prop.ForAll(
		func(angle int) bool {
			return normalizeAngle(float64(angle)) == normalizeAngle(float64(angle)+360)
		},
		gen.IntRange(-100000, 100000),
	))

	properties.TestingRun(t)
}
