package gamebox

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageKey canonically identifies one transformed variant of a source image.
// Equality of all five fields is the cache's identity; there is no
// content-based dedup.
type imageKey struct {
	src   string
	flip  bool
	w, h  int // (0, 0) is the sentinel for natural/untransformed size
	angle int // degrees, normalized to [0, 360)
}

// imageCache memoizes decoded and transformed images for the lifetime of the
// process. There is no eviction: workloads are teaching-scale, and an image
// worth transforming once is worth keeping.
//
// Entries are immutable once inserted; transformation helpers always produce
// fresh images. The cache assumes a single goroutine drives all loading and
// drawing, the same one that drives the render loop.
type imageCache struct {
	images map[imageKey]*ebiten.Image
	text   map[textKey]*ebiten.Image
}

var cache = newImageCache()

func newImageCache() *imageCache {
	return &imageCache{
		images: make(map[imageKey]*ebiten.Image),
		text:   make(map[textKey]*ebiten.Image),
	}
}

// surfaceID synthesizes a stable cache key from an image's identity. Two
// lookups with the same *ebiten.Image always map to the same entry.
func surfaceID(img *ebiten.Image) string {
	return fmt.Sprintf("__id__%p", img)
}

// registerSurface caches a caller-supplied image under its identity key, both
// at the natural-size sentinel and at its literal pixel dimensions. Returns
// the synthesized source key.
func (c *imageCache) registerSurface(img *ebiten.Image) string {
	sid := surfaceID(img)
	base := imageKey{src: sid}
	if _, ok := c.images[base]; !ok {
		c.images[base] = img
		b := img.Bounds()
		c.images[imageKey{src: sid, w: b.Dx(), h: b.Dy()}] = img
	}
	return sid
}

// normalizeAngle truncates to whole degrees and wraps into [0, 360).
func normalizeAngle(angle float64) int {
	return ((int(angle) % 360) + 360) % 360
}

// roundSize rounds a requested dimension to the nearest pixel. Requests
// within half a pixel of each other collapse to the same cache entry.
func roundSize(v float64) int {
	return int(v + 0.5)
}

// transform returns the image for the given descriptor, building and caching
// any missing intermediates. Resolution peels one transformation at a time:
// rotation composes on the flipped/scaled image, scaling on the flipped
// image, flipping on the base image, and the base image comes from the
// file/URL resolver. Every intermediate lands in the cache, so repeated
// requests along the same pipeline never redo work.
func (c *imageCache) transform(src string, flip bool, w, h, angle int) (*ebiten.Image, error) {
	key := imageKey{src: src, flip: flip, w: w, h: h, angle: angle}
	ans, ok := c.images[key]
	if !ok {
		var err error
		switch {
		case angle != 0:
			var base *ebiten.Image
			base, err = c.transform(src, flip, w, h, 0)
			if err == nil {
				ans = rotateImage(base, angle)
			}
		case w != 0 || h != 0:
			var base *ebiten.Image
			base, err = c.transform(src, flip, 0, 0, 0)
			if err == nil {
				ans = scaleImage(base, w, h)
			}
		case flip:
			var base *ebiten.Image
			base, err = c.transform(src, false, 0, 0, 0)
			if err == nil {
				ans = flipImage(base)
			}
		default:
			ans, err = c.load(src)
		}
		if err != nil {
			return nil, err
		}
		c.images[key] = ans
	}

	// A natural-size request also caches its result under the literal pixel
	// dimensions, so a later caller who spells the size out hits the same
	// entry. For rotated requests the dimensions come from the zero-angle
	// intermediate (the pre-rotation size), which the recursion above has
	// already cached, making this a plain map hit.
	if w == 0 && h == 0 {
		dims := ans
		if angle != 0 {
			var err error
			dims, err = c.transform(src, flip, 0, 0, 0)
			if err != nil {
				return nil, err
			}
		}
		b := dims.Bounds()
		c.images[imageKey{src: src, flip: flip, w: b.Dx(), h: b.Dy(), angle: angle}] = ans
	}

	return ans, nil
}

// --- Transformation primitives ---

// scaleImage smooth-scales src to (w, h) with linear filtering.
func scaleImage(src *ebiten.Image, w, h int) *ebiten.Image {
	// Ebitengine images cannot be zero-sized; pin degenerate requests to a
	// single pixel instead of panicking.
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b := src.Bounds()
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dst.DrawImage(src, op)
	return dst
}

// rotateImage rotates src counterclockwise by angle degrees about its center,
// keeping the original dimensions. Corners that leave the canvas are clipped:
// rotation never grows the image bounds, so a box's size is decided by its
// scale alone.
func rotateImage(src *ebiten.Image, angle int) *ebiten.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(-float64(angle) * math.Pi / 180)
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	dst.DrawImage(src, op)
	return dst
}

// flipImage mirrors src left-to-right.
func flipImage(src *ebiten.Image) *ebiten.Image {
	b := src.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(b.Dx()), 0)
	dst.DrawImage(src, op)
	return dst
}
