package gamebox

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in     float64
		expect int
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{361, 1},
		{-10, 350},
		{-360, 0},
		{725, 5},
		{90.9, 90}, // fractional degrees truncate
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); got != tt.expect {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}

func TestRoundSize(t *testing.T) {
	tests := []struct {
		in     float64
		expect int
	}{
		{0, 0},
		{4.4, 4},
		{4.5, 5},
		{4.6, 5},
		{100, 100},
	}
	for _, tt := range tests {
		if got := roundSize(tt.in); got != tt.expect {
			t.Errorf("roundSize(%v) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}

func TestRegisterSurfaceIsStable(t *testing.T) {
	img := ebiten.NewImage(8, 6)
	first := cache.registerSurface(img)
	second := cache.registerSurface(img)
	if first != second {
		t.Errorf("registerSurface returned %q then %q for the same image", first, second)
	}
	if cache.images[imageKey{src: first}] != img {
		t.Error("base entry does not resolve to the registered image")
	}
	if cache.images[imageKey{src: first, w: 8, h: 6}] != img {
		t.Error("natural-dims entry does not resolve to the registered image")
	}

	other := ebiten.NewImage(8, 6)
	if cache.registerSurface(other) == first {
		t.Error("two distinct images share one identity key")
	}
}

func TestTransformDeterministic(t *testing.T) {
	sid := cache.registerSurface(ebiten.NewImage(8, 6))
	a, err := cache.transform(sid, true, 16, 12, 90)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	b, err := cache.transform(sid, true, 16, 12, 90)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if a != b {
		t.Error("identical descriptors resolved to different images")
	}
}

func TestTransformNaturalSizeAliasing(t *testing.T) {
	sid := cache.registerSurface(ebiten.NewImage(8, 6))

	natural, err := cache.transform(sid, false, 0, 0, 0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	literal, err := cache.transform(sid, false, 8, 6, 0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if natural != literal {
		t.Error("natural-size and literal-dims requests resolved to different images")
	}

	// The same aliasing holds through a flip.
	flipped, err := cache.transform(sid, true, 0, 0, 0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	flippedLiteral, err := cache.transform(sid, true, 8, 6, 0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if flipped != flippedLiteral {
		t.Error("flipped natural-size and literal-dims requests differ")
	}
}

func TestTransformRotationKeepsDimensions(t *testing.T) {
	sid := cache.registerSurface(ebiten.NewImage(8, 6))
	for _, angle := range []int{45, 90, 180, 350} {
		img, err := cache.transform(sid, false, 0, 0, angle)
		if err != nil {
			t.Fatalf("transform angle %d: %v", angle, err)
		}
		b := img.Bounds()
		if b.Dx() != 8 || b.Dy() != 6 {
			t.Errorf("rotation by %d changed dims to %dx%d, want 8x6", angle, b.Dx(), b.Dy())
		}
	}
}

func TestTransformScaleDimensions(t *testing.T) {
	sid := cache.registerSurface(ebiten.NewImage(8, 6))
	img, err := cache.transform(sid, false, 20, 10, 0)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("scaled dims = %dx%d, want 20x10", b.Dx(), b.Dy())
	}
}

func TestTransformSharesIntermediates(t *testing.T) {
	// Two rotations of the same scaled variant must go through one scaled
	// intermediate.
	sid := cache.registerSurface(ebiten.NewImage(8, 6))
	if _, err := cache.transform(sid, false, 16, 12, 90); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if _, err := cache.transform(sid, false, 16, 12, 180); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if _, ok := cache.images[imageKey{src: sid, w: 16, h: 12}]; !ok {
		t.Error("scaled intermediate was not cached")
	}
}

func TestTransformMissingSourceFails(t *testing.T) {
	if _, err := cache.transform("no-such-file.png", false, 4, 4, 0); err == nil {
		t.Error("transform of a missing source succeeded, want error")
	}
}

// --- SpriteBox integration with the cache ---

func TestFromSurfaceAdoptsNaturalSize(t *testing.T) {
	b := FromSurface(10, 20, ebiten.NewImage(8, 6))
	if b.Width() != 8 || b.Height() != 6 {
		t.Errorf("size = %vx%v, want 8x6", b.Width(), b.Height())
	}
	if b.X != 10 || b.Y != 20 {
		t.Errorf("center = (%v, %v), want (10, 20)", b.X, b.Y)
	}
	if b.Color() != nil {
		t.Error("image-backed box reports a flat color")
	}
	if b.Image() == nil {
		t.Error("image-backed box has no image")
	}
}

func TestSpriteBoxRotateNormalizes(t *testing.T) {
	b := FromSurface(0, 0, ebiten.NewImage(8, 6))
	if err := b.Rotate(-10); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if b.key.angle != 350 {
		t.Errorf("angle after Rotate(-10) = %d, want 350", b.key.angle)
	}
	if err := b.Rotate(10); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if b.key.angle != 0 {
		t.Errorf("angle after rotating back = %d, want 0", b.key.angle)
	}
}

func TestSpriteBoxRotateSharesCacheEntry(t *testing.T) {
	img := ebiten.NewImage(8, 6)
	a := FromSurface(0, 0, img)
	b := FromSurface(0, 0, img)
	if err := a.Rotate(-10); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if err := b.Rotate(350); err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if a.Image() != b.Image() {
		t.Error("Rotate(-10) and Rotate(350) resolved to different images")
	}
}

func TestSpriteBoxScaleRounding(t *testing.T) {
	// Sub-pixel size requests collapse to the same whole-pixel entry.
	img := ebiten.NewImage(8, 6)
	a := FromSurface(0, 0, img)
	b := FromSurface(0, 0, img)
	if err := a.SetSize(16.3, 12.3); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if err := b.SetSize(16.4, 12.4); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if a.Image() != b.Image() {
		t.Error("sub-pixel size variants resolved to different images")
	}
	if a.Width() != 16 || a.Height() != 12 {
		t.Errorf("size = %vx%v, want 16x12", a.Width(), a.Height())
	}
}

func TestSpriteBoxFullSize(t *testing.T) {
	b := FromSurface(0, 0, ebiten.NewImage(8, 6))
	if err := b.SetSize(20, 20); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if err := b.FullSize(); err != nil {
		t.Fatalf("FullSize: %v", err)
	}
	if b.Width() != 8 || b.Height() != 6 {
		t.Errorf("after FullSize, size = %vx%v, want 8x6", b.Width(), b.Height())
	}
}

func TestSpriteBoxFlipRoundTrip(t *testing.T) {
	img := ebiten.NewImage(8, 6)
	b := FromSurface(0, 0, img)
	orig := b.Image()
	if err := b.Flip(); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if !b.key.flip {
		t.Error("flip flag not set")
	}
	if err := b.Flip(); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if b.Image() != orig {
		t.Error("double flip did not resolve back to the original cache entry")
	}
}

func TestSetColorClearsImageBacking(t *testing.T) {
	b := FromSurface(0, 0, ebiten.NewImage(8, 6))
	b.SetColor(NamedColor("red"))
	if b.Image() != nil || b.key != nil {
		t.Error("SetColor left image backing in place")
	}
	if b.Width() != 8 || b.Height() != 6 {
		t.Errorf("SetColor changed size to %vx%v", b.Width(), b.Height())
	}
}

func TestCopyAtImageSharesCacheEntry(t *testing.T) {
	b := FromSurface(5, 5, ebiten.NewImage(8, 6))
	cp := b.CopyAt(50, 50)
	if cp.Image() != b.Image() {
		t.Error("copy resolved to a different image")
	}
	if cp.Width() != 8 || cp.Height() != 6 {
		t.Errorf("copy size = %vx%v, want 8x6", cp.Width(), cp.Height())
	}
}
