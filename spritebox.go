package gamebox

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteBox is a sprite (an image, rendered text, or a solid-colored
// rectangle) together with the box that contains it. Position always refers
// to the box's center; every edge and corner accessor derives from the
// center and the current size, so they can never fall out of sync.
//
// A box is backed by exactly one of two representations: a transform-cache
// key (image-backed) or a flat color with an explicit size. Setting the
// color clears the image backing and vice versa.
type SpriteBox struct {
	// X and Y are the coordinates of the box's center.
	X, Y float64
	// SpeedX and SpeedY are added to the position by each MoveSpeed call.
	SpeedX, SpeedY float64

	key   *imageKey
	image *ebiten.Image
	color Color
	w, h  float64

	extra extraAttrs
}

func newBox(x, y float64) *SpriteBox {
	return &SpriteBox{
		X: x, Y: y,
		extra: extraAttrs{owner: "SpriteBox", noun: "box"},
	}
}

// --- Constructors ---

// FromImage creates a SpriteBox at (x, y) from a file path or URL, at the
// image's natural size.
func FromImage(x, y float64, ref string) (*SpriteBox, error) {
	b := newBox(x, y)
	if err := b.setKey(ref, false, 0, 0, 0); err != nil {
		return nil, err
	}
	return b, nil
}

// FromImageSized creates a SpriteBox from a file path or URL scaled to the
// given size. A zero width or height is derived from the other dimension,
// preserving the image's aspect ratio; both zero means natural size.
func FromImageSized(x, y float64, ref string, width, height float64) (*SpriteBox, error) {
	b, err := FromImage(x, y, ref)
	if err != nil {
		return nil, err
	}
	switch {
	case width != 0 && height != 0:
		err = b.SetSize(width, height)
	case width != 0:
		err = b.SetWidth(width)
	case height != 0:
		err = b.SetHeight(height)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FromSurface creates a SpriteBox at (x, y) displaying an already-decoded
// image. The image is registered with the transform cache under its
// identity, so passing the same image twice shares one cache entry.
func FromSurface(x, y float64, img *ebiten.Image) *SpriteBox {
	b := newBox(x, y)
	sid := cache.registerSurface(img)
	// The identity key was just registered; resolution cannot miss.
	_ = b.setKey(sid, false, 0, 0, 0)
	return b
}

// FromColor creates a solid-colored SpriteBox with the given size. Both
// dimensions are required.
func FromColor(x, y float64, c Color, width, height float64) (*SpriteBox, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidArgumentError{Reason: "must supply the size of a color box"}
	}
	b := newBox(x, y)
	b.color = c
	b.w = width
	b.h = height
	return b, nil
}

// TextStyle selects bold/italic styling for FromStyledText.
type TextStyle struct {
	Bold   bool
	Italic bool
}

// FromText creates a SpriteBox displaying text rendered in the default font.
func FromText(x, y float64, text string, fontSize int, c Color) (*SpriteBox, error) {
	return FromStyledText(x, y, text, fontSize, c, TextStyle{})
}

// FromStyledText is FromText with bold/italic styling.
func FromStyledText(x, y float64, text string, fontSize int, c Color, style TextStyle) (*SpriteBox, error) {
	img, err := cache.renderText(text, fontSize, c, style.Bold, style.Italic)
	if err != nil {
		return nil, err
	}
	return FromSurface(x, y, img), nil
}

// Ring is one concentric circle for FromCircle.
type Ring struct {
	Color  Color
	Radius float64
}

// FromCircle creates a SpriteBox filled with a circle of the given radius,
// drawn on a transparent background. Additional rings are drawn in order on
// top of the first circle, so supply them largest first.
func FromCircle(x, y float64, c Color, radius float64, rings ...Ring) *SpriteBox {
	d := int(radius * 2)
	if d < 1 {
		d = 1
	}
	img := ebiten.NewImage(d, d)
	cx, cy := float32(radius), float32(radius)
	vector.DrawFilledCircle(img, cx, cy, float32(radius), c, true)
	for _, ring := range rings {
		vector.DrawFilledCircle(img, cx, cy, float32(ring.Radius), ring.Color, true)
	}
	return FromSurface(x, y, img)
}

// FromPolygon creates a SpriteBox of minimal size holding the filled
// polygon. The box is centered on (x, y); adding the same offset to every
// point does not change the polygon.
func FromPolygon(x, y float64, c Color, pts ...Vec2) (*SpriteBox, error) {
	if len(pts) < 3 {
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("a polygon needs at least 3 points, got %d", len(pts)),
		}
	}
	x0, y0 := pts[0].X, pts[0].Y
	x1, y1 := x0, y0
	for _, p := range pts[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	w, h := int(x1-x0), int(y1-y0)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)

	var path vector.Path
	path.MoveTo(float32(pts[0].X-x0), float32(pts[0].Y-y0))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X-x0), float32(p.Y-y0))
	}
	path.Close()
	fillPath(img, &path, c)

	return FromSurface(x, y, img), nil
}

// whitePixel is the 1x1 white source used for solid-color triangle fills.
// It lives in the center of a 3x3 image so linear filtering never bleeds in
// neighboring texels.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// fillPath rasterizes a closed path in a single color.
func fillPath(dst *ebiten.Image, path *vector.Path, c Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.FillRuleNonZero,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whitePixel, op)
}

// setKey re-resolves the box through the transform cache with the given
// descriptor and adopts the resolved image's dimensions. Width and height
// are rounded to whole pixels and the angle is normalized to [0, 360) before
// key construction, so requests within a pixel or degree of each other share
// a cache entry.
func (b *SpriteBox) setKey(src string, flip bool, width, height, angle float64) error {
	w := roundSize(width)
	h := roundSize(height)
	a := normalizeAngle(angle)

	unrot, err := cache.transform(src, flip, w, h, 0)
	if err != nil {
		return err
	}
	if w == 0 && h == 0 {
		ub := unrot.Bounds()
		w, h = ub.Dx(), ub.Dy()
	}

	img, err := cache.transform(src, flip, w, h, a)
	if err != nil {
		return err
	}
	b.key = &imageKey{src: src, flip: flip, w: w, h: h, angle: a}
	b.image = img
	b.color = nil
	ib := img.Bounds()
	b.w = float64(ib.Dx())
	b.h = float64(ib.Dy())
	return nil
}

// --- Geometry accessors ---

// Left returns the x coordinate of the left edge.
func (b *SpriteBox) Left() float64 { return b.X - b.w/2 }

// SetLeft moves the box so its left edge is at v.
func (b *SpriteBox) SetLeft(v float64) { b.X = v + b.w/2 }

// Right returns the x coordinate of the right edge.
func (b *SpriteBox) Right() float64 { return b.X + b.w/2 }

// SetRight moves the box so its right edge is at v.
func (b *SpriteBox) SetRight(v float64) { b.X = v - b.w/2 }

// Top returns the y coordinate of the top edge.
func (b *SpriteBox) Top() float64 { return b.Y - b.h/2 }

// SetTop moves the box so its top edge is at v.
func (b *SpriteBox) SetTop(v float64) { b.Y = v + b.h/2 }

// Bottom returns the y coordinate of the bottom edge.
func (b *SpriteBox) Bottom() float64 { return b.Y + b.h/2 }

// SetBottom moves the box so its bottom edge is at v.
func (b *SpriteBox) SetBottom(v float64) { b.Y = v - b.h/2 }

// Center returns the (x, y) coordinates of the center.
func (b *SpriteBox) Center() Vec2 { return Vec2{b.X, b.Y} }

// SetCenter moves the box's center to (x, y).
func (b *SpriteBox) SetCenter(x, y float64) { b.X, b.Y = x, y }

// TopLeft returns the coordinates of the top-left corner.
func (b *SpriteBox) TopLeft() Vec2 { return Vec2{b.Left(), b.Top()} }

// SetTopLeft moves the box so its top-left corner is at (x, y).
func (b *SpriteBox) SetTopLeft(x, y float64) { b.SetLeft(x); b.SetTop(y) }

// TopRight returns the coordinates of the top-right corner.
func (b *SpriteBox) TopRight() Vec2 { return Vec2{b.Right(), b.Top()} }

// SetTopRight moves the box so its top-right corner is at (x, y).
func (b *SpriteBox) SetTopRight(x, y float64) { b.SetRight(x); b.SetTop(y) }

// BottomLeft returns the coordinates of the bottom-left corner.
func (b *SpriteBox) BottomLeft() Vec2 { return Vec2{b.Left(), b.Bottom()} }

// SetBottomLeft moves the box so its bottom-left corner is at (x, y).
func (b *SpriteBox) SetBottomLeft(x, y float64) { b.SetLeft(x); b.SetBottom(y) }

// BottomRight returns the coordinates of the bottom-right corner.
func (b *SpriteBox) BottomRight() Vec2 { return Vec2{b.Right(), b.Bottom()} }

// SetBottomRight moves the box so its bottom-right corner is at (x, y).
func (b *SpriteBox) SetBottomRight(x, y float64) { b.SetRight(x); b.SetBottom(y) }

// Width returns the width of the box in pixels.
func (b *SpriteBox) Width() float64 { return b.w }

// SetWidth rescales the box so its width is v, preserving aspect ratio.
func (b *SpriteBox) SetWidth(v float64) error { return b.ScaleBy(v / b.w) }

// Height returns the height of the box in pixels.
func (b *SpriteBox) Height() float64 { return b.h }

// SetHeight rescales the box so its height is v, preserving aspect ratio.
func (b *SpriteBox) SetHeight(v float64) error { return b.ScaleBy(v / b.h) }

// Size returns the size of the box in pixels, width first.
func (b *SpriteBox) Size() (width, height float64) { return b.w, b.h }

// SetSize resizes the box to exactly (width, height). An image-backed box is
// rescaled through the transform cache; a flat box stores the size directly.
func (b *SpriteBox) SetSize(width, height float64) error {
	if b.image != nil && b.key != nil {
		k := b.key
		return b.setKey(k.src, k.flip, width, height, float64(k.angle))
	}
	b.w, b.h = width, height
	return nil
}

// Speed returns the box's speed, x component first.
func (b *SpriteBox) Speed() (speedX, speedY float64) { return b.SpeedX, b.SpeedY }

// SetSpeed sets both speed components.
func (b *SpriteBox) SetSpeed(speedX, speedY float64) { b.SpeedX, b.SpeedY = speedX, speedY }

// Rect returns the location and size of the box as a Rect.
func (b *SpriteBox) Rect() Rect {
	return Rect{X: b.Left(), Y: b.Top(), Width: b.w, Height: b.h}
}

// Color returns the flat color of the box, or nil for an image-backed box.
func (b *SpriteBox) Color() Color { return b.color }

// SetColor switches the box to a solid color at its current size, dropping
// any image backing.
func (b *SpriteBox) SetColor(c Color) {
	b.image = nil
	b.key = nil
	b.color = c
}

// Image returns the resolved image for the current look of the box, or nil
// for a flat-colored box.
func (b *SpriteBox) Image() *ebiten.Image { return b.image }

// SetImage re-keys the box to a new file path or URL. If the box was already
// image-backed its flip, size, and angle carry over; otherwise the image is
// shown untransformed at natural size.
func (b *SpriteBox) SetImage(ref string) error {
	if b.key != nil {
		k := b.key
		return b.setKey(ref, k.flip, float64(k.w), float64(k.h), float64(k.angle))
	}
	return b.setKey(ref, false, 0, 0, 0)
}

// SetSurface re-keys the box to an already-decoded image, carrying over
// flip, size, and angle the same way SetImage does.
func (b *SpriteBox) SetSurface(img *ebiten.Image) error {
	sid := cache.registerSurface(img)
	if b.key != nil {
		k := b.key
		return b.setKey(sid, k.flip, float64(k.w), float64(k.h), float64(k.angle))
	}
	return b.setKey(sid, false, 0, 0, 0)
}

// --- Movement and transformation ---

// Move changes the position by the given amount.
func (b *SpriteBox) Move(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// MoveSpeed changes the position by the current speed.
func (b *SpriteBox) MoveSpeed() { b.Move(b.SpeedX, b.SpeedY) }

// ScaleBy changes the size of the box by the given factor. ScaleBy(1) does
// nothing; ScaleBy(0.4) makes the box 40% of its current width and height.
func (b *SpriteBox) ScaleBy(factor float64) error {
	if b.key == nil {
		b.w *= factor
		b.h *= factor
		return nil
	}
	k := b.key
	return b.setKey(k.src, k.flip, float64(k.w)*factor, float64(k.h)*factor, float64(k.angle))
}

// Rotate rotates the box by the given angle in degrees (counterclockwise).
// No-op on flat-colored boxes.
func (b *SpriteBox) Rotate(angle float64) error {
	if b.key == nil {
		return nil
	}
	k := b.key
	return b.setKey(k.src, k.flip, float64(k.w), float64(k.h), float64(k.angle)+angle)
}

// Flip mirrors the box left-to-right. Mirroring top-to-bottom is
// Rotate(180) followed by Flip. No-op on flat-colored boxes.
func (b *SpriteBox) Flip() error {
	if b.key == nil {
		return nil
	}
	k := b.key
	return b.setKey(k.src, !k.flip, float64(k.w), float64(k.h), float64(k.angle))
}

// FullSize restores the box to the natural size of its source image,
// keeping flip and rotation. No-op on flat-colored boxes.
func (b *SpriteBox) FullSize() error {
	if b.key == nil {
		return nil
	}
	k := b.key
	return b.setKey(k.src, k.flip, 0, 0, float64(k.angle))
}

// CopyAt makes a new SpriteBox just like this one at the given location.
// The copy starts with zero speed.
func (b *SpriteBox) CopyAt(x, y float64) *SpriteBox {
	nb := newBox(x, y)
	if b.image != nil {
		sid := cache.registerSurface(b.image)
		_ = nb.setKey(sid, false, 0, 0, 0)
		_ = nb.SetSize(b.w, b.h)
	} else {
		nb.color = b.color
		nb.w, nb.h = b.w, b.h
	}
	return nb
}

// Copy makes a new SpriteBox just like this one in the same location.
func (b *SpriteBox) Copy() *SpriteBox { return b.CopyAt(b.X, b.Y) }

// --- Collision ---

// paddings expands the optional padding arguments: none means zero, one
// value applies to both axes, two values are x then y.
func paddings(padding []float64) (px, py float64) {
	if len(padding) > 0 {
		px = padding[0]
		py = px
	}
	if len(padding) > 1 {
		py = padding[1]
	}
	return px, py
}

// Overlap returns a translation such that b.Move(result.X, result.Y) makes
// the boxes stop overlapping, or the zero vector when they do not overlap.
// Optional padding inflates b before the test (one value for both axes, or
// x then y). The push is the minimal single-axis separation; exact ties
// resolve in the fixed order left, right, top, bottom.
func (b *SpriteBox) Overlap(other *SpriteBox, padding ...float64) Vec2 {
	px, py := paddings(padding)
	l := other.Left() - b.Right() - px
	r := b.Left() - other.Right() - px
	t := other.Top() - b.Bottom() - py
	bo := b.Top() - other.Bottom() - py
	m := math.Max(math.Max(l, r), math.Max(t, bo))
	switch {
	case m >= 0:
		return Vec2{}
	case m == l:
		return Vec2{X: l}
	case m == r:
		return Vec2{X: -r}
	case m == t:
		return Vec2{Y: t}
	default:
		return Vec2{Y: -bo}
	}
}

// Touches reports whether the two boxes overlap or touch edges, with the
// same optional padding as Overlap.
func (b *SpriteBox) Touches(other *SpriteBox, padding ...float64) bool {
	px, py := paddings(padding)
	l := other.Left() - b.Right() - px
	r := b.Left() - other.Right() - px
	t := other.Top() - b.Bottom() - py
	bo := b.Top() - other.Bottom() - py
	return math.Max(math.Max(l, r), math.Max(t, bo)) <= 0
}

// BottomTouches reports whether b touches other and b's bottom edge causes
// the contact. The test widens the padding by one pixel on each axis so
// exactly edge-aligned boxes still count.
func (b *SpriteBox) BottomTouches(other *SpriteBox, padding ...float64) bool {
	px, py := paddings(padding)
	return b.Overlap(other, px+1, py+1).Y < 0
}

// TopTouches reports whether b touches other and b's top edge causes the
// contact.
func (b *SpriteBox) TopTouches(other *SpriteBox, padding ...float64) bool {
	px, py := paddings(padding)
	return b.Overlap(other, px+1, py+1).Y > 0
}

// LeftTouches reports whether b touches other and b's left edge causes the
// contact.
func (b *SpriteBox) LeftTouches(other *SpriteBox, padding ...float64) bool {
	px, py := paddings(padding)
	return b.Overlap(other, px+1, py+1).X > 0
}

// RightTouches reports whether b touches other and b's right edge causes
// the contact.
func (b *SpriteBox) RightTouches(other *SpriteBox, padding ...float64) bool {
	px, py := paddings(padding)
	return b.Overlap(other, px+1, py+1).X < 0
}

// Contains reports whether the point (x, y) is strictly inside the box.
func (b *SpriteBox) Contains(x, y float64) bool {
	return math.Abs(x-b.X)*2 < b.w && math.Abs(y-b.Y)*2 < b.h
}

// MoveToStopOverlapping makes the minimal change to b's position so that it
// no longer overlaps other. On any axis where the push opposes b's current
// speed, that speed component is zeroed.
func (b *SpriteBox) MoveToStopOverlapping(other *SpriteBox, padding ...float64) {
	o := b.Overlap(other, padding...)
	if o == (Vec2{}) {
		return
	}
	b.Move(o.X, o.Y)
	if o.X*b.SpeedX < 0 {
		b.SpeedX = 0
	}
	if o.Y*b.SpeedY < 0 {
		b.SpeedY = 0
	}
}

// MoveBothToStopOverlapping splits the separating push evenly between both
// boxes. On any axis where a push occurred, both boxes' speed components on
// that axis are set to their mutual average.
func (b *SpriteBox) MoveBothToStopOverlapping(other *SpriteBox, padding ...float64) {
	o := b.Overlap(other, padding...)
	if o == (Vec2{}) {
		return
	}
	b.Move(o.X/2, o.Y/2)
	other.Move(-o.X/2, -o.Y/2)
	if o.X != 0 {
		avg := (b.SpeedX + other.SpeedX) / 2
		b.SpeedX = avg
		other.SpeedX = avg
	}
	if o.Y != 0 {
		avg := (b.SpeedY + other.SpeedY) / 2
		b.SpeedY = avg
		other.SpeedY = avg
	}
}

// --- Mouse convenience ---

// MouseHover reports whether the mouse cursor is hovering over this box.
// Requires a Camera; always false before one exists.
func (b *SpriteBox) MouseHover() bool {
	if current == nil {
		return false
	}
	m := current.Mouse()
	return b.Contains(m.X, m.Y)
}

// MouseClick reports whether this box is being clicked with any mouse
// button.
func (b *SpriteBox) MouseClick() bool {
	return b.MouseHover() && current.MouseClick()
}

// --- Extended attributes ---

// Set stores an extended attribute on the box. Storing a name for the first
// time logs an informational notice.
func (b *SpriteBox) Set(name string, value any) { b.extra.set(name, value) }

// Get reads an extended attribute. Reading a name that was never set
// returns an UnknownAttributeError.
func (b *SpriteBox) Get(name string) (any, error) { return b.extra.get(name) }

func (b *SpriteBox) String() string {
	return fmt.Sprintf("%gx%g SpriteBox centered at %g,%g", b.w, b.h, b.X, b.Y)
}
