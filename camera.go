package gamebox

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera center.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the viewport into the game world. There is exactly one per
// process: games draw boxes into it each tick, call Display to present the
// finished frame, and read the mouse through it in world coordinates.
//
// The camera pans by moving its offset; boxes keep their world coordinates
// and are projected at draw time.
type Camera struct {
	// surface is the back buffer Draw and Clear paint into; front is the
	// last displayed frame, blitted to the screen by the render loop.
	surface *ebiten.Image
	front   *ebiten.Image

	offsetX, offsetY float64
	w, h             int
	fullScreen       bool

	keys   Keys
	scroll *scrollAnim

	extra extraAttrs
}

// current is the process-wide camera. The render loop and the mouse helpers
// on SpriteBox all go through it.
var current *Camera

func newCamera(width, height int, fullScreen bool) (*Camera, error) {
	if current != nil {
		return nil, &InvalidArgumentError{Reason: "you can only have one Camera"}
	}
	if width < 1 || height < 1 {
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("camera size must be positive, got %dx%d", width, height),
		}
	}
	c := &Camera{
		surface:    ebiten.NewImage(width, height),
		front:      ebiten.NewImage(width, height),
		w:          width,
		h:          height,
		fullScreen: fullScreen,
		keys:       make(Keys),
		extra:      extraAttrs{owner: "Camera", noun: "camera"},
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetFullscreen(fullScreen)
	current = c
	logger.Debug().Int("width", width).Int("height", height).
		Bool("fullscreen", fullScreen).Msg("camera created")
	return c, nil
}

// NewCamera creates the window-sized Camera. Only one Camera may exist;
// creating a second one fails.
func NewCamera(width, height int) (*Camera, error) {
	return newCamera(width, height, false)
}

// NewFullScreenCamera creates the Camera in full-screen mode, rendering at
// the given internal resolution.
func NewFullScreenCamera(width, height int) (*Camera, error) {
	return newCamera(width, height, true)
}

// --- Geometry accessors ---
//
// Like a SpriteBox, the camera exposes its edges and corners; setting any of
// them pans the camera.

// X returns the x coordinate of the camera's center.
func (c *Camera) X() float64 { return c.offsetX + float64(c.w)/2 }

// SetX pans the camera so its center x is v.
func (c *Camera) SetX(v float64) { c.offsetX = v - float64(c.w)/2 }

// Y returns the y coordinate of the camera's center.
func (c *Camera) Y() float64 { return c.offsetY + float64(c.h)/2 }

// SetY pans the camera so its center y is v.
func (c *Camera) SetY(v float64) { c.offsetY = v - float64(c.h)/2 }

// Left returns the x coordinate of the left edge of the view.
func (c *Camera) Left() float64 { return c.offsetX }

// SetLeft pans the camera so its left edge is at v.
func (c *Camera) SetLeft(v float64) { c.offsetX = v }

// Right returns the x coordinate of the right edge of the view.
func (c *Camera) Right() float64 { return c.offsetX + float64(c.w) }

// SetRight pans the camera so its right edge is at v.
func (c *Camera) SetRight(v float64) { c.offsetX = v - float64(c.w) }

// Top returns the y coordinate of the top edge of the view.
func (c *Camera) Top() float64 { return c.offsetY }

// SetTop pans the camera so its top edge is at v.
func (c *Camera) SetTop(v float64) { c.offsetY = v }

// Bottom returns the y coordinate of the bottom edge of the view.
func (c *Camera) Bottom() float64 { return c.offsetY + float64(c.h) }

// SetBottom pans the camera so its bottom edge is at v.
func (c *Camera) SetBottom(v float64) { c.offsetY = v - float64(c.h) }

// Center returns the coordinates of the camera's center.
func (c *Camera) Center() Vec2 { return Vec2{c.X(), c.Y()} }

// SetCenter pans the camera so its center is at (x, y).
func (c *Camera) SetCenter(x, y float64) { c.SetX(x); c.SetY(y) }

// TopLeft returns the coordinates of the view's top-left corner.
func (c *Camera) TopLeft() Vec2 { return Vec2{c.Left(), c.Top()} }

// SetTopLeft pans the camera so its top-left corner is at (x, y).
func (c *Camera) SetTopLeft(x, y float64) { c.offsetX, c.offsetY = x, y }

// BottomRight returns the coordinates of the view's bottom-right corner.
func (c *Camera) BottomRight() Vec2 { return Vec2{c.Right(), c.Bottom()} }

// SetBottomRight pans the camera so its bottom-right corner is at (x, y).
func (c *Camera) SetBottomRight(x, y float64) { c.SetRight(x); c.SetBottom(y) }

// Width returns the width of the view in pixels.
func (c *Camera) Width() float64 { return float64(c.w) }

// Height returns the height of the view in pixels.
func (c *Camera) Height() float64 { return float64(c.h) }

// Rect returns the world-space rectangle the camera currently shows.
func (c *Camera) Rect() Rect {
	return Rect{X: c.offsetX, Y: c.offsetY, Width: float64(c.w), Height: float64(c.h)}
}

// Move pans the camera by the given amount.
func (c *Camera) Move(dx, dy float64) {
	c.offsetX += dx
	c.offsetY += dy
}

// --- Drawing ---

// Draw paints a SpriteBox into the camera's pending frame at its world
// position. Nothing shows on screen until Display is called.
func (c *Camera) Draw(b *SpriteBox) {
	x := b.Left() - c.offsetX
	y := b.Top() - c.offsetY
	if b.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		c.surface.DrawImage(b.image, op)
		return
	}
	if b.color == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+b.w), int(y+b.h))
	r = r.Intersect(c.surface.Bounds())
	if !r.Empty() {
		c.surface.SubImage(r).(*ebiten.Image).Fill(b.color)
	}
}

// DrawText renders text in the default font and paints it into the pending
// frame centered at world position (x, y).
func (c *Camera) DrawText(str string, fontSize int, col Color, x, y float64) error {
	b, err := FromText(x, y, str, fontSize, col)
	if err != nil {
		return err
	}
	c.Draw(b)
	return nil
}

// Clear fills the entire pending frame with a single color.
func (c *Camera) Clear(col Color) {
	c.surface.Fill(col)
}

// Display presents everything drawn since the last Display as the next
// visible frame. Drawing after Display starts a new frame on top of the old
// one; games that want a clean slate call Clear first.
func (c *Camera) Display() {
	c.front.Clear()
	c.front.DrawImage(c.surface, nil)
}

// --- Input ---

// Mouse returns the world coordinates of the mouse cursor.
func (c *Camera) Mouse() Vec2 {
	mx, my := ebiten.CursorPosition()
	return Vec2{float64(mx) + c.offsetX, float64(my) + c.offsetY}
}

// MouseX returns the x world coordinate of the mouse cursor.
func (c *Camera) MouseX() float64 { return c.Mouse().X }

// MouseY returns the y world coordinate of the mouse cursor.
func (c *Camera) MouseY() float64 { return c.Mouse().Y }

// MouseClick reports whether any mouse button is currently pressed.
func (c *Camera) MouseClick() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

// Keys returns the set of keys currently held down, as tracked by the
// render loop.
func (c *Camera) Keys() Keys { return c.keys }

// --- Scrolling ---

// ScrollTo animates the camera center to the given world position over
// duration seconds. The animation advances once per tick of the render
// loop. Panning the camera directly while a scroll is running is fine; the
// scroll keeps steering toward its destination.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.X()), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y()), float32(y), duration, easeFn),
	}
}

// update advances the scroll animation. Called once per tick by the render
// loop with the tick duration in seconds.
func (c *Camera) update(dt float32) {
	if c.scroll == nil {
		return
	}
	if !c.scroll.doneX {
		val, done := c.scroll.tweenX.Update(dt)
		c.SetX(float64(val))
		c.scroll.doneX = done
	}
	if !c.scroll.doneY {
		val, done := c.scroll.tweenY.Update(dt)
		c.SetY(float64(val))
		c.scroll.doneY = done
	}
	if c.scroll.doneX && c.scroll.doneY {
		c.scroll = nil
	}
}

// --- Extended attributes ---

// Set stores an extended attribute on the camera.
func (c *Camera) Set(name string, value any) { c.extra.set(name, value) }

// Get reads an extended attribute previously stored with Set.
func (c *Camera) Get(name string) (any, error) { return c.extra.get(name) }

func (c *Camera) String() string {
	return fmt.Sprintf("%dx%d Camera centered at %g,%g", c.w, c.h, c.X(), c.Y())
}
