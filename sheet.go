package gamebox

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadSpriteSheet loads an image (by file path or URL) and slices it into a
// grid of equally-sized frames, returned in row-major order. Frames share
// the sheet's texture, so slicing is cheap; hand a frame to FromSurface to
// put it in a box.
func LoadSpriteSheet(ref string, rows, columns int) ([]*ebiten.Image, error) {
	if rows < 1 || columns < 1 {
		return nil, &InvalidArgumentError{Reason: "sprite sheet needs at least one row and one column"}
	}
	sheet, err := cache.load(ref)
	if err != nil {
		return nil, err
	}
	b := sheet.Bounds()
	fw := b.Dx() / columns
	fh := b.Dy() / rows

	frames := make([]*ebiten.Image, 0, rows*columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			clip := image.Rect(
				b.Min.X+col*fw, b.Min.Y+row*fh,
				b.Min.X+(col+1)*fw, b.Min.Y+(row+1)*fh,
			)
			frames = append(frames, sheet.SubImage(clip).(*ebiten.Image))
		}
	}
	return frames, nil
}
