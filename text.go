package gamebox

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// textKey identifies one rendered run of text. The color participates as an
// interface value, so two structurally different representations of the same
// color (NamedColor("red") vs. color.RGBA{255, 0, 0, 255}) produce separate
// entries; see Color. The dynamic color type must be comparable.
type textKey struct {
	text     string
	fontSize int
	color    Color
	bold     bool
	italic   bool
}

var (
	faceOnce    sync.Once
	faceSources [4]*text.GoTextFaceSource // index: bold | italic<<1
	faceErr     error
)

func loadFaceSources() {
	data := [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}
	for i, d := range data {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(d))
		if err != nil {
			faceErr = fmt.Errorf("gamebox: failed to parse built-in font: %w", err)
			return
		}
		faceSources[i] = src
	}
}

// defaultFace returns the process default font (the Go font family) at the
// given size with the requested styling.
func defaultFace(size int, bold, italic bool) (*text.GoTextFace, error) {
	faceOnce.Do(loadFaceSources)
	if faceErr != nil {
		return nil, faceErr
	}
	idx := 0
	if bold {
		idx |= 1
	}
	if italic {
		idx |= 2
	}
	return &text.GoTextFace{Source: faceSources[idx], Size: float64(size)}, nil
}

// renderText returns an image of str rendered in the default font, with
// alpha transparency around the glyphs. Identical requests always return the
// identical cached image. The rendered image is also registered with the
// transform cache, so it can be flipped, scaled, and rotated like any other
// image source.
func (c *imageCache) renderText(str string, fontSize int, col Color, bold, italic bool) (*ebiten.Image, error) {
	key := textKey{text: str, fontSize: fontSize, color: col, bold: bold, italic: italic}
	if img, ok := c.text[key]; ok {
		return img, nil
	}

	face, err := defaultFace(fontSize, bold, italic)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	w, h := text.Measure(str, face, lh)
	iw, ih := int(w)+1, int(h)+1
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}

	img := ebiten.NewImage(iw, ih)
	op := &text.DrawOptions{}
	op.LineSpacing = lh
	op.ColorScale.ScaleWithColor(col)
	text.Draw(img, str, face, op)

	c.text[key] = img
	c.registerSurface(img)
	return img, nil
}
