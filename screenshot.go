package gamebox

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Screenshot writes the most recently displayed frame to a file. The format
// follows the extension: ".webp" encodes lossless WebP, anything else PNG.
// Call it after Display; a frame that was drawn but never displayed is not
// captured.
func (c *Camera) Screenshot(path string) error {
	img := c.captureFront()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gamebox: screenshot: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("gamebox: screenshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("gamebox: screenshot: %w", err)
	}
	logger.Debug().Str("path", path).Msg("screenshot written")
	return nil
}

// captureFront reads the displayed frame back from the GPU as a
// straight-alpha image.
func (c *Camera) captureFront() *image.NRGBA {
	w, h := c.w, c.h
	pixels := make([]byte, 4*w*h)
	c.front.ReadPixels(pixels)

	// Rendered pixels come back premultiplied; encoders want straight alpha.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
