package gamebox

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	// Decoders for the formats beginners are likely to throw at the library.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// load resolves a string reference to a decoded image: cache first, then a
// local file at that path, then a URL. Whatever loads is cached, so a
// reference is only ever decoded once.
func (c *imageCache) load(ref string) (*ebiten.Image, error) {
	if img, ok := c.images[imageKey{src: ref}]; ok {
		return img, nil
	}
	if _, err := os.Stat(ref); err == nil {
		return c.loadFile(ref, ref)
	}
	return c.loadURL(ref)
}

// loadFile decodes the image at filePath and registers it under ref (the
// reference the caller used, which for downloads differs from the local
// filename), under ref at its natural dimensions, and under its identity key.
func (c *imageCache) loadFile(filePath, ref string) (*ebiten.Image, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &ImageLoadError{Ref: ref, Err: err}
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageLoadError{Ref: ref, Err: fmt.Errorf("decode %s: %w", filePath, err)}
	}
	img := ebiten.NewImageFromImage(decoded)

	b := img.Bounds()
	c.images[imageKey{src: ref}] = img
	c.images[imageKey{src: ref, w: b.Dx(), h: b.Dy()}] = img
	if filePath != ref {
		c.images[imageKey{src: filePath}] = img
		c.images[imageKey{src: filePath, w: b.Dx(), h: b.Dy()}] = img
	}
	c.registerSurface(img)
	return img, nil
}

// loadURL downloads ref to a local file named after the URL's path basename
// (skipping the download when that file already exists), then decodes it.
// The local file acts as a plain never-invalidated cache: two URLs sharing a
// basename collide, and stale remote content is never refetched. Both are
// documented limitations.
func (c *imageCache) loadURL(ref string) (*ebiten.Image, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, &ImageLoadError{Ref: ref, Err: err}
	}
	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" || filename == "" {
		return nil, &ImageLoadError{Ref: ref, Err: fmt.Errorf("no filename in URL path %q", parsed.Path)}
	}

	if _, err := os.Stat(filename); err != nil {
		if err := download(ref, filename); err != nil {
			return nil, &ImageLoadError{Ref: ref, Err: err}
		}
	}
	return c.loadFile(filename, ref)
}

// download fetches ref with a single blocking GET and writes it to filename.
// No retries, no timeouts: a failure surfaces immediately as an
// ImageLoadError at the caller.
func download(ref, filename string) error {
	fetchURL := ref
	if !strings.Contains(fetchURL, "://") {
		fetchURL = "http://" + fetchURL
	}

	resp, err := http.Get(fetchURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", fetchURL, resp.Status)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}
