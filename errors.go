package gamebox

import "fmt"

// ImageLoadError reports that an image reference (file path or URL) could not
// be resolved to a decodable image. The original reference is preserved so a
// beginner can see exactly which string failed.
type ImageLoadError struct {
	Ref string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("gamebox: an error occurred while fetching the image, are you sure the file/website name is %q? (%v)", e.Ref, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// InvalidArgumentError reports a malformed call, such as a color box with no
// size or constructing a second Camera while one exists.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "gamebox: " + e.Reason
}

// UnknownAttributeError reports a read of an extended attribute that was
// never set on a SpriteBox or Camera.
type UnknownAttributeError struct {
	Owner string // "SpriteBox" or "Camera"
	Name  string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("gamebox: there is no %q in a %s object", e.Name, e.Owner)
}
