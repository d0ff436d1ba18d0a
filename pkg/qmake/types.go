package qmake

import (
	"github.com/joshuapare/qmakepatch/internal/image"
)

// Image is an in-memory executable image (re-exported for convenience).
type Image = image.Image

// NewImage wraps data as an Image. The Image takes ownership of data.
func NewImage(data []byte) *Image {
	return image.New(data)
}

// LoadImage reads the file at path fully into memory.
func LoadImage(path string) (*Image, error) {
	return image.Load(path)
}
