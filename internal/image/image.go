// Package image holds a whole executable image in memory and moves it between
// disk and the field patchers.
//
// An Image is loaded wholesale, mutated in place by field rewrites and
// written back in a single write. Its size never changes.
package image

import (
	"github.com/joshuapare/qmakepatch/internal/buf"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// Image is an owned, mutable copy of a file's bytes.
type Image struct {
	data []byte
	size int

	// searchOffset is where variable lookups start. It is a hint only: a
	// lookup that misses from here is retried from offset zero.
	searchOffset int
	cached       bool
}

// New wraps data, which the Image takes ownership of.
func New(data []byte) *Image {
	return &Image{data: data, size: len(data)}
}

// Bytes returns the image buffer. Callers may mutate it in place but must not
// reslice or append to it.
func (img *Image) Bytes() []byte {
	return img.data
}

// Size returns the image length in bytes.
func (img *Image) Size() int {
	return img.size
}

// SearchOffset returns the cached start offset for variable lookups, or zero
// when nothing has been cached yet.
func (img *Image) SearchOffset() int {
	return img.searchOffset
}

// NoteMatch records a variable found at off. The cache keeps the lowest
// 64 KiB block seen so far, since variables cluster together in ascending
// order but are not guaranteed to be requested in that order.
func (img *Image) NoteMatch(off int) {
	block := buf.AlignDown(off, types.SearchBlockSize)
	if !img.cached || block < img.searchOffset {
		img.searchOffset = block
		img.cached = true
	}
}
