// Package testutil builds synthetic executable images for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// Builder assembles an image byte by byte and remembers where fields start.
type Builder struct {
	buf     bytes.Buffer
	offsets map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{offsets: make(map[string]int)}
}

// Raw appends s verbatim.
func (b *Builder) Raw(s string) *Builder {
	b.buf.WriteString(s)
	return b
}

// Noise appends n non-zero filler bytes that never look like text.
func (b *Builder) Noise(n int) *Builder {
	for i := 0; i < n; i++ {
		b.buf.WriteByte(byte(0x80 | i%0x7f))
	}
	return b
}

// Field appends content zero-padded to size bytes and records its offset
// under label. content must be shorter than size.
func (b *Builder) Field(label, content string, size int) *Builder {
	if len(content) >= size {
		panic("testutil: field content does not leave room for a terminator")
	}
	b.offsets[label] = b.buf.Len()
	b.buf.WriteString(content)
	b.buf.Write(make([]byte, size-len(content)))
	return b
}

// PadTo appends noise until the image is n bytes long.
func (b *Builder) PadTo(n int) *Builder {
	if n > b.buf.Len() {
		b.Noise(n - b.buf.Len())
	}
	return b
}

// Offset returns the recorded start offset of the field with label.
func (b *Builder) Offset(label string) int {
	off, ok := b.offsets[label]
	if !ok {
		panic("testutil: unknown field " + label)
	}
	return off
}

// Len returns the current image length.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns a copy of the image.
func (b *Builder) Bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

// WriteFile stores the image as name inside a fresh temp dir and returns its path.
func (b *Builder) WriteFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.Bytes(), 0o755); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

// Qt4Image returns a small image shaped like a Qt 4 qmake: a help text that
// mentions "-version" followed by non-printable data, the "QT_VERSION"
// beacon with a 16-byte version slot, and a block of 64-byte path variables.
func Qt4Image() *Builder {
	b := NewBuilder().
		Raw("\x7fELF\x02\x01\x01\x00").
		Noise(64).
		Raw("Usage: qmake [mode] [options] [files]\n  -version\x00").
		Noise(32).
		Raw("QT_VERSION\x00").
		Field("version", "4.8.4", 16).
		Noise(16)
	for _, v := range [][2]string{
		{"qt_prfxpath", "/usr/local/Trolltech/Qt-4.8.4"},
		{"qt_docspath", "/usr/local/Trolltech/Qt-4.8.4/doc"},
		{"qt_hdrspath", "/usr/local/Trolltech/Qt-4.8.4/include"},
		{"qt_libspath", "/usr/local/Trolltech/Qt-4.8.4/lib"},
	} {
		b.Field(v[0], v[0]+"="+v[1], 64)
	}
	return b.Noise(16)
}
