package buf

import "bytes"

// Index returns the offset of the first occurrence of needle in b at or after
// from, or -1. The needle may contain NUL bytes, which lets callers anchor on
// a whole C string including its terminator.
func Index(b []byte, from int, needle []byte) int {
	if len(needle) == 0 || from < 0 || from > len(b) {
		return -1
	}
	i := bytes.Index(b[from:], needle)
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexByte returns the offset of the first c in b at or after from, or -1.
func IndexByte(b []byte, from int, c byte) int {
	if from < 0 || from >= len(b) {
		return -1
	}
	i := bytes.IndexByte(b[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// NonZero returns the first position in [start, end) holding a non-zero byte.
// If the whole range is zero it returns end. end is clamped to len(b).
func NonZero(b []byte, start, end int) int {
	if end > len(b) {
		end = len(b)
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < end; i++ {
		if b[i] != 0 {
			return i
		}
	}
	return end
}

// IsPrint reports whether c is a printable ASCII character (space through '~').
func IsPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

// AlignDown rounds off down to a multiple of align, which must be a power of two.
func AlignDown(off, align int) int {
	return off &^ (align - 1)
}
