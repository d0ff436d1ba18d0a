// Package buf holds bounds-checked helpers for scanning and slicing raw image bytes.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// CheckSpan validates that [start, end) is an ordered range inside a buffer
// of bufLen bytes. The error names the failing bound so callers can wrap it.
//
//	if err := buf.CheckSpan(len(data), loc.AreaStart, loc.AreaEnd); err != nil {
//	    return fmt.Errorf("field %q: %w", name, err)
//	}
func CheckSpan(bufLen, start, end int) error {
	if start < 0 {
		return fmt.Errorf("negative start: %d", start)
	}
	if end < start {
		return fmt.Errorf("inverted span: start=%d > end=%d", start, end)
	}
	if end > bufLen {
		return fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return nil
}
