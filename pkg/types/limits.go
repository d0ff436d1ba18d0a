package types

// ============================================================================
// Field Heuristic Limits
// ============================================================================
// These constants bound the byte-level heuristics. They are not derived from
// any executable format; they are sanity ceilings chosen so that a false
// anchor match inside non-text data cannot turn into an unbounded scan.

const (
	// ReservedAreaLimit is the largest reserved area, in bytes, that a single
	// field may occupy. It applies both to the current value (up to its NUL)
	// and to the zero-padded area that follows it.
	ReservedAreaLimit = 4096

	// SearchBlockSize is the granularity of the variable search-offset cache.
	// Cached offsets are rounded down to a multiple of this value.
	SearchBlockSize = 64 << 10 // 65,536 bytes

	// MaxImageSize is the largest image the loader accepts: every offset into
	// the image must fit in a native int.
	MaxImageSize = int64(^uint(0) >> 1)
)
