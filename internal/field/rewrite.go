package field

import (
	"github.com/joshuapare/qmakepatch/internal/buf"
)

// Terminated returns s followed by a NUL byte, the on-disk form of a field value.
func Terminated(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Rewrite stores replacement (which must already carry its terminator) at
// loc.AreaStart and zero-fills the rest of the reserved area. The buffer is
// left untouched when the replacement does not fit. Bytes outside
// [loc.AreaStart, loc.AreaEnd) are never written.
func Rewrite(data []byte, name string, loc Location, replacement []byte) error {
	if err := buf.CheckSpan(len(data), loc.AreaStart, loc.AreaEnd); err != nil {
		return errorf(name, loc.AreaStart, "invalid reserved area: %v", err)
	}
	if reserved := loc.Reserved(); len(replacement) > reserved {
		return errorf(name, loc.AreaStart,
			"determined size of the reserved area is %d bytes, while the new value requires %d bytes",
			reserved, len(replacement))
	}

	area := data[loc.AreaStart:loc.AreaEnd]
	n := copy(area, replacement)
	clear(area[n:])
	return nil
}
