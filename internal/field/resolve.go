// Package field resolves and rewrites NUL-terminated, zero-padded text fields
// inside a raw image buffer.
//
// A field occupies a reserved area that starts at AreaStart (the anchor, or
// the byte after it) and runs through the value, its NUL terminator and any
// zero padding, up to the next non-zero byte:
//
//	AreaStart   ValueStart        ValueEnd         AreaEnd
//	    |  name=  |  v a l u e  | \0 | \0 \0 ... \0 | next data
//
// Nothing in the image records that layout, so every boundary is inferred and
// checked against types.ReservedAreaLimit.
package field

import (
	"github.com/joshuapare/qmakepatch/internal/buf"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// Location describes the resolved storage of one field. All offsets are
// absolute positions into the image buffer.
type Location struct {
	AreaStart  int // first byte of the field's storage
	ValueStart int // first byte of the current value
	ValueEnd   int // position of the value's NUL terminator
	AreaEnd    int // first non-zero byte after the padding (exclusive bound)
}

// Reserved returns the capacity of the field in bytes, terminator included.
func (l Location) Reserved() int {
	return l.AreaEnd - l.AreaStart
}

// Value returns the current value bytes, without the terminator.
func (l Location) Value(data []byte) []byte {
	v, ok := buf.Slice(data, l.ValueStart, l.ValueEnd-l.ValueStart)
	if !ok {
		return nil
	}
	return v
}

// stage is a step of the boundary resolver.
type stage int

const (
	scanValue    stage = iota // looking for the value's NUL terminator
	checkValue                // value length against the ceiling
	scanPadding               // looking for the end of the zero run
	checkPadding              // reserved area against the ceiling
	resolved
)

// Resolve infers the boundaries of the field named name whose current value
// starts at valueStart and whose storage starts at areaStart.
//
// It fails with a *Error (a data failure) when the value has no terminator,
// when the zero padding runs to the end of the image, or when either the
// value or the reserved area exceeds types.ReservedAreaLimit.
func Resolve(data []byte, name string, areaStart, valueStart int) (Location, error) {
	if areaStart < 0 || valueStart < areaStart || valueStart > len(data) {
		return Location{}, errorf(name, valueStart,
			"anchor outside image (area start %d, value start %d, image size %d)",
			areaStart, valueStart, len(data))
	}

	loc := Location{AreaStart: areaStart, ValueStart: valueStart}
	for st := scanValue; st != resolved; {
		switch st {
		case scanValue:
			end := buf.IndexByte(data, valueStart, 0)
			if end < 0 {
				return Location{}, errorf(name, valueStart, "could not find the end of the value in image")
			}
			loc.ValueEnd = end
			st = checkValue

		case checkValue:
			if n := loc.ValueEnd - areaStart; n > types.ReservedAreaLimit {
				return Location{}, errorf(name, areaStart,
					"determined size of the value is %d bytes, which is beyond sanity limit of %d bytes",
					n, types.ReservedAreaLimit)
			}
			st = scanPadding

		case scanPadding:
			loc.AreaEnd = buf.NonZero(data, loc.ValueEnd+1, len(data))
			if loc.AreaEnd >= len(data) {
				return Location{}, errorf(name, loc.ValueEnd, "could not find the end of the reserved area in image")
			}
			st = checkPadding

		case checkPadding:
			if n := loc.Reserved(); n > types.ReservedAreaLimit {
				return Location{}, errorf(name, areaStart,
					"determined size of the reserved area is %d bytes, which is beyond sanity limit of %d bytes",
					n, types.ReservedAreaLimit)
			}
			st = resolved
		}
	}
	return loc, nil
}
