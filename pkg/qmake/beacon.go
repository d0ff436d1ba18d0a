package qmake

import (
	"github.com/sirupsen/logrus"

	"github.com/joshuapare/qmakepatch/internal/buf"
	"github.com/joshuapare/qmakepatch/internal/field"
	"github.com/joshuapare/qmakepatch/internal/logger"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// RewriteBeacon replaces the value stored right after beacon and its NUL
// terminator with replacement.
//
// The beacon text may also occur in help strings and other data, so a match
// is only accepted when the byte after it is printable; otherwise the search
// resumes past that match. verbose selects whether a missing beacon is
// reported to the operator or skipped quietly; the returned error is the same.
func RewriteBeacon(img *Image, beacon, replacement string, verbose bool) error {
	data := img.Bytes()
	log := logger.L.WithField("beacon", beacon)

	start, ok := findBeacon(data, beacon)
	if !ok {
		if verbose {
			log.Warn("beacon not found")
		} else {
			log.Debug("beacon not found, skipping")
		}
		return types.Errorf(types.DataFailure, "could not find '%s' beacon in image", beacon)
	}

	loc, err := field.Resolve(data, beacon, start, start)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"offset":   loc.AreaStart,
		"reserved": loc.Reserved(),
		"current":  string(loc.Value(data)),
	}).Debug("beacon found")

	return field.Rewrite(data, beacon, loc, field.Terminated(replacement))
}

// findBeacon returns the offset of the value that follows the first accepted
// occurrence of beacon. A beacon with no byte after its terminator is never
// accepted.
func findBeacon(data []byte, beacon string) (int, bool) {
	key := field.Terminated(beacon)
	for from := 0; ; {
		m := buf.Index(data, from, key)
		if m < 0 {
			return -1, false
		}
		p := m + len(key)
		if !buf.Has(data, p, 1) {
			return -1, false
		}
		if buf.IsPrint(data[p]) {
			return p, true
		}
		from = p
	}
}
