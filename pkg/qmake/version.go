package qmake

import (
	"errors"
	"strings"

	"github.com/joshuapare/qmakepatch/internal/field"
	"github.com/joshuapare/qmakepatch/internal/logger"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// versionRule says how the version string of one Qt major release is stored.
type versionRule struct {
	// beacons that may precede the version string, in the order tried.
	beacons []string
	// anyOf tries every beacon quietly and succeeds if at least one matched.
	// Without it the single beacon is required.
	anyOf bool
	// reject, when set, refuses the major version outright.
	reject string
}

// The version string moved between marker tokens across release lines.
var versionRules = map[string]versionRule{
	"1": {reject: "Qt versions 1.x and 2.x did not have QMake"},
	"2": {reject: "Qt versions 1.x and 2.x did not have QMake"},
	"3": {beacons: []string{"-version"}},
	"4": {beacons: []string{"-version", "QT_VERSION"}, anyOf: true},
	"5": {beacons: []string{"--version", "QMAKE_VERSION", ") (Qt "}, anyOf: true},
}

// majorOrder lists the supported majors for stable iteration.
var majorOrder = []string{"3", "4", "5"}

// Major returns the major component of version: everything before the first dot.
func Major(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}

// Beacons returns the beacons tried for a major version, or false when the
// major version is rejected or unknown.
func Beacons(major string) ([]string, bool) {
	rule, ok := versionRules[major]
	if !ok || rule.reject != "" {
		return nil, false
	}
	return append([]string(nil), rule.beacons...), true
}

// KnownBeacons returns every beacon of every supported major version, without
// duplicates, in dispatch-table order.
func KnownBeacons() []string {
	var out []string
	seen := make(map[string]bool)
	for _, major := range majorOrder {
		for _, b := range versionRules[major].beacons {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}
	return out
}

// RewriteVersion writes version after the beacons its major version uses.
// An empty version is a no-op.
//
//   - 1.x, 2.x: rejected (types.BadConfig).
//   - 3.x: "-version" must be found.
//   - 4.x: at least one of "-version", "QT_VERSION".
//   - 5.x: at least one of "--version", "QMAKE_VERSION", ") (Qt ".
//   - anything else: types.BadConfig.
func RewriteVersion(img *Image, version string) error {
	if version == "" {
		return nil
	}

	major := Major(version)
	rule, ok := versionRules[major]
	switch {
	case !ok:
		return types.Errorf(types.BadConfig, "no idea on how to rewrite version string for Qt major version '%s'", major)
	case rule.reject != "":
		return types.Errorf(types.BadConfig, "%s", rule.reject)
	case !rule.anyOf:
		return RewriteBeacon(img, rule.beacons[0], version, true)
	}

	done := 0
	var reasons []error
	for _, beacon := range rule.beacons {
		err := RewriteBeacon(img, beacon, version, false)
		var fe *field.Error
		switch {
		case err == nil:
			done++
		case errors.As(err, &fe):
			// Found but unusable; the operator needs to know why.
			reasons = append(reasons, err)
		case errors.Is(err, types.ErrDataFailure):
			logger.L.WithField("beacon", beacon).WithError(err).Debug("version candidate not updated")
		default:
			return err
		}
	}
	if done == 0 {
		return &types.Error{
			Code: types.DataFailure,
			Msg:  "could not update any of " + quoteList(rule.beacons),
			Err:  errors.Join(reasons...),
		}
	}
	for _, err := range reasons {
		logger.L.WithError(err).Warn("version candidate not updated")
	}
	return nil
}

// quoteList renders items as 'a', 'b' or 'c'.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
