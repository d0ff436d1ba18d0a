package qmake

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/qmakepatch/internal/buf"
	"github.com/joshuapare/qmakepatch/internal/field"
	"github.com/joshuapare/qmakepatch/internal/logger"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// RewriteVariable replaces the "name=value" variable named by spec with spec
// itself. The leader is located from the image's cached search offset first
// and, on a miss, from the start of the image.
func RewriteVariable(img *Image, spec string) error {
	name, err := leaderName(spec)
	if err != nil {
		return err
	}
	leader := []byte(name + "=")
	data := img.Bytes()

	m := buf.Index(data, img.SearchOffset(), leader)
	if m < 0 && img.SearchOffset() != 0 {
		m = buf.Index(data, 0, leader)
	}
	if m < 0 {
		return types.Errorf(types.DataFailure, "could not find '%s' in image", leader)
	}
	img.NoteMatch(m)

	loc, err := field.Resolve(data, name, m, m+len(leader))
	if err != nil {
		return err
	}
	logger.L.WithFields(logrus.Fields{
		"variable": name,
		"offset":   m,
		"reserved": loc.Reserved(),
		"current":  string(loc.Value(data)),
	}).Debug("variable found")

	return field.Rewrite(data, name, loc, field.Terminated(spec))
}

// leaderName returns the variable name of a "name=value" spec.
func leaderName(spec string) (string, error) {
	name, _, ok := strings.Cut(spec, "=")
	if !ok {
		return "", types.Errorf(types.BadConfig, "no equals sign found in '%s'", spec)
	}
	if name == "" {
		return "", types.Errorf(types.BadConfig, "no variable name before the equals sign in '%s'", spec)
	}
	return name, nil
}
