package qmake

import (
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/qmakepatch/internal/buf"
	"github.com/joshuapare/qmakepatch/internal/field"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

// DefaultVariables are the path variables QMake 3.x to 5.x reserve in their
// image. Which of them a given build carries depends on its version.
var DefaultVariables = []string{
	"qt_prfxpath",
	"qt_docspath",
	"qt_hdrspath",
	"qt_libspath",
	"qt_binspath",
	"qt_plugpath",
	"qt_impspath",
	"qt_datapath",
	"qt_trnspath",
	"qt_xmplpath",
	"qt_demopath",
	"qt_stngpath",
	"qt_epfxpath",
	"qt_hpfxpath",
	"qt_ssrtpath",
}

// Field kinds reported by Inspect.
const (
	KindBeacon   = "beacon"
	KindVariable = "variable"
)

// Field is the current state of one field in an image.
type Field struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Offset   int    `json:"offset,omitempty"`
	Reserved int    `json:"reserved,omitempty"`
	Value    string `json:"value,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Inspect reports every known version beacon and the named variables
// (DefaultVariables when names is empty) without modifying img. Fields that
// are absent are reported with Found == false; fields whose boundaries cannot
// be resolved carry the resolver's message in Error.
func Inspect(img *Image, names []string) ([]Field, error) {
	if len(names) == 0 {
		names = DefaultVariables
	}
	data := img.Bytes()

	var out []Field
	for _, beacon := range KnownBeacons() {
		f := Field{Kind: KindBeacon, Name: beacon}
		if start, ok := findBeacon(data, beacon); ok {
			describe(&f, data, beacon, start, start)
		}
		out = append(out, f)
	}

	for _, name := range names {
		if name == "" || strings.Contains(name, "=") {
			return nil, types.Errorf(types.BadConfig, "invalid variable name '%s'", name)
		}
		f := Field{Kind: KindVariable, Name: name}
		leader := []byte(name + "=")
		if m := buf.Index(data, 0, leader); m >= 0 {
			describe(&f, data, name, m, m+len(leader))
		}
		out = append(out, f)
	}
	return out, nil
}

func describe(f *Field, data []byte, name string, areaStart, valueStart int) {
	f.Found = true
	f.Offset = areaStart
	loc, err := field.Resolve(data, name, areaStart, valueStart)
	if err != nil {
		f.Error = err.Error()
		return
	}
	f.Reserved = loc.Reserved()
	f.Value = decodeValue(loc.Value(data))
}

// decodeValue converts a stored value to UTF-8. Values are 8-bit strings, and
// Windows builds store them in the ANSI code page.
func decodeValue(v []byte) string {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(v)
	if err != nil {
		return string(v)
	}
	return string(decoded)
}
