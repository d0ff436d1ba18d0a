package qmake

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/joshuapare/qmakepatch/pkg/types"
)

// EnvPrefix prefixes the environment variables that override profile keys,
// e.g. QMAKEPATCH_VERSION.
const EnvPrefix = "QMAKEPATCH"

// Profile is a saved patch request.
type Profile struct {
	// Path to the QMake executable to patch.
	Image string `mapstructure:"image"`
	// Version string to write. Empty skips the version rewrite.
	Version string `mapstructure:"version"`
	// Variables to rewrite, as "name=value" specs, in order.
	Variables []string `mapstructure:"variables"`
	// Backup creates a backup before writing the image back.
	Backup bool `mapstructure:"backup"`
}

var profileKeys = []string{"image", "version", "variables", "backup"}

// LoadProfile reads a profile file (YAML, TOML or JSON, chosen by extension).
// Environment variables with the EnvPrefix prefix override its keys.
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees environment overrides for keys viper knows about.
	for _, k := range profileKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, types.Errorf(types.BadConfig, "binding %s to the environment: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, types.Errorf(types.BadConfig, "could not read profile '%s': %w", path, err)
	}

	p := &Profile{}
	if err := v.Unmarshal(p); err != nil {
		return nil, types.Errorf(types.BadConfig, "could not decode profile '%s': %w", path, err)
	}
	return p, nil
}

// Merge returns a copy of p with command-line positionals applied on top:
// args[0] replaces the image, args[1] replaces the version and any further
// args are appended to the variables.
func (p *Profile) Merge(args []string) *Profile {
	out := *p
	out.Variables = append([]string(nil), p.Variables...)
	if len(args) > 0 {
		out.Image = args[0]
	}
	if len(args) > 1 {
		out.Version = args[1]
	}
	if len(args) > 2 {
		out.Variables = append(out.Variables, args[2:]...)
	}
	return &out
}

// Validate checks that the profile names an image. Variable specs are
// checked when they are applied, in order.
func (p *Profile) Validate() error {
	if p.Image == "" {
		return types.Errorf(types.BadSyntax, "no image path given")
	}
	return nil
}
