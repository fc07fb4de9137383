package modgraph

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects the default source directories and target subdirectory used
// when no explicit override is given.
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
	ModeTest    Mode = "test"
)

func (m Mode) valid() bool {
	switch m {
	case ModeDebug, ModeRelease, ModeTest:
		return true
	}
	return false
}

// Config is the compiler's configuration: mode, output root, and the
// ordered list of directories searched for imported module sources.
// Earlier entries in IncludeDirs shadow later ones.
type Config struct {
	Mode        Mode     `yaml:"mode"`
	TargetDir   string   `yaml:"target"`
	IncludeDirs []string `yaml:"include"`
}

// fileConfig mirrors Config's shape for yaml.v3 unmarshalling; kept separate
// so a malformed or partial inko.yaml never panics on a zero Mode.
type fileConfig struct {
	Mode      string   `yaml:"mode"`
	Target    string   `yaml:"target"`
	Include   []string `yaml:"include"`
	SourceDir string   `yaml:"source"`
}

// DefaultConfig returns the built-in defaults for the given mode: a target
// subdirectory under "target/<mode>" and the mode's conventional include
// dirs: "test" then "src" in test mode, "src" otherwise.
func DefaultConfig(mode Mode) Config {
	if !mode.valid() {
		mode = ModeDebug
	}
	cfg := Config{Mode: mode, TargetDir: "target/" + string(mode)}
	switch mode {
	case ModeTest:
		cfg.IncludeDirs = []string{"test", "src"}
	default:
		cfg.IncludeDirs = []string{"src"}
	}
	return cfg
}

// LoadYAMLConfig reads an inko.yaml project file, if present, and layers it
// over the defaults for its declared (or the given) mode. Returns the
// default config unchanged if path does not exist.
func LoadYAMLConfig(path string, fallbackMode Mode) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(fallbackMode), nil
	}
	if err != nil {
		return Config{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, err
	}

	mode := fallbackMode
	if fc.Mode != "" {
		mode = Mode(fc.Mode)
	}
	cfg := DefaultConfig(mode)
	if fc.Target != "" {
		cfg.TargetDir = fc.Target
	}
	if fc.SourceDir != "" {
		cfg.IncludeDirs = append([]string{fc.SourceDir}, cfg.IncludeDirs...)
	}
	if len(fc.Include) > 0 {
		cfg.IncludeDirs = fc.Include
	}
	return cfg, nil
}

// MergeFlags layers CLI flag overrides on top of cfg; flags take precedence
// over whatever was loaded from file or defaults. An empty override leaves
// the existing value untouched.
func (cfg Config) MergeFlags(mode Mode, targetDir string, includeDirs []string) Config {
	if mode != "" && mode.valid() {
		cfg.Mode = mode
	}
	if targetDir != "" {
		cfg.TargetDir = targetDir
	}
	if len(includeDirs) > 0 {
		cfg.IncludeDirs = includeDirs
	}
	return cfg
}
