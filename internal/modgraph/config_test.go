package modgraph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inko-lang/corec/internal/modgraph"
)

func TestDefaultConfigVariesIncludeDirsByMode(t *testing.T) {
	debug := modgraph.DefaultConfig(modgraph.ModeDebug)
	if debug.TargetDir != "target/debug" {
		t.Fatalf("expected target/debug, got %q", debug.TargetDir)
	}
	test := modgraph.DefaultConfig(modgraph.ModeTest)
	if len(test.IncludeDirs) != 2 || test.IncludeDirs[0] != "test" {
		t.Fatalf("expected test mode to search ./test before ./src, got %v", test.IncludeDirs)
	}
}

func TestDefaultConfigFallsBackOnInvalidMode(t *testing.T) {
	cfg := modgraph.DefaultConfig(modgraph.Mode("bogus"))
	if cfg.Mode != modgraph.ModeDebug {
		t.Fatalf("expected invalid mode to fall back to debug, got %q", cfg.Mode)
	}
}

func TestLoadYAMLConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := modgraph.LoadYAMLConfig(filepath.Join(t.TempDir(), "inko.yaml"), modgraph.ModeDebug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != modgraph.ModeDebug {
		t.Fatalf("expected default mode, got %q", cfg.Mode)
	}
}

func TestLoadYAMLConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inko.yaml")
	contents := "mode: release\ntarget: build/out\ninclude:\n  - vendor\n  - src\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := modgraph.LoadYAMLConfig(path, modgraph.ModeDebug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != modgraph.ModeRelease {
		t.Fatalf("expected release mode from file, got %q", cfg.Mode)
	}
	if cfg.TargetDir != "build/out" {
		t.Fatalf("expected build/out target, got %q", cfg.TargetDir)
	}
	if len(cfg.IncludeDirs) != 2 || cfg.IncludeDirs[0] != "vendor" {
		t.Fatalf("expected file include dirs to replace defaults, got %v", cfg.IncludeDirs)
	}
}

func TestMergeFlagsTakesPrecedenceOverFileAndDefaults(t *testing.T) {
	cfg := modgraph.DefaultConfig(modgraph.ModeDebug)
	merged := cfg.MergeFlags(modgraph.ModeRelease, "custom/target", []string{"flagged"})
	if merged.Mode != modgraph.ModeRelease {
		t.Fatalf("expected flag mode to win, got %q", merged.Mode)
	}
	if merged.TargetDir != "custom/target" {
		t.Fatalf("expected flag target to win, got %q", merged.TargetDir)
	}
	if len(merged.IncludeDirs) != 1 || merged.IncludeDirs[0] != "flagged" {
		t.Fatalf("expected flag include dirs to win, got %v", merged.IncludeDirs)
	}
}

func TestMergeFlagsLeavesUnsetFieldsAlone(t *testing.T) {
	cfg := modgraph.DefaultConfig(modgraph.ModeDebug)
	merged := cfg.MergeFlags("", "", nil)
	if merged.Mode != cfg.Mode || merged.TargetDir != cfg.TargetDir {
		t.Fatalf("expected unset overrides to leave config unchanged, got %+v", merged)
	}
}
