package modgraph

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceExtension is the extension expected on module source files.
const SourceExtension = ".src"

// qualifiedNameToRelPath turns "a::b::c" into "a/b/c.src".
func qualifiedNameToRelPath(qualifiedName string) string {
	parts := strings.Split(qualifiedName, "::")
	return filepath.Join(parts...) + SourceExtension
}

// ResolveSourcePath searches cfg.IncludeDirs in order for a qualified
// module's source file; the first match wins. Returns "" and false if no
// include dir has it; reporting that as an error is left to the caller.
func ResolveSourcePath(cfg Config, qualifiedName string) (string, bool) {
	rel := qualifiedNameToRelPath(qualifiedName)
	for _, dir := range cfg.IncludeDirs {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// CreateDirectories ensures the configured target tree exists.
func CreateDirectories(cfg Config) error {
	return os.MkdirAll(cfg.TargetDir, 0o755)
}
