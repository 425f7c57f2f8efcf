package defs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var defsFS embed.FS

// Load reads a def file. A copy under defs/ on disk takes priority over the
// embedded one so edits apply without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanDefPath(name)
	if data, err := os.ReadFile(diskDefPath(clean)); err == nil {
		return data, nil
	}
	return defsFS.ReadFile(clean)
}

// ModTime returns the on-disk modification time of a def file, if present.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskDefPath(cleanDefPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanDefPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "defs/"); ok {
		return after
	}
	return s
}

func diskDefPath(clean string) string {
	return filepath.Join("defs", filepath.FromSlash(clean))
}
