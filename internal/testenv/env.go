package testenv

import "path/filepath"

// Dirs contains isolated directories for vardovia config/cache in tests.
type Dirs struct {
	Base   string
	Config string
	Cache  string
}

// VardoviaDirs returns conventional test directories rooted at base.
func VardoviaDirs(base string) Dirs {
	return Dirs{
		Base:   base,
		Config: filepath.Join(base, "config"),
		Cache:  filepath.Join(base, "cache"),
	}
}

// ApplyVardovia sets VARDOVIA_* env vars to isolated test directories and
// clears overrides that would leak in from the host environment.
func ApplyVardovia(setenv func(string, string), base string) Dirs {
	dirs := VardoviaDirs(base)
	setenv("VARDOVIA_CONFIG_DIR", dirs.Config)
	setenv("VARDOVIA_CACHE_DIR", dirs.Cache)
	setenv("VARDOVIA_SERVER_URL", "")
	setenv("VARDOVIA_NO_COLOR", "")
	return dirs
}

// ApplySameDir points config and cache to the same directory.
// Useful in tests that expect ConfigDir() to exactly match a temp dir path.
func ApplySameDir(setenv func(string, string), dir string) {
	setenv("VARDOVIA_CONFIG_DIR", dir)
	setenv("VARDOVIA_CACHE_DIR", dir)
	setenv("VARDOVIA_SERVER_URL", "")
	setenv("VARDOVIA_NO_COLOR", "")
}
