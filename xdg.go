package prettyprint

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns XDG config home or a platform fallback.
func DefaultConfigDir(app string) string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return filepath.Join(".")
		}
		configHome = dir
	}
	if app == "" {
		return configHome
	}
	return filepath.Join(configHome, app)
}
