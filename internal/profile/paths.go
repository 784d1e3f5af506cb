package profile

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.whatschat.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".whatschat")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the client log file path. The TUI owns the terminal, so
// all logging goes here.
func LogPath() string {
	return filepath.Join(LogDir(), "whatschat.log")
}

// EnsureDirs creates the profile directory tree with owner-only permissions.
func EnsureDirs() error {
	for _, d := range []string{BaseDir(), LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
