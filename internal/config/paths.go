package config

import (
	"os"
	"path/filepath"
)

// DataDir returns the directory used to store pymk data. PYMK_HOME
// overrides the default dot-directory in the user's home.
func DataDir() (string, error) {
	if d := os.Getenv("PYMK_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pymk"), nil
}

// DBPath returns the full path to the SQLite history database file.
func DBPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "pymk.db"), nil
}

// LogPath returns the full path to the debug log file.
func LogPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "pymk.log"), nil
}

// ConfigPath returns the full path to the optional config file.
func ConfigPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}
