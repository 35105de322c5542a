package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "sideswipe"

// GetConfigDir returns the directory holding config.toml
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigPath returns the path to the user config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// GetStateDir returns the state directory for persistent data (survives reboots)
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// GetDatabasePath returns the path to the SQLite database file
func GetDatabasePath() string {
	return filepath.Join(GetStateDir(), "state.db")
}

// GetLogPath returns the path to the log file
func GetLogPath() string {
	return filepath.Join(GetStateDir(), appName+".log")
}

// EnsureStateDir creates the state directory if it doesn't exist
func EnsureStateDir() (string, error) {
	stateDir := GetStateDir()
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return stateDir, nil
}
