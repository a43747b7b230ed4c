package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".notepad"
	homeEnvVar = "NOTEPAD_HOME"
)

// DataDir returns the base data directory. NOTEPAD_HOME overrides the
// default of ~/.notepad.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(homeEnvVar)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to config.toml.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// KeybindingsPath returns the default keybinding override file.
func KeybindingsPath() (string, error) {
	return dataPath("keybindings.json")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
