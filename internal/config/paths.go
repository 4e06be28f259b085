package config

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "TYHA_CONFIG"

// Paths contains standard filesystem paths for tyha.
type Paths struct {
	// ConfigFile is the path to the config file (~/.tyha/config.yaml).
	ConfigFile string

	// HomeDir is the tyha home directory (~/.tyha).
	HomeDir string
}

// DefaultPaths returns the default paths for tyha.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".tyha")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If TYHA_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is left alone
	return path, nil
}
