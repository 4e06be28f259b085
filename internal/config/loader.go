package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for tyha configuration.
const envPrefix = "TYHA"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	// v merges defaults, the config file and environment variables.
	v *viper.Viper
	// file holds only what the config file itself sets.
	file *viper.Viper

	path  string
	found bool
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, s := range Settings {
		_ = v.BindEnv(s.Key, s.Env)
		if s.Default != "" {
			v.SetDefault(s.Key, s.Default)
		}
	}

	return &Loader{v: v, file: viper.New()}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values. A missing
// file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expandedPath

	found, err := readConfigFile(l.v, expandedPath)
	if err != nil {
		return nil, err
	}
	l.found = found
	if found {
		if _, err := readConfigFile(l.file, expandedPath); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Path returns the expanded path of the last loaded config file.
func (l *Loader) Path() string {
	return l.path
}

// Found reports whether the last Load read an existing file.
func (l *Loader) Found() bool {
	return l.found
}

// FileValue returns the value the config file sets for key, or "".
func (l *Loader) FileValue(key string) string {
	if !l.found || !l.file.IsSet(key) {
		return ""
	}
	return l.file.GetString(key)
}

// Resolve resolves the setting named by key against the given flag value.
// flagSet reports whether the user passed the flag explicitly.
func (l *Loader) Resolve(key, flagValue string, flagSet bool) ResolvedValue {
	setting, ok := LookupSetting(key)
	if !ok {
		setting = Setting{Key: key}
	}
	return Resolve(ResolveOptions{
		Setting:     setting,
		FlagValue:   flagValue,
		FlagSet:     flagSet,
		ConfigValue: l.FileValue(key),
	})
}

// ResolveAll resolves every known setting with no flags applied.
func (l *Loader) ResolveAll() []ResolvedValue {
	values := make([]ResolvedValue, 0, len(Settings))
	for _, s := range Settings {
		values = append(values, l.Resolve(s.Key, "", false))
	}
	return values
}

func readConfigFile(v *viper.Viper, path string) (bool, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file: %w", err)
	}
	return true, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
