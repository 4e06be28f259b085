package config

import (
	"os"
	"sort"

	"github.com/tyha/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Setting describes one configurable value and where it can come from.
type Setting struct {
	// Key is the dotted path in the config file.
	Key string
	// Env is the environment variable that overrides the file.
	Env string
	// Flag is the command-line flag that overrides everything, if any.
	Flag string
	// Default is used when no other source sets a value.
	Default string
}

// Settings lists every value the CLI resolves, in display order.
var Settings = []Setting{
	{Key: "templatesDir", Env: "TYHA_TEMPLATES_DIR", Flag: "templates"},
	{Key: "modulesDir", Env: "TYHA_MODULES_DIR", Flag: "modules-dir", Default: DefaultModulesDir},
	{Key: "defaults.projectTemplate", Env: "TYHA_DEFAULT_PROJECT_TEMPLATE", Flag: "template", Default: DefaultProjectTemplate},
	{Key: "defaults.moduleType", Env: "TYHA_DEFAULT_MODULE_TYPE"},
	{Key: "defaults.router", Env: "TYHA_DEFAULT_ROUTER", Flag: "router"},
	{Key: "defaults.repository", Env: "TYHA_DEFAULT_REPOSITORY", Flag: "repository"},
	{Key: "log.timestamps", Env: "TYHA_LOG_TIMESTAMPS", Flag: "timestamps", Default: "true"},
}

// LookupSetting returns the setting registered under key.
func LookupSetting(key string) (Setting, bool) {
	for _, s := range Settings {
		if s.Key == key {
			return s, true
		}
	}
	return Setting{}, false
}

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	// Key is the setting key.
	Key string `json:"key"`
	// Value is the winning value.
	Value string `json:"value"`
	// Source indicates where Value came from. Empty when nothing is set.
	Source ConfigSource `json:"source,omitempty"`
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string `json:"shadowed,omitempty"`
}

// ResolveOptions contains the inputs for resolving a single setting.
type ResolveOptions struct {
	Setting Setting
	// FlagValue is the flag value; only considered when FlagSet is true.
	FlagValue string
	FlagSet   bool
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
}

// Resolve applies the precedence flag > env > config > default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Setting.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.Setting.Env != "" {
		envValue = os.Getenv(opts.Setting.Env)
	}

	candidates := []struct {
		source ConfigSource
		value  string
		set    bool
	}{
		{SourceFlag, opts.FlagValue, opts.FlagSet},
		{SourceEnv, envValue, envValue != ""},
		{SourceConfig, opts.ConfigValue, opts.ConfigValue != ""},
		{SourceDefault, opts.Setting.Default, opts.Setting.Default != ""},
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) TYHA_CONFIG env, (3) ~/.tyha/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	result := Resolve(ResolveOptions{
		Setting: Setting{
			Key:     "config",
			Env:     EnvConfig,
			Flag:    "config",
			Default: paths.ConfigFile,
		},
		FlagValue: opts.FlagValue,
		FlagSet:   opts.FlagValue != "",
	})
	if result.Source != SourceDefault {
		result.Shadowed[SourceDefault] = paths.ConfigFile
	}
	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
