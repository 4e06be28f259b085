// Package config provides configuration loading and management.
package config

// DefaultModulesDir is where modules are created relative to the working
// directory when neither a flag nor the config names another location.
const DefaultModulesDir = "src/modules"

// DefaultProjectTemplate is the project template used when none is chosen.
const DefaultProjectTemplate = "rest"

// DefaultsConfig holds the values offered when a scaffolding flag is omitted.
type DefaultsConfig struct {
	// ProjectTemplate is one of rest, grpc or auth.
	// Env: TYHA_DEFAULT_PROJECT_TEMPLATE, Default: rest
	ProjectTemplate string `json:"projectTemplate,omitempty" yaml:"projectTemplate,omitempty" mapstructure:"projectTemplate"`

	// ModuleType is one of full or only_domain.
	// Env: TYHA_DEFAULT_MODULE_TYPE
	ModuleType string `json:"moduleType,omitempty" yaml:"moduleType,omitempty" mapstructure:"moduleType"`

	// Router is one of rest or grpc.
	// Env: TYHA_DEFAULT_ROUTER
	Router string `json:"router,omitempty" yaml:"router,omitempty" mapstructure:"router"`

	// Repository is one of memory, drizzle or grpc_client.
	// Env: TYHA_DEFAULT_REPOSITORY
	Repository string `json:"repository,omitempty" yaml:"repository,omitempty" mapstructure:"repository"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the tyha CLI configuration.
// Loaded from ~/.tyha/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// TemplatesDir points at a template tree on disk used instead of the
	// built-in templates.
	// Env: TYHA_TEMPLATES_DIR
	TemplatesDir string `json:"templatesDir,omitempty" yaml:"templatesDir,omitempty" mapstructure:"templatesDir"`

	// ModulesDir is the parent directory new modules are created under.
	// Env: TYHA_MODULES_DIR, Default: src/modules
	ModulesDir string `json:"modulesDir,omitempty" yaml:"modulesDir,omitempty" mapstructure:"modulesDir"`

	// Defaults contains the fallback scaffolding choices.
	Defaults DefaultsConfig `json:"defaults,omitempty" yaml:"defaults,omitempty" mapstructure:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `tyha config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		ModulesDir: DefaultModulesDir,
		Defaults: DefaultsConfig{
			ProjectTemplate: DefaultProjectTemplate,
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// WithDefaults returns a copy of the config with unset fields filled in.
func (c *Config) WithDefaults() *Config {
	result := *c
	if result.ModulesDir == "" {
		result.ModulesDir = DefaultModulesDir
	}
	if result.Defaults.ProjectTemplate == "" {
		result.Defaults.ProjectTemplate = DefaultProjectTemplate
	}
	return &result
}
