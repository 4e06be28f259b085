package config

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the merged configuration (defaults, file, environment).
	Config *Config

	// Loader answers per-key resolution questions for the loaded file.
	Loader *Loader

	// ConfigPath is the resolved --config path.
	ConfigPath ResolvedValue

	// TemplatesFlag is the raw --templates flag value.
	TemplatesFlag string
	// TemplatesFlagSet reports whether --templates was passed.
	TemplatesFlagSet bool

	Verbose bool

	// NoInput disables interactive prompts even on a terminal.
	NoInput bool
}

// Resolve resolves key against a command flag. Without a loaded config only
// the flag and the setting's default are considered.
func (g *GlobalConfig) Resolve(key, flagValue string, flagSet bool) ResolvedValue {
	if g == nil || g.Loader == nil {
		setting, _ := LookupSetting(key)
		return Resolve(ResolveOptions{Setting: setting, FlagValue: flagValue, FlagSet: flagSet})
	}
	return g.Loader.Resolve(key, flagValue, flagSet)
}

// TemplatesDir returns the resolved template root on disk, or "" for the
// built-in templates.
func (g *GlobalConfig) TemplatesDir() ResolvedValue {
	if g == nil {
		return ResolvedValue{Key: "templatesDir"}
	}
	return g.Resolve("templatesDir", g.TemplatesFlag, g.TemplatesFlagSet)
}
