package config

import "time"

// Settings is the user configuration read from config.yaml and BRICKYARD_*
// environment variables.
type Settings struct {
	Mason   MasonSettings   `yaml:"mason" mapstructure:"mason"`
	Status  StatusSettings  `yaml:"status" mapstructure:"status"`
	Prompt  PromptSettings  `yaml:"prompt" mapstructure:"prompt"`
	Watch   WatchSettings   `yaml:"watch" mapstructure:"watch"`
	Logging LoggingSettings `yaml:"logging" mapstructure:"logging"`
}

// MasonSettings configures how the mason executable is invoked.
type MasonSettings struct {
	// Executable is looked up on PATH when it is a bare name.
	Executable string `yaml:"executable" mapstructure:"executable" validate:"required"`
	// InstallURL is shown when mason cannot be found.
	InstallURL string `yaml:"install_url" mapstructure:"install_url" validate:"required,url"`
	// OnConflict is passed to `mason make --on-conflict`.
	OnConflict string `yaml:"on_conflict" mapstructure:"on_conflict" validate:"oneof=skip overwrite append prompt"`
}

// StatusSettings configures the success status line.
type StatusSettings struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

// PromptSettings configures interactive prompts.
type PromptSettings struct {
	// TUI selects bubbletea fields over line prompts on a terminal.
	TUI bool `yaml:"tui" mapstructure:"tui"`
}

// WatchSettings configures `brickyard watch`.
type WatchSettings struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce" validate:"gte=0"`
	// Ignore lists directory names that are never descended into.
	Ignore []string `yaml:"ignore" mapstructure:"ignore" validate:"dive,required,excludes=/"`
}

// LoggingSettings configures file-based logging.
// File logging is ENABLED by default.
type LoggingSettings struct {
	FileEnabled *bool `yaml:"file_enabled" mapstructure:"file_enabled"`
	MaxSizeMB   int   `yaml:"max_size_mb" mapstructure:"max_size_mb" validate:"gte=0"`
	MaxAgeDays  int   `yaml:"max_age_days" mapstructure:"max_age_days" validate:"gte=0"`
	MaxBackups  int   `yaml:"max_backups" mapstructure:"max_backups" validate:"gte=0"`
}
