// Package config defines the zksim configuration file and its embedded
// defaults.
package config

// Config is the merged configuration: embedded defaults overlaid with the
// user's file.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Shell ShellConfig `yaml:"shell"`
	Theme ThemeConfig `yaml:"theme"`
}

// AppConfig holds the text shown when the shell starts.
type AppConfig struct {
	Name   string `yaml:"name"`
	Banner string `yaml:"banner"`
}

// ShellConfig controls the interactive loop.
type ShellConfig struct {
	Prompt       string `yaml:"prompt"`
	TreeStyle    string `yaml:"tree_style"`
	ExportFormat string `yaml:"export_format"`
}

// ThemeConfig holds color tokens (ANSI numbers or hex) for the output tags.
type ThemeConfig struct {
	OK   string `yaml:"ok"`
	Err  string `yaml:"err"`
	Info string `yaml:"info"`
	Data string `yaml:"data"`
}
