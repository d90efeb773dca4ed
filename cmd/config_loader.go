package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/zksim/internal/config"
	"github.com/oakwood-commons/zksim/pkg/settings"
)

// loadConfig merges the embedded defaults, the resolved config file and any
// explicitly set flags, in that order.
func loadConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(resolveConfigPath(configFile))
	if err != nil {
		return cfg, err
	}
	applyFlagOverrides(&cfg, fs)
	return cfg, cfg.Validate()
}

// applyFlagOverrides copies flags the user set on the command line over the
// file values. Unset flags never clobber config.
func applyFlagOverrides(cfg *config.Config, fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	if f := fs.Lookup("prompt"); f != nil && f.Changed {
		cfg.Shell.Prompt = prompt
	}
	if f := fs.Lookup("tree-style"); f != nil && f.Changed {
		cfg.Shell.TreeStyle = treeStyle
	}
}

// resolveConfigPath returns the explicit configFile if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/zksim/config.yaml) or ~/.config/zksim/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
