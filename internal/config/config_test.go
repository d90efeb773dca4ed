package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.Equal(t, "zksim", cfg.App.Name)
	require.Contains(t, cfg.App.Banner, "create PATH [DATA] [-e] [-s]")
	require.Contains(t, cfg.App.Banner, "tree [PATH]")
	require.Equal(t, "> ", cfg.Shell.Prompt)
	require.Equal(t, "plain", cfg.Shell.TreeStyle)
	require.Equal(t, "yaml", cfg.Shell.ExportFormat)
	require.NotEmpty(t, cfg.Theme.Err)
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	require.Equal(t, def, cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	configYAML := `shell:
  prompt: "zk> "
  tree_style: box
theme:
  err: "#ff0000"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "zk> ", cfg.Shell.Prompt)
	require.Equal(t, "box", cfg.Shell.TreeStyle)
	require.Equal(t, "#ff0000", cfg.Theme.Err)
	// Untouched keys keep defaults.
	require.Equal(t, "yaml", cfg.Shell.ExportFormat)
	require.Equal(t, "zksim", cfg.App.Name)
	require.Equal(t, "114", cfg.Theme.OK)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("shell:\n  tree_style: fancy\n"), 0o600))

	_, err := Load(cfgPath)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefaultConfigYAMLIsCopy(t *testing.T) {
	a := DefaultConfigYAML()
	require.NotEmpty(t, a)
	a[0] = '#'
	require.NotEqual(t, a[0], DefaultConfigYAML()[0])
}
