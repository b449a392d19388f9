package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radioconsole/persist/pkg/config"
)

func newResolveTestCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("backing", "", "")
	cmd.Flags().Bool("no-mmap", false, "")
	return cmd
}

func TestResolveConfig_DefaultsWhenNoFile(t *testing.T) {
	// Keep a real config at the default path out of the picture.
	t.Setenv("HOME", t.TempDir())
	cmd := newResolveTestCmd()

	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Port, cfg.Port)
}

func TestResolveConfig_ExplicitMissingFileFails(t *testing.T) {
	cmd := newResolveTestCmd()
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")))

	_, err := resolveConfig(cmd)
	assert.Error(t, err)
}

func TestResolveConfig_LoadsFileAndAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	saved := config.DefaultConfig()
	saved.Port = 9999
	require.NoError(t, config.SaveConfig(saved, path))

	cmd := newResolveTestCmd()
	require.NoError(t, cmd.Flags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("backing", "/tmp/other.img"))
	require.NoError(t, cmd.Flags().Set("no-mmap", "true"))

	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "/tmp/other.img", cfg.BackingPath)
	assert.False(t, cfg.UseMmap)
}
