package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radioconsole/persist/pkg/store"
)

func runShow(t *testing.T, backing string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"show", "--backing", backing, "--no-mmap"})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestShowBacklightTimer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	backing := filepath.Join(t.TempDir(), "backup.img")

	// Fresh backing comes up on defaults: backlight index 7, a 600 s timeout.
	output := runShow(t, backing)
	assert.Contains(t, output, "Backlight timer:      600 s")
	assert.NotContains(t, output, "always on")

	// Index 0 is the "always on" sentinel.
	fb, err := store.NewFileBacking(store.FileBackingConfig{Path: backing})
	require.NoError(t, err)
	st, err := store.NewSettingsStore(store.SettingsStoreConfig{Backing: fb})
	require.NoError(t, err)
	require.NoError(t, st.Open())
	st.SetBacklightTimerIndex(0)
	require.NoError(t, st.Persist())
	require.NoError(t, st.Close())

	output = runShow(t, backing)
	assert.Contains(t, output, "Backlight timer:      always on")
}
