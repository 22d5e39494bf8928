package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordharvest/internal/dictionary"
	"github.com/at-ishikawa/wordharvest/internal/testutil"
)

// useConfig points the commands at a config file for the duration of the test.
func useConfig(t *testing.T, path string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = path
	t.Cleanup(func() { configFile = oldConfigFile })
}

func setupTestConfigFile(t *testing.T, tmpDir string, pages map[string][]string) *testutil.DefinitionServer {
	t.Helper()
	t.Setenv("DB_PASSWORD", "")
	server := testutil.NewDefinitionServer(t, pages)
	useConfig(t, testutil.SetupTestConfig(t, tmpDir, server.URL+"/definicion"))
	return server
}

func setupBrokenConfigFile(t *testing.T) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store: [[[\n"), 0644))
	useConfig(t, cfgPath)
}

func loadStore(t *testing.T, tmpDir string) dictionary.Dictionary {
	t.Helper()
	store, err := dictionary.NewStore(filepath.Join(tmpDir, "dictionary.json"), nil)
	require.NoError(t, err)
	dict, err := store.Load()
	require.NoError(t, err)
	return dict
}
