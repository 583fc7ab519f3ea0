package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct", cfg.Model)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.PlannerWindow)
	assert.Equal(t, 1024, cfg.MaxOutputTokens)
	assert.Equal(t, filepath.Join(dir, "data", "restaurants.db"), cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yml := "model: some/other-model\nplanner_window: 8\nlisten_addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "goodfoods.yml"), []byte(yml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "some/other-model", cfg.Model)
	assert.Equal(t, 8, cfg.PlannerWindow)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	t.Setenv("GOODFOODS_API_KEY", "sk-test")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
}

func TestLoad_PlannerWindowFloor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "goodfoods.yml"), []byte("planner_window: -3\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PlannerWindow)
}
