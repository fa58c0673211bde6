package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	body := `{"redisAddr": "redis.internal:6379", "workerName": "EdgeWorker"}`
	require.NoError(t, os.WriteFile(filepath.Join(root, fileName), []byte(body), 0o644))

	cfg, path, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, fileName), path)
	assert.Equal(t, "redis.internal:6379", cfg.RedisAddr)
	assert.Equal(t, "EdgeWorker", cfg.WorkerName)
	// untouched fields keep their defaults
	assert.Equal(t, Default().ResultsChannel, cfg.ResultsChannel)
}

func TestLoadRegistryOverride(t *testing.T) {
	dir := t.TempDir()
	body := `{"registries": {"stakingPrecompiles": [{"address": "0xdead", "name": "Test Handler"}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(body), 0o644))

	cfg, _, err := Load(dir)
	require.NoError(t, err)
	reg := cfg.RegistriesOrDefault()
	require.Len(t, reg.StakingPrecompiles, 1)
	assert.Equal(t, "Test Handler", reg.StakingPrecompiles[0].Name)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{broken"), 0o644))
	_, path, err := Load(dir)
	assert.Error(t, err)
	assert.NotEmpty(t, path)
}
