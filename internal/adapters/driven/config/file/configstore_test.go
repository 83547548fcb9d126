package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyAPIBaseURL, "https://docs.example.com/api"))
	require.NoError(t, s.Set(KeyPollInterval, 3))
	require.NoError(t, s.Set(KeyNotifyDesktop, true))

	assert.Equal(t, "https://docs.example.com/api", s.GetString(KeyAPIBaseURL))
	assert.Equal(t, 3, s.GetInt(KeyPollInterval))
	assert.True(t, s.GetBool(KeyNotifyDesktop))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", s.GetString("nope"))
	assert.Equal(t, 0, s.GetInt("nope"))
	assert.False(t, s.GetBool("nope"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyAPIToken, 42))
	assert.Equal(t, "", s.GetString(KeyAPIToken))

	require.NoError(t, s.Set(KeyPollInterval, "three"))
	assert.Equal(t, 0, s.GetInt(KeyPollInterval))
}

func TestConfigStore_PersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyAPIBaseURL, "https://docs.example.com/api"))
	require.NoError(t, s.Set(KeyAPIToken, "secret-token"))
	require.NoError(t, s.Set(KeyNotifyGranted, true))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/api", reopened.GetString(KeyAPIBaseURL))
	assert.Equal(t, "secret-token", reopened.GetString(KeyAPIToken))
	assert.True(t, reopened.GetBool(KeyNotifyGranted))
}

func TestConfigStore_WritesGroupedTables(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyAPIBaseURL, "https://docs.example.com/api"))
	require.NoError(t, s.Set(KeyAPIToken, "secret-token"))

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[api]")
	assert.Contains(t, string(raw), "base_url")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyAPIToken, "secret-token"))

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0600))

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, ok := s.Get(KeyAPIBaseURL)
	assert.False(t, ok)
}
