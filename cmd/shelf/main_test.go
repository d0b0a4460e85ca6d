package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yiponline/shelf/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "routes", []byte(out))
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale = "es"

[splash]
delay = "1s"
`), 0o644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	var cfg config.Config
	_, err = toml.Decode(out, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "1s", cfg.Splash.Delay.String())
	assert.Equal(t, "Yiponline", cfg.Window.Title)
}

func TestConfigCommand_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.toml")
	require.NoError(t, os.WriteFile(path, []byte("colour = \"red\"\n"), 0o644))

	_, err := execute(t, "config", "-c", path)
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadConfig_LogLevelFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\npath = \"\"\n"), 0o644))

	cfg, err := loadConfig(&rootOptions{configPath: path, logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
