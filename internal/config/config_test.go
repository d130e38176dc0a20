package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/herobg"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.False(t, cfg.SMTP.Configured())
	assert.True(t, cfg.Admin.Defaulted)
	assert.True(t, cfg.GeneratedHashSalt)
	assert.Len(t, cfg.HashSalt, 32)
	assert.Equal(t, herobg.DefaultPrimaryToken, cfg.Theme.Primary)
	assert.Equal(t, 5, cfg.Contact.MaxPerWindow)
	assert.Equal(t, 24*time.Hour, cfg.Contact.Window)
	assert.Equal(t, 30, cfg.Hero.FPS)
}

func TestLoad_Env(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(env(map[string]string{
		"PORT":           "9000",
		"DATABASE_PATH":  "/tmp/site.db",
		"SMTP_HOST":      "mail.example.com",
		"SMTP_PORT":      "2525",
		"SMTP_USER":      "site@example.com",
		"SMTP_PASS":      "secret",
		"ADMIN_USERNAME": "root",
		"ADMIN_PASSWORD": "hunter2",
		"HASH_SALT":      "pepper",
		"LOG_LEVEL":      "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/site.db", cfg.DatabasePath)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "site@example.com", cfg.SMTP.To)
	assert.Equal(t, Admin{Username: "root", Password: "hunter2"}, cfg.Admin)
	assert.Equal(t, "pepper", cfg.HashSalt)
	assert.False(t, cfg.GeneratedHashSalt)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
}

func TestLoad_TOMLFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[theme]
primary = "262 83% 58%"

[contact]
max_per_window = 3
window = "12h"

[hero]
fps = 24
max_width = 1920
max_stream = "30s"
`), 0o644))

	cfg, err := LoadFrom(env(map[string]string{
		"SITE_CONFIG":            path,
		"CONTACT_MAX_PER_WINDOW": "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, "262 83% 58%", cfg.Theme.Primary)
	assert.Equal(t, herobg.DefaultAccentToken, cfg.Theme.Accent)
	assert.Equal(t, 4, cfg.Contact.MaxPerWindow, "env overrides file")
	assert.Equal(t, 12*time.Hour, cfg.Contact.Window)
	assert.Equal(t, 24, cfg.Hero.FPS)
	assert.Equal(t, 1920, cfg.Hero.MaxWidth)
	assert.Equal(t, 1600, cfg.Hero.MaxHeight)
	assert.Equal(t, 30*time.Second, cfg.Hero.MaxStream)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[contact]\nwindow = \"soon\"\n"), 0o644))
	zero := filepath.Join(dir, "zero.toml")
	require.NoError(t, os.WriteFile(zero, []byte("[hero]\nfps = 500\n"), 0o644))
	negStream := filepath.Join(dir, "stream.toml")
	require.NoError(t, os.WriteFile(negStream, []byte("[hero]\nmax_stream = \"-5s\"\n"), 0o644))

	tests := map[string]map[string]string{
		"missing explicit file": {"SITE_CONFIG": filepath.Join(dir, "nope.toml")},
		"bad duration":          {"SITE_CONFIG": bad},
		"fps out of range":      {"SITE_CONFIG": zero},
		"negative max stream":   {"SITE_CONFIG": negStream},
		"bad port":              {"PORT": "http"},
		"bad log level":         {"LOG_LEVEL": "loud"},
		"bad limit":             {"CONTACT_MAX_PER_WINDOW": "-1"},
	}
	for name, vars := range tests {
		_, err := LoadFrom(env(vars))
		assert.Error(t, err, name)
	}
}

func TestValidate_MaxStream(t *testing.T) {
	t.Parallel()
	for _, d := range []time.Duration{0, -time.Second} {
		cfg := Default()
		cfg.Hero.MaxStream = d
		err := cfg.Validate()
		require.Error(t, err, d)
		assert.Contains(t, err.Error(), "hero.max_stream")
	}
	assert.NoError(t, Default().Validate())
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.LogLevel = log.WarnLevel
	var buf bytes.Buffer
	l := cfg.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
