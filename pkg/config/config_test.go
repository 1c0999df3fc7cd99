package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "text", cfg.Output.ASTFormat)
	assert.False(t, cfg.Output.DumpTokens)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "minicc.toml", `
[log]
level = "debug"
format = "json"

[output]
ast_format = "yaml"
dump_tokens = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.ASTFormat)
	assert.True(t, cfg.Output.DumpTokens)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "minicc.yaml", `
log:
  level: warn
output:
  dump_tokens: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "text", cfg.Output.ASTFormat)
	assert.True(t, cfg.Output.DumpTokens)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{"Bad Level", "a.toml", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"Bad Log Format", "b.toml", "[log]\nformat = \"xml\"\n", "log.format"},
		{"Bad AST Format", "c.yml", "output:\n  ast_format: json\n", "output.ast_format"},
		{"Broken TOML", "d.toml", "[log\n", "failed to parse config"},
		{"Unsupported Extension", "e.ini", "level=info", "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
