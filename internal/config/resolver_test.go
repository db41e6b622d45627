package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOutputDir_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvOutputDir, "/env/reports")

	result := ResolveOutputDir(ResolveOutputDirOptions{
		FlagValue:   "/flag/reports",
		ConfigValue: "/config/reports",
	})

	assert.Equal(t, "/flag/reports", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/reports", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config/reports", result.Shadowed[SourceConfig])
}

func TestResolveOutputDir_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvOutputDir, "/env/reports")

	result := ResolveOutputDir(ResolveOutputDirOptions{ConfigValue: "/config/reports"})

	assert.Equal(t, "/env/reports", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config/reports", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveOutputDir_ConfigFallback(t *testing.T) {
	t.Setenv(EnvOutputDir, "")

	result := ResolveOutputDir(ResolveOutputDirOptions{ConfigValue: "/config/reports"})

	assert.Equal(t, "/config/reports", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveOutputDir_Default(t *testing.T) {
	t.Setenv(EnvOutputDir, "")

	result := ResolveOutputDir(ResolveOutputDirOptions{})

	assert.Equal(t, DefaultOutputDir, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Equal(t, "outputDir", result.Key)
}

func TestResolveOutputDir_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvOutputDir, "")

	result := ResolveOutputDir(ResolveOutputDirOptions{FlagValue: "~/reports"})
	assert.Equal(t, filepath.Join(home, "reports"), result.Value)
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultPath := filepath.Join(home, ".unprops", "config.yaml")

	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
		require.NoError(t, err)

		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, defaultPath, result.Shadowed[SourceDefault])
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Equal(t, "/env/config.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
		assert.Equal(t, defaultPath, result.Shadowed[SourceDefault])
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")

		result, err := ResolveConfigPath(ResolveConfigPathOptions{})
		require.NoError(t, err)

		assert.Equal(t, defaultPath, result.Value)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}
