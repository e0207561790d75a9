package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		env         map[string]string
		expect      *Config
		hasError    bool
	}{
		{
			description: "defaults",
			expect:      &Config{Profile: DefaultProfile, Format: "yaml"},
		},
		{
			description: "overrides",
			env:         map[string]string{EnvDebug: "true", EnvProfile: "s3://bucket/game.json", EnvFormat: "json"},
			expect:      &Config{Debug: true, Profile: "s3://bucket/game.json", Format: "json"},
		},
		{
			description: "malformed bool keeps default",
			env:         map[string]string{EnvDebug: "maybe"},
			expect:      &Config{Profile: DefaultProfile, Format: "yaml"},
		},
		{
			description: "unsupported format",
			env:         map[string]string{EnvFormat: "xml"},
			hasError:    true,
		},
		{
			description: "empty profile",
			env:         map[string]string{EnvProfile: ""},
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for _, key := range []string{EnvDebug, EnvProfile, EnvFormat} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range testCase.env {
				t.Setenv(key, value)
			}
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if testCase.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, cfg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvFormat, "")
	require.NoError(t, os.Unsetenv(EnvFormat))
	filename := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(filename, []byte(EnvFormat+"=json\n"), 0644))

	LoadEnv(filename)
	assert.Equal(t, "json", GetEnvString(EnvFormat, "yaml"))
}
