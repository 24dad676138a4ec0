package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable ApplyEnv reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "RESUME_PROFILE", "CHROME_PATH", "CHROME_TIMEOUT", "STRICT_PAGE_COUNT", "VERBOSE"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"chrome_path": "/usr/bin/chromium",
		"chrome_timeout": "45s",
		"strict_page_count": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
	assert.Equal(t, 45*time.Second, cfg.Timeout())
	assert.True(t, cfg.StrictPageCount)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{}`), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Default()},
		{name: "existing profile", cfg: Config{Port: 80, ProfilePath: profilePath}},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "config error"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "config error"},
		{name: "bad timeout", cfg: Config{ChromeTimeout: "soon"}, wantErr: "invalid 'chrome_timeout'"},
		{name: "zero timeout", cfg: Config{ChromeTimeout: "0s"}, wantErr: "must be positive"},
		{name: "missing profile", cfg: Config{ProfilePath: "/nonexistent/profile.json"}, wantErr: "profile file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 3000, ChromePath: "/opt/chrome"}

	result := cfg.MergeWithDefaults(Default())

	assert.Equal(t, 3000, result.Port, "explicit port should be preserved")
	assert.Equal(t, "/opt/chrome", result.ChromePath)
	assert.Equal(t, "30s", result.ChromeTimeout, "timeout should come from defaults")
	assert.Equal(t, "dist", result.OutputDir)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Port: 3000}
	result := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, Config{Port: 3000}, result)
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("CHROME_TIMEOUT", "10s")
	t.Setenv("STRICT_PAGE_COUNT", "true")

	cfg := &Config{Port: 8080, ChromePath: "/from/file"}
	result := cfg.ApplyEnv()

	assert.Equal(t, 9999, result.Port)
	assert.Equal(t, "10s", result.ChromeTimeout)
	assert.True(t, result.StrictPageCount)
	assert.Equal(t, "/from/file", result.ChromePath, "unset env keeps file value")
	assert.Equal(t, 8080, cfg.Port, "receiver is not modified")
}

func TestApplyEnv_InvalidValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")
	t.Setenv("STRICT_PAGE_COUNT", "maybe")

	result := (&Config{Port: 8080, StrictPageCount: true}).ApplyEnv()
	assert.Equal(t, 8080, result.Port)
	assert.True(t, result.StrictPageCount)
}

func TestResolve(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())

	path := writeConfig(t, `{"port": 9090, "output_dir": "out"}`)
	t.Setenv("PORT", "7070")
	cfg, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port, "env wins over file")
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestResolve_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHROME_TIMEOUT", "later")

	_, err := Resolve("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome_timeout")
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_STRING", "value")
	t.Setenv("CFG_TEST_INT", "42")
	t.Setenv("CFG_TEST_BOOL", "true")
	t.Setenv("CFG_TEST_DURATION", "2m")
	t.Setenv("CFG_TEST_EMPTY", "")

	assert.Equal(t, "value", EnvString("CFG_TEST_STRING", "x"))
	assert.Equal(t, "x", EnvString("CFG_TEST_EMPTY", "x"))
	assert.Equal(t, 42, EnvInt("CFG_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("CFG_TEST_STRING", 1))
	assert.True(t, EnvBool("CFG_TEST_BOOL", false))
	assert.Equal(t, 2*time.Minute, EnvDuration("CFG_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, EnvDuration("CFG_TEST_STRING", time.Second))
}
