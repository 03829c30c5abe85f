package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitestframework/domain/entities"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader().
		WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")).
		WithLookup(envMap(nil)).
		Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "uitest.yaml", `
backend: playwright
browser: firefox
driver_path: /usr/bin/geckodriver
options:
  - --width=800
  - --height=600
log_level: debug
`)

	cfg, err := NewLoader().
		WithConfigPath(path).
		WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")).
		WithLookup(envMap(map[string]string{
			"UITEST_BROWSER":     "safari",
			"CHROME_BINARY_PATH": "/opt/chrome",
			"UITEST_HEADLESS":    "false",
		})).
		Load()
	require.NoError(t, err)

	assert.Equal(t, entities.BackendPlaywright, cfg.Backend)
	assert.Equal(t, entities.BrowserSafari, cfg.Browser)
	assert.Equal(t, "/usr/bin/geckodriver", cfg.DriverPath)
	assert.Equal(t, "/opt/chrome", cfg.BinaryPath)
	assert.Equal(t, []string{"--width=800", "--height=600"}, cfg.Options)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	cfg, err := NewLoader().
		WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")).
		WithLookup(envMap(map[string]string{
			"BROWSER_DRIVER_PATH": "/usr/local/bin/chromedriver",
			"UITEST_DRIVER_PATH":  "/custom/chromedriver",
			"UITEST_OPTIONS":      " --headless, ,--no-sandbox ",
			"UITEST_DRIVER_PORT":  "4444",
		})).
		Load()
	require.NoError(t, err)
	assert.Equal(t, "/custom/chromedriver", cfg.DriverPath)
	assert.Equal(t, []string{"--headless", "--no-sandbox"}, cfg.Options)
	assert.Equal(t, 4444, cfg.DriverPort)
}

func TestLoadDotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "UITEST_TEST_DOTENV_BROWSER=opera\n")
	t.Cleanup(func() { os.Unsetenv("UITEST_TEST_DOTENV_BROWSER") })

	_, err := NewLoader().WithEnvFiles(envFile).WithLookup(envMap(nil)).Load()
	require.NoError(t, err)
	assert.Equal(t, "opera", os.Getenv("UITEST_TEST_DOTENV_BROWSER"))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad port", env: map[string]string{"UITEST_DRIVER_PORT": "abc"}},
		{name: "bad headless", env: map[string]string{"UITEST_HEADLESS": "maybe"}},
		{name: "bad yaml", file: "options: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader().
				WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")).
				WithLookup(envMap(tt.env))
			if tt.file != "" {
				l = l.WithConfigPath(writeFile(t, "bad.yaml", tt.file))
			}
			_, err := l.Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		browser entities.Browser
	}{
		{
			name:    "empty browser defaults to chrome",
			cfg:     Config{DriverPath: "/bin/chromedriver"},
			browser: entities.BrowserChrome,
		},
		{
			name:    "case insensitive browser",
			cfg:     Config{Browser: "Firefox", DriverPath: "/bin/geckodriver"},
			browser: entities.BrowserFirefox,
		},
		{
			name:    "unknown browser",
			cfg:     Config{Browser: "netscape", DriverPath: "/bin/driver"},
			wantErr: entities.ErrUnknownBrowser,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "puppeteer"},
			wantErr: entities.ErrUnknownBackend,
		},
		{
			name:    "selenium needs a driver",
			cfg:     Config{},
			wantErr: ErrMissingDriverPath,
		},
		{
			name:    "remote selenium needs no driver",
			cfg:     Config{RemoteURL: "http://hub:4444/wd/hub"},
			browser: entities.BrowserChrome,
		},
		{
			name:    "local safari driver",
			cfg:     Config{Browser: "safari", DriverPath: "/usr/bin/safaridriver"},
			wantErr: ErrRemoteOnly,
		},
		{
			name:    "local internet explorer driver",
			cfg:     Config{Browser: "internet_explorer"},
			wantErr: ErrRemoteOnly,
		},
		{
			name:    "remote safari",
			cfg:     Config{Browser: "safari", RemoteURL: "http://hub:4444/wd/hub"},
			browser: entities.BrowserSafari,
		},
		{
			name:    "playwright needs no driver",
			cfg:     Config{Backend: "playwright", Browser: "safari"},
			browser: entities.BrowserSafari,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.browser, cfg.Browser)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", logger.GetLevel().String())

	_, err = NewLogger("loud", nil)
	assert.Error(t, err)
}
