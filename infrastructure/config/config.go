package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"uitestframework/domain/entities"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "UITEST_"

var (
	ErrMissingDriverPath = errors.New("driver path must be set for a local selenium driver")
	ErrRemoteOnly        = errors.New("browser has no local driver service, set a remote selenium hub")
)

// Config describes how test sessions are launched
type Config struct {
	Backend      entities.Backend `yaml:"backend"`
	Browser      entities.Browser `yaml:"browser"`
	DriverPath   string           `yaml:"driver_path"`
	DriverPort   int              `yaml:"driver_port"`
	RemoteURL    string           `yaml:"remote_url"` // selenium hub, skips the local driver service
	BinaryPath   string           `yaml:"binary_path"`
	Options      []string         `yaml:"options"`
	Headless     bool             `yaml:"headless"`
	ArtifactsDir string           `yaml:"artifacts_dir"`
	LogLevel     string           `yaml:"log_level"`
}

// Default - returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Backend:    entities.BackendSelenium,
		Browser:    entities.BrowserChrome,
		DriverPort: 9515,
		Headless:   true,
		LogLevel:   "info",
	}
}

// Loader loads configuration from defaults, a YAML file and the environment
type Loader struct {
	configPath string
	envFiles   []string
	lookup     func(string) (string, bool)
}

func NewLoader() *Loader {
	return &Loader{lookup: os.LookupEnv}
}

// WithConfigPath sets the YAML file; a missing file is not an error
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvFiles sets the dotenv files loaded before reading the environment
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = files
	return l
}

// WithLookup replaces os.LookupEnv
func (l *Loader) WithLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load - builds the configuration. Priority: defaults, YAML file, environment.
func (l *Loader) Load() (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(l.envFiles...)

	cfg := Default()

	if l.configPath != "" {
		if err := loadFile(l.configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := l.loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (l *Loader) get(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := l.lookup(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func (l *Loader) loadEnv(cfg *Config) error {
	if v, ok := l.get(EnvPrefix + "BACKEND"); ok {
		cfg.Backend = entities.Backend(v)
	}
	if v, ok := l.get(EnvPrefix + "BROWSER"); ok {
		cfg.Browser = entities.Browser(v)
	}
	if v, ok := l.get(EnvPrefix+"DRIVER_PATH", "BROWSER_DRIVER_PATH"); ok {
		cfg.DriverPath = v
	}
	if v, ok := l.get(EnvPrefix + "DRIVER_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sDRIVER_PORT: %w", EnvPrefix, err)
		}
		cfg.DriverPort = port
	}
	if v, ok := l.get(EnvPrefix + "REMOTE_URL"); ok {
		cfg.RemoteURL = v
	}
	if v, ok := l.get(EnvPrefix+"BINARY_PATH", "CHROME_BINARY_PATH"); ok {
		cfg.BinaryPath = v
	}
	if v, ok := l.get(EnvPrefix + "OPTIONS"); ok {
		cfg.Options = splitOptions(v)
	}
	if v, ok := l.get(EnvPrefix + "HEADLESS"); ok {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sHEADLESS: %w", EnvPrefix, err)
		}
		cfg.Headless = headless
	}
	if v, ok := l.get(EnvPrefix + "ARTIFACTS_DIR"); ok {
		cfg.ArtifactsDir = v
	}
	if v, ok := l.get(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

// splitOptions splits a comma separated flag list, keeping order
func splitOptions(v string) []string {
	var opts []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// Validate - normalizes backend and browser identifiers and checks required fields
func (c *Config) Validate() error {
	backend, err := entities.ParseBackend(string(c.Backend))
	if err != nil {
		return err
	}
	c.Backend = backend

	browser, err := entities.ParseBrowser(string(c.Browser))
	if err != nil {
		return err
	}
	c.Browser = browser

	if c.Backend == entities.BackendSelenium && c.RemoteURL == "" {
		if !LocalDriver(c.Browser) {
			return fmt.Errorf("%w: %s", ErrRemoteOnly, c.Browser)
		}
		if c.DriverPath == "" {
			return ErrMissingDriverPath
		}
	}
	if c.DriverPort < 0 || c.DriverPort > 65535 {
		return fmt.Errorf("invalid driver port %d", c.DriverPort)
	}
	return nil
}

// LocalDriver reports whether a selenium driver service can be started
// locally for browser. safaridriver and IEDriverServer do not accept the
// chromedriver flags the service launcher passes.
func LocalDriver(browser entities.Browser) bool {
	switch browser {
	case entities.BrowserSafari, entities.BrowserInternetExplorer:
		return false
	}
	return true
}

// Load - shorthand for NewLoader().WithConfigPath(path).Load()
func Load(path string) (*Config, error) {
	return NewLoader().WithConfigPath(path).Load()
}
