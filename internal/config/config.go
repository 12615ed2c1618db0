package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/osutil"
	"github.com/xolan/tog/internal/toggl"
	"github.com/xolan/tog/internal/tui/ui"
)

const (
	// AppName is the application name used for config directory
	AppName = "tog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// CredentialsFile is the name of the JSONC credentials file
	CredentialsFile = "credentials.jsonc"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "TOG_CONFIG_DIR"
	// EnvAPIToken overrides any token found on disk
	EnvAPIToken = "TOG_API_TOKEN"

	// DefaultTimeout bounds each HTTP request to the service
	DefaultTimeout = 15 * time.Second
)

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	// APIToken authenticates against the service; usually kept in credentials.jsonc instead
	APIToken string `toml:"api_token"`
	// BaseURL is the API root without the version segment
	BaseURL string `toml:"base_url"`
	// Timeout bounds a single HTTP request (e.g. "15s")
	Timeout time.Duration `toml:"timeout"`
	// Timezone defines the timezone for day boundaries and clock input (IANA name or "Local")
	Timezone string `toml:"timezone"`
	// Theme names the bubbletint palette for pickers and the watch view
	Theme string `toml:"theme"`
	// Projects is the catalog offered by the start and swap pickers
	Projects catalog.Catalog `toml:"projects"`
}

// Paths locates the files tog reads.
type Paths struct {
	Dir         string
	Config      string
	Credentials string
}

// DefaultConfig returns a Config with every optional field set.
func DefaultConfig() Config {
	return Config{
		BaseURL:  toggl.DefaultBaseURL,
		Timeout:  DefaultTimeout,
		Timezone: "Local",
	}
}

// GetPaths returns the config and credentials paths.
// Uses $TOG_CONFIG_DIR, or os.UserConfigDir()/tog, creating the directory if needed.
func GetPaths() (Paths, error) {
	dir, err := osutil.AppDir(AppName, EnvConfigDir)
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		Dir:         dir,
		Config:      filepath.Join(dir, ConfigFile),
		Credentials: filepath.Join(dir, CredentialsFile),
	}, nil
}

// Load reads a TOML config file over the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("parsing %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Normalize()
	return cfg, nil
}

// Resolve loads the config file, applies the credentials file and the
// environment, and validates the result.
// Token precedence: $TOG_API_TOKEN, credentials.jsonc, config.toml.
func Resolve(paths Paths) (Config, error) {
	cfg, err := Load(paths.Config)
	if err != nil {
		return cfg, err
	}

	token, err := LoadCredentials(paths.Credentials)
	if err != nil {
		return cfg, err
	}
	if token != "" {
		cfg.APIToken = token
	}
	if env := strings.TrimSpace(osutil.Provider.Getenv(EnvAPIToken)); env != "" {
		cfg.APIToken = env
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration in %s: %w", paths.Config, err)
	}
	return cfg, nil
}

// Normalize trims string fields and fills empty optional fields with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.APIToken = strings.TrimSpace(c.APIToken)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	for i := range c.Projects {
		c.Projects[i].Name = strings.TrimSpace(c.Projects[i].Name)
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.APIToken == "" {
		errs = append(errs, fmt.Errorf("api token is missing (set %s, add toggl_api_token to %s, or api_token to %s)",
			EnvAPIToken, CredentialsFile, ConfigFile))
	}

	if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("base_url %q must be an absolute http(s) URL", c.BaseURL))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout %s must be positive", c.Timeout))
	}

	if c.Theme != "" && !ui.IsTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q is not a known bubbletint theme (e.g. %q, %q)", c.Theme, ui.DefaultTheme, "nord"))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[int64]bool)
	for i, p := range c.Projects {
		label := fmt.Sprintf("projects[%d]", i)
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s: id must be positive", label))
		} else if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %d", label, p.ID))
		}
		seen[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", label))
		}
		if p.WorkspaceID <= 0 {
			errs = append(errs, fmt.Errorf("%s: workspace_id must be positive", label))
		}
		for j, a := range p.Activities {
			if strings.TrimSpace(a) == "" {
				errs = append(errs, fmt.Errorf("%s: activities[%d] is blank", label, j))
			}
		}
	}

	return errors.Join(errs...)
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GenerateSampleConfig returns a commented config.toml to start from.
func GenerateSampleConfig() string {
	return `# tog configuration file

# API token from https://track.toggl.com/profile. Prefer keeping it in
# credentials.jsonc ({"toggl_api_token": "..."}) or $TOG_API_TOKEN.
# api_token = ""

# API root (the client appends the version segment)
base_url = "` + toggl.DefaultBaseURL + `"

# Per-request timeout
timeout = "15s"

# Timezone for "today" and HH:MM input: IANA name (e.g., "Europe/Lisbon") or "Local"
timezone = "Local"

# Colour theme for pickers and "tog watch" (any bubbletint id, e.g. "nord")
theme = "dracula"

# One block per project. Each activity becomes one picker entry:
# "Coding @ Example"
[[projects]]
id = 123456
name = "Example"
workspace_id = 654321
activities = ["Coding", "Meeting"]
`
}
