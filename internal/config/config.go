package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/vadmin/internal/errors"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "vadmin.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultBasePath is the default admin mount path.
	DefaultBasePath = "/admin"
)

// Config is the vadmin.json project file. It names the entities the panel
// manages and how the preview server runs; component wiring stays in code.
type Config struct {
	// Name is the project name, shown in the shell chrome.
	Name string `json:"name,omitempty"`

	// Port and Host configure the preview server.
	Port int    `json:"port,omitempty"`
	Host string `json:"host,omitempty"`

	// BasePath is the admin mount path.
	BasePath string `json:"basePath,omitempty"`

	// SchemaURL is where the server-declared schema is fetched from.
	// Empty disables schema fetching; resolution uses local config only.
	SchemaURL string `json:"schemaUrl,omitempty"`

	// Collections and Globals name the managed entities.
	Collections []string `json:"collections,omitempty"`
	Globals     []string `json:"globals,omitempty"`

	// Pages declare custom admin pages.
	Pages []PageConfig `json:"pages,omitempty"`

	// Dashboard configures the dashboard grid.
	Dashboard DashboardConfig `json:"dashboard,omitempty"`

	// Upload configures the file staging backend.
	Upload UploadConfig `json:"upload,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PageConfig declares one custom page.
type PageConfig struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DashboardConfig configures the dashboard grid.
type DashboardConfig struct {
	// Columns is the grid width, 12 by default.
	Columns int `json:"columns,omitempty"`

	// Layout is a path to a JSON layout file, resolved relative to the
	// config file. Empty means the layout is declared in code.
	Layout string `json:"layout,omitempty"`
}

// UploadConfig configures the file staging backend.
type UploadConfig struct {
	// Dir is the disk staging directory. Ignored when Bucket is set.
	Dir string `json:"dir,omitempty"`

	// Bucket and Prefix select S3 staging.
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`

	// MaxFileSize is the per-file limit in bytes.
	MaxFileSize int64 `json:"maxFileSize,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Port:     DefaultPort,
		Host:     DefaultHost,
		BasePath: DefaultBasePath,
		Dashboard: DashboardConfig{
			Columns: 12,
		},
		Upload: UploadConfig{
			Dir:         ".vadmin/uploads",
			MaxFileSize: 10 << 20,
		},
	}
}

// Load reads vadmin.json from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the given file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " next to your panel code")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the given path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E102").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E102").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Addr returns the preview server listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LayoutPath resolves the dashboard layout file relative to the config.
// Empty when no layout file is configured.
func (c *Config) LayoutPath() string {
	if c.Dashboard.Layout == "" {
		return ""
	}
	if filepath.IsAbs(c.Dashboard.Layout) {
		return c.Dashboard.Layout
	}
	return filepath.Join(c.Dir(), c.Dashboard.Layout)
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.Dashboard.Columns <= 0 {
		c.Dashboard.Columns = 12
	}
	if c.Upload.Dir == "" && c.Upload.Bucket == "" {
		c.Upload.Dir = ".vadmin/uploads"
	}
	if c.Upload.MaxFileSize <= 0 {
		c.Upload.MaxFileSize = 10 << 20
	}
}
