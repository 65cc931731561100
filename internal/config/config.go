package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/muu0726/Tech-Information/internal/news"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category,omitempty"` // empty: inferred per entry
	Enabled  bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAge     int    `yaml:"max_age,omitempty"`
}

type AIConfig struct {
	Provider  string `yaml:"provider"` // "gemini", "claude" or "openai"
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxPerRun int    `yaml:"max_per_run,omitempty"`
	Delay     string `yaml:"delay,omitempty"`
	Language  string `yaml:"language,omitempty"`
}

type Config struct {
	Feed          string    `yaml:"feed"`
	DataFile      string    `yaml:"data_file"`
	Theme         string    `yaml:"theme"`
	Locale        string    `yaml:"locale"`
	MaxItems      int       `yaml:"max_items,omitempty"`
	SummaryLength int       `yaml:"summary_length,omitempty"`
	FetchTimeout  string    `yaml:"fetch_timeout,omitempty"`
	Keywords      []string  `yaml:"keywords"`
	Sources       []Source  `yaml:"sources"`
	Log           LogConfig `yaml:"log"`
	AI            *AIConfig `yaml:"ai,omitempty"`
}

// AIEnabled returns true if AI is configured with a usable API key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the key from config, then TECHNEWS_AI_KEY, then
// GEMINI_API_KEY for the gemini provider.
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if key := os.Getenv("TECHNEWS_AI_KEY"); key != "" {
		return key
	}
	if c.AI != nil && (c.AI.Provider == "gemini" || c.AI.Provider == "") {
		return os.Getenv("GEMINI_API_KEY")
	}
	return ""
}

// AIMaxPerRun defaults to 20.
func (c *Config) AIMaxPerRun() int {
	if c.AI == nil || c.AI.MaxPerRun <= 0 {
		return 20
	}
	return c.AI.MaxPerRun
}

// AIDelay is the pause between summarize calls, default 2s.
func (c *Config) AIDelay() time.Duration {
	if c.AI == nil || c.AI.Delay == "" {
		return 2 * time.Second
	}
	d, err := time.ParseDuration(c.AI.Delay)
	if err != nil || d < 0 {
		return 2 * time.Second
	}
	return d
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetMaxItems returns the feed document cap, defaulting to 100.
func (c *Config) GetMaxItems() int {
	if c.MaxItems <= 0 {
		return 100
	}
	return c.MaxItems
}

// GetSummaryLength returns the excerpt length in runes, defaulting to 200.
func (c *Config) GetSummaryLength() int {
	if c.SummaryLength <= 0 {
		return 200
	}
	return c.SummaryLength
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func (c *Config) SourceNames() []string {
	var names []string
	for _, s := range c.EnabledSources() {
		names = append(names, s.Name)
	}
	return names
}

// DataPath is where the collector writes the feed document.
func (c *Config) DataPath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	return filepath.Join(xdg.DataHome, "technews", "news.json")
}

// FeedLocation is what the reader loads: the feed setting, else DataPath.
func (c *Config) FeedLocation() string {
	if c.Feed != "" {
		return c.Feed
	}
	return c.DataPath()
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "technews", "config.yaml")
}

func StatePath() string {
	return filepath.Join(xdg.StateHome, "technews", "state.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults still apply if the write fails
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	mergeDefaultSources(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeDefaultSources refreshes user entries that share a name with a
// default source and appends defaults the user has never seen. User-only
// sources and the user's enabled flag are kept.
func mergeDefaultSources(cfg, defaults *Config) {
	index := make(map[string]int, len(cfg.Sources))
	for i, s := range cfg.Sources {
		index[s.Name] = i
	}
	for _, d := range defaults.Sources {
		if i, ok := index[d.Name]; ok {
			cfg.Sources[i].URL = d.URL
			if cfg.Sources[i].Category == "" {
				cfg.Sources[i].Category = d.Category
			}
			continue
		}
		cfg.Sources = append(cfg.Sources, d)
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
		if s.Category != "" {
			if cat, ok := news.ParseCategory(s.Category); !ok || cat == news.All {
				return fmt.Errorf("source %q: unknown category %q (valid: AI, Programming, IT)", s.Name, s.Category)
			}
		}
	}

	switch cfg.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q (valid: dark, light)", cfg.Theme)
	}
	switch cfg.Locale {
	case "", "en", "ja":
	default:
		return fmt.Errorf("unknown locale %q (valid: en, ja)", cfg.Locale)
	}
	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "gemini", "claude", "openai":
		default:
			return fmt.Errorf("unknown AI provider %q (valid: gemini, claude, openai)", cfg.AI.Provider)
		}
	}
	return nil
}
