package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Env overrides. Credentials are usually supplied through the
// environment rather than left in the config file.
const (
	configPathEnv  = "CHIRP_CONFIG"
	bearerTokenEnv = "CHIRP_BEARER_TOKEN"
	apiKeyEnv      = "CHIRP_API_KEY"
	apiSecretEnv   = "CHIRP_API_SECRET"
	accessTokenEnv = "CHIRP_ACCESS_TOKEN"
	accessSecEnv   = "CHIRP_ACCESS_SECRET"
)

// Config is the persistent bot configuration. Constructed once at
// startup and passed by reference; nothing in the pipeline reads
// configuration ambiently.
type Config struct {
	Twitter     TwitterConfig  `json:"twitter"`
	NewsSources []string       `json:"news_sources"`
	Schedule    ScheduleConfig `json:"posting_schedule"`
	Content     ContentConfig  `json:"content_settings"`
}

// TwitterConfig holds the X API credentials.
type TwitterConfig struct {
	BearerToken  string `json:"bearer_token"`
	APIKey       string `json:"api_key"`
	APISecret    string `json:"api_secret"`
	AccessToken  string `json:"access_token"`
	AccessSecret string `json:"access_token_secret"`
}

// ScheduleConfig defines when and how often the bot posts.
type ScheduleConfig struct {
	IntervalHours int         `json:"interval_hours"`
	ActiveHours   ActiveHours `json:"active_hours"`
}

// ActiveHours is the inclusive local-hour window in which posting is
// allowed.
type ActiveHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ContentConfig tunes item selection and post generation.
type ContentConfig struct {
	MaxPostLength        int     `json:"max_post_length"`
	ControversyThreshold float64 `json:"controversy_threshold"`
	MinNewsAgeMinutes    int     `json:"min_news_age_minutes"`
}

// Default returns the starting configuration for a fresh install.
func Default() *Config {
	return &Config{
		NewsSources: []string{
			"https://timesofindia.indiatimes.com/rssfeedstopstories.cms",
		},
		Schedule: ScheduleConfig{
			IntervalHours: 2,
			ActiveHours:   ActiveHours{Start: 8, End: 22},
		},
		Content: ContentConfig{
			MaxPostLength:        280,
			ControversyThreshold: 0.7,
			MinNewsAgeMinutes:    15,
		},
	}
}

// Path returns the config file location, honoring CHIRP_CONFIG.
func Path() string {
	if p := os.Getenv(configPathEnv); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".chirp", "config.json")
}

// Load reads the config from disk, falling back to defaults when the
// file does not exist. Environment overrides are applied either way.
// A file that exists but fails to parse is an error, not a silent
// fallback; a broken config should be fixed, not ignored.
func Load() (*Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.ApplyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.ApplyEnv()
	return &cfg, nil
}

// Save writes the config to disk with restrictive permissions; the
// file may hold API credentials.
func (c *Config) Save() error {
	path := Path()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv overlays credential values from the environment. Env always
// wins over the file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(bearerTokenEnv); v != "" {
		c.Twitter.BearerToken = v
	}
	if v := os.Getenv(apiKeyEnv); v != "" {
		c.Twitter.APIKey = v
	}
	if v := os.Getenv(apiSecretEnv); v != "" {
		c.Twitter.APISecret = v
	}
	if v := os.Getenv(accessTokenEnv); v != "" {
		c.Twitter.AccessToken = v
	}
	if v := os.Getenv(accessSecEnv); v != "" {
		c.Twitter.AccessSecret = v
	}
}

// Validate checks the settings the pipeline assumes are sane. Scoring
// and selection never re-validate; this runs once at startup.
func (c *Config) Validate() error {
	var errs []error

	if len(c.NewsSources) == 0 {
		errs = append(errs, errors.New("no news sources configured"))
	}
	if t := c.Content.ControversyThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("controversy_threshold must be between 0 and 1, got %g", t))
	}
	if l := c.Content.MaxPostLength; l <= 0 || l > 280 {
		errs = append(errs, fmt.Errorf("max_post_length must be between 1 and 280, got %d", l))
	}
	if c.Content.MinNewsAgeMinutes <= 0 {
		errs = append(errs, fmt.Errorf("min_news_age_minutes must be positive, got %d", c.Content.MinNewsAgeMinutes))
	}
	if c.Schedule.IntervalHours <= 0 {
		errs = append(errs, fmt.Errorf("interval_hours must be positive, got %d", c.Schedule.IntervalHours))
	}
	if a := c.Schedule.ActiveHours; a.Start < 0 || a.Start > 23 || a.End < 0 || a.End > 23 || a.Start > a.End {
		errs = append(errs, fmt.Errorf("active_hours %d-%d is not a valid hour window", a.Start, a.End))
	}

	return errors.Join(errs...)
}

// ValidateCredentials checks that every X credential is present.
// Separate from Validate so read-only commands can run unconfigured.
func (c *Config) ValidateCredentials() error {
	var errs []error

	required := []struct {
		name  string
		value string
	}{
		{"bearer token", c.Twitter.BearerToken},
		{"api key", c.Twitter.APIKey},
		{"api secret", c.Twitter.APISecret},
		{"access token", c.Twitter.AccessToken},
		{"access token secret", c.Twitter.AccessSecret},
	}
	for _, field := range required {
		if field.value == "" {
			errs = append(errs, fmt.Errorf("missing required credential: %s", field.name))
		}
	}

	return errors.Join(errs...)
}
