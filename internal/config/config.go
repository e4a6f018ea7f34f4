package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/workday-tracker/internal/workday"
)

// Config represents application configuration
type Config struct {
	Logging   LoggingConfig           `mapstructure:"logging"`
	AutoBreak map[string]BucketConfig `mapstructure:"auto_break_defaults"`
	Sites     map[string]SiteConfig   `mapstructure:"sites"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// SiteConfig represents one site's weekly scheduling defaults
type SiteConfig struct {
	ThirdShiftActive  bool `mapstructure:"third_shift_active"`
	FourthShiftActive bool `mapstructure:"fourth_shift_active"`
	FifthShiftActive  bool `mapstructure:"fifth_shift_active"`

	Weekdays map[string]WeekdayConfig `mapstructure:"weekdays"`
}

// WeekdayConfig represents one weekday's defaults for a site
type WeekdayConfig struct {
	PlanHours float64       `mapstructure:"plan_hours"`
	AutoBreak *BucketConfig `mapstructure:"auto_break"`
}

// BucketConfig represents one auto-break bucket rule in minutes
type BucketConfig struct {
	Divider    int `mapstructure:"divider"`
	PerDivider int `mapstructure:"per_divider"`
	UpperLimit int `mapstructure:"upper_limit"`
}

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayIndex maps a lowercase weekday name to its Monday-based index.
func WeekdayIndex(name string) (int, bool) {
	for i, n := range weekdayNames {
		if n == strings.ToLower(name) {
			return i, true
		}
	}
	return 0, false
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-tracker")
		v.AddConfigPath("/etc/workday-tracker")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for name, bucket := range c.AutoBreak {
		if _, ok := WeekdayIndex(name); !ok {
			return fmt.Errorf("auto_break_defaults: unknown weekday %q", name)
		}
		if err := bucket.validate(); err != nil {
			return fmt.Errorf("auto_break_defaults.%s: %w", name, err)
		}
	}

	for siteName, site := range c.Sites {
		for dayName, day := range site.Weekdays {
			if _, ok := WeekdayIndex(dayName); !ok {
				return fmt.Errorf("sites.%s: unknown weekday %q", siteName, dayName)
			}
			if day.PlanHours < 0 || day.PlanHours > 24 {
				return fmt.Errorf("sites.%s.%s: plan_hours must be between 0 and 24", siteName, dayName)
			}
			if day.AutoBreak != nil {
				if err := day.AutoBreak.validate(); err != nil {
					return fmt.Errorf("sites.%s.%s: %w", siteName, dayName, err)
				}
			}
		}
	}

	return nil
}

func (b BucketConfig) validate() error {
	if b.Divider <= 0 {
		return fmt.Errorf("divider must be positive")
	}
	if b.PerDivider < 0 {
		return fmt.Errorf("per_divider must not be negative")
	}
	if b.UpperLimit < 0 {
		return fmt.Errorf("upper_limit must not be negative")
	}
	return nil
}

func (b BucketConfig) bucket() workday.Bucket {
	return workday.Bucket{
		Divider:    b.Divider,
		PerDivider: b.PerDivider,
		UpperLimit: b.UpperLimit,
	}
}

// GlobalBuckets returns the cross-site default auto-break buckets, one per
// weekday (0=Monday ... 6=Sunday).
func (c *Config) GlobalBuckets() [7]workday.Bucket {
	var buckets [7]workday.Bucket
	for name, bucket := range c.AutoBreak {
		if i, ok := WeekdayIndex(name); ok {
			buckets[i] = bucket.bucket()
		}
	}
	return buckets
}

// WeeklyConfig builds the engine's weekly configuration for the named site.
// Unknown sites fall back to a bare two-shift configuration with the global
// break defaults.
func (c *Config) WeeklyConfig(siteName string) workday.WeeklyConfig {
	cfg := workday.WeeklyConfig{AutoBreak: c.GlobalBuckets()}

	site, ok := c.Sites[siteName]
	if !ok {
		return cfg
	}

	cfg.ThirdShiftActive = site.ThirdShiftActive
	cfg.FourthShiftActive = site.FourthShiftActive
	cfg.FifthShiftActive = site.FifthShiftActive

	for name, day := range site.Weekdays {
		i, ok := WeekdayIndex(name)
		if !ok {
			continue
		}
		cfg.DefaultPlanHours[i] = day.PlanHours
		if day.AutoBreak != nil {
			cfg.AutoBreak[i] = day.AutoBreak.bucket()
		}
	}

	return cfg
}

// BreakRules builds the layered break rules for the named site: global
// defaults under the site's per-weekday overrides.
func (c *Config) BreakRules(siteName string) workday.BreakRules {
	rules := workday.BreakRules{Global: c.GlobalBuckets()}

	site, ok := c.Sites[siteName]
	if !ok {
		return rules
	}

	for name, day := range site.Weekdays {
		if day.AutoBreak == nil {
			continue
		}
		if i, ok := WeekdayIndex(name); ok {
			rules.Site[i] = day.AutoBreak.bucket()
		}
	}

	return rules
}
