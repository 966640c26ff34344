package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ALLIANCE_SITE_CONFIG"
	wordpressURLEnv   = "WORDPRESS_API_URL"
	disableEnv        = "DISABLE_WORDPRESS"
	adminURLEnv       = "WORDPRESS_ADMIN_URL"
	publicAdminURLEnv = "NEXT_PUBLIC_WORDPRESS_ADMIN_URL"
	logLevelEnv       = "LOG_LEVEL"
	httpAddrEnv       = "HTTP_ADDR"

	defaultAdminURL = "http://localhost/wordpress/wp-admin"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	WordPress WordPressConfig `yaml:"wordpress"`
	Site      SiteConfig      `yaml:"site"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WordPressConfig wires the headless CMS integration.
type WordPressConfig struct {
	APIURL         string        `yaml:"apiUrl"`
	Disabled       bool          `yaml:"disabled"`
	AdminURL       string        `yaml:"adminUrl"`
	MenuID         string        `yaml:"menuId"`
	ProbeTimeout   time.Duration `yaml:"probeTimeout"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	// ReprobeInterval re-checks availability periodically; zero keeps the first verdict.
	ReprobeInterval time.Duration `yaml:"reprobeInterval"`
}

// SiteConfig carries page metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	return LoadFile(os.Getenv(configPathEnv))
}

// LoadFile is Load with an explicit file path; an empty path skips the file.
func LoadFile(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(wordpressURLEnv); v != "" {
		c.WordPress.APIURL = v
	}

	if v, ok := os.LookupEnv(disableEnv); ok {
		c.WordPress.Disabled = strings.EqualFold(strings.TrimSpace(v), "true")
	}

	if v := os.Getenv(publicAdminURLEnv); v != "" {
		c.WordPress.AdminURL = v
	}
	if v := os.Getenv(adminURLEnv); v != "" {
		c.WordPress.AdminURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.WordPress.APIURL != "" {
		base.WordPress.APIURL = override.WordPress.APIURL
	}
	if override.WordPress.Disabled {
		base.WordPress.Disabled = true
	}
	if override.WordPress.AdminURL != "" {
		base.WordPress.AdminURL = override.WordPress.AdminURL
	}
	if override.WordPress.MenuID != "" {
		base.WordPress.MenuID = override.WordPress.MenuID
	}
	if override.WordPress.ProbeTimeout > 0 {
		base.WordPress.ProbeTimeout = override.WordPress.ProbeTimeout
	}
	if override.WordPress.RequestTimeout > 0 {
		base.WordPress.RequestTimeout = override.WordPress.RequestTimeout
	}
	if override.WordPress.ReprobeInterval > 0 {
		base.WordPress.ReprobeInterval = override.WordPress.ReprobeInterval
	}

	if override.Site.Title != "" {
		base.Site.Title = override.Site.Title
	}
	if override.Site.Description != "" {
		base.Site.Description = override.Site.Description
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server:  ServerConfig{Addr: ":3000"},
		Logging: LoggingConfig{Level: "info"},
		WordPress: WordPressConfig{
			AdminURL:       defaultAdminURL,
			MenuID:         "main-menu",
			ProbeTimeout:   3 * time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Site: SiteConfig{
			Title:       "SNB Alliance - Empowering Professionals in Bidding & Recruitment",
			Description: "Join SNB Alliance to become a qualified expert in bidding & recruitment with recognized industry certifications.",
		},
	}
}
