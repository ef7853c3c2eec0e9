package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port            string        `yaml:"port"`
	JwtTTL          time.Duration `yaml:"jwt_ttl"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	LoginRatePerMin int           `yaml:"login_rate_per_min"` // per-IP budget for login/signup
	MoodSummaryDays int           `yaml:"mood_summary_days"`
}

type Private struct {
	JwtKey   string `yaml:"jwt_key"`
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Port == "" {
		c.Public.Port = "8080"
	}
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = 168 * time.Hour // one week
	}
	if c.Public.LoginRatePerMin == 0 {
		c.Public.LoginRatePerMin = 10
	}
	if c.Public.MoodSummaryDays == 0 {
		c.Public.MoodSummaryDays = 30
	}
	if c.Private.MongoURI == "" {
		c.Private.MongoURI = "mongodb://localhost:27017"
	}
	if c.Private.MongoDB == "" {
		c.Private.MongoDB = "personal_dev_tracker"
	}
	if c.Private.JwtKey == "" {
		panic("jwt_key must be set in private.yaml")
	}
}
