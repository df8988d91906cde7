package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Address         string `yaml:"address"`
	PostsPerPage    int    `yaml:"posts_per_page"`
	TemplatesDir    string `yaml:"templates_dir"`
	LogLevel        string `yaml:"log_level"`
	LogJSON         bool   `yaml:"log_json"`
	SecureCookies   bool   `yaml:"secure_cookies"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
	Pg              Pg     `yaml:"pg"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	PgPassword string `yaml:"pg_password"`
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Public.SessionTTLHours) * time.Hour
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
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

// NewForTesting builds a config without touching the filesystem.
func NewForTesting(public Public, private Private) *Config {
	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.PostsPerPage <= 0 {
		c.Public.PostsPerPage = 10
	}
	if c.Public.TemplatesDir == "" {
		c.Public.TemplatesDir = "web/templates"
	}
	if c.Public.Address == "" {
		c.Public.Address = ":8080"
	}
	if c.Public.SessionTTLHours <= 0 {
		c.Public.SessionTTLHours = 720
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}
