package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort      int      `yaml:"http_port" validate:"required"`
	LogLevel      string   `yaml:"log_level"`
	LogJSON       bool     `yaml:"log_json"`
	SecureCookies bool     `yaml:"secure_cookies"`
	CorsOrigins   []string `yaml:"cors_origins"`

	// "natural" (default) or "substring"; substring forces the degraded relevance mode
	SearchMode string `yaml:"search_mode" validate:"omitempty,oneof=natural substring"`

	QueryTimeout time.Duration `yaml:"query_timeout" validate:"required"` // upper bound for a single storage call
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	MaxTitleLength       int `yaml:"max_title_length" validate:"required"`
	MaxDescriptionLength int `yaml:"max_description_length" validate:"required"`
	MaxCommentLength     int `yaml:"max_comment_length" validate:"required"`
	MaxQueryLength       int `yaml:"max_query_length" validate:"required"`
}

type Private struct {
	Pg     Pg            `yaml:"pg"`
	Redis  Redis         `yaml:"redis"`
	JwtKey string        `yaml:"jwt_key" validate:"required"`
	JwtTTL time.Duration `yaml:"jwt_ttl"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

// Redis is optional. Empty Addr keeps rate limiting in process memory.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

// JwtTTL is the lifetime of issued tokens, one day unless configured.
func (c *Config) JwtTTL() time.Duration {
	if c.Private.JwtTTL <= 0 {
		return 24 * time.Hour
	}
	return c.Private.JwtTTL
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
		panic("can't unmarshal config file: " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
