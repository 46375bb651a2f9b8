package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server ServerConfig   `mapstructure:"server"`
	DB     DatabaseConfig `mapstructure:"db"`
	Redis  RedisConfig    `mapstructure:"redis"`
	AI     AIConfig       `mapstructure:"ai"`
	School SchoolConfig   `mapstructure:"school"`
	Log    LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig holds allowed cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig holds SQLite settings. The whole store is one local file.
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// RedisConfig holds optional Redis settings used for AI-route rate limiting.
// An empty Addr disables Redis entirely.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AIConfig holds the remote text-generation backend settings.
// The backend speaks the OpenAI chat-completions protocol.
type AIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Configured reports whether a remote backend credential is present.
func (c *AIConfig) Configured() bool { return c.APIKey != "" }

// SchoolConfig holds the organization identity printed on every document.
type SchoolConfig struct {
	Name       string `mapstructure:"name"`
	POBox      string `mapstructure:"po_box"`
	Location   string `mapstructure:"location"`
	Tel        string `mapstructure:"tel"`
	Email      string `mapstructure:"email"`
	Motto      string `mapstructure:"motto"`
	MemoPrefix string `mapstructure:"memo_prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.path", "school_forms.db")
	v.SetDefault("db.max_open_conns", 5)
	v.SetDefault("db.max_idle_conns", 2)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.model", "Qwen/Qwen3-8B")

	v.SetDefault("school.name", "BISHOP ABIERO SHAURIMOYO SECONDARY SCHOOL")
	v.SetDefault("school.po_box", "P.O Box 1691-40100")
	v.SetDefault("school.location", "Kisumu, Kenya")
	v.SetDefault("school.tel", "Tel: +254 700 123 456")
	v.SetDefault("school.email", "bishopabiero@yahoo.com")
	v.SetDefault("school.motto", "Empowerment and Service")
	v.SetDefault("school.memo_prefix", "BASS")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SCHOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The original deployment exported the NetMind credentials under these
	// names; keep honoring them.
	v.BindEnv("ai.api_key", "SCHOOL_AI_API_KEY", "NETMIND_API_KEY")
	v.BindEnv("ai.base_url", "SCHOOL_AI_BASE_URL", "NETMIND_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file: defaults plus environment are enough.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be between 1 and 65535")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("config: db.path must not be empty")
	}
	if c.School.Name == "" {
		return fmt.Errorf("config: school.name must not be empty")
	}
	return nil
}
