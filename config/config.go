package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name       string `mapstructure:"name"`
		Port       string `mapstructure:"port"`
		Production bool   `mapstructure:"production"`
	} `mapstructure:"app"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Database struct {
		Driver               string        `mapstructure:"driver"`
		Dsn                  string        `mapstructure:"dsn"`
		MaxIdleConns         int           `mapstructure:"max_idle_conns"`
		MaxOpenConns         int           `mapstructure:"max_open_conns"`
		ConnMaxLifetimeHours int           `mapstructure:"conn_max_lifetime_hours"`
		WriteTimeout         time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"database"`
	Provider ProviderConfig `mapstructure:"provider"`
	Docs     struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"docs"`
	Admin struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"admin"`
}

// ProviderConfig 翻译服务的配置, 在构造客户端时显式传入
type ProviderConfig struct {
	Kind    string        `mapstructure:"kind"`
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderGoogle = "google"

	DefaultProviderURL = "https://ai.google.dev/gemini-api/translate"

	envPrefix = "POLYTEACHER"
)

var ErrMissingAPIKey = errors.New("provider api key is not set (GEMINI_API_KEY)")

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "polyteacher")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.production", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "polyteacher.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime_hours", 1)
	v.SetDefault("database.write_timeout", "2s")
	v.SetDefault("provider.kind", ProviderHTTP)
	v.SetDefault("provider.url", DefaultProviderURL)
	v.SetDefault("provider.model", "")
	v.SetDefault("provider.timeout", "20s")
	v.SetDefault("docs.enabled", true)
	v.SetDefault("admin.url", "")
}

// Load 使用viper读取配置文件, path 为空时在 ./config 和 . 下查找 config.yml
// 文件不存在时只用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 密钥沿用外部服务的变量名
	if err := v.BindEnv("provider.api_key", envPrefix+"_PROVIDER_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Provider.Kind = strings.ToLower(strings.TrimSpace(cfg.Provider.Kind))
	cfg.Provider.APIKey = strings.TrimSpace(cfg.Provider.APIKey)
	return cfg, nil
}

// Validate 启动服务前的完整检查, 缺少密钥时直接失败
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	return c.ValidateProvider()
}

func (c *Config) ValidateDatabase() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Dsn == "" {
		return errors.New("database dsn is empty")
	}
	return nil
}

func (c *Config) ValidateProvider() error {
	switch c.Provider.Kind {
	case ProviderHTTP:
		if c.Provider.URL == "" {
			return errors.New("provider url is empty")
		}
	case ProviderOpenAI, ProviderGemini, ProviderGoogle:
	default:
		return fmt.Errorf("unsupported provider kind %q", c.Provider.Kind)
	}
	if c.Provider.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Provider.Timeout <= 0 {
		return errors.New("provider timeout must be positive")
	}
	return nil
}

// Addr 保证端口格式正确
func (c *Config) Addr() string {
	port := strings.TrimSpace(c.App.Port)
	if port == "" {
		return ":8080"
	}
	if !strings.Contains(port, ":") {
		port = ":" + port
	}
	return port
}
