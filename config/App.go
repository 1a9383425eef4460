package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var ServiceName string = "province-exporter"
var Validate = validator.New()

type ProviderConfig struct {
	BaseUrl      string        `mapstructure:"base_url" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=0"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxRedirects int           `mapstructure:"max_redirects" validate:"min=0"`
}

type OutputConfig struct {
	Json   string `mapstructure:"json" validate:"required"`
	Indent int    `mapstructure:"indent" validate:"min=0,max=8"`
	Xlsx   string `mapstructure:"xlsx"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal"`
	File    string `mapstructure:"file"`
	Maxsize int64  `mapstructure:"maxsize"`
	Backups int    `mapstructure:"backups"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host" validate:"required_if=Enabled true"`
	Port     string        `mapstructure:"port" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	Database int           `mapstructure:"database" validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	User     string `mapstructure:"user" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password"`
	Cluster  string `mapstructure:"cluster" validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port" validate:"min=0,max=65535"`
	Keyspace string `mapstructure:"keyspace" validate:"required_if=Enabled true"`
}

type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Output   OutputConfig   `mapstructure:"output"`
	Locale   string         `mapstructure:"locale" validate:"oneof=vi en"`
	Log      LogConfig      `mapstructure:"log"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres_db"`
}

// SetDefaults registers the values used when neither the config file nor
// the environment provides a key. They reproduce a plain JSON export.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider.base_url", "https://api.vnappmob.com/api/v2/province")
	v.SetDefault("provider.timeout", "0s")
	v.SetDefault("provider.user_agent", ServiceName)
	v.SetDefault("provider.max_redirects", 30)
	v.SetDefault("output.json", "vn_provinces_districts.json")
	v.SetDefault("output.indent", 2)
	v.SetDefault("output.xlsx", "")
	v.SetDefault("locale", "vi")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.maxsize", 100*1024*1024)
	v.SetDefault("log.backups", 7)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("postgres_db.enabled", false)
	v.SetDefault("postgres_db.user", "postgres")
	v.SetDefault("postgres_db.password", "")
	v.SetDefault("postgres_db.cluster", "localhost")
	v.SetDefault("postgres_db.port", 5432)
	v.SetDefault("postgres_db.keyspace", "provinces")
}

func InitializeConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if err := Validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	return cfg, nil
}
