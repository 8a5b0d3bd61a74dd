package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Auth       AuthConfig       `yaml:"auth"`
	Pagination PaginationConfig `yaml:"pagination"`
}

type HTTPConfig struct {
	Address     string   `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	SwaggerDir  string   `yaml:"swagger_dir" env:"HTTP_SWAGGER_DIR" env-default:"docs/swagger"`
	CORSOrigins []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-default:"*"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"GRPC_ADDRESS" env-default:":9090"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port        int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User        string `yaml:"user" env:"POSTGRES_USER" env-default:"airport"`
	Password    string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Name        string `yaml:"name" env:"POSTGRES_DB" env-default:"airport"`
	SSLMode     string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"POSTGRES_AUTO_MIGRATE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr                string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password            string `yaml:"password" env:"REDIS_PASSWORD"`
	DB                  int    `yaml:"db" env:"REDIS_DB"`
	IdempotencyTTLHours int    `yaml:"idempotency_ttl_hours" env:"REDIS_IDEMPOTENCY_TTL_HOURS" env-default:"24"`
}

func (r RedisConfig) IdempotencyTTL() time.Duration {
	return time.Duration(r.IdempotencyTTLHours) * time.Hour
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	OrdersTopic        string   `yaml:"orders_topic" env:"KAFKA_ORDERS_TOPIC" env-default:"orders"`
	NotificationsTopic string   `yaml:"notifications_topic" env:"KAFKA_NOTIFICATIONS_TOPIC" env-default:"notifications"`
	GroupID            string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"airport-notifications"`
	PublishTimeoutMs   int      `yaml:"publish_timeout_ms" env:"KAFKA_PUBLISH_TIMEOUT_MS" env-default:"3000"`
}

func (k KafkaConfig) PublishTimeout() time.Duration {
	return time.Duration(k.PublishTimeoutMs) * time.Millisecond
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret" env:"JWT_SECRET"`
	AccessTTLMinutes int    `yaml:"access_ttl_minutes" env:"JWT_ACCESS_TTL_MINUTES" env-default:"5"`
	RefreshTTLDays   int    `yaml:"refresh_ttl_days" env:"JWT_REFRESH_TTL_DAYS" env-default:"1"`
	BcryptCost       int    `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

func (a AuthConfig) AccessTTL() time.Duration {
	return time.Duration(a.AccessTTLMinutes) * time.Minute
}

func (a AuthConfig) RefreshTTL() time.Duration {
	return time.Duration(a.RefreshTTLDays) * 24 * time.Hour
}

type PaginationConfig struct {
	PageSize    int `yaml:"page_size" env:"PAGE_SIZE" env-default:"10"`
	MaxPageSize int `yaml:"max_page_size" env:"MAX_PAGE_SIZE" env-default:"100"`
}

// LoadConfig reads the YAML file at path and then applies environment
// overrides and defaults. An empty path loads from the environment only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (JWT_SECRET) is required")
	}
	if c.Pagination.PageSize <= 0 || c.Pagination.MaxPageSize < c.Pagination.PageSize {
		return fmt.Errorf("invalid pagination: page_size=%d max_page_size=%d", c.Pagination.PageSize, c.Pagination.MaxPageSize)
	}
	if len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required")
	}
	return nil
}
