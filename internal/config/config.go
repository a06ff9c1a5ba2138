package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type JWTConfig struct {
	SecretKey     string `mapstructure:"secretKey"`
	Issuer        string `mapstructure:"issuer"`
	Audience      string `mapstructure:"audience"`
	ExpiryMinutes int    `mapstructure:"expiryMinutes"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/mokkilicores/")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.dsn", "root:@tcp(127.0.0.1:3306)/mokkilicores?parseTime=true")
	v.SetDefault("db.maxOpenConns", 25)
	v.SetDefault("jwt.issuer", "MokkilicoresExpressAPI")
	v.SetDefault("jwt.audience", "MokkilicoresExpressClient")
	v.SetDefault("jwt.expiryMinutes", 60)
	v.SetDefault("kafka.topic", "pedido-events")

	// Enable environment variable override with MOKKILICORES_ prefix
	v.SetEnvPrefix("MOKKILICORES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt.secretKey is required")
	}

	return &config, nil
}
