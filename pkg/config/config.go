package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	Environment string `mapstructure:"environment"`
}

func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

// RateLimitConfig carries per endpoint-class limit settings as raw maps;
// the rate limit middleware decodes them into typed limits.
type RateLimitConfig struct {
	SweepInterval string                            `mapstructure:"sweep_interval"`
	Limits        map[string]map[string]interface{} `mapstructure:"limits"`
}

type ChatConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	Model        string  `mapstructure:"model"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
	SystemPrompt string  `mapstructure:"system_prompt"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var globalConfig Config

func Load(configPath string) error {
	err := loadConfigFile(configPath, "config", &globalConfig)

	// Defaults apply even when the config file is missing, so the
	// process still starts with a usable configuration.
	setDefaultValues()

	if err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Registered with viper rather than patched in afterwards, so an
	// explicit zero in the file (e.g. temperature: 0) is preserved.
	viper.SetDefault("chat.max_tokens", 800)
	viper.SetDefault("chat.temperature", 0.6)

	var notFound viper.ConfigFileNotFoundError
	readErr := viper.ReadInConfig()
	if readErr != nil && !errors.As(readErr, &notFound) {
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, readErr)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	if readErr != nil {
		return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
	}
	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Auth.TokenTTLHours == 0 {
		globalConfig.Auth.TokenTTLHours = 24 * 7
	}
	if globalConfig.RateLimit.SweepInterval == "" {
		globalConfig.RateLimit.SweepInterval = "1m"
	}
	if globalConfig.Chat.Provider == "" {
		globalConfig.Chat.Provider = "openai"
	}
	if globalConfig.Chat.Model == "" {
		globalConfig.Chat.Model = "gpt-3.5-turbo"
	}
}

func GetConfig() *Config {
	return &globalConfig
}
