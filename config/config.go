package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Food ordering assistant specifics
	Storage         StorageConfig
	Auth            AuthConfig
	Chat            ChatConfig
	ModelClassifier ModelClassifierConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig points at the SQLite database file.
type StorageConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret string
}

type ChatConfig struct {
	RateLimitPerMin int
}

// ModelClassifierConfig configures the optional external intent model.
// When disabled the assistant runs on pattern classification alone.
type ModelClassifierConfig struct {
	Enabled bool
	URL     string
	Timeout string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")
	if storagePath := viper.GetString("storage_path"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set it in config.yaml or via JWT_SECRET")
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Model classifier (optional)
	cfg.ModelClassifier.Enabled = viper.GetBool("model_classifier.enabled")
	cfg.ModelClassifier.URL = viper.GetString("model_classifier.url")
	cfg.ModelClassifier.Timeout = viper.GetString("model_classifier.timeout")
	if modelURL := viper.GetString("model_classifier_url"); modelURL != "" {
		cfg.ModelClassifier.URL = modelURL
	}
	if cfg.ModelClassifier.Enabled && cfg.ModelClassifier.URL == "" {
		return nil, fmt.Errorf("model_classifier.url is required when model_classifier.enabled is true")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "data/assistant.db")
	viper.SetDefault("chat.rate_limit_per_min", 30)
	viper.SetDefault("model_classifier.enabled", false)
	viper.SetDefault("model_classifier.timeout", "3s")
}
