package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	BackendService  BackendServiceConfig  `mapstructure:"backend_service"`
	DatabaseService DatabaseServiceConfig `mapstructure:"database_service"`
	FrontendService FrontendServiceConfig `mapstructure:"frontend_service"`
	Static          StaticConfig          `mapstructure:"static"`
	RPC             RPCConfig             `mapstructure:"rpc"`
	Log             LogConfig             `mapstructure:"log"`
}

type BackendServiceConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseServiceConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type FrontendServiceConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type RPCConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var cfg *Config

// Load loads the configuration from config.yaml, environment variables
// and built-in defaults, in increasing order of precedence for the
// environment over the file. A missing config file is not an error; the
// gateway is expected to run from environment variables alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)
	bindEnv(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend_service.host", "localhost")
	v.SetDefault("backend_service.port", 50050)
	v.SetDefault("database_service.host", "localhost")
	v.SetDefault("database_service.port", 50052)
	v.SetDefault("frontend_service.host", "0.0.0.0")
	v.SetDefault("frontend_service.port", 8501)
	v.SetDefault("static.dir", "web")
	v.SetDefault("rpc.timeout_seconds", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("backend_service.host", "BACKEND_SERVICE_HOST")
	v.BindEnv("backend_service.port", "BACKEND_SERVICE_PORT")
	v.BindEnv("database_service.host", "DATABASE_SERVICE_HOST")
	v.BindEnv("database_service.port", "DATABASE_SERVICE_PORT")
	v.BindEnv("frontend_service.host", "FRONTEND_SERVICE_HOST")
	v.BindEnv("frontend_service.port", "FRONTEND_SERVICE_PORT")
	v.BindEnv("static.dir", "STATIC_DIR")
	v.BindEnv("rpc.timeout_seconds", "RPC_TIMEOUT_SECONDS")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}

// Get returns the loaded configuration
func Get() *Config {
	return cfg
}

// GetBackendServiceAddr returns the backend service address
func (c *Config) GetBackendServiceAddr() string {
	return fmt.Sprintf("%s:%d", c.BackendService.Host, c.BackendService.Port)
}

// GetDatabaseServiceAddr returns the database service address
func (c *Config) GetDatabaseServiceAddr() string {
	return fmt.Sprintf("%s:%d", c.DatabaseService.Host, c.DatabaseService.Port)
}

// GetFrontendServiceAddr returns the frontend service address
func (c *Config) GetFrontendServiceAddr() string {
	return fmt.Sprintf("%s:%d", c.FrontendService.Host, c.FrontendService.Port)
}

// RPCTimeout returns the per-call deadline applied to upstream RPCs.
func (c *Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPC.TimeoutSeconds) * time.Second
}
