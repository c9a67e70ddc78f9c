package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/hsaberwal/serunner/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"ratelimit"`
	Matching     sharedConfig.MatchingConfig     `mapstructure:"matching"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	Generator    sharedConfig.GeneratorConfig    `mapstructure:"generator"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath, when set, points at an explicit YAML file.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("SERUNNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "serunner_dev")
	v.SetDefault("database.sqlite_path", "serunner.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.check_match_per_minute", 60)
	v.SetDefault("ratelimit.generate_per_minute", 5)
	v.SetDefault("ratelimit.generate_per_hour", 30)

	v.SetDefault("matching.lookback_limit", 50)
	v.SetDefault("matching.learning_context_limit", 10)
	v.SetDefault("matching.past_setups_limit", 3)
	v.SetDefault("matching.past_setup_min_rating", 4)

	v.SetDefault("subscription.plans.free.generations", 2)
	v.SetDefault("subscription.plans.free.learning", 3)
	v.SetDefault("subscription.plans.basic.generations", 15)
	v.SetDefault("subscription.plans.basic.learning", 20)
	v.SetDefault("subscription.plans.pro.generations", -1)
	v.SetDefault("subscription.plans.pro.learning", -1)
	v.SetDefault("subscription.plans.admin.generations", -1)
	v.SetDefault("subscription.plans.admin.learning", -1)

	v.SetDefault("generator.base_url", "https://api.anthropic.com/v1/messages")
	v.SetDefault("generator.model", "claude-sonnet-4-20250514")
	v.SetDefault("generator.max_tokens", 4096)
	v.SetDefault("generator.timeout_seconds", 90)
	v.SetDefault("generator.knowledge_path", "")
}
