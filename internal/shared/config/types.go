package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the MySQL DSN. Times are parsed as UTC.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// GooseDialect maps the configured driver to the goose dialect name.
func (d *DatabaseConfig) GooseDialect() string {
	if d.Driver == DriverSQLite {
		return "sqlite3"
	}
	return "mysql"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig bounds per-user request rates on the endpoints that hit
// the database scan or the generator.
type RateLimitConfig struct {
	Enabled             bool `mapstructure:"enabled"`
	CheckMatchPerMinute int  `mapstructure:"check_match_per_minute"`
	GeneratePerMinute   int  `mapstructure:"generate_per_minute"`
	GeneratePerHour     int  `mapstructure:"generate_per_hour"`
}

type MatchingConfig struct {
	LookbackLimit        int `mapstructure:"lookback_limit"`
	LearningContextLimit int `mapstructure:"learning_context_limit"`
	PastSetupsLimit      int `mapstructure:"past_setups_limit"`
	PastSetupMinRating   int `mapstructure:"past_setup_min_rating"`
}

// PlanLimitsConfig holds the monthly allowance of one plan; -1 means unlimited.
type PlanLimitsConfig struct {
	Generations int `mapstructure:"generations"`
	Learning    int `mapstructure:"learning"`
}

type SubscriptionConfig struct {
	Plans map[string]PlanLimitsConfig `mapstructure:"plans"`
}

type GeneratorConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	MaxTokens      int    `mapstructure:"max_tokens"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	KnowledgePath  string `mapstructure:"knowledge_path"`
}

func (g *GeneratorConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}
