package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Log      LogConfig
	Tracing  TracingConfig
	Planner  PlannerConfig
	Warmup   WarmupConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

type UpstreamConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

type CacheConfig struct {
	Capacity     int
	TTL          time.Duration
	RedisEnabled bool
	RedisTTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type PlannerConfig struct {
	TimeZone string
}

// WarmupConfig - фоновое обновление табло популярных остановок
type WarmupConfig struct {
	StopIDs     []int
	Interval    time.Duration
	Concurrency int
}

const (
	DefaultUpstreamBaseURL = "https://reisapi.ruter.no"
	DefaultCacheCapacity   = 200
	DefaultCacheTTL        = 20 * time.Second
)

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путём к файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
			UserAgent:      v.GetString("UPSTREAM_USER_AGENT"),
		},
		Cache: CacheConfig{
			Capacity:     v.GetInt("CACHE_CAPACITY"),
			TTL:          time.Duration(v.GetInt("CACHE_TTL")) * time.Millisecond,
			RedisEnabled: v.GetBool("CACHE_REDIS_ENABLED"),
			RedisTTL:     time.Duration(v.GetInt("CACHE_REDIS_TTL")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("TRACING_ENABLED"),
			Endpoint:    v.GetString("TRACING_ENDPOINT"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
		},
		Planner: PlannerConfig{
			TimeZone: v.GetString("PLANNER_TIMEZONE"),
		},
		Warmup: WarmupConfig{
			Interval:    time.Duration(v.GetInt("WARMUP_INTERVAL")) * time.Second,
			Concurrency: v.GetInt("WARMUP_CONCURRENCY"),
		},
	}

	stopIDs, err := parseIDList(v.GetString("WARMUP_STOP_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid WARMUP_STOP_IDS: %w", err)
	}
	cfg.Warmup.StopIDs = stopIDs

	cfg.setDefaults()

	return cfg, nil
}

// Set default values if not provided
func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.CORSAllowOrigins == "" {
		c.Server.CORSAllowOrigins = "*"
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultUpstreamBaseURL
	}
	if c.Upstream.RequestTimeout == 0 {
		c.Upstream.RequestTimeout = 10 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "transit-graph/1.0"
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = DefaultCacheCapacity
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.RedisTTL == 0 {
		c.Cache.RedisTTL = 60 * time.Second
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "transit-graph"
	}
	if c.Planner.TimeZone == "" {
		c.Planner.TimeZone = "Europe/Oslo"
	}
	if c.Warmup.Interval == 0 {
		c.Warmup.Interval = 15 * time.Second
	}
	if c.Warmup.Concurrency == 0 {
		c.Warmup.Concurrency = 4
	}
}

func parseIDList(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// PlannerLocation загружает часовой пояс планировщика
func (c *Config) PlannerLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Planner.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load planner timezone %q: %w", c.Planner.TimeZone, err)
	}
	return loc, nil
}
