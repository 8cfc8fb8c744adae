package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 主配置结构
type Config struct {
	App       App      `mapstructure:"app"`
	Server    Server   `mapstructure:"server"`
	Database  DB       `mapstructure:"database"`
	Cache     Cache    `mapstructure:"cache"`
	Redirect  Redirect `mapstructure:"redirect"`
	Tracker   Tracker  `mapstructure:"tracker"`
	RateLimit Limit    `mapstructure:"rate_limit"`
	Log       Log      `mapstructure:"log"`
}

// 应用配置
type App struct {
	Name    string `mapstructure:"name"`
	Mode    string `mapstructure:"mode"`
	Version string `mapstructure:"version"`
}

// 服务器配置
type Server struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`
	WriteTimeout    int `mapstructure:"write_timeout"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// 数据库配置
type DB struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	Charset      string `mapstructure:"charset"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	OpTimeoutMS  int    `mapstructure:"op_timeout_ms"`
	LogSQL       bool   `mapstructure:"log_sql"`
}

// OpTimeout 单次存储操作的超时时间
func (d DB) OpTimeout() time.Duration {
	return time.Duration(d.OpTimeoutMS) * time.Millisecond
}

// 缓存配置（Redis）
type Cache struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// TTL 短链缓存的过期时间
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// 跳转响应方式
const (
	RedirectModeHTTP = "http"
	RedirectModeJSON = "json"
)

// 跳转配置
type Redirect struct {
	Mode string `mapstructure:"mode"`
}

// 点击记录配置
type Tracker struct {
	BufferSize  int `mapstructure:"buffer_size"`
	WorkerCount int `mapstructure:"worker_count"`
}

// 限流配置
type Limit struct {
	Enabled   bool     `mapstructure:"enabled"`
	Requests  int64    `mapstructure:"requests_per_second"`
	Burst     int64    `mapstructure:"burst"`
	SkipPaths []string `mapstructure:"skip_paths"`
}

// 日志配置
type Log struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	Console    bool   `mapstructure:"console"`
}

// EnvPrefix 环境变量前缀，例如 EDITORIAL_SERVER_PORT
const EnvPrefix = "EDITORIAL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "editorial-platform")
	v.SetDefault("app.mode", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "editorial.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.log_sql", false)
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.op_timeout_ms", 3000)

	v.SetDefault("cache.host", "")
	v.SetDefault("cache.port", 6379)
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl_minutes", 60)

	v.SetDefault("redirect.mode", RedirectModeHTTP)

	v.SetDefault("tracker.buffer_size", 1000)
	v.SetDefault("tracker.worker_count", 4)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 100)
	v.SetDefault("rate_limit.burst", 200)
	v.SetDefault("rate_limit.skip_paths", []string{"/health", "/swagger"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.filename", "./logs/app.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.console", true)
}

// 加载配置
//
// 优先级：环境变量 > 配置文件 > 缺省值。path 为空时在 ./configs 下查找 config.yaml，
// 找不到文件不算错误。
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./configs")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	switch c.Redirect.Mode {
	case RedirectModeHTTP, RedirectModeJSON:
	default:
		return fmt.Errorf("redirect.mode 取值无效: %q", c.Redirect.Mode)
	}
	if c.Tracker.WorkerCount <= 0 {
		return fmt.Errorf("tracker.worker_count 必须大于 0")
	}
	if c.Tracker.BufferSize < 0 {
		return fmt.Errorf("tracker.buffer_size 不能为负数")
	}
	if c.Database.OpTimeoutMS <= 0 {
		return fmt.Errorf("database.op_timeout_ms 必须大于 0")
	}
	return nil
}
