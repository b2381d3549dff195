package config

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/mbeoliero/iou/pkg/generic"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	MySql  MySqlConfig  `mapstructure:"mysql"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Http   HttpConfig   `mapstructure:"http"`
	Rpc    RpcConfig    `mapstructure:"rpc"`
	Demo   DemoConfig   `mapstructure:"demo"`
}

type ServerConfig struct {
	Port   int    `mapstructure:"port"`
	NodeId string `mapstructure:"node_id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MySqlConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type HttpConfig struct {
	BaseUrl string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // seconds
}

type RpcConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// DemoConfig seeds the charset cell served by the api.
type DemoConfig struct {
	Seed string `mapstructure:"seed"`
}

var globalConfig *Config

var hostname = generic.Once(func() string {
	name, _ := os.Hostname()
	return name
})

func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 转换时间单位
	cfg.Http.Timeout *= time.Second

	applyDefaults(&cfg)

	globalConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Http.Timeout <= 0 {
		cfg.Http.Timeout = 10 * time.Second
	}
	if cfg.Demo.Seed == "" {
		cfg.Demo.Seed = "hello"
	}

	// 自动生成 NodeID
	if cfg.Server.NodeId == "" {
		cfg.Server.NodeId = hostname() + "-" + uuid.New().String()[:8]
	}
}

func Get() *Config {
	return globalConfig
}

// SetConfig sets the global config (used for testing)
func SetConfig(cfg *Config) {
	globalConfig = cfg
}
