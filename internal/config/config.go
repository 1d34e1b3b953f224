package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	PublicURL      string `yaml:"public_url"` // 二维码指向的对外地址，留空则按 host:port 生成
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置（仅用于统计数据，留空 addr 则禁用）
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	AdminPassword   string `yaml:"admin_password"`   // 管理员共享密钥
	MaxPlayers      int    `yaml:"max_players"`      // 大厅人数上限
	MinPlayers      int    `yaml:"min_players"`      // 开局所需最少玩家
	MaxImposters    int    `yaml:"max_imposters"`    // 卧底数量硬上限
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // 优雅关闭等待回合结束的秒数
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	MessageLimit   MsgLimitConfig  `yaml:"message_limit"`
}

// RateLimitConfig 连接级速率限制
type RateLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	BanDuration  int `yaml:"ban_duration"` // 秒
}

// MsgLimitConfig 消息级速率限制
type MsgLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// BanDurationTime 返回封禁时长
func (c *RateLimitConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Second
}

// ShutdownTimeoutDuration 返回优雅关闭等待时长
func (c *GameConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           3000,
			MaxConnections: 128,
		},
		Game: GameConfig{
			AdminPassword:   "admin123",
			MaxPlayers:      6,
			MinPlayers:      2,
			MaxImposters:    5,
			ShutdownTimeout: 300,
		},
		Security: SecurityConfig{
			RateLimit: RateLimitConfig{
				MaxPerSecond: 5,
				MaxPerMinute: 60,
				BanDuration:  300,
			},
			MessageLimit: MsgLimitConfig{
				MaxPerSecond: 20,
			},
		},
	}
}
