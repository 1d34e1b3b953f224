// Package server 实现 WebSocket 接入层：连接管理、安全限制与生命周期控制
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/CaptianCoder/Imposter-good/internal/config"
	"github.com/CaptianCoder/Imposter-good/internal/content"
	"github.com/CaptianCoder/Imposter-good/internal/game"
	"github.com/CaptianCoder/Imposter-good/internal/server/handler"
	"github.com/CaptianCoder/Imposter-good/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 来源验证在升级前由 OriginChecker 完成
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	EnableCompression: false,
}

// Server WebSocket 服务器
type Server struct {
	config   *config.Config
	redis    *redis.Client
	stats    *storage.StatsManager
	provider *content.Provider
	session  *game.Session

	clients   map[string]*Client
	clientsMu sync.RWMutex
	handler   *handler.Handler

	// 安全组件
	rateLimiter    *RateLimiter
	originChecker  *OriginChecker
	messageLimiter *MessageRateLimiter

	// 连接控制
	maxConnections int
	semaphore      chan struct{} // 信号量控制并发连接数

	// 维护模式
	maintenanceMode bool
	maintenanceMu   sync.RWMutex
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	provider, err := content.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("加载词库失败: %w", err)
	}

	s := &Server{
		config:   cfg,
		provider: provider,
		clients:  make(map[string]*Client),
		rateLimiter: NewRateLimiter(
			cfg.Security.RateLimit.MaxPerSecond,
			cfg.Security.RateLimit.MaxPerMinute,
			cfg.Security.RateLimit.BanDurationTime(),
		),
		originChecker:  NewOriginChecker(cfg.Security.AllowedOrigins),
		messageLimiter: NewMessageRateLimiter(cfg.Security.MessageLimit.MaxPerSecond),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}

	// Redis 仅用于统计数据，未配置时统计功能静默禁用
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis 连接失败: %w", err)
		}

		s.redis = rdb
		s.stats = storage.NewStatsManager(rdb)
	}

	// 唯一的回合会话
	s.session = game.NewSession(s, provider, s.stats, game.Options{
		AdminPassword: cfg.Game.AdminPassword,
		MaxPlayers:    cfg.Game.MaxPlayers,
		MinPlayers:    cfg.Game.MinPlayers,
		MaxImposters:  cfg.Game.MaxImposters,
	})

	s.handler = handler.NewHandler(handler.HandlerDeps{
		Server:  s,
		Session: s.session,
		Stats:   s.stats,
	})

	log.Printf("🔒 安全配置: 连接限制=%d/s, 消息限制=%d/s, 最大连接数=%d",
		cfg.Security.RateLimit.MaxPerSecond, cfg.Security.MessageLimit.MaxPerSecond, cfg.Server.MaxConnections)

	return s, nil
}

// Session 返回回合会话
func (s *Server) Session() *game.Session {
	return s.session
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/ws", s.handleWebSocket)
	router.HandlerFunc(http.MethodGet, "/health", s.handleHealth)
	router.HandlerFunc(http.MethodGet, "/qr", s.handleQR)

	// 启动监控 goroutine
	go s.monitorStats()

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}
	return server.ListenAndServe()
}
