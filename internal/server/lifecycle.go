package server

import (
	"log"
	"runtime"
	"time"

	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// 优雅关闭时轮询回合状态的间隔
const shutdownCheckInterval = 5 * time.Second

// monitorStats 定期监控服务器状态
func (s *Server) monitorStats() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Printf("📊 [监控] 在线: %d | Goroutines: %d | 活跃连接: %d/%d | 内存: %.2f MB",
			s.GetOnlineCount(),
			runtime.NumGoroutine(),
			len(s.semaphore),
			s.maxConnections,
			float64(m.Alloc)/1024/1024)
	}
}

// EnterMaintenanceMode 进入维护模式，停止接受新连接
func (s *Server) EnterMaintenanceMode() {
	s.maintenanceMu.Lock()
	s.maintenanceMode = true
	s.maintenanceMu.Unlock()

	s.broadcastAll(protocol.NewErrorMessageWithText(
		protocol.ErrCodeServerMaintenance,
		"Server entering maintenance, no new connections accepted",
	))

	log.Println("🔧 进入维护模式：停止接受新连接")
}

// IsMaintenanceMode 检查是否在维护模式
func (s *Server) IsMaintenanceMode() bool {
	s.maintenanceMu.RLock()
	defer s.maintenanceMu.RUnlock()
	return s.maintenanceMode
}

// GracefulShutdown 优雅关闭：进入维护模式，等待进行中的回合结束
func (s *Server) GracefulShutdown(timeout time.Duration) {
	s.EnterMaintenanceMode()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(shutdownCheckInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		if !s.session.IsActive() {
			log.Println("✅ 当前没有进行中的回合，开始关闭服务器")
			break
		}
		log.Printf("⏳ 等待第 %d 回合结束...", s.session.Round())
		<-ticker.C
	}

	if s.session.IsActive() {
		log.Printf("⚠️ 超时，第 %d 回合仍在进行，强制关闭", s.session.Round())
	}

	s.broadcastAll(protocol.NewErrorMessageWithText(
		protocol.ErrCodeServerMaintenance,
		"Server shutting down",
	))

	s.Shutdown()
}

// Shutdown 关闭所有连接与依赖
func (s *Server) Shutdown() {
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	if s.redis != nil {
		_ = s.redis.Close()
	}

	log.Println("服务器已关闭")
}

// broadcastAll 给所有连接发送一条消息
func (s *Server) broadcastAll(msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}
