package server

import "github.com/CaptianCoder/Imposter-good/internal/types"

// GetOnlineCount 获取在线连接数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// ForEachClient 遍历所有在线连接
// 先在读锁下取快照再调用，回调中可以安全地访问会话状态
func (s *Server) ForEachClient(fn func(types.ClientInterface)) {
	s.clientsMu.RLock()
	snapshot := make([]*Client, 0, len(s.clients))
	for _, client := range s.clients {
		snapshot = append(snapshot, client)
	}
	s.clientsMu.RUnlock()

	for _, client := range snapshot {
		fn(client)
	}
}
