//go:build !production

package testutil

import (
	"sync"

	"github.com/CaptianCoder/Imposter-good/internal/types"
)

// SimpleServer 内存中的连接注册表，实现 types.ServerInterface
type SimpleServer struct {
	mu      sync.RWMutex
	clients map[string]types.ClientInterface
	order   []string
}

func NewSimpleServer() *SimpleServer {
	return &SimpleServer{clients: make(map[string]types.ClientInterface)}
}

// Add 注册一个客户端并返回它自己，方便链式使用
func (s *SimpleServer) Add(c types.ClientInterface) types.ClientInterface {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.GetID()]; !ok {
		s.order = append(s.order, c.GetID())
	}
	s.clients[c.GetID()] = c
	return c
}

// Remove 注销一个客户端
func (s *SimpleServer) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *SimpleServer) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *SimpleServer) GetClientByID(id string) types.ClientInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return nil
	}
	return c
}

func (s *SimpleServer) ForEachClient(fn func(types.ClientInterface)) {
	s.mu.RLock()
	snapshot := make([]types.ClientInterface, 0, len(s.order))
	for _, id := range s.order {
		if c, ok := s.clients[id]; ok {
			snapshot = append(snapshot, c)
		}
	}
	s.mu.RUnlock()

	for _, c := range snapshot {
		fn(c)
	}
}
