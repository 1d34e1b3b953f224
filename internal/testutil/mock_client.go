//go:build !production

package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言每次调用的测试）
// 并发测试会从多个 goroutine 收消息，所以带锁
type SimpleClient struct {
	ID string

	mu       sync.Mutex
	messages []*protocol.Message
}

func NewSimpleClient(id string) *SimpleClient {
	return &SimpleClient{ID: id}
}

func (m *SimpleClient) GetID() string { return m.ID }

func (m *SimpleClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *SimpleClient) Close() {}

// Messages 返回已收到消息的快照
func (m *SimpleClient) Messages() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*protocol.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// MessagesOfType 按类型过滤已收到的消息
func (m *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range m.Messages() {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}

// LastMessageOfType 返回最后一条指定类型的消息，没有则返回 nil
func (m *SimpleClient) LastMessageOfType(msgType protocol.MessageType) *protocol.Message {
	msgs := m.MessagesOfType(msgType)
	if len(msgs) == 0 {
		return nil
	}
	return msgs[len(msgs)-1]
}
