package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

func newBareClient(bufSize int) *Client {
	return &Client{
		ID:   "test-client",
		send: make(chan []byte, bufSize),
	}
}

func TestClientSendMessage_AfterClose(t *testing.T) {
	t.Parallel()

	c := newBareClient(8)
	c.Close()

	// 关闭后发送应被静默丢弃，不写入已关闭的通道
	c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestClientSendMessage_ConcurrentClose(t *testing.T) {
	t.Parallel()

	// 并发 SendMessage 与 Close 不能 panic
	c := newBareClient(4)
	msg := protocol.NewErrorMessage(protocol.ErrCodeUnknown)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.SendMessage(msg)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Close()
	}()

	wg.Wait()

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.True(t, c.closed)
}

func TestClientClose_Idempotent(t *testing.T) {
	t.Parallel()

	c := newBareClient(1)
	c.Close()
	c.Close()
}
