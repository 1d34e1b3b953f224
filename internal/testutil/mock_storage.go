//go:build !production

package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/CaptianCoder/Imposter-good/internal/server/storage"
)

// MockStatsRecorder 统计记录 mock
type MockStatsRecorder struct {
	mock.Mock
}

func (m *MockStatsRecorder) RecordRound(ctx context.Context, results []storage.RoundResult) error {
	args := m.Called(ctx, results)
	return args.Error(0)
}

// CapturingStatsRecorder 记录所有写入的统计结果，供测试同步等待
type CapturingStatsRecorder struct {
	mu      sync.Mutex
	rounds  [][]storage.RoundResult
	signal  chan struct{}
}

func NewCapturingStatsRecorder() *CapturingStatsRecorder {
	return &CapturingStatsRecorder{signal: make(chan struct{}, 16)}
}

func (r *CapturingStatsRecorder) RecordRound(_ context.Context, results []storage.RoundResult) error {
	r.mu.Lock()
	r.rounds = append(r.rounds, results)
	r.mu.Unlock()
	r.signal <- struct{}{}
	return nil
}

// Wait 阻塞到下一次 RecordRound 被调用
func (r *CapturingStatsRecorder) Wait() {
	<-r.signal
}

// Rounds 返回已记录回合的快照
func (r *CapturingStatsRecorder) Rounds() [][]storage.RoundResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]storage.RoundResult, len(r.rounds))
	copy(out, r.rounds)
	return out
}
