package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatsManager(t *testing.T) (*StatsManager, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewStatsManager(client), mr
}

func TestStatsManager_RecordAndGet(t *testing.T) {
	t.Parallel()

	sm, _ := newTestStatsManager(t)
	ctx := context.Background()

	err := sm.RecordRound(ctx, []RoundResult{
		{Name: "Alice", WasImposter: true},
		{Name: "Bob", WasImposter: false},
	})
	require.NoError(t, err)

	err = sm.RecordRound(ctx, []RoundResult{
		{Name: "Alice", WasImposter: false},
		{Name: "Bob", WasImposter: false},
	})
	require.NoError(t, err)

	stats, err := sm.GetStats(ctx, "Alice")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalRounds)
	assert.Equal(t, 1, stats.ImposterRounds)
	assert.Equal(t, 1, stats.CrewmateRounds())

	stats, err = sm.GetStats(ctx, "Bob")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalRounds)
	assert.Equal(t, 0, stats.ImposterRounds)
}

func TestStatsManager_GetStats_Unknown(t *testing.T) {
	t.Parallel()

	sm, _ := newTestStatsManager(t)

	stats, err := sm.GetStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestStatsManager_NilClientIsNoop(t *testing.T) {
	t.Parallel()

	var sm *StatsManager

	err := sm.RecordRound(context.Background(), []RoundResult{{Name: "x"}})
	assert.NoError(t, err)

	stats, err := sm.GetStats(context.Background(), "x")
	assert.NoError(t, err)
	assert.Nil(t, stats)
}
