package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	playerStatsKey = "player:stats:"

	// hash 字段
	fieldTotal    = "total_rounds"
	fieldImposter = "imposter_rounds"
)

// RoundResult 一名玩家在一个回合中的结果
type RoundResult struct {
	Name        string
	WasImposter bool
}

// PlayerStats 玩家累计统计
// 以玩家名字为键：连接身份不跨回合存活，名字是唯一稳定标识
type PlayerStats struct {
	Name           string `json:"name"`
	TotalRounds    int    `json:"total_rounds"`
	ImposterRounds int    `json:"imposter_rounds"`
}

// CrewmateRounds 当船员的回合数
func (s *PlayerStats) CrewmateRounds() int {
	return s.TotalRounds - s.ImposterRounds
}

// StatsManager 玩家统计存储
type StatsManager struct {
	redis *redis.Client
}

// NewStatsManager 创建统计管理器
func NewStatsManager(client *redis.Client) *StatsManager {
	return &StatsManager{redis: client}
}

// RecordRound 记录一个回合的结果
func (sm *StatsManager) RecordRound(ctx context.Context, results []RoundResult) error {
	if sm == nil || sm.redis == nil {
		return nil
	}

	pipe := sm.redis.Pipeline()
	for _, r := range results {
		key := playerStatsKey + r.Name
		pipe.HIncrBy(ctx, key, fieldTotal, 1)
		if r.WasImposter {
			pipe.HIncrBy(ctx, key, fieldImposter, 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetStats 读取玩家累计统计，不存在时返回 nil
func (sm *StatsManager) GetStats(ctx context.Context, name string) (*PlayerStats, error) {
	if sm == nil || sm.redis == nil {
		return nil, nil
	}

	data, err := sm.redis.HGetAll(ctx, playerStatsKey+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	stats := &PlayerStats{Name: name}
	stats.TotalRounds, _ = strconv.Atoi(data[fieldTotal])
	stats.ImposterRounds, _ = strconv.Atoi(data[fieldImposter])
	return stats, nil
}
