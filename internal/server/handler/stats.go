package handler

import (
	"context"

	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/types"
)

// handleGetStats 获取个人累计统计
// 统计以玩家名字为键，未加入大厅的连接没有可查的名字
func (h *Handler) handleGetStats(client types.ClientInterface) {
	name, ok := h.session.PlayerName(client.GetID())
	if !ok {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeNotJoined, "Join the lobby before requesting stats"))
		return
	}

	playerStats, err := h.stats.GetStats(context.Background(), name)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "Failed to load stats"))
		return
	}

	if playerStats == nil {
		// 没有统计数据，返回空数据
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
			Name: name,
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		Name:           playerStats.Name,
		TotalRounds:    playerStats.TotalRounds,
		ImposterRounds: playerStats.ImposterRounds,
		CrewmateRounds: playerStats.CrewmateRounds(),
	}))
}
