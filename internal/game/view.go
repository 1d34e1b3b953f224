package game

import (
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// RosterView 计算玩家列表快照
// withRoles 仅对管理员为 true，普通玩家收到的快照不含角色字段
func RosterView(order []string, players map[string]*Player, withRoles bool) []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(order))
	for _, id := range order {
		p, ok := players[id]
		if !ok {
			continue
		}
		info := protocol.PlayerInfo{ID: p.ID, Name: p.Name}
		if withRoles {
			info.Role = string(p.Role)
		}
		infos = append(infos, info)
	}
	return infos
}

// AnswersView 按加入顺序计算答案列表
// 答案附带角色属于刻意设计：提交之后角色不再算秘密
func AnswersView(order []string, answers map[string]protocol.AnswerInfo) []protocol.AnswerInfo {
	out := make([]protocol.AnswerInfo, 0, len(answers))
	for _, id := range order {
		if a, ok := answers[id]; ok {
			out = append(out, a)
		}
	}
	return out
}
