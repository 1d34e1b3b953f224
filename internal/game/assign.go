package game

import (
	"fmt"
	"math/rand"

	"github.com/CaptianCoder/Imposter-good/internal/content"
)

// HiddenWord 词语模式下卧底看到的占位符，真词绝不发给卧底
const HiddenWord = "???"

// ImposterMax 某模式和玩家数下允许的最大卧底数
// 猜谜模式恒为 1，词语模式为 min(玩家数-1, cap)
func ImposterMax(mode string, rosterSize, cap int) int {
	if mode == content.ModeGuessing {
		return 1
	}
	if m := rosterSize - 1; m < cap {
		return m
	}
	return cap
}

// SelectImposters 从玩家中均匀随机选出 count 个卧底
//
// 拒绝采样：重复均匀抽取并跳过重复，直到凑够 count 个。
// 前置条件 count <= len(ids)-1 保证期望迭代数有限；迭代数仍设硬上限，
// 超限时退化为部分 Fisher-Yates 洗牌，结果同样均匀
func SelectImposters(ids []string, count int) (map[string]struct{}, error) {
	n := len(ids)
	if n < 2 || count < 1 || count > n-1 {
		return nil, fmt.Errorf("imposter count %d out of range for %d players", count, n)
	}

	picked := make(map[string]struct{}, count)
	maxAttempts := 32 * n
	for attempts := 0; len(picked) < count && attempts < maxAttempts; attempts++ {
		picked[ids[rand.Intn(n)]] = struct{}{}
	}

	if len(picked) < count {
		// 部分洗牌兜底，O(n) 保证终止
		shuffled := make([]string, n)
		copy(shuffled, ids)
		clear(picked)
		for i := range count {
			j := i + rand.Intn(n-i)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			picked[shuffled[i]] = struct{}{}
		}
	}

	return picked, nil
}

// VisibleContent 计算某角色被允许看到的内容
// 保密规则集中在这里：词语模式卧底永远拿不到真词，
// 猜谜模式每个角色只拿到自己那半个问题
func VisibleContent(role Role, item content.Item) string {
	if item.Mode == content.ModeGuessing {
		if role == RoleImposter {
			return item.Question.Imposter
		}
		return item.Question.Crewmate
	}

	if role == RoleImposter {
		return HiddenWord
	}
	return item.Word
}
