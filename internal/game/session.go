// Package game 实现回合状态机：大厅、角色分配与按权限过滤的状态广播
package game

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/CaptianCoder/Imposter-good/internal/apperrors"
	"github.com/CaptianCoder/Imposter-good/internal/content"
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/server/storage"
	"github.com/CaptianCoder/Imposter-good/internal/types"
)

// 名字为 admin（不区分大小写）的连接走管理员认证
const adminName = "admin"

// 异步写统计的超时
const statsTimeout = 3 * time.Second

// StatsRecorder 回合结果记录接口
type StatsRecorder interface {
	RecordRound(ctx context.Context, results []storage.RoundResult) error
}

// Options 会话参数
type Options struct {
	AdminPassword string
	MaxPlayers    int
	MinPlayers    int
	MaxImposters  int
}

// Session 唯一的回合会话，进程级单例
//
// 所有命令在同一把锁下完成校验-变更-广播，对外表现为原子操作；
// 命令被拒绝时不产生任何状态变更。广播消息的发送是无阻塞入队，
// 持锁广播即保证了快照顺序与命令顺序一致
type Session struct {
	mu sync.Mutex

	players map[string]*Player   // 连接 ID -> 玩家
	order   []string             // 加入顺序
	admins  map[string]struct{}  // 管理员连接集合

	active    bool
	mode      string
	item      content.Item
	imposters map[string]struct{}
	round     int
	answers   map[string]protocol.AnswerInfo

	server   types.ServerInterface
	provider *content.Provider
	stats    StatsRecorder
	opts     Options
}

// NewSession 创建回合会话
func NewSession(server types.ServerInterface, provider *content.Provider, stats StatsRecorder, opts Options) *Session {
	return &Session{
		players:   make(map[string]*Player),
		admins:    make(map[string]struct{}),
		imposters: make(map[string]struct{}),
		answers:   make(map[string]protocol.AnswerInfo),
		server:    server,
		provider:  provider,
		stats:     stats,
		opts:      opts,
	}
}

// HandleJoin 处理加入命令
// 名字为 admin 时校验密码并授予管理员权限（不创建玩家条目），
// 否则在大厅未满且回合未开始时加入为玩家
func (s *Session) HandleJoin(clientID, name, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)

	if strings.EqualFold(trimmed, adminName) {
		if password != s.opts.AdminPassword {
			return apperrors.ErrBadPassword
		}
		s.admins[clientID] = struct{}{}
		if c := s.server.GetClientByID(clientID); c != nil {
			c.SendMessage(protocol.MustNewMessage(protocol.MsgAdminAuth, protocol.AdminAuthPayload{Success: true}))
		}
		log.Printf("🔑 管理员认证成功: %s", clientID)
		return nil
	}

	if s.active {
		return apperrors.ErrGameInProgress
	}
	if _, rejoin := s.players[clientID]; !rejoin && len(s.players) >= s.opts.MaxPlayers {
		return apperrors.ErrLobbyFull
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return apperrors.ErrInvalidName
	}

	if p, ok := s.players[clientID]; ok {
		p.Name = trimmed
	} else {
		s.players[clientID] = &Player{ID: clientID, Name: trimmed, Role: RoleUnassigned}
		s.order = append(s.order, clientID)
	}

	log.Printf("👋 玩家 %s 加入大厅 (%d/%d)", trimmed, len(s.players), s.opts.MaxPlayers)
	s.broadcastRoster()
	return nil
}

// HandleStartGame 处理开始回合命令（仅管理员）
func (s *Session) HandleStartGame(clientID, category string, imposterCount int, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[clientID]; !ok {
		return apperrors.ErrUnauthorized
	}
	if len(s.players) < s.opts.MinPlayers {
		return apperrors.ErrNotEnoughPlayers
	}

	maxImposters := ImposterMax(mode, len(s.players), s.opts.MaxImposters)
	if imposterCount < 1 || imposterCount > maxImposters {
		return apperrors.NewInvalidImposters(maxImposters)
	}

	imposters, err := SelectImposters(s.order, imposterCount)
	if err != nil {
		// 上面已做区间校验，到这里只可能是编程错误
		return apperrors.NewInvalidImposters(maxImposters)
	}

	s.round++
	s.active = true
	s.mode = mode
	s.item = s.provider.Pick(category, mode)
	s.imposters = imposters
	s.answers = make(map[string]protocol.AnswerInfo)

	// 分配角色并单播各自可见的内容
	for _, id := range s.order {
		p := s.players[id]
		if _, ok := s.imposters[id]; ok {
			p.Role = RoleImposter
		} else {
			p.Role = RoleCrewmate
		}

		if c := s.server.GetClientByID(id); c != nil {
			c.SendMessage(protocol.MustNewMessage(protocol.MsgRoleAssignment, protocol.RoleAssignmentPayload{
				Role:    string(p.Role),
				Content: VisibleContent(p.Role, s.item),
				Mode:    mode,
			}))
		}
	}

	s.broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
		Mode:  mode,
		Round: s.round,
	}))
	s.broadcastRoster()

	log.Printf("🎭 第 %d 回合开始: mode=%s, 玩家=%d, 卧底=%d", s.round, mode, len(s.players), imposterCount)
	return nil
}

// HandleSubmitAnswer 处理答案提交
// 不区分模式：词语模式的提交由客户端界面决定是否展示，服务端一视同仁
func (s *Session) HandleSubmitAnswer(clientID, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return apperrors.ErrGameNotActive
	}
	p, ok := s.players[clientID]
	if !ok {
		return apperrors.ErrNotJoined
	}

	s.answers[clientID] = protocol.AnswerInfo{
		Name:   p.Name,
		Answer: strings.TrimSpace(answer),
		Role:   string(p.Role),
	}

	s.broadcast(protocol.MustNewMessage(protocol.MsgAnswersUpdate, protocol.AnswersUpdatePayload{
		Answers: AnswersView(s.order, s.answers),
	}))
	return nil
}

// HandleReveal 处理问题公开命令（仅管理员，猜谜模式）
func (s *Session) HandleReveal(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[clientID]; !ok {
		return apperrors.ErrUnauthorized
	}
	if !s.active {
		return apperrors.ErrGameNotActive
	}
	if s.mode != content.ModeGuessing {
		return apperrors.ErrNotGuessingMode
	}

	s.broadcast(protocol.MustNewMessage(protocol.MsgQuestionRevealed, protocol.QuestionRevealedPayload{
		Question: protocol.QuestionPair{
			Crewmate: s.item.Question.Crewmate,
			Imposter: s.item.Question.Imposter,
		},
		Answers: AnswersView(s.order, s.answers),
	}))

	log.Printf("📢 第 %d 回合问题已公开", s.round)
	return nil
}

// HandleEndGame 处理结束回合命令（仅管理员）
func (s *Session) HandleEndGame(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[clientID]; !ok {
		return apperrors.ErrUnauthorized
	}

	if s.active && s.stats != nil {
		s.recordRoundLocked()
	}

	s.active = false
	s.imposters = make(map[string]struct{})
	s.answers = make(map[string]protocol.AnswerInfo)
	for _, p := range s.players {
		p.Role = RoleUnassigned
	}

	s.broadcast(protocol.MustNewMessage(protocol.MsgGameEnded, protocol.GameEndedPayload{Round: s.round}))
	s.broadcastRoster()

	log.Printf("🏁 第 %d 回合结束", s.round)
	return nil
}

// HandleDisconnect 处理连接断开
// 彻底移除该连接的所有痕迹：管理员集合、玩家条目、答案、卧底集合。
// 回合本身不因此中止，剩余玩家继续
func (s *Session) HandleDisconnect(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.admins, clientID)

	p, wasPlayer := s.players[clientID]
	if !wasPlayer {
		return
	}

	delete(s.players, clientID)
	delete(s.answers, clientID)
	delete(s.imposters, clientID)
	for i, id := range s.order {
		if id == clientID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	log.Printf("👋 玩家 %s 离开 (%d/%d)", p.Name, len(s.players), s.opts.MaxPlayers)
	s.broadcastRoster()
}

// --- 查询 ---

// IsActive 当前是否有回合进行中
func (s *Session) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Round 当前回合计数
func (s *Session) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// PlayerCount 当前大厅人数
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// PlayerName 查询某连接对应的玩家名字
func (s *Session) PlayerName(clientID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[clientID]
	if !ok {
		return "", false
	}
	return p.Name, true
}

// --- 内部 ---

// broadcastRoster 按权限推送玩家列表：管理员可见角色，其他连接不可见
func (s *Session) broadcastRoster() {
	adminMsg := protocol.MustNewMessage(protocol.MsgPlayersUpdate, protocol.PlayersUpdatePayload{
		Players: RosterView(s.order, s.players, true),
	})
	publicMsg := protocol.MustNewMessage(protocol.MsgPlayersUpdate, protocol.PlayersUpdatePayload{
		Players: RosterView(s.order, s.players, false),
	})

	s.server.ForEachClient(func(c types.ClientInterface) {
		if _, ok := s.admins[c.GetID()]; ok {
			c.SendMessage(adminMsg)
		} else {
			c.SendMessage(publicMsg)
		}
	})
}

// broadcast 发送给所有连接
func (s *Session) broadcast(msg *protocol.Message) {
	s.server.ForEachClient(func(c types.ClientInterface) {
		c.SendMessage(msg)
	})
}

// recordRoundLocked 异步记录回合结果，不在锁内做 Redis I/O
func (s *Session) recordRoundLocked() {
	results := make([]storage.RoundResult, 0, len(s.players))
	for _, id := range s.order {
		p := s.players[id]
		if p.Role == RoleUnassigned {
			continue
		}
		results = append(results, storage.RoundResult{
			Name:        p.Name,
			WasImposter: p.Role == RoleImposter,
		})
	}
	if len(results) == 0 {
		return
	}

	recorder := s.stats
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		defer cancel()
		if err := recorder.RecordRound(ctx, results); err != nil {
			log.Printf("⚠️ 统计写入失败: %v", err)
		}
	}()
}
