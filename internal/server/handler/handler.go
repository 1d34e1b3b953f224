// Package handler 将协议消息分发到回合会话
package handler

import (
	"errors"
	"log"

	"github.com/CaptianCoder/Imposter-good/internal/apperrors"
	"github.com/CaptianCoder/Imposter-good/internal/game"
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/server/storage"
	"github.com/CaptianCoder/Imposter-good/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server  types.ServerInterface
	Session *game.Session
	Stats   *storage.StatsManager
}

// Handler 消息处理器
type Handler struct {
	server   types.ServerInterface
	session  *game.Session
	stats    *storage.StatsManager
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:  deps.Server,
		session: deps.Session,
		stats:   deps.Stats,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 大厅与回合操作
		protocol.MsgJoin:           h.handleJoin,
		protocol.MsgStartGame:      h.handleStartGame,
		protocol.MsgSubmitAnswer:   h.handleSubmitAnswer,
		protocol.MsgRevealQuestion: func(c types.ClientInterface, _ *protocol.Message) { h.handleReveal(c) },
		protocol.MsgEndGame:        func(c types.ClientInterface, _ *protocol.Message) { h.handleEndGame(c) },

		// 信息查询
		protocol.MsgGetStats: func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (连接: %s)", msg.Type, client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError 将会话错误转换为协议错误消息
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
