package handler

import (
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/types"
)

// handleJoin 处理加入请求
func (h *Handler) handleJoin(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.HandleJoin(client.GetID(), payload.Name, payload.Password); err != nil {
		sendError(client, err)
	}
}

// handleStartGame 处理开始回合命令
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.HandleStartGame(client.GetID(), payload.Category, payload.ImposterCount, payload.Mode); err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgAck, protocol.AckPayload{
		Action:  protocol.MsgStartGame,
		Success: true,
	}))
}

// handleSubmitAnswer 处理答案提交
// 拒绝不回错误：提交入口只在回合进行中展示，会话层的拒绝只可能来自竞态
func (h *Handler) handleSubmitAnswer(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SubmitAnswerPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	_ = h.session.HandleSubmitAnswer(client.GetID(), payload.Answer)
}

// handleReveal 处理问题公开命令
func (h *Handler) handleReveal(client types.ClientInterface) {
	if err := h.session.HandleReveal(client.GetID()); err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgAck, protocol.AckPayload{
		Action:  protocol.MsgRevealQuestion,
		Success: true,
	}))
}

// handleEndGame 处理结束回合命令
func (h *Handler) handleEndGame(client types.ClientInterface) {
	if err := h.session.HandleEndGame(client.GetID()); err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgAck, protocol.AckPayload{
		Action:  protocol.MsgEndGame,
		Success: true,
	}))
}
