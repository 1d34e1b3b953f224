package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CaptianCoder/Imposter-good/internal/logger"
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// handleServerMessage applies a server push to the model.
func (m *Model) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgCategories:
		if payload, err := protocol.ParsePayload[protocol.CategoriesPayload](msg); err == nil {
			m.categories = payload
		}

	case protocol.MsgAdminAuth:
		if payload, err := protocol.ParsePayload[protocol.AdminAuthPayload](msg); err == nil && payload.Success {
			m.isAdmin = true
			m.phase = PhaseLobby
			m.input.Placeholder = "start <mode> [category] [count]"
			m.notice = ""
		}

	case protocol.MsgPlayersUpdate:
		if payload, err := protocol.ParsePayload[protocol.PlayersUpdatePayload](msg); err == nil {
			m.players = payload.Players
			// A roster push means our join went through
			if m.phase == PhaseJoin && !m.isAdmin {
				m.phase = PhaseLobby
				m.input.Placeholder = "/stats to view your record"
				m.errMsg = ""
			}
		}

	case protocol.MsgGameStarted:
		if payload, err := protocol.ParsePayload[protocol.GameStartedPayload](msg); err == nil {
			m.round = RoundState{Mode: payload.Mode, Round: payload.Round}
			m.phase = PhaseRound
			m.notice = ""
			if !m.isAdmin {
				m.input.Placeholder = "Type your answer and press enter"
			}
		}

	case protocol.MsgRoleAssignment:
		if payload, err := protocol.ParsePayload[protocol.RoleAssignmentPayload](msg); err == nil {
			m.round.Role = payload.Role
			m.round.Content = payload.Content
			m.round.Mode = payload.Mode
			m.soundManager.Play("role")
		}

	case protocol.MsgAnswersUpdate:
		if payload, err := protocol.ParsePayload[protocol.AnswersUpdatePayload](msg); err == nil {
			m.round.Answers = payload.Answers
		}

	case protocol.MsgQuestionRevealed:
		if payload, err := protocol.ParsePayload[protocol.QuestionRevealedPayload](msg); err == nil {
			m.round.Question = &payload.Question
			m.round.Answers = payload.Answers
			m.soundManager.Play("reveal")
		}

	case protocol.MsgGameEnded:
		m.round = RoundState{}
		m.phase = PhaseLobby
		m.soundManager.Play("end")

	case protocol.MsgStatsResult:
		if payload, err := protocol.ParsePayload[protocol.StatsResultPayload](msg); err == nil {
			m.stats = StatsState{
				Loaded:         true,
				Name:           payload.Name,
				TotalRounds:    payload.TotalRounds,
				ImposterRounds: payload.ImposterRounds,
				CrewmateRounds: payload.CrewmateRounds,
			}
		}

	case protocol.MsgError:
		if payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg); err == nil {
			m.errMsg = payload.Message
			logger.LogError("server error %d: %s", payload.Code, payload.Message)
		}

	case protocol.MsgConnected, protocol.MsgPong, protocol.MsgAck:
		// Handled by the network client or nothing to display

	default:
		logger.LogInfo("unhandled message type: %s", msg.Type)
	}

	return nil
}
