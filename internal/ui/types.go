// Package ui contains the terminal interface for the party client.
package ui

import (
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// GamePhase represents the current UI phase.
type GamePhase int

const (
	PhaseConnecting GamePhase = iota
	PhaseJoin
	PhasePassword
	PhaseLobby
	PhaseRound
	PhaseError
)

// --- Bubbletea messages ---

// ConnectedMsg is sent when the WebSocket connection is established.
type ConnectedMsg struct{}

// ConnectionErrorMsg is sent when the connection fails or drops.
type ConnectionErrorMsg struct {
	Err error
}

// ServerMessage wraps a protocol message received from the server.
type ServerMessage struct {
	Msg *protocol.Message
}

// LatencyMsg carries a round-trip latency sample in milliseconds.
type LatencyMsg struct {
	Latency int64
}

// --- Derived state ---

// RoundState holds everything the client knows about the current round.
type RoundState struct {
	Mode     string
	Round    int
	Role     string
	Content  string
	Answers  []protocol.AnswerInfo
	Question *protocol.QuestionPair // set once revealed (guessing mode)
}

// StatsState holds the last stats result received.
type StatsState struct {
	Loaded         bool
	Name           string
	TotalRounds    int
	ImposterRounds int
	CrewmateRounds int
}
