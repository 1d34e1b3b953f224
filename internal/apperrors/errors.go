package apperrors

import (
	"fmt"

	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// GameError 游戏错误（带协议错误码，handler 层据此生成错误消息）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidName      = &GameError{Code: protocol.ErrCodeInvalidName, Message: "Invalid name"}
	ErrLobbyFull        = &GameError{Code: protocol.ErrCodeLobbyFull, Message: "Lobby full"}
	ErrGameInProgress   = &GameError{Code: protocol.ErrCodeGameInProgress, Message: "Game in progress"}
	ErrBadPassword      = &GameError{Code: protocol.ErrCodeBadPassword, Message: "Invalid admin password"}
	ErrUnauthorized     = &GameError{Code: protocol.ErrCodeUnauthorized, Message: "Unauthorized"}
	ErrNotEnoughPlayers = &GameError{Code: protocol.ErrCodeNotEnoughPlayers, Message: "Need at least 2 players"}
	ErrGameNotActive    = &GameError{Code: protocol.ErrCodeGameNotActive, Message: "No active round"}
	ErrNotGuessingMode  = &GameError{Code: protocol.ErrCodeNotGuessingMode, Message: "Only available in guessing mode"}
	ErrNotJoined        = &GameError{Code: protocol.ErrCodeNotJoined, Message: "You have not joined the game"}
)

// NewInvalidImposters 卧底数量不合法，提示允许的区间
func NewInvalidImposters(maxImposters int) *GameError {
	return &GameError{
		Code:    protocol.ErrCodeInvalidImposters,
		Message: fmt.Sprintf("Invalid imposters (1-%d)", maxImposters),
	}
}
