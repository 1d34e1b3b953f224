package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001
	ErrCodeRateLimit  = 1002 // 速率限制

	ErrCodeInvalidName    = 2001 // 名字不合法
	ErrCodeLobbyFull      = 2002 // 大厅已满
	ErrCodeGameInProgress = 2003 // 回合进行中，禁止加入
	ErrCodeBadPassword    = 2004 // 管理员密码错误

	ErrCodeUnauthorized     = 3001 // 需要管理员权限
	ErrCodeNotEnoughPlayers = 3002 // 玩家数不足
	ErrCodeInvalidImposters = 3003 // 卧底数量不合法
	ErrCodeGameNotActive    = 3004 // 回合未开始
	ErrCodeNotGuessingMode  = 3005 // 仅猜谜模式可用
	ErrCodeNotJoined        = 3006 // 尚未加入游戏

	ErrCodeServerMaintenance = 5003 // 服务器维护中
)

// ErrorMessages 错误码对应的消息（客户端可见，保持英文）
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "Unknown error",
	ErrCodeInvalidMsg:        "Invalid message format",
	ErrCodeRateLimit:         "Too many requests",
	ErrCodeInvalidName:       "Invalid name",
	ErrCodeLobbyFull:         "Lobby full",
	ErrCodeGameInProgress:    "Game in progress",
	ErrCodeBadPassword:       "Invalid admin password",
	ErrCodeUnauthorized:      "Unauthorized",
	ErrCodeNotEnoughPlayers:  "Need at least 2 players",
	ErrCodeInvalidImposters:  "Invalid imposter count",
	ErrCodeGameNotActive:     "No active round",
	ErrCodeNotGuessingMode:   "Only available in guessing mode",
	ErrCodeNotJoined:         "You have not joined the game",
	ErrCodeServerMaintenance: "Server under maintenance",
}
