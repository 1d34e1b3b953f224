package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// JoinPayload 加入游戏请求
// 名字为 "admin"（不区分大小写）时走管理员认证，password 必填
type JoinPayload struct {
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// StartGamePayload 开始回合请求
type StartGamePayload struct {
	Category      string `json:"category"`       // 分类，"random" 表示随机
	ImposterCount int    `json:"imposter_count"` // 卧底数量
	Mode          string `json:"mode"`           // imposter / guessing
}

// SubmitAnswerPayload 提交答案请求
type SubmitAnswerPayload struct {
	Answer string `json:"answer"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ConnectionID string `json:"connection_id"`
}

// CategoriesPayload 可用词库分类
type CategoriesPayload struct {
	Imposter []string `json:"imposter"` // 词语模式分类
	Guessing []string `json:"guessing"` // 猜谜模式分类
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// AdminAuthPayload 管理员认证结果
type AdminAuthPayload struct {
	Success bool `json:"success"`
}

// AckPayload 命令确认
type AckPayload struct {
	Action  MessageType `json:"action"`
	Success bool        `json:"success"`
}

// PlayerInfo 玩家信息
// Role 仅在发给管理员的快照中填充，普通玩家看不到他人角色
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// PlayersUpdatePayload 玩家列表更新
type PlayersUpdatePayload struct {
	Players []PlayerInfo `json:"players"`
}

// GameStartedPayload 回合开始通知
type GameStartedPayload struct {
	Mode  string `json:"mode"`
	Round int    `json:"round"`
}

// RoleAssignmentPayload 角色分配通知（单播）
// Content 只包含该玩家被允许看到的内容
type RoleAssignmentPayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Mode    string `json:"mode"`
}

// AnswerInfo 一条答案
type AnswerInfo struct {
	Name   string `json:"name"`
	Answer string `json:"answer"`
	Role   string `json:"role"`
}

// AnswersUpdatePayload 答案列表更新
type AnswersUpdatePayload struct {
	Answers []AnswerInfo `json:"answers"`
}

// QuestionPair 成对问题（猜谜模式）
type QuestionPair struct {
	Crewmate string `json:"crewmate"`
	Imposter string `json:"imposter"`
}

// QuestionRevealedPayload 问题公开通知
type QuestionRevealedPayload struct {
	Question QuestionPair `json:"question"`
	Answers  []AnswerInfo `json:"answers"`
}

// GameEndedPayload 回合结束通知
type GameEndedPayload struct {
	Round int `json:"round"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	Name           string `json:"name"`
	TotalRounds    int    `json:"total_rounds"`    // 总回合数
	ImposterRounds int    `json:"imposter_rounds"` // 当卧底的回合数
	CrewmateRounds int    `json:"crewmate_rounds"` // 当船员的回合数
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
