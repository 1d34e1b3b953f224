package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 大厅操作
	MsgJoin MessageType = "join" // 加入游戏 / 管理员认证

	// 回合操作
	MsgStartGame      MessageType = "start_game"      // 开始回合（管理员）
	MsgSubmitAnswer   MessageType = "submit_answer"   // 提交答案
	MsgRevealQuestion MessageType = "reveal_question" // 公开问题（管理员，猜谜模式）
	MsgEndGame        MessageType = "end_game"        // 结束回合（管理员）

	// 信息查询
	MsgGetStats MessageType = "get_stats" // 获取个人统计
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected  MessageType = "connected"  // 连接成功
	MsgCategories MessageType = "categories" // 可用词库分类（连接时推送）
	MsgPong       MessageType = "pong"       // 心跳 pong

	// 大厅相关
	MsgAdminAuth     MessageType = "admin_auth"     // 管理员认证结果
	MsgPlayersUpdate MessageType = "players_update" // 玩家列表更新

	// 回合流程
	MsgAck              MessageType = "ack"               // 命令确认
	MsgGameStarted      MessageType = "game_started"      // 回合开始
	MsgRoleAssignment   MessageType = "role_assignment"   // 角色分配（单播）
	MsgAnswersUpdate    MessageType = "answers_update"    // 答案列表更新
	MsgQuestionRevealed MessageType = "question_revealed" // 问题公开
	MsgGameEnded        MessageType = "game_ended"        // 回合结束

	// 信息查询
	MsgStatsResult MessageType = "stats_result" // 个人统计结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
