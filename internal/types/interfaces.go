package types

import (
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
// game.Session 通过它做消息扇出，不关心底层传输
type ServerInterface interface {
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	ForEachClient(fn func(ClientInterface))
}

// ClientInterface 定义客户端连接接口
type ClientInterface interface {
	GetID() string
	SendMessage(msg *protocol.Message)
	Close()
}
