package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CaptianCoder/Imposter-good/internal/content"
	"github.com/CaptianCoder/Imposter-good/internal/game"
	"github.com/CaptianCoder/Imposter-good/internal/protocol"
	"github.com/CaptianCoder/Imposter-good/internal/testutil"
)

const testAdminPassword = "secret123"

// Helper to create a handler wired to an in-memory server and session
func setupHandler(t *testing.T) (*Handler, *testutil.SimpleServer) {
	t.Helper()

	provider, err := content.NewProvider()
	require.NoError(t, err)

	srv := testutil.NewSimpleServer()
	session := game.NewSession(srv, provider, nil, game.Options{
		AdminPassword: testAdminPassword,
		MaxPlayers:    6,
		MinPlayers:    2,
		MaxImposters:  5,
	})

	h := NewHandler(HandlerDeps{Server: srv, Session: session, Stats: nil})
	return h, srv
}

func connect(srv *testutil.SimpleServer, id string) *testutil.SimpleClient {
	c := testutil.NewSimpleClient(id)
	srv.Add(c)
	return c
}

func TestHandle_Join(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Alice"}))

	payload, err := protocol.ParsePayload[protocol.PlayersUpdatePayload](alice.LastMessageOfType(protocol.MsgPlayersUpdate))
	require.NoError(t, err)
	require.Len(t, payload.Players, 1)
	assert.Equal(t, "Alice", payload.Players[0].Name)
}

func TestHandle_JoinInvalidName(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "A"}))

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessageOfType(protocol.MsgError))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidName, payload.Code)
}

func TestHandle_StartGameFlow(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")
	bob := connect(srv, "c2")
	admin := connect(srv, "adm")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Alice"}))
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Bob"}))
	h.Handle(admin, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "admin", Password: testAdminPassword}))

	h.Handle(admin, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Category:      content.CategoryRandom,
		ImposterCount: 1,
		Mode:          content.ModeImposter,
	}))

	// 管理员收到确认，玩家收到角色
	ack, err := protocol.ParsePayload[protocol.AckPayload](admin.LastMessageOfType(protocol.MsgAck))
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgStartGame, ack.Action)
	assert.True(t, ack.Success)

	for _, c := range []*testutil.SimpleClient{alice, bob} {
		assert.NotNil(t, c.LastMessageOfType(protocol.MsgRoleAssignment))
		assert.NotNil(t, c.LastMessageOfType(protocol.MsgGameStarted))
	}
}

func TestHandle_StartGameUnauthorized(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")
	bob := connect(srv, "c2")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Alice"}))
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Bob"}))

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Category:      content.CategoryRandom,
		ImposterCount: 1,
		Mode:          content.ModeImposter,
	}))

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessageOfType(protocol.MsgError))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeUnauthorized, payload.Code)
	assert.Nil(t, alice.LastMessageOfType(protocol.MsgAck))
}

func TestHandle_SubmitAnswerSilentWhenIdle(t *testing.T) {
	t.Parallel()

	// 空闲时提交答案被静默忽略，不回错误
	h, srv := setupHandler(t)
	alice := connect(srv, "c1")
	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Alice"}))

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgSubmitAnswer, protocol.SubmitAnswerPayload{Answer: "early"}))

	assert.Nil(t, alice.LastMessageOfType(protocol.MsgError))
	assert.Nil(t, alice.LastMessageOfType(protocol.MsgAnswersUpdate))
}

func TestHandle_EndGameAck(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	admin := connect(srv, "adm")
	h.Handle(admin, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Admin", Password: testAdminPassword}))

	h.Handle(admin, &protocol.Message{Type: protocol.MsgEndGame})

	ack, err := protocol.ParsePayload[protocol.AckPayload](admin.LastMessageOfType(protocol.MsgAck))
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgEndGame, ack.Action)
}

func TestHandle_Ping(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	sent := time.Now().UnixMilli()
	h.Handle(alice, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: sent}))

	pong, err := protocol.ParsePayload[protocol.PongPayload](alice.LastMessageOfType(protocol.MsgPong))
	require.NoError(t, err)
	assert.Equal(t, sent, pong.ClientTimestamp)
	assert.GreaterOrEqual(t, pong.ServerTimestamp, sent)
}

func TestHandle_PingRepliesExactlyOnce(t *testing.T) {
	t.Parallel()

	h, _ := setupHandler(t)

	client := new(testutil.MockClient)
	client.On("SendMessage", mock.MatchedBy(func(msg *protocol.Message) bool {
		return msg.Type == protocol.MsgPong
	})).Once()

	h.Handle(client, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 1}))

	client.AssertExpectations(t)
}

func TestHandle_StartGameRejectionSendsSingleError(t *testing.T) {
	t.Parallel()

	h, _ := setupHandler(t)

	// 未加入的连接发起开局：只收到一条权限错误，绝不下发确认
	client := new(testutil.MockClient)
	client.On("GetID").Return("m1")
	client.On("SendMessage", mock.MatchedBy(func(msg *protocol.Message) bool {
		if msg.Type != protocol.MsgError {
			return false
		}
		payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
		return err == nil && payload.Code == protocol.ErrCodeUnauthorized
	})).Once()

	h.Handle(client, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{
		Category:      content.CategoryRandom,
		ImposterCount: 1,
		Mode:          content.ModeImposter,
	}))

	client.AssertExpectations(t)
}

func TestHandle_GetStatsRequiresJoin(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	h.Handle(alice, &protocol.Message{Type: protocol.MsgGetStats})

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessageOfType(protocol.MsgError))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotJoined, payload.Code)
}

func TestHandle_UnknownType(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	h.Handle(alice, &protocol.Message{Type: "no_such_type"})

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessageOfType(protocol.MsgError))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandle_InvalidPayload(t *testing.T) {
	t.Parallel()

	h, srv := setupHandler(t)
	alice := connect(srv, "c1")

	h.Handle(alice, &protocol.Message{Type: protocol.MsgJoin, Payload: []byte(`{"name": 42}`)})

	payload, err := protocol.ParsePayload[protocol.ErrorPayload](alice.LastMessageOfType(protocol.MsgError))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}
