package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/scarlett-vr/casino-core/ledger"
)

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestFeedBroadcastsShowdowns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger, nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewServer(Options{
		Logger: logger,
		Chain:  ledger.NewBlockchain(),
		Hub:    hub,
		Table:  "lobby",
	}).Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	hello := readMessage(t, conn)
	require.Equal(t, "hello", hello.Type)
	var id struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(hello.Payload, &id))
	require.NotEmpty(t, id.ID)

	resp, err := srv.Client().Post(srv.URL+"/v1/showdown", "application/json",
		strings.NewReader(`{"board":["2c","7d","9h","Js","Kc"],"seats":[`+
			`{"id":"alice","hole":["As","Ad"],"contributed":50},`+
			`{"id":"bob","hole":["Qs","Qd"],"contributed":50}]}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	msg := readMessage(t, conn)
	require.Equal(t, "showdown", msg.Type)
	var rec ledger.Record
	require.NoError(t, json.Unmarshal(msg.Payload, &rec))
	require.Equal(t, "lobby", rec.Table)
	require.Equal(t, uint(100), rec.Awards["alice"])
}

func TestFeedClosesClientsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger, nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewServer(Options{
		Logger: logger,
		Chain:  ledger.NewBlockchain(),
		Hub:    hub,
	}).Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	readMessage(t, conn)

	cancel()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "expected normal close, got %v", err)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	for i := 0; i < sendBufferSize+10; i++ {
		require.NoError(t, hub.Publish("showdown", map[string]int{"n": i}))
	}
	require.Error(t, hub.Publish("showdown", func() {}))
}
