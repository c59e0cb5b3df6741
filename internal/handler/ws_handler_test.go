package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medconnect/internal/app/call"
	"medconnect/internal/pkg/errs"
)

const frameTimeout = 2 * time.Second

func dialAppointment(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/appointment"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()

	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frameType call.FrameType, payload any) {
	t.Helper()

	frame, err := call.EncodeFrame(frameType, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

func readFrame(t *testing.T, conn *websocket.Conn) call.Frame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(frameTimeout)))
	var frame call.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func waitForParticipants(t *testing.T, relay *call.Relay, want int) {
	t.Helper()

	require.Eventually(t, func() bool {
		stats, err := relay.Snapshot(context.Background())
		return err == nil && stats.Participants == want
	}, frameTimeout, 10*time.Millisecond)
}

func allocateRoom(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	res, err := client.Get(srv.URL + AppointmentPath)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusFound, res.StatusCode)
	return strings.TrimPrefix(res.Header.Get("Location"), AppointmentPath+"/")
}

func TestWebSocket_TwoParticipantsEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	roomID := allocateRoom(t, srv)
	require.NotEmpty(t, roomID)

	shell, err := http.Get(srv.URL + AppointmentPath + "/" + roomID)
	require.NoError(t, err)
	shell.Body.Close()
	require.Equal(t, http.StatusOK, shell.StatusCode)

	alice := dialAppointment(t, srv)
	sendFrame(t, alice, call.TypeJoinRoom, call.JoinRoomPayload{RoomID: roomID, UserID: "alice"})
	waitForParticipants(t, env.deps.Relay, 1)

	bob := dialAppointment(t, srv)
	sendFrame(t, bob, call.TypeJoinRoom, call.JoinRoomPayload{RoomID: roomID, UserID: "bob"})

	frame := readFrame(t, alice)
	require.Equal(t, call.TypeUserConnected, frame.Type)
	var connected call.UserEventPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &connected))
	require.Equal(t, "bob", connected.UserID)

	sendFrame(t, alice, call.TypeSignal, call.SignalPayload{To: "bob", Data: json.RawMessage(`{"sdp":"offer"}`)})
	frame = readFrame(t, bob)
	require.Equal(t, call.TypeSignal, frame.Type)
	var signal call.SignalPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &signal))
	require.Equal(t, "alice", signal.From)
	require.JSONEq(t, `{"sdp":"offer"}`, string(signal.Data))

	require.NoError(t, bob.Close())

	frame = readFrame(t, alice)
	require.Equal(t, call.TypeUserDisconnected, frame.Type)
	var disconnected call.UserEventPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &disconnected))
	require.Equal(t, "bob", disconnected.UserID)

	waitForParticipants(t, env.deps.Relay, 1)
}

func TestWebSocket_MalformedJoinGetsErrorFrame(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	conn := dialAppointment(t, srv)
	sendFrame(t, conn, call.TypeJoinRoom, map[string]string{"roomId": "room-1"})

	frame := readFrame(t, conn)
	require.Equal(t, call.TypeError, frame.Type)
	var payload call.ErrorPayload
	require.NoError(t, json.Unmarshal(frame.Payload, &payload))
	require.Equal(t, errs.ErrJoinParamsInvalid, payload.Code)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	frame = readFrame(t, conn)
	require.NoError(t, json.Unmarshal(frame.Payload, &payload))
	require.Equal(t, errs.ErrUnsupportedFrame, payload.Code)

	stats, err := env.deps.Relay.Snapshot(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Participants)
}

func TestWebSocket_UnsupportedFramesAfterJoin(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.handler)
	defer srv.Close()

	const (
		clients = 20
		bogus   = 5
	)

	conns := make([]*websocket.Conn, clients)
	for i := range conns {
		conns[i] = dialAppointment(t, srv)
	}

	// Joins and bad frames race the read pumps against the relay loop.
	var wg sync.WaitGroup
	for i, conn := range conns {
		wg.Add(1)
		go func(i int, conn *websocket.Conn) {
			defer wg.Done()
			frame, err := call.EncodeFrame(call.TypeJoinRoom, call.JoinRoomPayload{RoomID: "ward-7", UserID: fmt.Sprintf("user-%d", i)})
			if !assert.NoError(t, err) {
				return
			}
			assert.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
			for j := 0; j < bogus; j++ {
				assert.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"bogus"}`)))
			}
		}(i, conn)
	}
	wg.Wait()

	for _, conn := range conns {
		rejected := 0
		for rejected < bogus {
			frame := readFrame(t, conn)
			if frame.Type == call.TypeUserConnected {
				continue
			}
			require.Equal(t, call.TypeError, frame.Type)
			var payload call.ErrorPayload
			require.NoError(t, json.Unmarshal(frame.Payload, &payload))
			require.Equal(t, errs.ErrUnsupportedFrame, payload.Code)
			rejected++
		}
	}

	waitForParticipants(t, env.deps.Relay, clients)
}

func TestWebSocket_PlainRequestIsNotUpgraded(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/ws/appointment", nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
