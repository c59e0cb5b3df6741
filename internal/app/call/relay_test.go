package call

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"medconnect/internal/pkg/errs"
)

func startRelay(t *testing.T) *Relay {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	relay := NewRelay(NewRegistry())
	go relay.Run(ctx)

	t.Cleanup(func() {
		cancel()
		<-relay.Done()
	})
	return relay
}

// connect registers a participant without a socket; its queue is read directly.
func connect(t *testing.T, relay *Relay) *Participant {
	t.Helper()
	p := NewParticipant(relay, nil)
	require.True(t, relay.Connect(p))
	return p
}

func join(t *testing.T, relay *Relay, p *Participant, roomID, userID string) {
	t.Helper()
	require.True(t, relay.Join(p, JoinRoomPayload{RoomID: roomID, UserID: userID}))
}

// settle waits until every previously submitted event has been handled.
func settle(t *testing.T, relay *Relay) Stats {
	t.Helper()
	stats, err := relay.Snapshot(context.Background())
	require.NoError(t, err)
	return stats
}

func drain(p *Participant) []Frame {
	var frames []Frame
	for {
		select {
		case raw, ok := <-p.send:
			if !ok {
				return frames
			}
			var f Frame
			if err := json.Unmarshal(raw, &f); err == nil {
				frames = append(frames, f)
			}
		default:
			return frames
		}
	}
}

func userEvent(t *testing.T, f Frame) string {
	t.Helper()
	var payload UserEventPayload
	require.NoError(t, json.Unmarshal(f.Payload, &payload))
	return payload.UserID
}

func errorCode(t *testing.T, f Frame) int {
	t.Helper()
	require.Equal(t, TypeError, f.Type)
	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(f.Payload, &payload))
	return payload.Code
}

func isClosed(p *Participant) bool {
	for {
		select {
		case _, ok := <-p.send:
			if !ok {
				return true
			}
		default:
			return false
		}
	}
}

func TestRelay_JoinFanOut(t *testing.T) {
	relay := startRelay(t)
	a, b, c := connect(t, relay), connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-1", "B")
	join(t, relay, c, "room-1", "C")
	stats := settle(t, relay)

	require.Equal(t, Stats{Rooms: 1, Participants: 3, Connections: 3}, stats)

	framesA := drain(a)
	require.Len(t, framesA, 2)
	require.Equal(t, TypeUserConnected, framesA[0].Type)
	require.Equal(t, "B", userEvent(t, framesA[0]))
	require.Equal(t, "C", userEvent(t, framesA[1]))

	framesB := drain(b)
	require.Len(t, framesB, 1)
	require.Equal(t, "C", userEvent(t, framesB[0]))

	require.Empty(t, drain(c), "joiner never sees its own join")
}

func TestRelay_DisconnectFanOut(t *testing.T) {
	relay := startRelay(t)
	a, b := connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-1", "B")
	settle(t, relay)
	drain(a)

	require.True(t, relay.Disconnect(b))
	stats := settle(t, relay)

	frames := drain(a)
	require.Len(t, frames, 1)
	require.Equal(t, TypeUserDisconnected, frames[0].Type)
	require.Equal(t, "B", userEvent(t, frames[0]))

	require.True(t, isClosed(b))
	require.Equal(t, Stats{Rooms: 1, Participants: 1, Connections: 1}, stats)

	require.True(t, relay.Disconnect(a))
	require.Equal(t, Stats{}, settle(t, relay), "last leaver removes the room")
}

func TestRelay_NeverJoinedDisconnectIsSilent(t *testing.T) {
	relay := startRelay(t)
	a, idle := connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	require.True(t, relay.Disconnect(idle))
	settle(t, relay)

	require.Empty(t, drain(a))
	require.True(t, isClosed(idle))
}

func TestRelay_NoCrossRoomDelivery(t *testing.T) {
	relay := startRelay(t)
	a, b, x := connect(t, relay), connect(t, relay), connect(t, relay)

	join(t, relay, x, "room-2", "X")
	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-1", "B")
	require.True(t, relay.Signal(a, SignalPayload{Data: json.RawMessage(`{"sdp":"offer"}`)}))
	require.True(t, relay.Disconnect(b))
	settle(t, relay)

	require.Empty(t, drain(x))
}

func TestRelay_InvalidJoinIsRejected(t *testing.T) {
	relay := startRelay(t)
	a, b := connect(t, relay), connect(t, relay)
	join(t, relay, a, "room-1", "A")

	join(t, relay, b, "  ", "B")
	join(t, relay, b, "room-1", "")
	join(t, relay, b, "room-1", strings.Repeat("u", MaxIdentifierLength+1))
	stats := settle(t, relay)

	frames := drain(b)
	require.Len(t, frames, 3)
	for _, f := range frames {
		require.Equal(t, errs.ErrJoinParamsInvalid, errorCode(t, f))
	}
	require.Empty(t, drain(a))
	require.Equal(t, 1, stats.Participants)
}

func TestRelay_SecondJoinIsRejected(t *testing.T) {
	relay := startRelay(t)
	a, b := connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-2", "B")
	join(t, relay, a, "room-2", "A")
	stats := settle(t, relay)

	frames := drain(a)
	require.Len(t, frames, 1)
	require.Equal(t, errs.ErrAlreadyJoined, errorCode(t, frames[0]))
	require.Empty(t, drain(b))
	require.Equal(t, Stats{Rooms: 2, Participants: 2, Connections: 2}, stats)
}

func TestRelay_JoinTrimsIdentifiers(t *testing.T) {
	relay := startRelay(t)
	a, b := connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	join(t, relay, b, " room-1 ", " B ")
	settle(t, relay)

	frames := drain(a)
	require.Len(t, frames, 1)
	require.Equal(t, "B", userEvent(t, frames[0]))
}

func TestRelay_SignalRouting(t *testing.T) {
	relay := startRelay(t)
	a, b, c := connect(t, relay), connect(t, relay), connect(t, relay)

	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-1", "B")
	join(t, relay, c, "room-1", "C")
	settle(t, relay)
	drain(a)
	drain(b)

	data := json.RawMessage(`{"candidate":"x"}`)
	require.True(t, relay.Signal(a, SignalPayload{To: "C", Data: data}))
	settle(t, relay)

	require.Empty(t, drain(b))
	frames := drain(c)
	require.Len(t, frames, 1)
	require.Equal(t, TypeSignal, frames[0].Type)

	var got SignalPayload
	require.NoError(t, json.Unmarshal(frames[0].Payload, &got))
	require.Equal(t, "A", got.From)
	require.Empty(t, got.To)
	require.JSONEq(t, string(data), string(got.Data))

	require.True(t, relay.Signal(b, SignalPayload{Data: data}))
	settle(t, relay)
	require.Len(t, drain(a), 1)
	require.Len(t, drain(c), 1)
	require.Empty(t, drain(b))
}

func TestRelay_SignalBeforeJoinIsRejected(t *testing.T) {
	relay := startRelay(t)
	a := connect(t, relay)

	require.True(t, relay.Signal(a, SignalPayload{Data: json.RawMessage(`{}`)}))
	settle(t, relay)

	frames := drain(a)
	require.Len(t, frames, 1)
	require.Equal(t, errs.ErrNotJoined, errorCode(t, frames[0]))
}

func TestRelay_FullQueueDoesNotBlockOthers(t *testing.T) {
	relay := startRelay(t)
	slow, fast, joiner := connect(t, relay), connect(t, relay), connect(t, relay)

	join(t, relay, slow, "room-1", "S")
	join(t, relay, fast, "room-1", "F")
	settle(t, relay)
	drain(slow)

	for len(slow.send) < cap(slow.send) {
		slow.send <- []byte(`{}`)
	}

	join(t, relay, joiner, "room-1", "J")
	settle(t, relay)

	frames := drain(fast)
	require.Len(t, frames, 1)
	require.Equal(t, "J", userEvent(t, frames[0]))
}

func TestRelay_EventsForUnknownConnectionAreIgnored(t *testing.T) {
	relay := startRelay(t)
	a := connect(t, relay)
	join(t, relay, a, "room-1", "A")

	stranger := NewParticipant(relay, nil)
	require.True(t, relay.Join(stranger, JoinRoomPayload{RoomID: "room-1", UserID: "Z"}))
	require.True(t, relay.Disconnect(stranger))
	stats := settle(t, relay)

	require.Empty(t, drain(a))
	require.Equal(t, 1, stats.Participants)
	require.False(t, isClosed(stranger))
}

func TestRelay_ShutdownClosesQueuesAndClearsRegistry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	registry := NewRegistry()
	relay := NewRelay(registry)
	go relay.Run(ctx)

	a, b := connect(t, relay), connect(t, relay)
	join(t, relay, a, "room-1", "A")
	join(t, relay, b, "room-2", "B")
	settle(t, relay)

	cancel()
	<-relay.Done()

	require.True(t, isClosed(a))
	require.True(t, isClosed(b))
	require.Zero(t, registry.RoomCount())

	require.False(t, relay.Disconnect(a))
	_, err := relay.Snapshot(context.Background())
	require.ErrorIs(t, err, ErrRelayStopped)
}
