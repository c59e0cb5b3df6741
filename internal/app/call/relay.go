/*
Package call implements the appointment video-call signaling relay.

This file defines the Relay: a single event loop that owns the Registry and every
participant's outbound queue. Connection tasks submit events (connect, join, signal, reject,
disconnect); the loop handles each to completion, so all fan-out for one event is queued
before the next event is looked at.
*/
package call

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
)

const (
	// eventQueueSize bounds events waiting for the loop before submitters block.
	eventQueueSize = 1024

	// MaxIdentifierLength bounds room and user ids in join-room frames.
	MaxIdentifierLength = 256
)

// ErrRelayStopped is returned by queries issued after the relay loop exited.
var ErrRelayStopped = errors.New("relay stopped")

type eventKind int

const (
	eventConnect eventKind = iota
	eventJoin
	eventSignal
	eventReject
	eventDisconnect
	eventSnapshot
)

type relayEvent struct {
	kind        eventKind
	participant *Participant
	join        JoinRoomPayload
	signal      SignalPayload
	errCode     int
	reply       chan Stats
}

// Stats is a point-in-time view of the relay.
type Stats struct {
	Rooms        int `json:"rooms"`
	Participants int `json:"participants"`
	Connections  int `json:"connections"`
}

// Relay fans presence and signaling frames out to the members of a room.
type Relay struct {
	registry *Registry

	// connections holds every connected participant; its send channel is open exactly
	// while it is in this set.
	connections map[*Participant]struct{}

	events chan relayEvent

	// done is closed when Run returns.
	done chan struct{}

	logger zerolog.Logger
}

// NewRelay creates a relay that owns registry. Call Run to start it.
func NewRelay(registry *Registry) *Relay {
	return &Relay{
		registry:    registry,
		connections: make(map[*Participant]struct{}),
		events:      make(chan relayEvent, eventQueueSize),
		done:        make(chan struct{}),
		logger:      logx.Component("relay"),
	}
}

// Run processes events until ctx is cancelled. On exit every outbound queue is closed and
// the registry is cleared.
func (r *Relay) Run(ctx context.Context) {
	r.logger.Info().Msg("Relay loop started.")

	defer func() {
		for p := range r.connections {
			close(p.send)
		}
		clear(r.connections)
		r.registry.Clear()
		close(r.done)

		r.logger.Info().Msg("Relay loop stopped.")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			r.handle(ev)
		}
	}
}

// Done is closed after Run has returned and cleaned up.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

// Connect registers a freshly upgraded connection.
func (r *Relay) Connect(p *Participant) bool {
	return r.submit(relayEvent{kind: eventConnect, participant: p})
}

// Join requests that p enter the room named in payload.
func (r *Relay) Join(p *Participant, payload JoinRoomPayload) bool {
	return r.submit(relayEvent{kind: eventJoin, participant: p, join: payload})
}

// Signal forwards negotiation data from p to its room.
func (r *Relay) Signal(p *Participant, payload SignalPayload) bool {
	return r.submit(relayEvent{kind: eventSignal, participant: p, signal: payload})
}

// Reject sends p an error frame for the given errs code.
func (r *Relay) Reject(p *Participant, code int) bool {
	return r.submit(relayEvent{kind: eventReject, participant: p, errCode: code})
}

// Disconnect removes p, notifies its room and closes its outbound queue.
func (r *Relay) Disconnect(p *Participant) bool {
	return r.submit(relayEvent{kind: eventDisconnect, participant: p})
}

// Snapshot returns the relay's current counts, as seen after all earlier events.
func (r *Relay) Snapshot(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	if !r.submit(relayEvent{kind: eventSnapshot, reply: reply}) {
		return Stats{}, ErrRelayStopped
	}

	select {
	case stats := <-reply:
		return stats, nil
	case <-r.done:
		return Stats{}, ErrRelayStopped
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// submit queues ev, blocking while the queue is full. It returns false once the relay stopped.
func (r *Relay) submit(ev relayEvent) bool {
	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

func (r *Relay) handle(ev relayEvent) {
	if ev.kind == eventSnapshot {
		ev.reply <- Stats{
			Rooms:        r.registry.RoomCount(),
			Participants: r.registry.MemberCount(),
			Connections:  len(r.connections),
		}
		return
	}

	p := ev.participant

	if ev.kind == eventConnect {
		r.connections[p] = struct{}{}
		p.roomLogger.Debug().Int("connections", len(r.connections)).Msg("Connection registered.")
		return
	}

	if _, ok := r.connections[p]; !ok {
		p.roomLogger.Debug().Int("event", int(ev.kind)).Msg("Ignoring event for unknown or closed connection.")
		return
	}

	switch ev.kind {
	case eventJoin:
		r.handleJoin(p, ev.join)
	case eventSignal:
		r.handleSignal(p, ev.signal)
	case eventReject:
		r.sendError(p, ev.errCode)
	case eventDisconnect:
		r.handleDisconnect(p)
	}
}

func (r *Relay) handleJoin(p *Participant, payload JoinRoomPayload) {
	if p.roomID != "" {
		p.roomLogger.Warn().
			Str("requested_room_id", payload.RoomID).
			Msg("Rejecting second join-room on the same connection.")
		r.sendError(p, errs.ErrAlreadyJoined)
		return
	}

	roomID := strings.TrimSpace(payload.RoomID)
	userID := strings.TrimSpace(payload.UserID)
	if !validIdentifier(roomID) || !validIdentifier(userID) {
		p.roomLogger.Warn().Msg("Rejecting join-room with missing or oversized identifiers.")
		r.sendError(p, errs.ErrJoinParamsInvalid)
		return
	}

	others := r.registry.Add(roomID, p)
	p.roomID = roomID
	p.userID = userID
	p.roomLogger = p.roomLogger.With().Str("room_id", roomID).Str("user_id", userID).Logger()

	p.roomLogger.Info().Int("room_size", len(others)+1).Msg("Participant joined room.")

	r.fanOut(others, TypeUserConnected, UserEventPayload{UserID: userID})
}

func (r *Relay) handleSignal(p *Participant, payload SignalPayload) {
	if p.roomID == "" {
		r.sendError(p, errs.ErrNotJoined)
		return
	}

	if len(payload.Data) == 0 {
		r.sendError(p, errs.ErrUnsupportedFrame)
		return
	}

	targets := make([]*Participant, 0)
	for _, m := range r.registry.Members(p.roomID) {
		if m == p {
			continue
		}
		if payload.To == "" || m.userID == payload.To {
			targets = append(targets, m)
		}
	}

	r.fanOut(targets, TypeSignal, SignalPayload{From: p.userID, Data: payload.Data})
}

func (r *Relay) handleDisconnect(p *Participant) {
	delete(r.connections, p)

	if p.roomID != "" {
		remaining, removed := r.registry.Remove(p.roomID, p)
		if removed {
			p.roomLogger.Info().Int("room_size", len(remaining)).Msg("Participant left room.")
			r.fanOut(remaining, TypeUserDisconnected, UserEventPayload{UserID: p.userID})
		}
	}

	close(p.send)
}

// fanOut queues one frame for each target. A full queue skips that target only.
func (r *Relay) fanOut(targets []*Participant, frameType FrameType, payload any) {
	if len(targets) == 0 {
		return
	}

	frame, err := EncodeFrame(frameType, payload)
	if err != nil {
		r.logger.Error().Err(err).Str("frame_type", string(frameType)).Msg("Failed to encode frame for fan-out.")
		return
	}

	for _, target := range targets {
		r.deliver(target, frame, frameType)
	}
}

func (r *Relay) deliver(p *Participant, frame []byte, frameType FrameType) {
	select {
	case p.send <- frame:
	default:
		p.roomLogger.Warn().
			Str("frame_type", string(frameType)).
			Int("queue_len", len(p.send)).
			Msg("Outbound queue full, dropping frame.")
	}
}

func (r *Relay) sendError(p *Participant, code int) {
	customErr := errs.NewError(code)

	frame, err := EncodeFrame(TypeError, ErrorPayload{Code: customErr.Code, Message: customErr.Message})
	if err != nil {
		p.roomLogger.Error().Err(err).Msg("Failed to encode error frame.")
		return
	}

	r.deliver(p, frame, TypeError)
}

func validIdentifier(id string) bool {
	return id != "" && len(id) <= MaxIdentifierLength && utf8.ValidString(id)
}
