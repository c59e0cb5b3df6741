/*
Package call implements the appointment video-call signaling relay.

This file defines the Participant, one live WebSocket connection. ReadPump turns inbound
frames into relay events and reports the disconnect when it ends; WritePump drains the
outbound queue the relay fills and keeps the heartbeat going.
*/
package call

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/randx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// MaxFrameSize is the largest inbound frame accepted; SDP offers fit comfortably.
	MaxFrameSize = 64 * 1024

	// sendQueueSize is the capacity of each participant's outbound queue.
	sendQueueSize = 256
)

// Participant is a single real-time connection and, once joined, its room membership.
type Participant struct {
	relay *Relay

	// underlying WebSocket connection object.
	conn *websocket.Conn

	// ID identifies the connection in logs.
	ID string

	// roomID and userID are set by the relay loop on join and only read there.
	roomID string
	userID string

	// outbound frames; written and closed only by the relay loop.
	send chan []byte

	// logger is fixed at construction and shared by both pumps.
	logger zerolog.Logger

	// roomLogger adds room and user ids; set and read only by the relay loop.
	roomLogger zerolog.Logger
}

// NewParticipant wraps an upgraded connection. It is inert until Serve is called.
func NewParticipant(relay *Relay, conn *websocket.Conn) *Participant {
	id := randx.ConnectionID()

	logger := logx.Logger().With().Str("conn_id", id).Logger()

	return &Participant{
		relay:      relay,
		conn:       conn,
		ID:         id,
		send:       make(chan []byte, sendQueueSize),
		logger:     logger,
		roomLogger: logger,
	}
}

// Serve registers the participant with the relay and runs both pumps. It returns when the
// read side ends.
func (p *Participant) Serve() {
	if !p.relay.Connect(p) {
		p.logger.Warn().Msg("Relay is stopped, refusing connection.")
		p.closeConn()
		return
	}

	go p.WritePump()
	p.ReadPump()
}

// ReadPump reads frames until the connection fails or closes, then reports the disconnect.
func (p *Participant) ReadPump() {
	defer func() {
		p.relay.Disconnect(p)
		p.closeConn()
	}()

	p.conn.SetReadLimit(MaxFrameSize)

	if err := p.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		p.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				p.logger.Info().Err(err).Msg("Connection dropped without a clean close")
			}
			return
		}

		p.processInboundFrame(data)
	}
}

// processInboundFrame decodes one frame and hands it to the relay.
func (p *Participant) processInboundFrame(data []byte) {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		p.logger.Warn().Err(err).Int("frame_bytes", len(data)).Msg("Client sent invalid JSON")
		p.relay.Reject(p, errs.ErrUnsupportedFrame)
		return
	}

	switch frame.Type {
	case TypeJoinRoom:
		var payload JoinRoomPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			p.logger.Warn().Err(err).Msg("Client sent invalid join-room payload")
			p.relay.Reject(p, errs.ErrJoinParamsInvalid)
			return
		}
		p.relay.Join(p, payload)

	case TypeSignal:
		var payload SignalPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			p.logger.Warn().Err(err).Msg("Client sent invalid signal payload")
			p.relay.Reject(p, errs.ErrUnsupportedFrame)
			return
		}
		payload.From = ""
		p.relay.Signal(p, payload)

	default:
		p.logger.Warn().Str("frame_type", string(frame.Type)).Msg("Client sent unsupported frame type")
		p.relay.Reject(p, errs.ErrUnsupportedFrame)
	}
}

// WritePump writes queued frames to the connection and pings it periodically. It exits when
// the relay closes the queue or a write fails.
func (p *Participant) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		p.closeConn()
	}()

	for {
		select {
		case frame, ok := <-p.send:
			if !p.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !p.writePing() {
				return
			}
		}
	}
}

// writeQueuedFrame returns false when WritePump should stop.
func (p *Participant) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := p.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		p.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := p.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			p.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		p.logger.Warn().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

func (p *Participant) writePing() bool {
	if err := p.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		p.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		p.logger.Warn().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}

func (p *Participant) closeConn() {
	if p.conn == nil {
		return
	}
	// Both pumps call this; the second close reports an already-closed socket.
	_ = p.conn.Close()
}
