package call

import (
	"encoding/json"
)

// FrameType names a real-time frame on the appointment call channel.
type FrameType string

const (
	// TypeJoinRoom is sent by a client to enter a room (client → relay).
	TypeJoinRoom FrameType = "join-room"

	// TypeUserConnected announces a new member to the rest of the room (relay → client).
	TypeUserConnected FrameType = "user-connected"

	// TypeUserDisconnected announces a departed member to the rest of the room (relay → client).
	TypeUserDisconnected FrameType = "user-disconnected"

	// TypeSignal carries opaque WebRTC negotiation data (offer, answer, ICE) in both directions.
	TypeSignal FrameType = "signal"

	// TypeError reports a rejected frame back to its sender (relay → client).
	TypeError FrameType = "error"
)

// Frame is the JSON envelope of every real-time message.
type Frame struct {
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinRoomPayload is the body of a join-room frame.
type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

// UserEventPayload is the body of user-connected and user-disconnected frames.
type UserEventPayload struct {
	UserID string `json:"userId"`
}

// SignalPayload is the body of a signal frame. Inbound frames may set To to address a single
// user id; outbound frames carry the sender in From.
type SignalPayload struct {
	To   string          `json:"to,omitempty"`
	From string          `json:"from,omitempty"`
	Data json.RawMessage `json:"data"`
}

// ErrorPayload is the body of an error frame.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EncodeFrame marshals a frame with the given payload.
func EncodeFrame(frameType FrameType, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Frame{Type: frameType, Payload: raw})
}
