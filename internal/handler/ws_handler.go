/*
Package handler provides the HTTP handlers and routing setup for the hospital backend.

This file contains HandleWebSocket, which upgrades appointment call connections and hands
them to the signaling relay. Room and user ids arrive later in the join-room frame.
*/
package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"medconnect/internal/app/call"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/limiter"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/resp"
)

// HandleWebSocket creates an HTTP HandlerFunc that upgrades the request and serves the
// connection until it closes.
func HandleWebSocket(relay *call.Relay, upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rateLimiter.Allow(r) {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", limiter.ClientIP(r))
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written an HTTP error response.
			logx.Warn("Failed to upgrade connection to WebSocket", "error", err.Error())
			return
		}

		participant := call.NewParticipant(relay, conn)
		logx.Debug("WebSocket connection established", "conn_id", participant.ID)

		participant.Serve()
	}
}
