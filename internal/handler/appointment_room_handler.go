/*
Package handler provides the HTTP handlers and routing setup for the hospital backend.

This file holds the room allocator: GET /appointment mints a fresh room id and redirects into
it, and GET /appointment/{roomId} serves the client page that joins the relay.
*/
package handler

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/randx"
	"medconnect/internal/pkg/resp"
)

//go:embed static/appointment.html
var staticFS embed.FS

const embeddedShell = "static/appointment.html"

// AppointmentPath is the prefix of every room URL.
const AppointmentPath = "/appointment"

// HandleCreateAppointmentRoom mints a room id and redirects the caller into the room.
func HandleCreateAppointmentRoom(newRoomID func() (string, error)) http.HandlerFunc {
	if newRoomID == nil {
		newRoomID = randx.RoomID
	}

	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := newRoomID()
		if err != nil {
			resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
			return
		}

		logx.Debug("Appointment room allocated", "room_id", roomID)
		http.Redirect(w, r, AppointmentPath+"/"+roomID, http.StatusFound)
	}
}

// HandleAppointmentRoom serves the client page for any room id. The id is checked by the
// relay on join, not here. An empty shellPath serves the embedded page.
func HandleAppointmentRoom(shellPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			file fs.File
			err  error
		)
		if shellPath != "" {
			file, err = os.Open(filepath.Clean(shellPath))
		} else {
			file, err = staticFS.Open(embeddedShell)
		}
		if err != nil {
			resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
			return
		}
		defer file.Close()

		modTime := time.Time{}
		if stat, statErr := file.Stat(); statErr == nil {
			modTime = stat.ModTime()
		}

		content, ok := file.(io.ReadSeeker)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, "appointment.html", modTime, content)
	}
}
