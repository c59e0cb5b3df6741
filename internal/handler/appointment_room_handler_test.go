package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"medconnect/internal/pkg/errs"
)

func TestCreateAppointmentRoom_RedirectsToFreshRoom(t *testing.T) {
	env := newTestEnv(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		rec := env.do(t, http.MethodGet, AppointmentPath, nil, "")
		require.Equal(t, http.StatusFound, rec.Code)

		location := rec.Header().Get("Location")
		require.True(t, strings.HasPrefix(location, AppointmentPath+"/"), location)

		roomID := strings.TrimPrefix(location, AppointmentPath+"/")
		parsed, err := uuid.Parse(roomID)
		require.NoError(t, err, roomID)
		require.Equal(t, roomID, parsed.String())
		require.False(t, seen[roomID], "room id reused: %s", roomID)
		seen[roomID] = true
	}
}

func TestCreateAppointmentRoom_GeneratorFailure(t *testing.T) {
	h := HandleCreateAppointmentRoom(func() (string, error) {
		return "", errors.New("entropy exhausted")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, AppointmentPath, nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, errs.ErrUnknown, decode(t, rec, nil).Code)
	require.Empty(t, rec.Header().Get("Location"))
}

func TestAppointmentRoom_ServesShellForAnyID(t *testing.T) {
	env := newTestEnv(t)

	for _, roomID := range []string{"0b7c7f0e-3f2a-4d55-9d59-1f7f3a8c2b11", "not-a-uuid", "%E2%9C%93"} {
		rec := env.do(t, http.MethodGet, AppointmentPath+"/"+roomID, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, roomID)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		require.Contains(t, rec.Body.String(), "join-room")
	}
}

func TestAppointmentRoom_ServesConfiguredShell(t *testing.T) {
	shell := filepath.Join(t.TempDir(), "room.html")
	require.NoError(t, os.WriteFile(shell, []byte("<html>custom shell</html>"), 0o600))

	rec := httptest.NewRecorder()
	HandleAppointmentRoom(shell).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointment/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<html>custom shell</html>", rec.Body.String())
}

func TestAppointmentRoom_MissingShellFile(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleAppointmentRoom(filepath.Join(t.TempDir(), "missing.html")).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointment/abc", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
