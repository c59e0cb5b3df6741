package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/pkg/errs"
)

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)

	when := time.Date(2026, time.November, 3, 9, 30, 0, 0, time.UTC)
	env.db.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg dbc.CreateAppointmentParams) (dbc.Appointment, error) {
			require.Equal(t, int64(1), arg.PatientID)
			require.Equal(t, int64(2), arg.HospitalID)
			require.Equal(t, int64(3), arg.DoctorID)
			require.True(t, arg.AppointmentDate.Time.Equal(when))
			require.Equal(t, DefaultAppointmentStatus, arg.Status)
			return dbc.Appointment{ID: 42}, nil
		})

	rec := env.doJSON(t, http.MethodPost, "/appointments", map[string]any{
		"patientId": 1, "hospitalId": 2, "doctorId": 3, "appointmentDate": when.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		AppointmentID int64 `json:"appointmentId"`
	}
	decode(t, rec, &data)
	require.Equal(t, int64(42), data.AppointmentID)
}

func TestCreateAppointment_Errors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/appointments", map[string]any{"patientId": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errs.ErrInvalidParams, decode(t, rec, nil).Code)

	env.db.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(dbc.Appointment{}, &pgconn.PgError{Code: "23503"})
	rec = env.doJSON(t, http.MethodPost, "/appointments", map[string]any{
		"patientId": 1, "hospitalId": 2, "doctorId": 999, "appointmentDate": "2026-11-03T09:30:00Z",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAppointments(t *testing.T) {
	env := newTestEnv(t)

	env.db.EXPECT().ListAppointments(gomock.Any()).Return([]dbc.ListAppointmentsRow{
		{ID: 1, Status: "scheduled", PatientName: "Ada Lovelace", DoctorName: "John Snow", HospitalName: "St Thomas'"},
	}, nil)

	rec := env.do(t, http.MethodGet, "/appointments", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []dbc.ListAppointmentsRow
	decode(t, rec, &rows)
	require.Len(t, rows, 1)
	require.Equal(t, "John Snow", rows[0].DoctorName)
}

func TestUpdateAndDeleteAppointment(t *testing.T) {
	env := newTestEnv(t)

	env.db.EXPECT().
		UpdateAppointmentStatus(gomock.Any(), dbc.UpdateAppointmentStatusParams{ID: 42, Status: "completed"}).
		Return(int64(1), nil)
	rec := env.doJSON(t, http.MethodPut, "/appointments/42", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env.db.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	rec = env.doJSON(t, http.MethodPut, "/appointments/43", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	env.db.EXPECT().DeleteAppointment(gomock.Any(), int64(42)).Return(int64(1), nil)
	rec = env.do(t, http.MethodDelete, "/appointments/42", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}
