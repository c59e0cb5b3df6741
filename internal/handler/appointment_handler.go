package handler

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"medconnect/internal/app/db"
	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// DefaultAppointmentStatus is stored when a booking names no status.
const DefaultAppointmentStatus = "scheduled"

// CreateAppointmentInput is the body of POST /appointments.
type CreateAppointmentInput struct {
	PatientID       int64     `json:"patientId" validate:"required"`
	HospitalID      int64     `json:"hospitalId" validate:"required"`
	DoctorID        int64     `json:"doctorId" validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
	Status          string    `json:"status" validate:"max=32"`
}

// UpdateAppointmentInput is the body of PUT /appointments/{id}.
type UpdateAppointmentInput struct {
	Status string `json:"status" validate:"required,max=32"`
}

// HandleListAppointments returns every appointment with patient, doctor and hospital names.
func HandleListAppointments(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deps.DB.ListAppointments(r.Context())
		respondList(w, r, rows, err, "appointment")
	}
}

// HandleCreateAppointment books an appointment and answers 201 with its id.
func HandleCreateAppointment(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateAppointmentInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		status := input.Status
		if status == "" {
			status = DefaultAppointmentStatus
		}

		appointment, err := deps.DB.CreateAppointment(r.Context(), dbc.CreateAppointmentParams{
			PatientID:       input.PatientID,
			HospitalID:      input.HospitalID,
			DoctorID:        input.DoctorID,
			AppointmentDate: pgtype.Timestamptz{Time: input.AppointmentDate, Valid: true},
			Status:          status,
		})
		if err != nil {
			if db.IsForeignKeyViolation(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
				return
			}
			logx.Error(err, "failed to create appointment")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}

		logx.Info("Appointment created", "appointment_id", appointment.ID)
		resp.RespondSuccessWithStatus(w, r, http.StatusCreated, map[string]any{
			"appointmentId": appointment.ID,
		})
	}
}

// HandleUpdateAppointment changes the status of the appointment addressed by {id}.
func HandleUpdateAppointment(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var input UpdateAppointmentInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		affected, err := deps.DB.UpdateAppointmentStatus(r.Context(), dbc.UpdateAppointmentStatusParams{
			ID:     id,
			Status: input.Status,
		})
		if err != nil {
			logx.Error(err, "failed to update appointment", "appointment_id", id)
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}
		if affected == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"id": id, "status": input.Status})
	}
}

// HandleDeleteAppointment cancels the appointment addressed by {id}.
func HandleDeleteAppointment(deps *AppDeps) http.HandlerFunc {
	return handleDelete(func(r *http.Request, id int64) (int64, error) {
		return deps.DB.DeleteAppointment(r.Context(), id)
	}, "appointment")
}
