package handler

import (
	"net/http"

	"medconnect/internal/app/user"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// HandleGetUser returns the patient addressed by {id} without the password hash.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		patient, err := deps.DB.GetUserByID(r.Context(), id)
		if err != nil {
			respondLookupError(w, r, err, errs.ErrUserNotFound)
			return
		}

		resp.RespondSuccess(w, r, user.NewPatient(patient))
	}
}
