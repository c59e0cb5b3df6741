/*
Package resp provides helper functions for constructing and sending standardized HTTP JSON responses.

Every JSON answer shares one envelope: a business code (0 on success), a message and an
optional data payload.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
)

// JSONResponse defines the standardized JSON response structure returned to clients.
type JSONResponse struct {
	// Code is the business status code (0 for success, see errs package otherwise).
	Code int `json:"code"`

	// Message is the client-friendly status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the JSON headers and writes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	if _, err := w.Write(response); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write response body")
	}
}

// RespondSuccess sends data with HTTP 200.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondSuccessWithStatus(w, r, http.StatusOK, data)
}

// RespondSuccessWithStatus sends data with a caller-chosen 2xx status.
func RespondSuccessWithStatus(w http.ResponseWriter, r *http.Request, status int, data any) {
	res := JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
	RespondJSON(w, r, status, res)
}

// RespondError sends the code, message and status carried by customErr.
// Causes attached with errs.Wrap are logged on the request logger, never sent to the client.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	if cause := customErr.Unwrap(); cause != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if customErr.Status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Err(cause).
			Int("error_code", customErr.Code).
			Msg("Request failed")
	}

	res := JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
	}
	RespondJSON(w, r, customErr.Status, res)
}
