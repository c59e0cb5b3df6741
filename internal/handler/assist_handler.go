package handler

import (
	"errors"
	"net/http"

	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/prescribe"
	"medconnect/internal/app/translate"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// TranslateInput is the body of POST /detect-and-translate.
type TranslateInput struct {
	Text           string `json:"text" validate:"required,max=5000"`
	TargetLanguage string `json:"targetLanguage" validate:"required,max=35"`
}

// PrescriptionInput is the body of POST /generate-prescription.
type PrescriptionInput struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// HandleDetectAndTranslate detects the note's language, translates it and stores both texts.
func HandleDetectAndTranslate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input TranslateInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, err := deps.Translator.DetectAndTranslate(r.Context(), input.Text, input.TargetLanguage)
		if err != nil {
			if errors.Is(err, translate.ErrInvalidTarget) {
				resp.RespondError(w, r, errs.Wrap(errs.ErrInvalidParams, err))
				return
			}
			logx.Error(err, "detect-and-translate failed", "target", input.TargetLanguage)
			resp.RespondError(w, r, errs.Wrap(errs.ErrTranslationFailed, err))
			return
		}

		note, err := deps.DB.CreateNote(r.Context(), dbc.CreateNoteParams{
			OriginalText:   input.Text,
			TranslatedText: result.TranslatedText,
		})
		if err != nil {
			logx.Error(err, "failed to store translated note")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}

		logx.Debug("Note translated", "note_id", note.ID, "detected", result.DetectedLanguage)
		resp.RespondSuccess(w, r, map[string]any{
			"noteId":           note.ID,
			"detectedLanguage": result.DetectedLanguage,
			"translatedText":   result.TranslatedText,
		})
	}
}

// HandleGeneratePrescription drafts a prescription for the described symptoms.
func HandleGeneratePrescription(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input PrescriptionInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		prescription, err := deps.Prescriber.Generate(r.Context(), input.Text)
		if err != nil {
			if errors.Is(err, prescribe.ErrQuotaExceeded) {
				logx.Warn("Prescription provider quota exceeded")
				resp.RespondError(w, r, errs.Wrap(errs.ErrQuotaExceeded, err))
				return
			}
			logx.Error(err, "prescription generation failed")
			resp.RespondError(w, r, errs.Wrap(errs.ErrPrescriptionFailed, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"prescription": prescription})
	}
}
