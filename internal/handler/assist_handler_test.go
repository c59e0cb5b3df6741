package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/prescribe"
	"medconnect/internal/app/translate"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/pow"
)

func TestDetectAndTranslate_StoresNote(t *testing.T) {
	env := newTestEnv(t)
	env.translator.result = translate.Result{DetectedLanguage: "fr", TranslatedText: "The patient has a fever."}

	env.db.EXPECT().
		CreateNote(gomock.Any(), dbc.CreateNoteParams{
			OriginalText:   "Le patient a de la fièvre.",
			TranslatedText: "The patient has a fever.",
		}).
		Return(dbc.Note{ID: 17}, nil)

	rec := env.doJSON(t, http.MethodPost, "/detect-and-translate", TranslateInput{
		Text: "Le patient a de la fièvre.", TargetLanguage: "en",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		NoteID           int64  `json:"noteId"`
		DetectedLanguage string `json:"detectedLanguage"`
		TranslatedText   string `json:"translatedText"`
	}
	decode(t, rec, &data)
	require.Equal(t, int64(17), data.NoteID)
	require.Equal(t, "fr", data.DetectedLanguage)
	require.Equal(t, "The patient has a fever.", data.TranslatedText)
}

func TestDetectAndTranslate_Errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "bad target", err: fmt.Errorf("%w: klingon", translate.ErrInvalidTarget), wantStatus: http.StatusBadRequest, wantCode: errs.ErrInvalidParams},
		{name: "provider down", err: &translate.APIError{StatusCode: 503, Message: "unavailable"}, wantStatus: http.StatusBadGateway, wantCode: errs.ErrTranslationFailed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.translator.err = tc.err

			rec := env.doJSON(t, http.MethodPost, "/detect-and-translate", TranslateInput{Text: "hola", TargetLanguage: "en"})
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantCode, decode(t, rec, nil).Code)
		})
	}

	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/detect-and-translate", map[string]string{"text": "hola"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, env.translator.calls)
}

// proofToken runs the challenge and verify endpoints the way a browser would.
func proofToken(t *testing.T, env *testEnv) string {
	t.Helper()

	rec := env.do(t, http.MethodGet, "/api/pow/challenge", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var challenge struct {
		Nonce      string `json:"nonce"`
		Difficulty int    `json:"difficulty"`
	}
	decode(t, rec, &challenge)
	require.NotEmpty(t, challenge.Nonce)

	counter := 0
	for !pow.Solves(challenge.Nonce, fmt.Sprint(counter), challenge.Difficulty) {
		counter++
	}

	rec = env.doJSON(t, http.MethodPost, "/api/pow/verify", PowVerifyInput{Nonce: challenge.Nonce, Counter: fmt.Sprint(counter)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var proof struct {
		Token string `json:"token"`
	}
	decode(t, rec, &proof)
	require.NotEmpty(t, proof.Token)
	return proof.Token
}

func TestGeneratePrescription_RequiresProof(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/generate-prescription", PrescriptionInput{Text: "sore throat"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, errs.ErrPowChallengeRequired, decode(t, rec, nil).Code)
	require.Zero(t, env.prescriber.calls)
}

func TestGeneratePrescription(t *testing.T) {
	env := newTestEnv(t)
	env.prescriber.text = "Paracetamol 500mg every 6 hours."

	token := proofToken(t, env)
	rec := env.doJSON(t, http.MethodPost, "/generate-prescription", PrescriptionInput{Text: "sore throat"}, pow.TokenHeaderKey, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Prescription string `json:"prescription"`
	}
	decode(t, rec, &data)
	require.Equal(t, "Paracetamol 500mg every 6 hours.", data.Prescription)

	rec = env.doJSON(t, http.MethodPost, "/generate-prescription", PrescriptionInput{Text: "sore throat"}, pow.TokenHeaderKey, token)
	require.Equal(t, http.StatusForbidden, rec.Code, "proof tokens are single use")
}

func TestGeneratePrescription_ProviderErrors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "quota", err: prescribe.ErrQuotaExceeded, wantStatus: http.StatusForbidden, wantCode: errs.ErrQuotaExceeded},
		{name: "other", err: errors.New("upstream timeout"), wantStatus: http.StatusBadGateway, wantCode: errs.ErrPrescriptionFailed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.prescriber.err = tc.err

			rec := env.doJSON(t, http.MethodPost, "/generate-prescription", PrescriptionInput{Text: "cough"}, pow.TokenHeaderKey, proofToken(t, env))
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantCode, decode(t, rec, nil).Code)
		})
	}
}

func TestPowVerify_RejectsUnknownNonce(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/pow/verify", PowVerifyInput{Nonce: "never-issued", Counter: "0"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, errs.ErrPowChallengeInvalid, decode(t, rec, nil).Code)
}
