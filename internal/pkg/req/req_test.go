package req

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"medconnect/internal/pkg/errs"
)

type noteInput struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestBindJSON(t *testing.T) {
	t.Run("binds a valid body", func(t *testing.T) {
		var in noteInput
		err := BindJSON(jsonRequest(`{"text":"hola","targetLanguage":"en"}`), &in)

		require.Nil(t, err)
		require.Equal(t, "hola", in.Text)
	})

	t.Run("rejects a wrong content type", func(t *testing.T) {
		r := jsonRequest(`{}`)
		r.Header.Set("Content-Type", "text/plain")

		var in noteInput
		err := BindJSON(r, &in)

		require.NotNil(t, err)
		require.Equal(t, errs.ErrUnsupportedMediaType, err.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var in noteInput
		err := BindJSON(jsonRequest(`{"text":`), &in)

		require.NotNil(t, err)
		require.Equal(t, errs.ErrInvalidJSONFormat, err.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var in noteInput
		err := BindJSON(jsonRequest(`{"text":"a","targetLanguage":"en","extra":1}`), &in)

		require.NotNil(t, err)
		require.Equal(t, errs.ErrInvalidJSONFormat, err.Code)
	})

	t.Run("rejects trailing content", func(t *testing.T) {
		var in noteInput
		err := BindJSON(jsonRequest(`{"text":"a","targetLanguage":"en"}{}`), &in)

		require.NotNil(t, err)
		require.Equal(t, errs.ErrExtraContentInBody, err.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		var in noteInput
		err := BindJSON(jsonRequest(`{"text":"a"}`), &in)

		require.NotNil(t, err)
		require.Equal(t, errs.ErrInvalidParams, err.Code)
	})
}

func TestPathID(t *testing.T) {
	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := PathID(withParam("42"), "id")
	require.Nil(t, err)
	require.EqualValues(t, 42, id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := PathID(withParam(bad), "id")
		require.NotNil(t, err, bad)
		require.Equal(t, errs.ErrInvalidParams, err.Code)
	}
}
