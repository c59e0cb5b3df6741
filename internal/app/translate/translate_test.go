package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient(baseURL string) *GoogleClient {
	c := NewGoogleClient(baseURL, "test-key")
	c.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(maxRetries, retry.NewConstant(time.Millisecond))
	}
	return c
}

func fakeGoogle(t *testing.T, rateLimited int32) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		if atomic.AddInt32(&calls, 1) <= rateLimited {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
			return
		}

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/detect":
			_, _ = w.Write([]byte(`{"data":{"detections":[[{"language":"es","confidence":0.98}]]}}`))
		case "/":
			assert.Equal(t, "es", body["source"])
			assert.Equal(t, "text", body["format"])
			_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"headache since yesterday"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestService_DetectAndTranslate(t *testing.T) {
	srv, calls := fakeGoogle(t, 0)
	svc := NewService(fastClient(srv.URL + "/"))

	res, err := svc.DetectAndTranslate(context.Background(), "dolor de cabeza desde ayer", "en")
	require.NoError(t, err)
	require.Equal(t, Result{DetectedLanguage: "es", TranslatedText: "headache since yesterday"}, res)
	require.EqualValues(t, 2, atomic.LoadInt32(calls))
}

func TestGoogleClient_RetriesOnRateLimit(t *testing.T) {
	srv, calls := fakeGoogle(t, 2)
	client := fastClient(srv.URL)

	lang, err := client.Detect(context.Background(), "hola")
	require.NoError(t, err)
	require.Equal(t, "es", lang)
	require.EqualValues(t, 3, atomic.LoadInt32(calls))
}

func TestGoogleClient_GivesUpAfterRetries(t *testing.T) {
	srv, calls := fakeGoogle(t, 100)
	client := fastClient(srv.URL)

	_, err := client.Detect(context.Background(), "hola")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "slow down", apiErr.Message)
	require.EqualValues(t, maxRetries+1, atomic.LoadInt32(calls))
}

func TestGoogleClient_DoesNotRetryOtherErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Translate(context.Background(), "hola", "es", "en")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestService_OfflineSameLanguage(t *testing.T) {
	svc := NewService(nil)

	text := "The patient reports a persistent headache and mild fever since yesterday evening."
	res, err := svc.DetectAndTranslate(context.Background(), text, "en-GB")
	require.NoError(t, err)
	require.Equal(t, "en", res.DetectedLanguage)
	require.Equal(t, text, res.TranslatedText)

	_, err = svc.DetectAndTranslate(context.Background(), text, "fr")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestParseTarget(t *testing.T) {
	tag, err := ParseTarget(" fr ")
	require.NoError(t, err)
	require.Equal(t, "fr", tag)

	for _, bad := range []string{"", "not a language", "und"} {
		_, err := ParseTarget(bad)
		require.ErrorIs(t, err, ErrInvalidTarget, bad)
	}
}
