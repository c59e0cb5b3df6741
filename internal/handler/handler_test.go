package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medconnect/internal/app/call"
	"medconnect/internal/app/storage"
	"medconnect/internal/app/translate"
	"medconnect/internal/configs"
	"medconnect/internal/pkg/pow"
	"medconnect/mocks"
)

const testJWTSecret = "handler-test-secret"

type fakeTranslator struct {
	result translate.Result
	err    error
	calls  int
}

func (f *fakeTranslator) DetectAndTranslate(_ context.Context, _, _ string) (translate.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakePrescriber struct {
	text  string
	err   error
	calls int
}

func (f *fakePrescriber) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

type testEnv struct {
	db         *mocks.MockQuerier
	deps       *AppDeps
	translator *fakeTranslator
	prescriber *fakePrescriber
	handler    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	relay := call.NewRelay(call.NewRegistry())
	go relay.Run(ctx)

	t.Cleanup(func() {
		cancel()
		<-relay.Done()
	})

	store, err := storage.NewStorageService(ctx, storage.ServiceConfig{
		Driver:    storage.DriverDisk,
		UploadDir: t.TempDir(),
	})
	require.NoError(t, err)

	env := &testEnv{
		db:         mocks.NewMockQuerier(gomock.NewController(t)),
		translator: &fakeTranslator{},
		prescriber: &fakePrescriber{},
	}
	env.deps = &AppDeps{
		Config: &configs.AppConfig{
			Environment: configs.EnvDevelopment,
			JWTSecret:   testJWTSecret,
		},
		DB:             env.db,
		StorageService: store,
		Relay:          relay,
		Translator:     env.translator,
		Prescriber:     env.prescriber,
		Pow:            pow.NewManager(ctx, 0),
	}
	env.handler = Router(ctx, env.deps)

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, body)
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, r)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return e.do(t, method, path, bytes.NewReader(raw), "application/json", header...)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decode parses the response envelope and, when out is non-nil, its data.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
