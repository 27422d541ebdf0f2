package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/o-magnata69/back-end-api/internal/api"
	"github.com/o-magnata69/back-end-api/internal/api/middleware"
	"github.com/o-magnata69/back-end-api/internal/config"
	"github.com/o-magnata69/back-end-api/internal/mocks"
	"github.com/o-magnata69/back-end-api/internal/service"
	"github.com/o-magnata69/back-end-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router    http.Handler
	users     *mocks.MockUserStore
	questions *mocks.MockQuestionStore
	pinger    *mocks.MockPinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithHasher(t, &mocks.MockPasswordHasher{})
}

func newTestEnvWithHasher(t *testing.T, hasher auth.PasswordHasher) *testEnv {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	env := &testEnv{
		users:     mocks.NewMockUserStore(),
		questions: mocks.NewMockQuestionStore(),
		pinger:    &mocks.MockPinger{},
	}

	txr := &mocks.MockTransactor{}
	userSvc := service.NewUserService(env.users, txr, hasher, log)
	questionSvc := service.NewQuestionService(env.questions, txr, log)
	healthSvc := service.NewHealthService(env.pinger, log)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	api.RegisterRoutes(r, api.Handlers{
		Users:     api.NewUserHandler(userSvc, log),
		Questions: api.NewQuestionHandler(questionSvc, log),
		Health: api.NewHealthHandler(healthSvc, config.APIConfig{
			Message: "API para Achados e Perdidos",
			Author:  "Equipe",
		}),
	})
	env.router = r
	return env
}

// do sends a request with an optional raw JSON body and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
