package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"caseboard/config"
	"caseboard/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.WithIDGenerator(func() store.IDGenerator { return &store.SequenceIDs{} }))
	require.NoError(t, s.Seed())
	return s
}

func setupTestHandler(t *testing.T) (*Handler, *store.Store) {
	t.Helper()
	s := setupTestStore(t)
	cfg := &config.Config{
		Environment:   "test",
		MaxUploadSize: 1024 * 1024,
	}
	return New(s, cfg, zap.NewNop()), s
}

// setupServer returns an echo instance with every route registered
func setupServer(t *testing.T) (*echo.Echo, *store.Store) {
	t.Helper()
	h, s := setupTestHandler(t)
	e := echo.New()
	h.Register(e)
	return e, s
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}
