package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"petstore/internal/logging"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func check(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	return rec
}

func TestCheck_NoDependencies(t *testing.T) {
	rec := check(t, NewHandler(nil, logging.NewNop()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCheck_AllUp(t *testing.T) {
	ok := pingFunc(func(ctx context.Context) error { return nil })

	rec := check(t, NewHandler(map[string]Pinger{"db": ok, "redis": ok}, logging.NewNop()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"db":"ok","redis":"ok"}}`, rec.Body.String())
}

func TestCheck_OneDown(t *testing.T) {
	ok := pingFunc(func(ctx context.Context) error { return nil })
	down := pingFunc(func(ctx context.Context) error { return errors.New("refused") })

	rec := check(t, NewHandler(map[string]Pinger{"db": down, "redis": ok}, logging.NewNop()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"db":"down","redis":"ok"}}`, rec.Body.String())
}

func TestCheck_NilPingerSkipped(t *testing.T) {
	rec := check(t, NewHandler(map[string]Pinger{"redis": nil}, logging.NewNop()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
