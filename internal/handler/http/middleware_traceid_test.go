package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, req *http.Request) (*httptest.ResponseRecorder, string) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, got
}

func TestWithTraceID_KeepsClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "req-42")

	rec, got := executeWithTraceID(newTestHandler(), req)

	assert.Equal(t, "req-42", got)
	assert.Equal(t, "req-42", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, got := executeWithTraceID(newTestHandler(), req)

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, got, rec.Header().Get(traceIDHeader))
}
