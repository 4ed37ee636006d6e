package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{name: "ok", status: http.StatusOK, body: `{}`},
		{name: "bad request detail", status: http.StatusBadRequest, body: `{"errors":{"detail":"bad cursor"}}`, want: ErrBadRequest, message: "bad cursor"},
		{name: "forbidden title", status: http.StatusForbidden, body: `{"errors":{"title":"Forbidden"}}`, want: ErrForbidden, message: "Forbidden"},
		{name: "throttled plain body", status: http.StatusTooManyRequests, body: "slow down", want: ErrTooManyRequests, message: "slow down"},
		{name: "server error html", status: http.StatusInternalServerError, body: "<html>oops</html>", want: ErrInternalServerError, message: "Internal Server Error (HTTP 500)"},
		{name: "bad gateway empty", status: http.StatusBadGateway, want: ErrBadGateway, message: "Bad Gateway (HTTP 502)"},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable, message: "Service Unavailable (HTTP 503)"},
		{name: "teapot", status: http.StatusTeapot, want: ErrUnexpectedStatus, message: "I'm a teapot (HTTP 418)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
