package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/service"
	"github.com/jasvilladarez/ello-go/models"
)

const (
	testCatalogSize = 25
	testPageSize    = 10
	testClientID    = "client"
	testSecret      = "secret"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc123"), logger.Nop())
	require.NoError(t, err)

	return &service.Services{
		Catalog:        service.NewCatalog(testCatalogSize, testPageSize, logger.Nop()),
		TokenIssuer:    service.NewTokenIssuer(config.ClientAuth{ClientID: testClientID, ClientSecret: testSecret}, logger.Nop()),
		AppInfoService: appInfo,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(NewHandler(newTestServices(t), logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

// issueTestToken obtains an access token from the token endpoint of srv.
func issueTestToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := makeRequest(t, srv, http.MethodPost, oauthTokenPath, "",
		`{"grant_type":"client_credentials","client_id":"client","client_secret":"secret"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token models.Token
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func makeRequest(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
