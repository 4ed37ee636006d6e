package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
	"github.com/jasvilladarez/ello-go/models"
)

const (
	headerRequestID = "X-Request-ID"
	oauthTokenPath  = "/oauth/token"
)

type httpEllAdapter struct {
	client *utils.HTTPClient
	prefix string
	auth   config.ClientAuth

	mu    sync.RWMutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPEllAdapter constructs a resty implementation of [EllAPI].
// It normalises and validates apiCfg.BaseURL, joins browse paths under
// apiCfg.Prefix, stamps every request with an X-Request-ID header and, when
// apiCfg.Debug is set, logs request and response bodies through log.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPEllAdapter(apiCfg config.ClientAPI, authCfg config.ClientAuth, log *logger.Logger) (EllAPI, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetLogger(newRestyLogger(log)).
		SetDebug(apiCfg.Debug)

	if apiCfg.UserAgent != "" {
		client.SetHeader("User-Agent", apiCfg.UserAgent)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(headerRequestID) == "" {
			r.SetHeader(headerRequestID, ids.Generate())
		}
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(headerRequestID)).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("api response")
		return nil
	})

	return &httpEllAdapter{
		client: client,
		prefix: normalizePrefix(apiCfg.Prefix),
		auth:   authCfg,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// SetToken implements [EllAPI].
func (h *httpEllAdapter) SetToken(token models.Token) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [EllAPI].
func (h *httpEllAdapter) Token() models.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchPublicToken implements [EllAPI]. It POSTs the client credentials to
// POST /oauth/token (outside the versioned prefix).
func (h *httpEllAdapter) FetchPublicToken(ctx context.Context) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{
			GrantType:    models.GrantTypeClientCredentials,
			ClientID:     h.auth.ClientID,
			ClientSecret: h.auth.ClientSecret,
		}).
		Post(oauthTokenPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("public token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.Token{}, fmt.Errorf("%w: decode token: %w", ErrInvalidResponse, err)
	}
	if token.IsZero() {
		return models.Token{}, fmt.Errorf("%w: empty access token", ErrInvalidResponse)
	}

	return token, nil
}

// FetchEditorials implements [EllAPI]. GET {prefix}/editorials?before=
func (h *httpEllAdapter) FetchEditorials(ctx context.Context, before string) (models.EditorialStream, Links, error) {
	stream, links, err := getPage[models.EditorialStream](ctx, h, "editorials", query("before", before))
	if err != nil {
		return models.EditorialStream{}, nil, fmt.Errorf("fetch editorials: %w", err)
	}
	return stream, links, nil
}

// FetchArtistInvites implements [EllAPI]. GET {prefix}/artist_invites?page=
func (h *httpEllAdapter) FetchArtistInvites(ctx context.Context, page string) (models.ArtistInviteStream, Links, error) {
	stream, links, err := getPage[models.ArtistInviteStream](ctx, h, "artist_invites", query("page", page))
	if err != nil {
		return models.ArtistInviteStream{}, nil, fmt.Errorf("fetch artist invites: %w", err)
	}
	return stream, links, nil
}

// FetchCategories implements [EllAPI]. GET {prefix}/categories?meta=true
func (h *httpEllAdapter) FetchCategories(ctx context.Context, meta bool) ([]models.Category, error) {
	q := url.Values{}
	if meta {
		q.Set("meta", "true")
	}

	stream, _, err := getPage[models.CategoryStream](ctx, h, "categories", q)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return stream.Categories, nil
}

// FetchPosts implements [EllAPI].
func (h *httpEllAdapter) FetchPosts(ctx context.Context, endpoint string, q url.Values) (models.PostStream, Links, error) {
	stream, links, err := getPage[models.PostStream](ctx, h, endpoint, q)
	if err != nil {
		return models.PostStream{}, nil, fmt.Errorf("fetch posts %s: %w", endpoint, err)
	}
	return stream, links, nil
}

// getPage performs an authenticated GET of endpoint under the API prefix and
// decodes the body into T.
func getPage[T any](ctx context.Context, h *httpEllAdapter, endpoint string, q url.Values) (T, Links, error) {
	var out T

	req := h.authedRequest(ctx)
	for key, values := range q {
		for _, v := range values {
			if v != "" {
				req.QueryParam.Add(key, v)
			}
		}
	}

	resp, err := req.Get(h.endpoint(endpoint))
	if err != nil {
		return out, nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return out, nil, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return out, ParseLinks(resp.Header().Values("Link")...), nil
}

func (h *httpEllAdapter) endpoint(name string) string {
	return path.Join("/", h.prefix, strings.TrimLeft(name, "/"))
}

func (h *httpEllAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); !token.IsZero() {
		req.SetHeader("Authorization", token.Authorization())
	}
	return req
}

func query(key, value string) url.Values {
	q := url.Values{}
	if value != "" {
		q.Set(key, value)
	}
	return q
}
