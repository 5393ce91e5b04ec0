package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/models"
)

type httpServerAdapter struct {
	client *resty.Client
	cfg    config.ClientAdapter
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and applies cfg.RequestTimeout as the default timeout for
// all calls except the connectivity probe, which uses cfg.ProbeTimeout.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	base := strings.TrimRight(cfg.HTTPAddress, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid backend base url %q: %w", cfg.HTTPAddress, err)
	}

	cli := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, cfg: cfg, logger: log}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SubmitPunch(ctx context.Context, data json.RawMessage) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post("/api/time-tracking/punch")
	if err != nil {
		return nil, fmt.Errorf("submit punch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) SubmitCorrection(ctx context.Context, data json.RawMessage) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post("/api/corrections")
	if err != nil {
		return nil, fmt.Errorf("submit correction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, userID int64, data json.RawMessage) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Put(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		return nil, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) Call(ctx context.Context, method, endpoint string, body json.RawMessage) (json.RawMessage, error) {
	method = strings.ToUpper(strings.TrimSpace(method))

	req := h.authedRequest(ctx)
	// Only POST and PUT carry a request body.
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	var resp *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = req.Get(endpoint)
	case http.MethodPost:
		resp, err = req.Post(endpoint)
	case http.MethodPut:
		resp, err = req.Put(endpoint)
	case http.MethodPatch:
		resp, err = req.Patch(endpoint)
	case http.MethodDelete:
		resp, err = req.Delete(endpoint)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	if err != nil {
		return nil, fmt.Errorf("generic %s %s request: %w", method, endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) SubmitBatch(ctx context.Context, ops []models.PendingOperation) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Operations: ops}).
		Post("/api/sync/batch")
	if err != nil {
		return fmt.Errorf("batch submission request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	probeCtx := ctx
	if h.cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, h.cfg.ProbeTimeout)
		defer cancel()
	}

	resp, err := h.authedRequest(probeCtx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("connectivity probe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) AllowedLocations(ctx context.Context, employerID int64) ([]models.Geofence, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/employers/%d/locations", employerID))
	if err != nil {
		return nil, fmt.Errorf("allowed locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.AllowedLocationsResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode allowed locations response: %w", err)
	}

	return lr.Locations, nil
}

// authedRequest builds a request with the bearer header attached. A missing
// token produces an empty bearer value rather than a blocked call; the server
// rejects unauthenticated requests.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}
