package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient]. The
// base URL is taken from cfg.ServerAddress; an address without a scheme is
// treated as plain http. cfg.Token, if set, is used as the initial session.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
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

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/auth/register"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/auth/login"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.Profile, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	var out models.ProfileResponse
	if err = h.do(r.SetResult(&out), "GET", "/api/auth/me"); err != nil {
		return models.Profile{}, fmt.Errorf("me: %w", err)
	}
	return out.User, nil
}

func (h *httpAPIClient) RecoveryQuestions(ctx context.Context, req models.QuestionsRequest) (models.QuestionsResponse, error) {
	var out models.QuestionsResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/recovery/questions"); err != nil {
		return models.QuestionsResponse{}, fmt.Errorf("recovery questions: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) VerifyAnswers(ctx context.Context, req models.VerifyAnswersRequest) (string, error) {
	var out models.ResetTokenResponse
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&out), "POST", "/api/recovery/verify"); err != nil {
		return "", fmt.Errorf("verify answers: %w", err)
	}
	return out.ResetToken, nil
}

func (h *httpAPIClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := h.do(h.request(ctx).SetBody(req), "PUT", "/api/recovery/reset"); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

func (h *httpAPIClient) SetSecurityAnswers(ctx context.Context, req models.SecurityAnswersRequest) error {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	if err = h.do(r.SetBody(req), "POST", "/api/recovery/security"); err != nil {
		return fmt.Errorf("set security answers: %w", err)
	}
	return nil
}

func (h *httpAPIClient) Foods(ctx context.Context, category string) ([]models.Food, error) {
	r := h.request(ctx)
	if category != "" {
		r.SetQueryParam("category", category)
	}

	var out models.FoodsResponse
	if err := h.do(r.SetResult(&out), "GET", "/api/foods"); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return out.Foods, nil
}

func (h *httpAPIClient) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.CreateOrderResponse, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.CreateOrderResponse{}, err
	}

	var out models.CreateOrderResponse
	if err = h.do(r.SetBody(req).SetResult(&out), "POST", "/api/orders"); err != nil {
		return models.CreateOrderResponse{}, fmt.Errorf("create order: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) Order(ctx context.Context, idOrCode string) (models.OrderView, error) {
	var out models.OrderResponse
	r := h.request(ctx).SetPathParam("id", idOrCode).SetResult(&out)
	if err := h.do(r, "GET", "/api/orders/{id}"); err != nil {
		return models.OrderView{}, fmt.Errorf("get order: %w", err)
	}
	return out.Order, nil
}

func (h *httpAPIClient) MyOrders(ctx context.Context) (models.OrdersResponse, error) {
	var out models.OrdersResponse
	if err := h.do(h.request(ctx).SetResult(&out), "GET", "/api/orders/mine"); err != nil {
		return models.OrdersResponse{}, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) OrdersSummary(ctx context.Context) (models.OrderSummaryResponse, error) {
	var out models.OrderSummaryResponse
	if err := h.do(h.request(ctx).SetResult(&out), "GET", "/api/orders/summary"); err != nil {
		return models.OrderSummaryResponse{}, fmt.Errorf("orders summary: %w", err)
	}
	return out, nil
}

func (h *httpAPIClient) DeleteOrders(ctx context.Context) (int64, error) {
	var out models.DeletedResponse
	if err := h.do(h.request(ctx).SetResult(&out), "DELETE", "/api/orders"); err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}
	return out.Deleted, nil
}

func (h *httpAPIClient) Health(ctx context.Context) error {
	var out models.HealthResponse
	if err := h.do(h.request(ctx).SetResult(&out), "GET", "/health"); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if !out.OK {
		return fmt.Errorf("health: server reported not ok")
	}
	return nil
}

// request builds a request that carries the session token when one is set.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// authedRequest is request for routes that reject anonymous callers.
func (h *httpAPIClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	return h.request(ctx), nil
}

func (h *httpAPIClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")

	return mapHTTPError(resp)
}
