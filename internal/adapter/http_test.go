// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func newTestClient(t *testing.T, serverURL, token string) *httpAPIClient {
	t.Helper()

	c, err := NewHTTPAPIClient(config.ClientConfig{
		ServerAddress:  serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	_, _ = utils.WriteJSON(w, v, status)
}

func TestNewHTTPAPIClient_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080/"},
		{name: "host and port", address: "localhost:8080"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPAPIClient(config.ClientConfig{ServerAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(w, models.AuthResponse{
			Success: true,
			Token:   "session-token",
			User:    models.PublicUser{ID: "u1", Username: "alice"},
		}, http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	out, err := c.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "session-token", c.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.ErrorResponse{Error: "User already exists"}, http.StatusConflict)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	_, err := c.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User already exists")
	assert.Empty(t, c.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.ErrorResponse{Error: "Invalid credentials"}, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	_, err := c.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(w, models.ProfileResponse{
			Success: true,
			User: models.Profile{
				PublicUser:           models.PublicUser{ID: "u1", Username: "alice"},
				SecurityQuestionsSet: true,
			},
		}, http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "tok")
	profile, err := c.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.True(t, profile.SecurityQuestionsSet)
}

func TestAuthenticatedCalls_WithoutToken(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", "")
	ctx := context.Background()

	_, err := c.Me(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.CreateOrder(ctx, models.CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = c.SetSecurityAnswers(ctx, models.SecurityAnswersRequest{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRecoveryFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/recovery/questions":
			writeJSON(w, models.QuestionsResponse{
				Success:              true,
				HasSecurityQuestions: true,
				Questions:            &models.RecoveryQuestions{FavouriteBook: "What is your favourite book?"},
			}, http.StatusOK)
		case "/api/recovery/verify":
			writeJSON(w, models.ResetTokenResponse{Success: true, ResetToken: "reset"}, http.StatusOK)
		case "/api/recovery/reset":
			assert.Equal(t, http.MethodPut, r.Method)
			var req models.ResetPasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Token != "reset" {
				writeJSON(w, models.ErrorResponse{Error: "Invalid or expired token"}, http.StatusBadRequest)
				return
			}
			writeJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	ctx := context.Background()

	q, err := c.RecoveryQuestions(ctx, models.QuestionsRequest{Username: "alice"})
	require.NoError(t, err)
	assert.True(t, q.HasSecurityQuestions)

	token, err := c.VerifyAnswers(ctx, models.VerifyAnswersRequest{Username: "alice", FavouriteBook: "dune", BestSubject: "math"})
	require.NoError(t, err)
	assert.Equal(t, "reset", token)

	require.NoError(t, c.ResetPassword(ctx, models.ResetPasswordRequest{Token: token, NewPassword: "new"}))

	err = c.ResetPassword(ctx, models.ResetPasswordRequest{Token: "bogus", NewPassword: "new"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestFoods_CategoryQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/foods", r.URL.Path)
		assert.Equal(t, "pizza", r.URL.Query().Get("category"))

		writeJSON(w, models.FoodsResponse{
			Success: true,
			Foods:   []models.Food{{ID: "f1", Name: "Margherita", Category: "pizza", Price: 9.5}},
		}, http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	foods, err := c.Foods(context.Background(), "pizza")

	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Margherita", foods[0].Name)
}

func TestOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/orders":
			writeJSON(w, models.CreateOrderResponse{Success: true, OrderID: "o1", Code: "ORD-1-ABCD"}, http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/ORD-1-ABCD":
			writeJSON(w, models.OrderResponse{Success: true, Order: models.OrderView{Total: 12}}, http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/missing":
			writeJSON(w, models.ErrorResponse{Error: "Order not found"}, http.StatusNotFound)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/mine":
			writeJSON(w, models.OrdersResponse{Success: true, TotalSum: 12}, http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/summary":
			writeJSON(w, models.OrderSummaryResponse{Success: true, TotalSum: 30}, http.StatusOK)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/orders":
			writeJSON(w, models.DeletedResponse{Success: true, Deleted: 3}, http.StatusOK)
		default:
			writeJSON(w, models.ErrorResponse{Error: "Not found"}, http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "tok")
	ctx := context.Background()

	created, err := c.CreateOrder(ctx, models.CreateOrderRequest{ShopLocation: "main"})
	require.NoError(t, err)
	assert.Equal(t, "ORD-1-ABCD", created.Code)

	order, err := c.Order(ctx, created.Code)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, order.Total, 1e-9)

	_, err = c.Order(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := c.MyOrders(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, mine.TotalSum, 1e-9)

	summary, err := c.OrdersSummary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, summary.TotalSum, 1e-9)

	deleted, err := c.DeleteOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(t, srv.URL, "").Health(context.Background()))
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom\n"))
	}))
	defer srv.Close()

	err := newTestClient(t, srv.URL, "").Health(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "boom")
}
