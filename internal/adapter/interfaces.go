// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the eat-around REST API.
//
// [APIClient] hides the HTTP transport from the CLI. Non-2xx responses are
// mapped onto the sentinel errors in errors.go so that callers can use
// [errors.Is] ([ErrConflict] for 409, [ErrUnauthorized] for 401 and so on).
package adapter

import (
	"context"

	"github.com/MKhiriev/eat-around/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient talks to the eat-around HTTP API.
type APIClient interface {
	// SetToken stores the session token sent as a Bearer credential on
	// authenticated calls.
	SetToken(token string)
	// Token returns the current session token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// Me returns the profile of the token holder.
	Me(ctx context.Context) (models.Profile, error)

	// RecoveryQuestions reports whether the account has recovery answers.
	RecoveryQuestions(ctx context.Context, req models.QuestionsRequest) (models.QuestionsResponse, error)
	// VerifyAnswers exchanges correct answers for a reset token.
	VerifyAnswers(ctx context.Context, req models.VerifyAnswersRequest) (string, error)
	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	// SetSecurityAnswers stores recovery answers for the token holder.
	SetSecurityAnswers(ctx context.Context, req models.SecurityAnswersRequest) error

	// Foods lists the catalog, optionally narrowed to category.
	Foods(ctx context.Context, category string) ([]models.Food, error)

	// CreateOrder places an order for the token holder.
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.CreateOrderResponse, error)
	// Order fetches one order by code or id.
	Order(ctx context.Context, idOrCode string) (models.OrderView, error)
	// MyOrders lists orders, scoped to the token holder when a token is set.
	MyOrders(ctx context.Context) (models.OrdersResponse, error)
	// OrdersSummary lists the compact view of every order.
	OrdersSummary(ctx context.Context) (models.OrderSummaryResponse, error)
	// DeleteOrders removes every order.
	DeleteOrders(ctx context.Context) (int64, error)

	// Health reports whether the API answers /health.
	Health(ctx context.Context) error
}
