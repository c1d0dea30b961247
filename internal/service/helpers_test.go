package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/mock"
	"github.com/MKhiriev/eat-around/internal/validators"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:       "test-sign-key",
		TokenIssuer:        "eat-around-test",
		AuthTokenDuration:  time.Hour,
		ResetTokenDuration: 15 * time.Minute,
		BcryptCost:         bcrypt.MinCost,
	}
}

func newTestAuthSvc(t *testing.T, cfg config.App) (*authService, *mock.MockUserRepository, TokenService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := NewTokenService(cfg)

	svc := NewAuthService(users, tokens, validators.NewRequestValidator(), cfg, logger.Nop()).(*authService)
	return svc, users, tokens
}

func newTestRecoverySvc(t *testing.T) (*recoveryService, *mock.MockUserRepository, TokenService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	cfg := testAppConfig()
	tokens := NewTokenService(cfg)

	svc := NewRecoveryService(users, tokens, validators.NewRequestValidator(), cfg, logger.Nop()).(*recoveryService)
	return svc, users, tokens
}

func newTestOrderSvc(t *testing.T) (*orderService, *mock.MockOrderRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mock.NewMockOrderRepository(ctrl)

	svc := NewOrderService(orders, validators.NewRequestValidator(), logger.Nop()).(*orderService)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, orders
}
