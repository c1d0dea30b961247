package service

import (
	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/internal/validators"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	RecoveryService RecoveryService
	OrderService    OrderService
	MenuService     MenuService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg)
	validator := validators.NewRequestValidator()

	return &Services{
		TokenService:    tokens,
		AuthService:     NewAuthService(storages.UserRepository, tokens, validator, cfg, logger),
		RecoveryService: NewRecoveryService(storages.UserRepository, tokens, validator, cfg, logger),
		OrderService:    NewOrderService(storages.OrderRepository, validator, logger),
		MenuService:     NewMenuService(storages.FoodRepository, logger),
	}
}
