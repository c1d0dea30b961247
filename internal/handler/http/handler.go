package http

import (
	"time"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/service"
)

type Handler struct {
	services       *service.Services
	metrics        *Metrics
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", cfg.RequestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        NewMetrics(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
