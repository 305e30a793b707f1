package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/sky-take-out/internal/config"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/service"
)

// defaultTokenHeader is the request header carrying the admin token.
const defaultTokenHeader = "token"

type Handler struct {
	services *service.Services

	guard          *RouteGuard
	tokenHeader    string
	requestTimeout time.Duration

	traceIDs func() string
	metrics  *Metrics
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	guard, err := NewRouteGuardFromConfig(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("error building route guard: %w", err)
	}

	tokenHeader := cfg.Auth.TokenHeader
	if tokenHeader == "" {
		tokenHeader = defaultTokenHeader
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		guard:          guard,
		tokenHeader:    tokenHeader,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       newTraceID,
		metrics:        NewMetrics(),
		logger:         logger,
	}, nil
}
