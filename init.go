package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sellerdesk/fulfillment/internal/config"
	"github.com/sellerdesk/fulfillment/internal/fixtures"
	"github.com/sellerdesk/fulfillment/internal/telemetry"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/sellerdesk/fulfillment/pkg/shipping/amazonfba"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

func loadConfig() (*config.Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()
	return config.Load()
}

func initLogger(cfg *config.Config) (*otelzap.Logger, error) {
	return telemetry.NewLogger(cfg)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

func initService(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *shipping.Service {
	gateway := amazonfba.New(amazonfba.Config{
		Credentials: amazonfba.Credentials{
			AccessToken:  cfg.SPAPIAccessToken,
			RefreshToken: cfg.SPAPIRefreshToken,
			ClientID:     cfg.SPAPIClientID,
			ClientSecret: cfg.SPAPIClientSecret,
		},
		BaseURL: cfg.SPAPIBaseURL,
		Sandbox: cfg.SPAPISandbox,
		UseMock: cfg.SPAPIUseMock,
	}, logger, tracer)

	return shipping.NewService(gateway, logger, tracer)
}

func initStore(cfg *config.Config, override string) *fixtures.Store {
	dir := override
	if dir == "" {
		dir = cfg.DataDir
	}
	return fixtures.NewStore(dir)
}

// parseItems converts "SKU:QUANTITY" flag values into shipment items.
// A bare SKU defaults to quantity 1.
func parseItems(specs []string) ([]shipping.Item, error) {
	items := make([]shipping.Item, 0, len(specs))
	for _, spec := range specs {
		sku, quantityStr, found := strings.Cut(spec, ":")
		if !found {
			items = append(items, shipping.Item{SKU: sku, Quantity: 1})
			continue
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: quantity must be a number", spec)
		}
		items = append(items, shipping.Item{SKU: sku, Quantity: quantity})
	}
	return items, nil
}
