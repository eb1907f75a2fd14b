package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Selling Partner API
	SPAPIAccessToken  string `envconfig:"SPAPI_ACCESS_TOKEN"`
	SPAPIRefreshToken string `envconfig:"SPAPI_REFRESH_TOKEN"`
	SPAPIClientID     string `envconfig:"SPAPI_CLIENT_ID"`
	SPAPIClientSecret string `envconfig:"SPAPI_CLIENT_SECRET"`
	SPAPISandbox      bool   `envconfig:"SPAPI_SANDBOX" default:"true"`
	SPAPIUseMock      bool   `envconfig:"SPAPI_USE_MOCK" default:"true"`
	SPAPIBaseURL      string `envconfig:"SPAPI_BASE_URL"`

	// Fixture data for the order-derived demo path
	DataDir string `envconfig:"DATA_DIR" default:"mock"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"sellerdesk-fulfillment"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("spapi.sandbox", c.SPAPISandbox),
		attribute.Bool("spapi.use_mock", c.SPAPIUseMock),
	}
}
