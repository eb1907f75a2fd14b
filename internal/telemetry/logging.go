package telemetry

import (
	"strings"

	"github.com/sellerdesk/fulfillment/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the service's OpenTelemetry-aware JSON logger.
// LOG_LEVEL is matched case-insensitively; unknown levels fall back to
// info. Every entry carries the service name.
func NewLogger(cfg *config.Config) (*otelzap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := zapConfig.Build(
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	return otelzap.New(zapLogger), nil
}
