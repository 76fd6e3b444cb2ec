package bootstrap

import (
	"log/slog"

	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}
