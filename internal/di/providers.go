package di

import (
	"context"
	"os"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/config"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
	"github.com/Kargones/gitea-vcs/internal/pkg/tracing"
)

// ProvideLogger создаёт Logger на основе Config.Logging.
// При nil Config используются значения по умолчанию (text, info, stderr).
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.LoggingConfig())
}

// ProvideOutputWriter создаёт Writer по Config.OutputFormat (GV_OUTPUT_FORMAT).
// Пустой формат означает text.
func ProvideOutputWriter(cfg *config.Config) output.Writer {
	format := output.FormatText
	if cfg != nil && cfg.OutputFormat != "" {
		format = cfg.OutputFormat
	}
	return output.NewWriter(format)
}

// ProvideTraceID генерирует trace_id запуска (32 hex-символа).
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.MetricsConfig(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			"error", err.Error(),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает shutdown.
// При выключенном трейсинге или ошибке возвращает nop shutdown.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	shutdown, err := tracing.NewTracerProvider(cfg.TracingConfig(), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			"error", err.Error(),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideGiteaFactory создаёт фабрику клиентов Gitea.
// Сетевых вызовов нет: токен получается при первом Connect.
func ProvideGiteaFactory(cfg *config.Config, logger logging.Logger, collector metrics.Collector) *gitea.Factory {
	if cfg == nil {
		return gitea.NewFactory(gitea.DefaultConfig())
	}
	return gitea.NewFactory(cfg.GiteaConfig(logger, collector))
}

// ProvideCommandEnv собирает окружение команд. Результаты пишутся в stdout,
// логи остаются в выводе логгера.
func ProvideCommandEnv(factory *gitea.Factory, writer output.Writer, logger logging.Logger, collector metrics.Collector) *command.Env {
	return &command.Env{
		Connector: factory,
		Tokens:    factory.Tokens,
		Writer:    writer,
		Out:       os.Stdout,
		Logger:    logger,
		Metrics:   collector,
	}
}
