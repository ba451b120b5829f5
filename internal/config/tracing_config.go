package config

import (
	"time"

	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/tracing"
)

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled включает отправку трейсов в OTLP бэкенд.
	Enabled bool `yaml:"enabled" env:"GV_TRACING_ENABLED" env-default:"false"`

	// Endpoint - URL OTLP HTTP endpoint (например, http://jaeger:4318).
	Endpoint string `yaml:"endpoint" env:"GV_TRACING_ENDPOINT"`

	// ServiceName - имя сервиса для resource attributes.
	ServiceName string `yaml:"serviceName" env:"GV_TRACING_SERVICE_NAME" env-default:"gitea-vcs"`

	// Environment - окружение (production, staging, development).
	Environment string `yaml:"environment" env:"GV_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure - HTTP вместо HTTPS для OTLP endpoint.
	Insecure bool `yaml:"insecure" env:"GV_TRACING_INSECURE" env-default:"true"`

	// Timeout - таймаут экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"GV_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate - доля сэмплируемых трейсов (0.0 - ни один, 1.0 - все).
	SamplingRate float64 `yaml:"samplingRate" env:"GV_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// TracingConfig возвращает настройки для tracing.NewTracerProvider.
func (c *Config) TracingConfig() tracing.Config {
	return tracing.Config{
		Enabled:      c.Tracing.Enabled,
		Endpoint:     c.Tracing.Endpoint,
		ServiceName:  c.Tracing.ServiceName,
		Version:      constants.Version,
		Environment:  c.Tracing.Environment,
		Insecure:     c.Tracing.Insecure,
		Timeout:      c.Tracing.Timeout,
		SamplingRate: c.Tracing.SamplingRate,
	}
}
