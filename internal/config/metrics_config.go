package config

import (
	"time"

	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
)

// MetricsConfig содержит настройки Prometheus метрик.
type MetricsConfig struct {
	// Enabled - включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"GV_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL - URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"GV_METRICS_PUSHGATEWAY_URL"`

	// JobName - имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"GV_METRICS_JOB_NAME" env-default:"gitea-vcs"`

	// Timeout - таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"GV_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel - переопределение instance label. Пусто - hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"GV_METRICS_INSTANCE"`
}

// MetricsConfig возвращает настройки для metrics.NewCollector.
func (c *Config) MetricsConfig() metrics.Config {
	jobName := c.Metrics.JobName
	if jobName == "" {
		jobName = constants.AppName
	}
	return metrics.Config{
		Enabled:        c.Metrics.Enabled,
		PushgatewayURL: c.Metrics.PushgatewayURL,
		JobName:        jobName,
		Timeout:        c.Metrics.Timeout,
		InstanceLabel:  c.Metrics.InstanceLabel,
	}
}
