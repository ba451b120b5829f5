package metrics

import (
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
)

// NewCollector создаёт Collector по конфигурации.
// При Config.Enabled = false возвращает NopCollector.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}
