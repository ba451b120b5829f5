package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "gitea_vcs"

// PrometheusCollector реализует Collector поверх собственного prometheus.Registry.
// Метрики отправляются в Pushgateway при вызове Push.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry
	instance string

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
}

// NewPrometheusCollector создаёт PrometheusCollector и регистрирует метрики:
//   - gitea_vcs_request_duration_seconds (histogram; operation, result)
//   - gitea_vcs_request_total (counter; operation, status)
//   - gitea_vcs_command_duration_seconds (histogram; command, result)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для instance label", "error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of Gitea API requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "result"},
	)
	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_total",
			Help:      "Total number of Gitea API requests by HTTP status",
		},
		[]string{"operation", "status"},
	)
	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of CLI command execution in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"command", "result"},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{requestDuration, requestTotal, commandDuration} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		instance:        instance,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		commandDuration: commandDuration,
	}, nil
}

// maxLabelLength ограничивает длину значения label.
const maxLabelLength = 128

// sanitizeLabel заменяет управляющие символы и обрезает значение по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordRequest записывает длительность и статус запроса к API.
func (c *PrometheusCollector) RecordRequest(operation string, status int, duration time.Duration, success bool) {
	operation = sanitizeLabel(operation)
	statusLabel := "none"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}

	c.requestDuration.WithLabelValues(operation, resultLabel(success)).Observe(duration.Seconds())
	c.requestTotal.WithLabelValues(operation, statusLabel).Inc()
}

// RecordCommand записывает длительность команды CLI.
func (c *PrometheusCollector) RecordCommand(command string, duration time.Duration, success bool) {
	c.commandDuration.WithLabelValues(sanitizeLabel(command), resultLabel(success)).Observe(duration.Seconds())
	c.logger.Debug("metrics: команда завершена",
		"command", command,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// Push отправляет метрики в Pushgateway. Ошибка отправки не критична и только логируется.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if ctx.Err() != nil {
		c.logger.Debug("metrics push отменён")
		return nil
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает внутренний registry. Используется в тестах.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
