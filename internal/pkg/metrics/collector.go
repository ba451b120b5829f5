// Package metrics собирает метрики запросов к Gitea API и команд CLI
// и отправляет их в Prometheus Pushgateway.
//
// NewCollector выбирает реализацию по конфигурации: PrometheusCollector
// при включённых метриках, NopCollector иначе.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс для сбора метрик.
type Collector interface {
	// RecordRequest записывает один HTTP-запрос к Gitea API.
	// status - HTTP статус ответа, 0 если ответ не получен.
	// success - совпал ли статус с ожидаемым для операции.
	RecordRequest(operation string, status int, duration time.Duration, success bool)

	// RecordCommand записывает завершение команды CLI.
	RecordCommand(command string, duration time.Duration, success bool)

	// Push отправляет метрики в Pushgateway.
	// Ошибки отправки логируются, метод всегда возвращает nil.
	Push(ctx context.Context) error
}
