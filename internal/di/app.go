package di

import (
	"context"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/config"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	// Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger предоставляет структурированное логирование (stderr или файл).
	Logger logging.Logger

	// OutputWriter форматирует результаты команд.
	OutputWriter output.Writer

	// TraceID содержит идентификатор запуска для корреляции логов.
	TraceID string

	// MetricsCollector собирает метрики запросов и команд.
	// Если метрики отключены - NopCollector.
	MetricsCollector metrics.Collector

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Если трейсинг отключён - nop function.
	TracerShutdown func(context.Context) error

	// GiteaFactory создаёт клиент Gitea при первом обращении команды к API.
	GiteaFactory *gitea.Factory

	// Env - окружение выполнения команд.
	Env *command.Env
}
