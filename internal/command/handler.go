// Package command предоставляет интерфейс и реестр команд CLI.
// Команды регистрируются явно через handlers.RegisterAll из main.
package command

import (
	"context"
	"io"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// Handler определяет интерфейс обработчика команды.
type Handler interface {
	// Name возвращает имя команды для регистрации в реестре.
	// Должно соответствовать константам Act* из internal/constants.
	Name() string

	// Description возвращает описание команды для вывода в help.
	Description() string

	// Execute выполняет команду. args - аргументы после имени команды.
	// Результат пишется в env.Out через env.Writer.
	Execute(ctx context.Context, env *Env, args []string) error
}

// Env содержит зависимости, доступные командам.
type Env struct {
	// Connector создаёт аутентифицированный клиент Gitea.
	// Команды без обращения к API его не вызывают.
	Connector gitea.Connector

	// Tokens создаёт TokenStore для команд управления токенами.
	Tokens func() (gitea.TokenStore, error)

	// Writer форматирует результат команды.
	Writer output.Writer

	// Out - поток вывода результатов (stdout). Логи сюда не пишутся.
	Out io.Writer

	// Logger - логгер команды.
	Logger logging.Logger

	// Metrics записывает длительность и успешность команды.
	Metrics metrics.Collector
}
