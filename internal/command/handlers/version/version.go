// Package version реализует команду version: версия клиента и сборки.
package version

import (
	"context"
	"runtime"

	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
)

// RegisterCmd регистрирует команду version.
func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data содержит информацию о версии приложения.
type Data struct {
	// Version - версия приложения.
	Version string `json:"version"`
	// GoVersion - версия Go, использованная при сборке.
	GoVersion string `json:"go_version"`
	// Commit - хеш коммита на момент сборки.
	Commit string `json:"commit"`
	// GiteaAPI - версия REST API Gitea, с которой работает клиент.
	GiteaAPI string `json:"gitea_api"`
}

// buildData создаёт Data с fallback значениями.
// Если version пустой - используется "dev", если commit пустой - "unknown".
func buildData(version, commit string) *Data {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return &Data{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    commit,
		GiteaAPI:  constants.APIVersion,
	}
}

// Handler обрабатывает команду version.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActVersion
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод информации о версии приложения"
}

// Execute выводит версию. Подключение к Gitea не требуется;
// версия сервера выводится командой server-version.
func (h *Handler) Execute(ctx context.Context, env *command.Env, _ []string) error {
	return shared.Run(ctx, env, h.Name(), func(context.Context) (*shared.Reply, error) {
		return shared.Item(buildData(constants.Version, constants.Commit)), nil
	})
}
