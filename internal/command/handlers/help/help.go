// Package help реализует команду help: список зарегистрированных команд.
package help

import (
	"context"
	"sort"
	"strconv"

	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// RegisterCmd регистрирует команду help.
func RegisterCmd() error {
	return command.Register(&Handler{})
}

// Data содержит информацию обо всех доступных командах.
type Data struct {
	// Usage - формат вызова.
	Usage string `json:"usage"`
	// Commands - зарегистрированные команды по алфавиту.
	Commands []CommandInfo `json:"commands"`
	// Environment - основные переменные окружения.
	Environment []EnvInfo `json:"environment"`
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EnvInfo описывает переменную окружения.
type EnvInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var environment = []EnvInfo{
	{Name: "GITEA_URL", Description: "адрес сервера Gitea"},
	{Name: "GITEA_USERNAME", Description: "имя пользователя"},
	{Name: "GITEA_PASSWORD", Description: "пароль (получение токена, очистка)"},
	{Name: "GITEA_TOKEN", Description: "готовый токен доступа"},
	{Name: "GITEA_CLEANUP", Description: "удалять прежние токены клиента (true)"},
	{Name: "GITEA_STRICT", Description: "проверять ответы по полной JSON Schema"},
	{Name: constants.EnvConfigPath, Description: "YAML файл конфигурации"},
	{Name: constants.EnvOutputFormat, Description: "формат вывода: text или json"},
}

// Handler обрабатывает команду help.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute выводит список команд. Подключение к Gitea не требуется.
func (h *Handler) Execute(ctx context.Context, env *command.Env, _ []string) error {
	return shared.Run(ctx, env, h.Name(), func(context.Context) (*shared.Reply, error) {
		data := buildData()
		summary := output.NewSummaryInfo()
		summary.AddMetric("commands", strconv.Itoa(len(data.Commands)), "")
		return &shared.Reply{Data: data, Summary: summary}, nil
	})
}

func buildData() *Data {
	data := &Data{
		Usage:       constants.AppName + " <command> [flags] [args]",
		Environment: environment,
	}
	for name, handler := range command.All() {
		data.Commands = append(data.Commands, CommandInfo{
			Name:        name,
			Description: handler.Description(),
		})
	}
	sort.Slice(data.Commands, func(i, j int) bool {
		return data.Commands[i].Name < data.Commands[j].Name
	})
	return data
}
