package shared

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
)

// Args задаёт допустимое число позиционных аргументов. Max < 0 - без ограничения.
type Args struct {
	Min, Max int
}

// NoArgs - команда без позиционных аргументов.
var NoArgs = Args{}

// ClientFunc выполняет команду над подключённым клиентом.
// Позиционные аргументы доступны через fs.Args().
type ClientFunc func(ctx context.Context, client gitea.Client) (*Reply, error)

// Setup регистрирует флаги команды и возвращает функцию выполнения.
type Setup func(fs *pflag.FlagSet) ClientFunc

// ClientCommand - команда, работающая через gitea.Client.
// Флаги разбираются до подключения, поэтому ошибка вызова
// не приводит к созданию токена на сервере.
type ClientCommand struct {
	name        string
	description string
	args        Args
	setup       Setup
}

var _ command.Handler = (*ClientCommand)(nil)

// NewClientCommand создаёт ClientCommand.
func NewClientCommand(name, description string, args Args, setup Setup) *ClientCommand {
	return &ClientCommand{name: name, description: description, args: args, setup: setup}
}

// Name возвращает имя команды.
func (c *ClientCommand) Name() string { return c.name }

// Description возвращает описание команды.
func (c *ClientCommand) Description() string { return c.description }

// Execute разбирает флаги, подключается к Gitea и выполняет команду.
func (c *ClientCommand) Execute(ctx context.Context, env *command.Env, args []string) error {
	fs := NewFlagSet(c.name)
	run := c.setup(fs)
	return Run(ctx, env, c.name, func(ctx context.Context) (*Reply, error) {
		if err := Parse(fs, args, c.args.Min, c.args.Max); err != nil {
			return nil, err
		}
		if env.Connector == nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "подключение к Gitea не настроено", nil)
		}
		client, err := env.Connector.Connect(ctx)
		if err != nil {
			return nil, err
		}
		return run(ctx, client)
	})
}
