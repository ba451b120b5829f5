// Package orgs реализует команды организаций и команд пользователя.
package orgs

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
)

// RegisterCmd регистрирует команды пакета.
func RegisterCmd() error {
	for _, h := range Commands() {
		if err := command.Register(h); err != nil {
			return err
		}
	}
	return nil
}

// Commands возвращает команды пакета.
func Commands() []command.Handler {
	return []command.Handler{
		shared.NewClientCommand(constants.ActOrgs, "Организации пользователя", shared.NoArgs, orgs),
		shared.NewClientCommand(constants.ActTeams, "Команды пользователя во всех организациях", shared.NoArgs, teams),
	}
}

func orgs(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetOrganizations(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func teams(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetTeams(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}
