// Package user реализует команды профиля пользователя: whoami,
// управление email-адресами и подписками.
package user

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
		shared.NewClientCommand(constants.ActWhoAmI, "Профиль текущего пользователя", shared.NoArgs, whoami),
		shared.NewClientCommand(constants.ActEmails, "Список email-адресов", shared.NoArgs, emails),
		shared.NewClientCommand(constants.ActAddEmail, "Добавить email-адреса", shared.Args{Min: 1, Max: -1}, addEmail),
		shared.NewClientCommand(constants.ActRemoveEmail, "Удалить email-адреса", shared.Args{Min: 1, Max: -1}, removeEmail),
		shared.NewClientCommand(constants.ActFollowers, "Подписчики пользователя", shared.NoArgs, followers),
		shared.NewClientCommand(constants.ActFollowing, "Подписки пользователя", shared.NoArgs, following),
		shared.NewClientCommand(constants.ActFollow, "Подписаться на пользователя", shared.Args{Min: 1, Max: 1}, follow),
		shared.NewClientCommand(constants.ActUnfollow, "Отписаться от пользователя", shared.Args{Min: 1, Max: 1}, unfollow),
	}
}

// whoami по умолчанию выводит профиль, полученный при подключении.
// С --refresh профиль запрашивается заново.
func whoami(fs *pflag.FlagSet) shared.ClientFunc {
	refresh := fs.Bool("refresh", false, "запросить профиль заново")
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		if !*refresh {
			return shared.Item(c.User()), nil
		}
		u, err := c.Self(ctx)
		if err != nil {
			return nil, err
		}
		return shared.Item(u), nil
	}
}

func emails(_ *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetEmails(ctx)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func addEmail(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.AddEmails(ctx, fs.Args())
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func removeEmail(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		if err := c.RemoveEmails(ctx, fs.Args()); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"removed": fs.Args()}), nil
	}
}

func followers(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetFollowers(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func following(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetFollowings(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func follow(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		username := fs.Arg(0)
		if err := c.FollowUser(ctx, username); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"followed": username}), nil
	}
}

func unfollow(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		username := fs.Arg(0)
		if err := c.UnfollowUser(ctx, username); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"unfollowed": username}), nil
	}
}
