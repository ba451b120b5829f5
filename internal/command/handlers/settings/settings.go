// Package settings реализует команды чтения и изменения настроек пользователя.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
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
		shared.NewClientCommand(constants.ActSettings, "Настройки пользователя", shared.NoArgs, show),
		shared.NewClientCommand(constants.ActSetSetting,
			"Изменить настройку: "+strings.Join(entity.SettingNames(), ", "),
			shared.Args{Min: 2, Max: 2}, set),
	}
}

func show(_ *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		s, err := c.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		return shared.Item(s), nil
	}
}

// set принимает "true"/"false" для флагов и строку для остальных полей.
func set(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		field := fs.Arg(0)
		value, err := settingValue(field, fs.Arg(1))
		if err != nil {
			return nil, shared.UsageError(fs.Name(), err.Error())
		}
		s, err := c.ChangeSetting(ctx, field, value)
		if err != nil {
			return nil, err
		}
		return shared.Item(s), nil
	}
}

func settingValue(field, raw string) (any, error) {
	if !entity.IsBoolSetting(field) {
		return raw, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("настройка %q: ожидается true или false, получено %q", field, raw)
	}
	return v, nil
}
