// Package server реализует команды сведений о сервере и токенах доступа.
package server

import (
	"context"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
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
		shared.NewClientCommand(constants.ActServerVersion, "Версия сервера Gitea", shared.NoArgs, serverVersion),
		&TokensHandler{},
	}
}

// serverVersion с --require проверяет версию на соответствие ограничению.
func serverVersion(fs *pflag.FlagSet) shared.ClientFunc {
	require := fs.String("require", "", `ограничение версии, например ">= 1.20"`)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		if *require == "" {
			v, err := c.ServerVersion(ctx)
			if err != nil {
				return nil, err
			}
			return shared.Item(v), nil
		}
		v, err := c.CheckServerVersion(ctx, *require)
		if err != nil {
			return nil, err
		}
		return shared.Item(map[string]any{"version": v.Version, "constraint": *require, "satisfied": true}), nil
	}
}

// TokenInfo описывает токен доступа в выводе команды tokens.
type TokenInfo struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	TokenLastEight string   `json:"token_last_eight"`
	Scopes         []string `json:"scopes,omitempty"`
	// Managed - токен создан клиентом и будет удалён очисткой.
	Managed bool `json:"managed"`
}

// TokensData - результат команды tokens.
type TokensData struct {
	Prefix  string      `json:"prefix"`
	Tokens  []TokenInfo `json:"tokens"`
	Deleted []string    `json:"deleted,omitempty"`
}

// TokensHandler выводит токены пользователя и по --cleanup удаляет
// токены, созданные клиентом. Работает через basic auth без создания
// нового токена.
type TokensHandler struct{}

// Name возвращает имя команды.
func (h *TokensHandler) Name() string { return constants.ActTokens }

// Description возвращает описание команды.
func (h *TokensHandler) Description() string {
	return "Токены доступа пользователя; --cleanup удаляет токены клиента"
}

// Execute выполняет команду tokens.
func (h *TokensHandler) Execute(ctx context.Context, env *command.Env, args []string) error {
	fs := shared.NewFlagSet(h.Name())
	cleanup := fs.Bool("cleanup", false, "удалить токены, созданные клиентом")

	return shared.Run(ctx, env, h.Name(), func(ctx context.Context) (*shared.Reply, error) {
		if err := shared.Parse(fs, args, 0, 0); err != nil {
			return nil, err
		}
		if env.Tokens == nil {
			return nil, apperrors.NewAppError(apperrors.ErrConfigValidate, "управление токенами не настроено", nil)
		}
		store, err := env.Tokens()
		if err != nil {
			return nil, err
		}
		tokens, err := store.List(ctx)
		if err != nil {
			return nil, err
		}

		data := &TokensData{Prefix: store.Prefix(), Tokens: make([]TokenInfo, 0, len(tokens))}
		managed := 0
		for _, tok := range tokens {
			info := TokenInfo{
				ID:             tok.ID,
				Name:           tok.Name,
				TokenLastEight: tok.TokenLastEight,
				Scopes:         tok.Scopes,
				Managed:        gitea.IsManagedToken(tok.Name, data.Prefix),
			}
			if info.Managed {
				managed++
			}
			data.Tokens = append(data.Tokens, info)
		}

		if *cleanup {
			deleted, err := store.Cleanup(ctx, tokens)
			if err != nil {
				return nil, err
			}
			data.Deleted = deleted
		}

		summary := output.NewSummaryInfo()
		summary.AddMetric("total", strconv.Itoa(len(data.Tokens)), "")
		summary.AddMetric("managed", strconv.Itoa(managed), "")
		if *cleanup {
			summary.AddMetric("deleted", strconv.Itoa(len(data.Deleted)), "")
		}
		return &shared.Reply{Data: data, Summary: summary}, nil
	})
}
