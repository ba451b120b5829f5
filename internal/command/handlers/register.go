// Package handlers регистрирует все команды CLI в глобальном реестре.
package handlers

import (
	"github.com/Kargones/gitea-vcs/internal/command/handlers/help"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/keys"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/orgs"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/repos"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/server"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/settings"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/user"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/version"
)

// RegisterAll явно регистрирует все обработчики команд.
// Вызывается один раз из main до выполнения команды.
func RegisterAll() error {
	registrars := []func() error{
		help.RegisterCmd,
		version.RegisterCmd,
		user.RegisterCmd,
		keys.RegisterCmd,
		repos.RegisterCmd,
		settings.RegisterCmd,
		orgs.RegisterCmd,
		server.RegisterCmd,
	}
	for _, register := range registrars {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
