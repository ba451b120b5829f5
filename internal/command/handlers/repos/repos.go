// Package repos реализует команды репозиториев пользователя и звёзд.
package repos

import (
	"context"
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
	one := shared.Args{Min: 1, Max: 1}
	return []command.Handler{
		shared.NewClientCommand(constants.ActRepos, "Репозитории пользователя", shared.NoArgs, repos),
		shared.NewClientCommand(constants.ActCreateRepo, "Создать репозиторий", one, createRepo),
		shared.NewClientCommand(constants.ActStarred, "Отмеченные звездой репозитории", shared.NoArgs, starred),
		shared.NewClientCommand(constants.ActStar, "Отметить репозиторий звездой", one, star),
		shared.NewClientCommand(constants.ActUnstar, "Снять звезду с репозитория", one, unstar),
	}
}

func repos(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetRepositories(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

// createRepo передаёт серверу только явно заданные флаги.
func createRepo(fs *pflag.FlagSet) shared.ClientFunc {
	description := fs.String("description", "", "описание")
	private := fs.Bool("private", false, "приватный репозиторий")
	autoInit := fs.Bool("auto-init", false, "создать начальный коммит")
	template := fs.Bool("template", false, "репозиторий-шаблон")
	defaultBranch := fs.String("default-branch", "", "ветка по умолчанию")
	gitignores := fs.String("gitignores", "", "шаблоны .gitignore через запятую")
	license := fs.String("license", "", "шаблон лицензии")
	readme := fs.String("readme", "", "шаблон README")
	issueLabels := fs.String("issue-labels", "", "набор меток задач")
	trustModel := fs.String("trust-model", "", "модель доверия подписям коммитов")

	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		opt := entity.RepoOption{Name: fs.Arg(0)}
		setString(fs, "description", description, &opt.Description)
		setString(fs, "default-branch", defaultBranch, &opt.DefaultBranch)
		setString(fs, "gitignores", gitignores, &opt.Gitignores)
		setString(fs, "license", license, &opt.License)
		setString(fs, "readme", readme, &opt.Readme)
		setString(fs, "issue-labels", issueLabels, &opt.IssueLabels)
		setString(fs, "trust-model", trustModel, &opt.TrustModel)
		setBool(fs, "private", private, &opt.Private)
		setBool(fs, "auto-init", autoInit, &opt.AutoInit)
		setBool(fs, "template", template, &opt.Template)

		repo, err := c.CreateRepository(ctx, opt)
		if err != nil {
			return nil, err
		}
		return shared.Item(repo), nil
	}
}

// starred с --check проверяет звезду на одном репозитории вместо списка.
func starred(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	check := fs.String("check", "", "проверить звезду на репозитории owner/repo")
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		if *check != "" {
			owner, repo, err := splitFullName(fs, *check)
			if err != nil {
				return nil, err
			}
			ok, err := c.IsStarred(ctx, owner, repo)
			if err != nil {
				return nil, err
			}
			return shared.Item(map[string]any{"repository": *check, "starred": ok}), nil
		}
		list, err := c.GetStarredRepositories(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func star(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		owner, repo, err := splitFullName(fs, fs.Arg(0))
		if err != nil {
			return nil, err
		}
		if err := c.StarRepository(ctx, owner, repo); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"starred": owner + "/" + repo}), nil
	}
}

func unstar(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		owner, repo, err := splitFullName(fs, fs.Arg(0))
		if err != nil {
			return nil, err
		}
		if err := c.UnstarRepository(ctx, owner, repo); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"unstarred": owner + "/" + repo}), nil
	}
}

// splitFullName разбирает "owner/repo".
func splitFullName(fs *pflag.FlagSet, fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", shared.UsageError(fs.Name(), "ожидается репозиторий в формате owner/repo, получено "+fullName)
	}
	return owner, repo, nil
}

func setString(fs *pflag.FlagSet, name string, value *string, dst **string) {
	if fs.Changed(name) {
		*dst = entity.Ptr(*value)
	}
}

func setBool(fs *pflag.FlagSet, name string, value *bool, dst **bool) {
	if fs.Changed(name) {
		*dst = entity.Ptr(*value)
	}
}
