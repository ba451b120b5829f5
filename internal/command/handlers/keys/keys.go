// Package keys реализует команды управления GPG- и SSH-ключами пользователя.
package keys

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers/shared"
	"github.com/Kargones/gitea-vcs/internal/constants"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
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
	optional := shared.Args{Min: 0, Max: 1}
	return []command.Handler{
		shared.NewClientCommand(constants.ActGPGKeys, "Список GPG-ключей", shared.NoArgs, gpgKeys),
		shared.NewClientCommand(constants.ActGPGKey, "GPG-ключ по идентификатору", one, gpgKey),
		shared.NewClientCommand(constants.ActAddGPGKey, "Добавить GPG-ключ", optional, addGPGKey),
		shared.NewClientCommand(constants.ActDeleteGPGKey, "Удалить GPG-ключ", one, deleteGPGKey),
		shared.NewClientCommand(constants.ActKeys, "Список SSH-ключей", shared.NoArgs, publicKeys),
		shared.NewClientCommand(constants.ActKey, "SSH-ключ по идентификатору", one, publicKey),
		shared.NewClientCommand(constants.ActAddKey, "Добавить SSH-ключ", optional, addPublicKey),
		shared.NewClientCommand(constants.ActDeleteKey, "Удалить SSH-ключ", one, deletePublicKey),
	}
}

func gpgKeys(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetGPGKeys(ctx, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func gpgKey(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		id, err := shared.IDArg(fs, 0)
		if err != nil {
			return nil, err
		}
		key, err := c.GetGPGKey(ctx, id)
		if err != nil {
			return nil, err
		}
		return shared.Item(key), nil
	}
}

// addGPGKey принимает ключ аргументом или из файла --file.
func addGPGKey(fs *pflag.FlagSet) shared.ClientFunc {
	file := fs.String("file", "", "файл с ASCII-armored публичным ключом")
	sigFile := fs.String("signature-file", "", "файл с подписью токена проверки")
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		armored, err := keyInput(fs, *file)
		if err != nil {
			return nil, err
		}
		opt := entity.CreateGPGKeyOption{ArmoredKey: armored}
		if *sigFile != "" {
			sig, err := readFile(*sigFile)
			if err != nil {
				return nil, err
			}
			opt.Signature = sig
		}
		key, err := c.AddGPGKey(ctx, opt)
		if err != nil {
			return nil, err
		}
		return shared.Item(key), nil
	}
}

func deleteGPGKey(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		id, err := shared.IDArg(fs, 0)
		if err != nil {
			return nil, err
		}
		if err := c.DeleteGPGKey(ctx, id); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"deleted": id}), nil
	}
}

func publicKeys(fs *pflag.FlagSet) shared.ClientFunc {
	opts := shared.ListFlags(fs)
	fingerprint := fs.String("fingerprint", "", "отбор по отпечатку ключа")
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		list, err := c.GetPublicKeys(ctx, *fingerprint, *opts)
		if err != nil {
			return nil, err
		}
		return shared.List(list), nil
	}
}

func publicKey(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		id, err := shared.IDArg(fs, 0)
		if err != nil {
			return nil, err
		}
		key, err := c.GetPublicKey(ctx, id)
		if err != nil {
			return nil, err
		}
		return shared.Item(key), nil
	}
}

// addPublicKey принимает ключ аргументом или из файла --file.
func addPublicKey(fs *pflag.FlagSet) shared.ClientFunc {
	file := fs.String("file", "", "файл с публичным SSH-ключом")
	title := fs.String("title", "", "название ключа")
	readOnly := fs.Bool("read-only", false, "ключ только для чтения (deploy key)")
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		text, err := keyInput(fs, *file)
		if err != nil {
			return nil, err
		}
		opt := entity.CreateKeyOption{Key: text, Title: *title}
		if fs.Changed("read-only") {
			opt.ReadOnly = entity.Ptr(*readOnly)
		}
		key, err := c.AddPublicKey(ctx, opt)
		if err != nil {
			return nil, err
		}
		return shared.Item(key), nil
	}
}

func deletePublicKey(fs *pflag.FlagSet) shared.ClientFunc {
	return func(ctx context.Context, c gitea.Client) (*shared.Reply, error) {
		id, err := shared.IDArg(fs, 0)
		if err != nil {
			return nil, err
		}
		if err := c.DeletePublicKey(ctx, id); err != nil {
			return nil, err
		}
		return shared.Done(map[string]any{"deleted": id}), nil
	}
}

// keyInput возвращает ключ из позиционного аргумента или из файла.
// Ровно один источник должен быть задан.
func keyInput(fs *pflag.FlagSet, file string) (string, error) {
	switch {
	case file != "" && fs.NArg() > 0:
		return "", shared.UsageError(fs.Name(), "ключ задаётся либо аргументом, либо --file")
	case file != "":
		return readFile(file)
	case fs.NArg() == 1:
		return strings.TrimSpace(fs.Arg(0)), nil
	default:
		return "", shared.UsageError(fs.Name(), "не задан ключ: аргумент или --file")
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCommandExec, "не удалось прочитать "+path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
