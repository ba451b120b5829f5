package shared

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
)

// NewFlagSet создаёт FlagSet команды. Ошибки разбора возвращаются,
// а не печатаются: их выводит Run в составе Result.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// Parse разбирает args и проверяет число позиционных аргументов.
func Parse(fs *pflag.FlagSet, args []string, minArgs, maxArgs int) error {
	if err := fs.Parse(args); err != nil {
		return UsageError(fs.Name(), err.Error())
	}
	n := fs.NArg()
	if n < minArgs {
		return UsageError(fs.Name(), fmt.Sprintf("ожидается аргументов: не менее %d, получено %d", minArgs, n))
	}
	if maxArgs >= 0 && n > maxArgs {
		return UsageError(fs.Name(), fmt.Sprintf("ожидается аргументов: не более %d, получено %d", maxArgs, n))
	}
	return nil
}

// UsageError возвращает ошибку неверного вызова команды.
func UsageError(name, reason string) error {
	return apperrors.NewAppError(apperrors.ErrCommandUsage, name+": "+reason, nil)
}

// ListFlags регистрирует флаги --page и --limit.
func ListFlags(fs *pflag.FlagSet) *gitea.ListOptions {
	opts := &gitea.ListOptions{}
	fs.IntVar(&opts.Page, "page", 0, "номер страницы, начиная с 1")
	fs.IntVar(&opts.Limit, "limit", 0, "размер страницы")
	return opts
}

// IDArg разбирает i-й позиционный аргумент как положительный идентификатор.
func IDArg(fs *pflag.FlagSet, i int) (int64, error) {
	raw := fs.Arg(i)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, UsageError(fs.Name(), fmt.Sprintf("некорректный идентификатор %q", raw))
	}
	return id, nil
}
