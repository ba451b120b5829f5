// Package main содержит точку входа CLI gitea-vcs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/command/handlers"
	"github.com/Kargones/gitea-vcs/internal/config"
	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/di"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
	"github.com/Kargones/gitea-vcs/internal/pkg/tracing"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// shutdownTimeout ограничивает выгрузку span-ов и push метрик при выходе.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := handlers.RegisterAll(); err != nil {
		fmt.Fprintf(os.Stderr, "не удалось зарегистрировать команды: %v\n", err)
		os.Exit(exitFailure)
	}
	os.Exit(run(os.Args[1:]))
}

// run выполняет команду и возвращает exit code. Команды должны быть
// зарегистрированы заранее. Вынесена из main, чтобы defer-ы отработали до os.Exit.
func run(args []string) int {
	name, rest := splitArgs(args)

	cfg, err := config.Load()
	if err != nil {
		writeFailure(os.Stdout, output.NewWriter(os.Getenv(constants.EnvOutputFormat)), name, "", err)
		return exitFailure
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		writeFailure(os.Stdout, output.NewWriter(cfg.OutputFormat), name, "", err)
		return exitFailure
	}
	log := app.Logger.With("trace_id", app.TraceID)
	log.Debug("Информация о сборке", "version", constants.Version, "commit", constants.Commit)

	ctx := tracing.WithTraceID(context.Background(), app.TraceID)
	ctx = tracing.ContextWithOTelTraceID(ctx, app.TraceID)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = app.MetricsCollector.Push(shutdownCtx)
		if err := app.TracerShutdown(shutdownCtx); err != nil {
			log.Error("ошибка завершения tracing", "error", err.Error(), "command", name)
		}
	}()

	handler, ok := command.Get(name)
	if !ok {
		err := apperrors.NewAppError(apperrors.ErrCommandNotFound,
			fmt.Sprintf("неизвестная команда %q, список команд: %s %s",
				name, constants.AppName, constants.ActHelp), nil)
		log.Error("неизвестная команда", "command", name)
		writeFailure(app.Env.Out, app.OutputWriter, name, app.TraceID, err)
		return exitFailure
	}

	if err := handler.Execute(ctx, app.Env, rest); err != nil {
		log.Debug(constants.MsgAppExit, "command", name, "code", apperrors.CodeOf(err))
		return exitFailure
	}
	return exitOK
}

// splitArgs отделяет имя команды от её аргументов.
// Пустая командная строка и -h/--help означают help.
func splitArgs(args []string) (string, []string) {
	if len(args) == 0 {
		return constants.ActHelp, nil
	}
	switch args[0] {
	case "-h", "--help":
		return constants.ActHelp, args[1:]
	case "-v", "--version":
		return constants.ActVersion, args[1:]
	}
	return args[0], args[1:]
}

// writeFailure выводит Result с ошибкой для сбоев до запуска команды.
func writeFailure(w io.Writer, writer output.Writer, name, traceID string, err error) {
	result := output.NewError(name, apperrors.CodeOf(err), err.Error())
	result.Metadata.TraceID = traceID
	if werr := writer.Write(w, result); werr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
}
