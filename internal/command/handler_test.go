package command

import (
	"context"
)

// compileTimeHandler - проверка компиляции для интерфейса Handler.
type compileTimeHandler struct{}

func (h *compileTimeHandler) Name() string        { return "compile-time-check" }
func (h *compileTimeHandler) Description() string { return "compile-time check handler" }
func (h *compileTimeHandler) Execute(_ context.Context, _ *Env, _ []string) error {
	return nil
}

// Если интерфейс изменится, компиляция тестов упадёт.
var _ Handler = (*compileTimeHandler)(nil)
