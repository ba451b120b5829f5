package gitea

import (
	"context"
	"fmt"
	"net/http"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// ServerVersion возвращает версию сервера (GET /version, 200).
func (h *Handler) ServerVersion(ctx context.Context) (*entity.ServerVersion, error) {
	resp, err := h.api.do(ctx, request{
		operation: "ServerVersion",
		method:    http.MethodGet,
		path:      "/version",
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaServerVersion, entity.ParseServerVersion)
}

// CheckServerVersion проверяет версию сервера на соответствие ограничению,
// например ">= 1.20". Несоответствие возвращается как GiteaError с кодом
// ErrGiteaUnsupportedVersion вместе с полученной версией.
func (h *Handler) CheckServerVersion(ctx context.Context, constraint string) (*entity.ServerVersion, error) {
	v, err := h.ServerVersion(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := v.Satisfies(constraint)
	if err != nil {
		return v, NewGiteaError(ErrGiteaValidation, "не удалось проверить версию сервера", err)
	}
	if !ok {
		return v, NewGiteaError(ErrGiteaUnsupportedVersion,
			fmt.Sprintf("версия Gitea %s не удовлетворяет %q", v.Version, constraint), nil)
	}
	return v, nil
}
