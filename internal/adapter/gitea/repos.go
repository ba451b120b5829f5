package gitea

import (
	"context"
	"net/http"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// -------------------------------------------------------------------
// RepositoryManager
// -------------------------------------------------------------------

// GetRepositories возвращает репозитории текущего пользователя (GET /user/repos, 200).
func (h *Handler) GetRepositories(ctx context.Context, opts ListOptions) ([]entity.Repository, error) {
	return h.listRepositories(ctx, "GetRepositories", "/user/repos", opts)
}

// CreateRepository создаёт репозиторий (POST /user/repos, 201).
// Незаданные необязательные поля RepoOption не попадают в тело запроса.
func (h *Handler) CreateRepository(ctx context.Context, opt entity.RepoOption) (*entity.Repository, error) {
	if err := opt.Validate(); err != nil {
		return nil, NewGiteaError(ErrGiteaValidation, "некорректные параметры репозитория", err)
	}
	resp, err := h.api.do(ctx, request{
		operation: "CreateRepository",
		method:    http.MethodPost,
		path:      "/user/repos",
		body:      opt,
		expect:    http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaRepository, entity.ParseRepository)
}

func (h *Handler) listRepositories(ctx context.Context, operation, path string, opts ListOptions) ([]entity.Repository, error) {
	resp, err := h.api.do(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		query:     opts.values(),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaRepository, entity.ParseRepository)
}

// -------------------------------------------------------------------
// StarManager
// -------------------------------------------------------------------

// GetStarredRepositories возвращает избранные репозитории (GET /user/starred, 200).
func (h *Handler) GetStarredRepositories(ctx context.Context, opts ListOptions) ([]entity.Repository, error) {
	return h.listRepositories(ctx, "GetStarredRepositories", "/user/starred", opts)
}

// StarRepository добавляет репозиторий в избранное (PUT /user/starred/{owner}/{repo}, 204).
func (h *Handler) StarRepository(ctx context.Context, owner, repo string) error {
	_, err := h.api.do(ctx, request{
		operation: "StarRepository",
		method:    http.MethodPut,
		path:      "/user/starred" + segment(owner) + segment(repo),
		expect:    http.StatusNoContent,
	})
	return err
}

// UnstarRepository убирает репозиторий из избранного (DELETE /user/starred/{owner}/{repo}, 204).
func (h *Handler) UnstarRepository(ctx context.Context, owner, repo string) error {
	_, err := h.api.do(ctx, request{
		operation: "UnstarRepository",
		method:    http.MethodDelete,
		path:      "/user/starred" + segment(owner) + segment(repo),
		expect:    http.StatusNoContent,
	})
	return err
}

// IsStarred проверяет, находится ли репозиторий в избранном
// (GET /user/starred/{owner}/{repo}: 204 - да, 404 - нет).
func (h *Handler) IsStarred(ctx context.Context, owner, repo string) (bool, error) {
	_, err := h.api.do(ctx, request{
		operation: "IsStarred",
		method:    http.MethodGet,
		path:      "/user/starred" + segment(owner) + segment(repo),
		expect:    http.StatusNoContent,
	})
	switch {
	case err == nil:
		return true, nil
	case IsNotFoundError(err):
		return false, nil
	default:
		return false, err
	}
}
