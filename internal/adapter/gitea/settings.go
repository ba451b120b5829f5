package gitea

import (
	"context"
	"net/http"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// GetSettings возвращает настройки текущего пользователя (GET /user/settings, 200).
func (h *Handler) GetSettings(ctx context.Context) (*entity.Settings, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetSettings",
		method:    http.MethodGet,
		path:      "/user/settings",
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaSettings, entity.ParseSettings)
}

// UpdateSettings отправляет настройки целиком (PATCH /user/settings, 200)
// и возвращает настройки из ответа сервера.
func (h *Handler) UpdateSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	if settings == nil {
		return nil, NewGiteaError(ErrGiteaValidation, "настройки не заданы", nil)
	}
	resp, err := h.api.do(ctx, request{
		operation: "UpdateSettings",
		method:    http.MethodPatch,
		path:      "/user/settings",
		body:      settings,
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaSettings, entity.ParseSettings)
}

// ChangeSetting изменяет одну настройку: читает текущие настройки,
// меняет поле field и отправляет запись целиком. Между чтением и записью
// другой клиент может изменить настройки; его изменения будут перезаписаны.
func (h *Handler) ChangeSetting(ctx context.Context, field string, value any) (*entity.Settings, error) {
	current, err := h.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := current.Set(field, value); err != nil {
		return nil, NewGiteaError(ErrGiteaValidation, "некорректная настройка", err)
	}
	return h.UpdateSettings(ctx, current)
}
