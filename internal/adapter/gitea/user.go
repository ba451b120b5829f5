package gitea

import (
	"context"
	"net/http"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// -------------------------------------------------------------------
// EmailManager
// -------------------------------------------------------------------

// GetEmails возвращает адреса текущего пользователя (GET /user/emails, 200).
func (h *Handler) GetEmails(ctx context.Context) ([]entity.Email, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetEmails",
		method:    http.MethodGet,
		path:      "/user/emails",
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaEmail, entity.ParseEmail)
}

// AddEmails добавляет адреса и возвращает созданные записи (POST /user/emails, 201).
func (h *Handler) AddEmails(ctx context.Context, emails []string) ([]entity.Email, error) {
	resp, err := h.api.do(ctx, request{
		operation: "AddEmails",
		method:    http.MethodPost,
		path:      "/user/emails",
		body:      entity.EmailOption{Emails: emails},
		expect:    http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaEmail, entity.ParseEmail)
}

// RemoveEmails удаляет адреса (DELETE /user/emails с JSON-телом, 204).
func (h *Handler) RemoveEmails(ctx context.Context, emails []string) error {
	_, err := h.api.do(ctx, request{
		operation: "RemoveEmails",
		method:    http.MethodDelete,
		path:      "/user/emails",
		body:      entity.EmailOption{Emails: emails},
		expect:    http.StatusNoContent,
	})
	return err
}

// -------------------------------------------------------------------
// FollowManager
// -------------------------------------------------------------------

// GetFollowers возвращает подписчиков (GET /user/followers, 200).
// Нет подписчиков - пустой срез.
func (h *Handler) GetFollowers(ctx context.Context, opts ListOptions) ([]entity.User, error) {
	return h.listUsers(ctx, "GetFollowers", "/user/followers", opts)
}

// GetFollowings возвращает пользователей, на которых подписан текущий (GET /user/following, 200).
func (h *Handler) GetFollowings(ctx context.Context, opts ListOptions) ([]entity.User, error) {
	return h.listUsers(ctx, "GetFollowings", "/user/following", opts)
}

func (h *Handler) listUsers(ctx context.Context, operation, path string, opts ListOptions) ([]entity.User, error) {
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
	return decodeList(resp, h.strict, entity.SchemaUser, entity.ParseUser)
}

// FollowUser подписывается на пользователя (PUT /user/following/{username}, 204).
func (h *Handler) FollowUser(ctx context.Context, username string) error {
	_, err := h.api.do(ctx, request{
		operation: "FollowUser",
		method:    http.MethodPut,
		path:      "/user/following" + segment(username),
		expect:    http.StatusNoContent,
	})
	return err
}

// UnfollowUser отписывается от пользователя (DELETE /user/following/{username}, 204).
func (h *Handler) UnfollowUser(ctx context.Context, username string) error {
	_, err := h.api.do(ctx, request{
		operation: "UnfollowUser",
		method:    http.MethodDelete,
		path:      "/user/following" + segment(username),
		expect:    http.StatusNoContent,
	})
	return err
}
