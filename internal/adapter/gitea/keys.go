package gitea

import (
	"context"
	"net/http"
	"strconv"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// -------------------------------------------------------------------
// GPGKeyManager
// -------------------------------------------------------------------

// GetGPGKeys возвращает GPG-ключи текущего пользователя (GET /user/gpg_keys, 200).
func (h *Handler) GetGPGKeys(ctx context.Context, opts ListOptions) ([]entity.GPGKey, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetGPGKeys",
		method:    http.MethodGet,
		path:      "/user/gpg_keys",
		query:     opts.values(),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaGPGKey, entity.ParseGPGKey)
}

// AddGPGKey добавляет GPG-ключ (POST /user/gpg_keys, 201).
func (h *Handler) AddGPGKey(ctx context.Context, opt entity.CreateGPGKeyOption) (*entity.GPGKey, error) {
	if opt.ArmoredKey == "" {
		return nil, NewGiteaError(ErrGiteaValidation, "armored_public_key обязателен", nil)
	}
	resp, err := h.api.do(ctx, request{
		operation: "AddGPGKey",
		method:    http.MethodPost,
		path:      "/user/gpg_keys",
		body:      opt,
		expect:    http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaGPGKey, entity.ParseGPGKey)
}

// GetGPGKey возвращает GPG-ключ по id (GET /user/gpg_keys/{id}, 200).
func (h *Handler) GetGPGKey(ctx context.Context, id int64) (*entity.GPGKey, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetGPGKey",
		method:    http.MethodGet,
		path:      "/user/gpg_keys/" + strconv.FormatInt(id, 10),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaGPGKey, entity.ParseGPGKey)
}

// DeleteGPGKey удаляет GPG-ключ (DELETE /user/gpg_keys/{id}, 204).
func (h *Handler) DeleteGPGKey(ctx context.Context, id int64) error {
	_, err := h.api.do(ctx, request{
		operation: "DeleteGPGKey",
		method:    http.MethodDelete,
		path:      "/user/gpg_keys/" + strconv.FormatInt(id, 10),
		expect:    http.StatusNoContent,
	})
	return err
}

// -------------------------------------------------------------------
// PublicKeyManager
// -------------------------------------------------------------------

// GetPublicKeys возвращает SSH-ключи (GET /user/keys, 200).
// Непустой fingerprint фильтрует ключи на стороне сервера.
func (h *Handler) GetPublicKeys(ctx context.Context, fingerprint string, opts ListOptions) ([]entity.PublicKey, error) {
	q := opts.values()
	if fingerprint != "" {
		q.Set("fingerprint", fingerprint)
	}
	resp, err := h.api.do(ctx, request{
		operation: "GetPublicKeys",
		method:    http.MethodGet,
		path:      "/user/keys",
		query:     q,
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, h.strict, entity.SchemaPublicKey, entity.ParsePublicKey)
}

// AddPublicKey добавляет SSH-ключ (POST /user/keys, 201).
func (h *Handler) AddPublicKey(ctx context.Context, opt entity.CreateKeyOption) (*entity.PublicKey, error) {
	if opt.Key == "" || opt.Title == "" {
		return nil, NewGiteaError(ErrGiteaValidation, "key и title обязательны", nil)
	}
	resp, err := h.api.do(ctx, request{
		operation: "AddPublicKey",
		method:    http.MethodPost,
		path:      "/user/keys",
		body:      opt,
		expect:    http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaPublicKey, entity.ParsePublicKey)
}

// GetPublicKey возвращает SSH-ключ по id (GET /user/keys/{id}, 200).
func (h *Handler) GetPublicKey(ctx context.Context, id int64) (*entity.PublicKey, error) {
	resp, err := h.api.do(ctx, request{
		operation: "GetPublicKey",
		method:    http.MethodGet,
		path:      "/user/keys/" + strconv.FormatInt(id, 10),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaPublicKey, entity.ParsePublicKey)
}

// DeletePublicKey удаляет SSH-ключ (DELETE /user/keys/{id}, 204).
func (h *Handler) DeletePublicKey(ctx context.Context, id int64) error {
	_, err := h.api.do(ctx, request{
		operation: "DeletePublicKey",
		method:    http.MethodDelete,
		path:      "/user/keys/" + strconv.FormatInt(id, 10),
		expect:    http.StatusNoContent,
	})
	return err
}
