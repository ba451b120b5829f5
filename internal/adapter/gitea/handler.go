package gitea

import (
	"context"
	"net/http"
	"net/url"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// Compile-time проверка реализации интерфейса.
var _ Client = (*Handler)(nil)

// Handler - клиент Gitea API для одного пользователя.
// Токен и базовый URL не изменяются после New; Handler безопасен
// для конкурентных вызовов, порядок между вызовами не гарантируется.
type Handler struct {
	api    *transport
	apiURL *url.URL
	token  string
	user   *entity.User
	strict bool
}

// New создаёт Handler.
//
// Порядок работы:
//  1. Config.Validate: недопустимая конфигурация даёт *InvalidConfigError без сетевых вызовов.
//  2. Token задан - используется как есть.
//  3. Иначе через basic auth: список токенов, при Cleanup удаление токенов
//     с префиксом клиента, создание нового токена; его sha1 становится токеном.
//  4. GET /user с токеном. Ошибка запроса или отображения профиля прерывает создание.
//
// Без Token каждый вызов New создаёт на сервере новый токен.
func New(ctx context.Context, cfg Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	base, err := apiURL(cfg.BaseURL)
	if err != nil {
		return nil, &InvalidConfigError{Reason: err.Error()}
	}

	token := cfg.Token
	if token == "" {
		token, err = newTokenManager(base, cfg).Acquire(ctx, cfg.Cleanup)
		if err != nil {
			return nil, err
		}
	}

	h := &Handler{
		api:    newTokenTransport(base, cfg, token),
		apiURL: base,
		token:  token,
		strict: cfg.Strict,
	}

	user, err := h.Self(ctx)
	if err != nil {
		return nil, err
	}
	h.user = user

	cfg.Logger.Debug("gitea: handler создан", "user", user.Username, "api", base.String())
	return h, nil
}

// Token возвращает токен, которым аутентифицирован Handler.
func (h *Handler) Token() string {
	return h.token
}

// APIURL возвращает базовый URL API, например "https://git.example.com/api/v1".
func (h *Handler) APIURL() string {
	return h.apiURL.String()
}

// User возвращает профиль, загруженный при создании Handler.
func (h *Handler) User() *entity.User {
	return h.user
}

// Self загружает профиль текущего пользователя (GET /user, 200).
func (h *Handler) Self(ctx context.Context) (*entity.User, error) {
	resp, err := h.api.do(ctx, request{
		operation: "Self",
		method:    http.MethodGet,
		path:      "/user",
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeOne(resp, h.strict, entity.SchemaUser, entity.ParseUser)
}

// segment экранирует один сегмент пути.
func segment(s string) string {
	return "/" + url.PathEscape(s)
}
