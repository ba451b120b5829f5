package gitea

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/Kargones/gitea-vcs/internal/constants"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"

	"golang.org/x/crypto/sha3"
)

// TokenManager управляет токенами пользователя через basic auth:
// список, удаление токенов клиента и создание нового.
type TokenManager struct {
	api      *transport
	username string
	prefix   string
	strict   bool
	logger   logging.Logger
}

// NewTokenManager создаёт TokenManager. Требует Username и Password.
func NewTokenManager(cfg Config) (*TokenManager, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, &InvalidConfigError{Reason: "управление токенами требует username и password"}
	}
	base, err := apiURL(cfg.BaseURL)
	if err != nil {
		return nil, &InvalidConfigError{Reason: err.Error()}
	}
	cfg = cfg.withDefaults()
	return newTokenManager(base, cfg), nil
}

func newTokenManager(base *url.URL, cfg Config) *TokenManager {
	return &TokenManager{
		api:      newBasicTransport(base, cfg),
		username: cfg.Username,
		prefix:   cfg.TokenPrefix,
		strict:   cfg.Strict,
		logger:   cfg.Logger,
	}
}

// Prefix возвращает префикс имён токенов, создаваемых клиентом.
func (m *TokenManager) Prefix() string {
	return m.prefix
}

func (m *TokenManager) tokensPath() string {
	return "/users" + segment(m.username) + "/tokens"
}

// List возвращает токены пользователя (GET /users/{name}/tokens, 200).
func (m *TokenManager) List(ctx context.Context) ([]entity.AccessToken, error) {
	resp, err := m.api.do(ctx, request{
		operation: "ListTokens",
		method:    http.MethodGet,
		path:      m.tokensPath(),
		expect:    http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return decodeList(resp, m.strict, entity.SchemaAccessToken, entity.ParseAccessToken)
}

// Delete удаляет токен по имени (DELETE /users/{name}/tokens/{token}, 204).
func (m *TokenManager) Delete(ctx context.Context, name string) error {
	_, err := m.api.do(ctx, request{
		operation: "DeleteToken",
		method:    http.MethodDelete,
		path:      m.tokensPath() + segment(name),
		expect:    http.StatusNoContent,
	})
	return err
}

// Create создаёт токен с именем prefix+GenerateSuffix() (POST /users/{name}/tokens, 201).
// Ответ без sha1 считается некорректным: без него токен нельзя использовать.
func (m *TokenManager) Create(ctx context.Context, scopes ...string) (*entity.AccessToken, error) {
	resp, err := m.api.do(ctx, request{
		operation: "CreateToken",
		method:    http.MethodPost,
		path:      m.tokensPath(),
		body:      entity.CreateTokenOption{Name: m.prefix + GenerateSuffix(), Scopes: scopes},
		expect:    http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}

	raw, err := entity.DecodeObject(resp.Body)
	if err != nil {
		return nil, err
	}
	tok, err := parseStrict(raw, m.strict, entity.SchemaAccessToken, entity.ParseAccessToken)
	if err != nil {
		return nil, err
	}
	if tok.SHA1 == "" {
		return nil, &entity.MalformedResponseError{Data: raw, Field: "sha1"}
	}
	return tok, nil
}

// Cleanup удаляет из tokens все токены с префиксом клиента и возвращает их имена.
// Остальные токены не затрагиваются.
func (m *TokenManager) Cleanup(ctx context.Context, tokens []entity.AccessToken) ([]string, error) {
	deleted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsManagedToken(tok.Name, m.prefix) {
			continue
		}
		if err := m.Delete(ctx, tok.Name); err != nil {
			return deleted, err
		}
		m.logger.Debug("gitea: удалён токен клиента", "name", tok.Name)
		deleted = append(deleted, tok.Name)
	}
	return deleted, nil
}

// Acquire выполняет полный протокол получения токена:
// список → (при cleanup) удаление токенов клиента → создание нового.
// Возвращает значение sha1 созданного токена.
func (m *TokenManager) Acquire(ctx context.Context, cleanup bool) (string, error) {
	tokens, err := m.List(ctx)
	if err != nil {
		return "", err
	}
	if cleanup {
		if _, err := m.Cleanup(ctx, tokens); err != nil {
			return "", err
		}
	}
	tok, err := m.Create(ctx)
	if err != nil {
		return "", err
	}
	m.logger.Info("gitea: создан токен доступа", "name", tok.Name)
	return tok.SHA1, nil
}

// IsManagedToken сообщает, что токен создан клиентом (имя начинается с prefix).
func IsManagedToken(name, prefix string) bool {
	return prefix != "" && strings.HasPrefix(name, prefix)
}

// GenerateSuffix возвращает непредсказуемый суффикс имени токена:
// SHA3-512 от 64 байт crypto/rand в hex (128 символов). Функция без состояния.
func GenerateSuffix() string {
	buf := make([]byte, constants.TokenSuffixEntropyBytes)
	// crypto/rand.Read не возвращает ошибку начиная с Go 1.24.
	_, _ = rand.Read(buf)
	sum := sha3.Sum512(buf)
	return hex.EncodeToString(sum[:])
}
