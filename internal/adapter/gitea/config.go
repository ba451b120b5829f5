package gitea

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
)

// DefaultTimeout - таймаут HTTP-клиента по умолчанию.
const DefaultTimeout = 30 * time.Second

// Config содержит параметры создания Handler.
type Config struct {
	// BaseURL - адрес сервера Gitea без /api/v1, например "https://git.example.com/".
	BaseURL string
	// Username - имя пользователя. Нужно для получения токена по паролю.
	Username string
	// Password - пароль. Нужен для получения токена и для Cleanup.
	Password string
	// Token - готовый токен. Используется как есть, без обращения к /tokens.
	Token string
	// Cleanup - удалить ранее созданные клиентом токены (по TokenPrefix)
	// перед созданием нового. Требует Password.
	Cleanup bool
	// TokenPrefix - префикс имён токенов, создаваемых клиентом.
	TokenPrefix string
	// Strict - проверять каждый ответ по полной JSON Schema, а не только контрольное поле.
	Strict bool
	// Timeout - таймаут HTTP-клиента. Игнорируется, если задан HTTPClient.
	Timeout time.Duration
	// HTTPClient - базовый HTTP-клиент. nil - клиент с Timeout.
	HTTPClient *http.Client
	// Logger - логгер запросов. nil - NopLogger.
	Logger logging.Logger
	// Metrics - сборщик метрик запросов. nil - NopCollector.
	Metrics metrics.Collector
}

// DefaultConfig возвращает Config с Cleanup = true и стандартным префиксом токенов.
func DefaultConfig() Config {
	return Config{
		Cleanup:     true,
		TokenPrefix: constants.DefaultTokenPrefix,
		Timeout:     DefaultTimeout,
	}
}

// Validate проверяет конфигурацию без сетевых вызовов.
//
// Токен можно получить, только если задан Token или Password.
// Cleanup удаляет токены через basic auth, поэтому тоже требует Password.
func (c Config) Validate() error {
	if (c.Token == "" && c.Password == "") || (c.Password == "" && c.Cleanup) {
		return &InvalidConfigError{Reason: "нужен token или password; cleanup требует password"}
	}
	if c.Token == "" && c.Username == "" {
		return &InvalidConfigError{Reason: "для получения токена по паролю нужен username"}
	}
	if _, err := apiURL(c.BaseURL); err != nil {
		return &InvalidConfigError{Reason: err.Error()}
	}
	return nil
}

// withDefaults заполняет незаданные зависимости.
func (c Config) withDefaults() Config {
	if c.TokenPrefix == "" {
		c.TokenPrefix = constants.DefaultTokenPrefix
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.Logger == nil {
		c.Logger = logging.NewNopLogger()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NewNopCollector()
	}
	return c
}

// apiURL обрезает завершающие "/" и добавляет префикс API.
func apiURL(base string) (*url.URL, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return nil, errBaseURLRequired
	}
	u, err := url.Parse(base + constants.APIPrefix)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errBaseURLInvalid
	}
	return u, nil
}
