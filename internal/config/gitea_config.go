package config

import (
	"time"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
)

// GiteaConfig содержит параметры подключения к Gitea.
type GiteaConfig struct {
	// URL - адрес сервера без /api/v1, например "https://git.example.com".
	URL string `yaml:"url" env:"GITEA_URL"`

	// Username - имя пользователя для получения токена по паролю.
	Username string `yaml:"username" env:"GITEA_USERNAME"`

	// Password - пароль. Не логируется.
	Password string `yaml:"password" env:"GITEA_PASSWORD"`

	// Token - готовый токен доступа. Не логируется.
	Token string `yaml:"token" env:"GITEA_TOKEN"`

	// Cleanup - удалять ранее созданные клиентом токены. По умолчанию true
	// выставляет Load до чтения: env-default затёр бы false из YAML.
	Cleanup bool `yaml:"cleanup" env:"GITEA_CLEANUP"`

	// TokenPrefix - префикс имён токенов клиента.
	TokenPrefix string `yaml:"tokenPrefix" env:"GITEA_TOKEN_PREFIX" env-default:"gitea-pythonvcs-"`

	// Strict - проверять ответы по полной JSON Schema.
	Strict bool `yaml:"strict" env:"GITEA_STRICT" env-default:"false"`

	// Timeout - таймаут HTTP-запросов.
	Timeout time.Duration `yaml:"timeout" env:"GITEA_TIMEOUT" env-default:"30s"`
}

// GiteaConfig возвращает конфигурацию клиента Gitea с заданными
// логгером и сборщиком метрик.
func (c *Config) GiteaConfig(logger logging.Logger, collector metrics.Collector) gitea.Config {
	return gitea.Config{
		BaseURL:     c.Gitea.URL,
		Username:    c.Gitea.Username,
		Password:    c.Gitea.Password,
		Token:       c.Gitea.Token,
		Cleanup:     c.Gitea.Cleanup,
		TokenPrefix: c.Gitea.TokenPrefix,
		Strict:      c.Gitea.Strict,
		Timeout:     c.Gitea.Timeout,
		Logger:      logger,
		Metrics:     collector,
	}
}
