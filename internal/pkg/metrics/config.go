package metrics

import (
	"net/url"
	"time"
)

// Config содержит настройки сбора и отправки метрик.
type Config struct {
	// Enabled - включены ли метрики.
	Enabled bool

	// PushgatewayURL - URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string

	// JobName - имя job для группировки метрик.
	JobName string

	// Timeout - таймаут отправки в Pushgateway.
	Timeout time.Duration

	// InstanceLabel - значение label instance. Пусто - hostname.
	InstanceLabel string
}

// Validate проверяет корректность конфигурации.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}

	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}

	if c.JobName == "" {
		return ErrJobNameRequired
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию: метрики отключены.
func DefaultConfig() Config {
	return Config{
		JobName: "gitea-vcs",
		Timeout: 10 * time.Second,
	}
}
