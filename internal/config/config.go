// Package config загружает конфигурацию gitea-vcs из переменных окружения
// и необязательного YAML файла (путь в GV_CONFIG). Переменные окружения
// имеют приоритет над файлом.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// Config содержит конфигурацию приложения.
type Config struct {
	// Gitea - подключение к серверу Gitea.
	Gitea GiteaConfig `yaml:"gitea"`

	// Logging - настройки логирования.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics - настройки Prometheus метрик.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing - настройки OpenTelemetry трейсинга.
	Tracing TracingConfig `yaml:"tracing"`

	// OutputFormat - формат вывода результатов команд (text, json).
	OutputFormat string `yaml:"outputFormat" env:"GV_OUTPUT_FORMAT" env-default:"text"`

	// Path - путь к загруженному YAML файлу. Пусто, если файл не задан.
	Path string `yaml:"-"`
}

// Load читает конфигурацию и проверяет её через Validate.
// YAML файл читается, если задана переменная GV_CONFIG.
func Load() (*Config, error) {
	cfg := &Config{Path: os.Getenv(constants.EnvConfigPath)}
	cfg.Gitea.Cleanup = true

	var err error
	if cfg.Path != "" {
		err = cleanenv.ReadConfig(cfg.Path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad, "не удалось загрузить конфигурацию", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет конфигурацию без сетевых вызовов.
//
// Учётные данные Gitea здесь не проверяются: команды help и version
// работают без них, а клиент проверяет их сам при подключении.
func (c *Config) Validate() error {
	var errs []error

	if c.Gitea.Timeout < 0 {
		errs = append(errs, errors.New("gitea: timeout не может быть отрицательным"))
	}
	if err := c.Logging.validate(); err != nil {
		errs = append(errs, err)
	}
	metricsCfg := c.MetricsConfig()
	if err := metricsCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	tracingCfg := c.TracingConfig()
	if err := tracingCfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.OutputFormat) {
	case "", output.FormatText, output.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("output: неизвестный формат %q", c.OutputFormat))
	}

	if len(errs) == 0 {
		return nil
	}
	return apperrors.NewAppError(apperrors.ErrConfigValidate, "некорректная конфигурация", errors.Join(errs...))
}
