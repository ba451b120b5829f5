package config

import (
	"fmt"

	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error).
	Level string `yaml:"level" env:"GV_LOG_LEVEL" env-default:"info"`

	// Format - формат логов (json, text).
	Format string `yaml:"format" env:"GV_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file).
	Output string `yaml:"output" env:"GV_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов при output=file.
	FilePath string `yaml:"filePath" env:"GV_LOG_FILE_PATH"`

	// MaxSize - максимальный размер файла лога в MB.
	MaxSize int `yaml:"maxSize" env:"GV_LOG_MAX_SIZE" env-default:"50"`

	// MaxBackups - количество сохраняемых файлов.
	MaxBackups int `yaml:"maxBackups" env:"GV_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст файлов в днях.
	MaxAge int `yaml:"maxAge" env:"GV_LOG_MAX_AGE" env-default:"14"`

	// Compress - сжимать ротированные файлы.
	Compress bool `yaml:"compress" env:"GV_LOG_COMPRESS" env-default:"true"`
}

// LoggingConfig возвращает настройки для logging.NewLogger.
// Пустые значения заменяются значениями по умолчанию.
func (c *Config) LoggingConfig() logging.Config {
	out := logging.DefaultConfig()
	lc := c.Logging
	if lc.Level != "" {
		out.Level = lc.Level
	}
	if lc.Format != "" {
		out.Format = lc.Format
	}
	if lc.Output != "" {
		out.Output = lc.Output
	}
	if lc.FilePath != "" {
		out.FilePath = lc.FilePath
	}
	if lc.MaxSize > 0 {
		out.MaxSize = lc.MaxSize
	}
	if lc.MaxBackups > 0 {
		out.MaxBackups = lc.MaxBackups
	}
	if lc.MaxAge > 0 {
		out.MaxAge = lc.MaxAge
	}
	out.Compress = lc.Compress
	return out
}

func (lc LoggingConfig) validate() error {
	switch lc.Level {
	case "", logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("logging: неизвестный уровень %q", lc.Level)
	}
	switch lc.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("logging: неизвестный формат %q", lc.Format)
	}
	return nil
}
