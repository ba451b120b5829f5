package metrics

import "errors"

var (
	// ErrPushgatewayURLRequired - не указан URL Pushgateway при включённых метриках.
	ErrPushgatewayURLRequired = errors.New("pushgateway URL is required when metrics enabled")

	// ErrJobNameRequired - не указано имя job.
	ErrJobNameRequired = errors.New("job name is required")

	// ErrInvalidTimeout - таймаут не положителен.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrPushgatewayURLInvalid - URL Pushgateway имеет неверный формат.
	ErrPushgatewayURLInvalid = errors.New("pushgateway URL has invalid format")
)
