// Package output предоставляет структуру результата команды и его
// форматирование в JSON и текст.
package output

// APIVersion - версия формата Result.
const APIVersion = "v1"

// StatusSuccess и StatusError - возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result - структурированный результат выполнения команды.
// Сериализуется в JSON (GV_OUTPUT_FORMAT=json) или в текст (GV_OUTPUT_FORMAT=text).
type Result struct {
	// Status - "success" или "error".
	Status string `json:"status"`

	// Command - имя выполненной команды.
	Command string `json:"command"`

	// Data - данные команды: сущности Gitea или их списки.
	Data any `json:"data,omitempty"`

	// Error заполняется только при Status = "error".
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata - метаданные выполнения.
	Metadata *Metadata `json:"metadata,omitempty"`

	// Summary не сериализуется напрямую: JSONWriter копирует его в Metadata.Summary.
	Summary *SummaryInfo `json:"-"`
}

// ErrorInfo - ошибка в машиночитаемом виде.
// Message не должен содержать токены и пароли.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	DurationMs int64        `json:"duration_ms"`
	TraceID    string       `json:"trace_id,omitempty"`
	APIVersion string       `json:"api_version"`
	Summary    *SummaryInfo `json:"summary,omitempty"`
}

// NewSuccess создаёт успешный Result.
func NewSuccess(command string, data any) *Result {
	return &Result{
		Status:   StatusSuccess,
		Command:  command,
		Data:     data,
		Metadata: &Metadata{APIVersion: APIVersion},
	}
}

// NewError создаёт Result с ошибкой.
func NewError(command, code, message string) *Result {
	return &Result{
		Status:   StatusError,
		Command:  command,
		Error:    &ErrorInfo{Code: code, Message: message},
		Metadata: &Metadata{APIVersion: APIVersion},
	}
}
