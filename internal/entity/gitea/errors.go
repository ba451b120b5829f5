package gitea

import (
	"fmt"

	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
)

// ErrCodeMalformedResponse - код ошибки несоответствия ответа ожидаемой схеме.
const ErrCodeMalformedResponse = "GITEA.MALFORMED_RESPONSE"

// MalformedResponseError возвращается, когда JSON-ответ не удаётся отобразить
// в доменную сущность. Data содержит исходный объект без изменений.
type MalformedResponseError struct {
	// Data - исходный JSON-объект (или nil, если ответ не является объектом).
	Data map[string]any
	// Field - имя поля, проверка которого не прошла. Пусто при ошибке схемы.
	Field string
	// Cause - причина (ошибка декодирования или валидации схемы).
	Cause error
}

// Error реализует интерфейс error.
func (e *MalformedResponseError) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("некорректный ответ Gitea: поле %q: %v", e.Field, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("некорректный ответ Gitea: поле %q отсутствует или имеет неверный тип", e.Field)
	case e.Cause != nil:
		return fmt.Sprintf("некорректный ответ Gitea: %v", e.Cause)
	default:
		return "некорректный ответ Gitea"
	}
}

// Unwrap возвращает причину для errors.Is/errors.As.
func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает код ошибки в формате apperrors.
func (e *MalformedResponseError) ErrorCode() string {
	return ErrCodeMalformedResponse
}

// As поддерживает преобразование в apperrors.AppError через errors.As.
func (e *MalformedResponseError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{Code: ErrCodeMalformedResponse, Message: e.Error(), Cause: e.Cause}
		return true
	}
	return false
}

func malformed(raw map[string]any, field string) *MalformedResponseError {
	return &MalformedResponseError{Data: raw, Field: field}
}
