package gitea

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
)

// Коды ошибок для Gitea операций.
const (
	// ErrGiteaConnect - ошибка подключения к серверу Gitea
	ErrGiteaConnect = "GITEA.CONNECT_FAILED"
	// ErrGiteaTimeout - превышено время ожидания или контекст отменён
	ErrGiteaTimeout = "GITEA.TIMEOUT"
	// ErrGiteaAPI - ответ с неожиданным HTTP статусом
	ErrGiteaAPI = "GITEA.API_FAILED"
	// ErrGiteaInvalidConfig - недопустимая конфигурация Handler
	ErrGiteaInvalidConfig = "GITEA.INVALID_CONFIG"
	// ErrGiteaValidation - ошибка валидации входных данных
	ErrGiteaValidation = "GITEA.VALIDATION_FAILED"
	// ErrGiteaUnsupportedVersion - версия сервера не удовлетворяет ограничению
	ErrGiteaUnsupportedVersion = "GITEA.UNSUPPORTED_VERSION"
)

// GiteaError - ошибка транспорта или валидации при работе с Gitea API.
type GiteaError struct {
	// Code - код ошибки (одна из констант ErrGitea*)
	Code string
	// Message - человекочитаемое описание ошибки
	Message string
	// Cause - оригинальная ошибка (если есть)
	Cause error
}

// Error реализует интерфейс error.
func (e *GiteaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap возвращает оригинальную ошибку для errors.Is/As.
func (e *GiteaError) Unwrap() error {
	return e.Cause
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *GiteaError) ErrorCode() string {
	return e.Code
}

// As поддерживает преобразование в apperrors.AppError через errors.As.
func (e *GiteaError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{Code: e.Code, Message: e.Message, Cause: e.Cause}
		return true
	}
	return false
}

// NewGiteaError создаёт новую ошибку Gitea.
func NewGiteaError(code, message string, cause error) *GiteaError {
	return &GiteaError{Code: code, Message: message, Cause: cause}
}

// Response - сырой HTTP-ответ Gitea. Тело прочитано полностью.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// APIError возвращается, когда статус ответа не совпал с ожидаемым.
// Вызывающий код различает ошибки по StatusCode и сырому телу Response.
type APIError struct {
	// Operation - имя операции, например "StarRepository".
	Operation string
	// StatusCode - фактический HTTP статус.
	StatusCode int
	// Expected - ожидаемый HTTP статус.
	Expected int
	// Response - сырой ответ.
	Response *Response
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("gitea: %s: статус %d, ожидался %d", e.Operation, e.StatusCode, e.Expected)
	if m := e.Message(); m != "" {
		msg += ": " + m
	}
	return msg
}

// Message извлекает поле "message" из JSON-тела ошибки Gitea.
func (e *APIError) Message() string {
	if e.Response == nil || len(e.Response.Body) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Response.Body, &body); err != nil {
		return ""
	}
	return body.Message
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *APIError) ErrorCode() string {
	return ErrGiteaAPI
}

// As поддерживает преобразование в apperrors.AppError через errors.As.
func (e *APIError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{Code: ErrGiteaAPI, Message: e.Error()}
		return true
	}
	return false
}

// InvalidConfigError возвращается New до любых сетевых вызовов,
// если комбинация токена, пароля и cleanup не позволяет получить токен.
type InvalidConfigError struct {
	Reason string
}

// Error реализует интерфейс error.
func (e *InvalidConfigError) Error() string {
	return "gitea: недопустимая конфигурация: " + e.Reason
}

// ErrorCode возвращает машиночитаемый код ошибки.
func (e *InvalidConfigError) ErrorCode() string {
	return ErrGiteaInvalidConfig
}

// As поддерживает преобразование в apperrors.AppError через errors.As.
func (e *InvalidConfigError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{Code: ErrGiteaInvalidConfig, Message: e.Reason}
		return true
	}
	return false
}

// IsStatus сообщает, что err - APIError с указанным статусом.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsNotFoundError сообщает, что сервер ответил 404.
func IsNotFoundError(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsAuthError сообщает, что сервер отклонил учётные данные (401 или 403).
func IsAuthError(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsConnectionError сообщает об ошибке подключения к серверу.
func IsConnectionError(err error) bool {
	return hasCode(err, ErrGiteaConnect)
}

// IsTimeoutError сообщает о превышении времени ожидания или отмене контекста.
func IsTimeoutError(err error) bool {
	return hasCode(err, ErrGiteaTimeout)
}

// IsInvalidConfigError сообщает о недопустимой конфигурации Handler.
func IsInvalidConfigError(err error) bool {
	var cfgErr *InvalidConfigError
	return errors.As(err, &cfgErr)
}

func hasCode(err error, code string) bool {
	var giteaErr *GiteaError
	return errors.As(err, &giteaErr) && giteaErr.Code == code
}
