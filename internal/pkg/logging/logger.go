// Package logging предоставляет интерфейс и реализации для структурированного логирования.
package logging

// Logger определяет интерфейс для структурированного логирования.
// Методы принимают сообщение и опциональные key-value пары:
//
//	logger.Debug("запрос выполнен", "operation", "GetEmails", "status", 200)
//
// Logger пишет только в stderr или файл. stdout занят результатом команды.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	With(args ...any) Logger
}
