// Package shared содержит общий каркас команд CLI: разбор флагов,
// подключение к Gitea, запись результата, метрики и трейсинг команды.
package shared
