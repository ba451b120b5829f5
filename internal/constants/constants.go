// Package constants содержит константы, используемые в проекте gitea-vcs.
// Константы сгруппированы по функциональному назначению.
package constants

// Константы API Gitea
const (
	// APIVersion - версия REST API Gitea
	APIVersion = "v1"
	// APIPrefix - путь, добавляемый к базовому URL сервера
	APIPrefix = "/api/" + APIVersion
	// TokenQueryParam - имя query-параметра с токеном доступа.
	// Часть эндпоинтов принимает токен только так, поэтому он отправляется всегда.
	TokenQueryParam = "token"
	// TokenHeaderType - тип токена в заголовке Authorization ("token <sha1>")
	TokenHeaderType = "token"
)

// Константы управления токенами
const (
	// DefaultTokenPrefix - зарезервированный префикс имён токенов, созданных клиентом.
	// Совпадает с префиксом, который использовали предыдущие версии клиента,
	// чтобы очистка находила и их токены.
	DefaultTokenPrefix = "gitea-pythonvcs-"
	// TokenSuffixEntropyBytes - количество случайных байт для суффикса имени токена
	TokenSuffixEntropyBytes = 64
)

// Константы приложения
const (
	// AppName - имя приложения (job для метрик, service.name для трейсинга)
	AppName = "gitea-vcs"
	// MsgAppExit - сообщение о завершении работы программы
	MsgAppExit = "Завершение работы программы"
)

// Переменные окружения
const (
	// EnvConfigPath - путь к YAML файлу конфигурации
	EnvConfigPath = "GV_CONFIG"
	// EnvOutputFormat - формат вывода результатов (json, text)
	EnvOutputFormat = "GV_OUTPUT_FORMAT"
)

// Константы команд
const (
	ActHelp          = "help"
	ActVersion       = "version"
	ActWhoAmI        = "whoami"
	ActEmails        = "emails"
	ActAddEmail      = "add-email"
	ActRemoveEmail   = "remove-email"
	ActFollowers     = "followers"
	ActFollowing     = "following"
	ActFollow        = "follow"
	ActUnfollow      = "unfollow"
	ActGPGKeys       = "gpg-keys"
	ActGPGKey        = "gpg-key"
	ActAddGPGKey     = "add-gpg-key"
	ActDeleteGPGKey  = "delete-gpg-key"
	ActKeys          = "keys"
	ActKey           = "key"
	ActAddKey        = "add-key"
	ActDeleteKey     = "delete-key"
	ActRepos         = "repos"
	ActCreateRepo    = "create-repo"
	ActSettings      = "settings"
	ActSetSetting    = "set-setting"
	ActStarred       = "starred"
	ActStar          = "star"
	ActUnstar        = "unstar"
	ActOrgs          = "orgs"
	ActTeams         = "teams"
	ActServerVersion = "server-version"
	ActTokens        = "tokens"
)
