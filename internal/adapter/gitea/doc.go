// Package gitea - типизированный клиент Gitea REST API (/api/v1).
//
// Handler создаётся функцией New: она проверяет комбинацию учётных данных,
// при необходимости получает токен через TokenManager (список токенов,
// удаление ранее созданных клиентом, создание нового) и загружает профиль
// текущего пользователя. Каждая операция Handler выполняет один HTTP-запрос,
// сравнивает статус с единственным ожидаемым кодом и отображает JSON-ответ
// в сущности пакета internal/entity/gitea.
//
// Токен отправляется и в заголовке "Authorization: token <t>", и в
// query-параметре "token": часть эндпоинтов старых версий Gitea читает
// только один из них.
//
// Интерфейсы разделены по принципу ISP:
//   - UserReader - профиль текущего пользователя
//   - EmailManager - адреса электронной почты
//   - FollowManager - подписчики и подписки
//   - GPGKeyManager - GPG-ключи
//   - PublicKeyManager - SSH-ключи
//   - RepositoryManager - репозитории пользователя
//   - SettingsManager - настройки пользователя
//   - StarManager - избранные репозитории
//   - OrgReader - организации и команды
//   - VersionReader - версия сервера
//
// Композитный интерфейс Client объединяет их все.
//
// # Ошибки
//
//   - *APIError - статус ответа не совпал с ожидаемым; содержит сырой ответ
//   - *entity.MalformedResponseError - ответ не отображается в сущность
//   - *InvalidConfigError - недопустимая конфигурация, до любых сетевых вызовов
//   - *GiteaError - ошибка транспорта или валидации входных данных
//
// Ошибки не повторяются и не преобразуются: операция либо возвращает
// полностью разобранный результат, либо одну из ошибок выше.
//
// # Тестирование
//
// Пакет giteatest содержит MockClient с функциональными полями и
// fake-сервер Gitea на chi для интеграционных тестов.
package gitea
