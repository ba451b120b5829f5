// Package giteatest предоставляет тестовые утилиты для пакета gitea.
//
// # MockClient
//
// MockClient реализует gitea.Client и все его составные интерфейсы
// через функциональные поля. Незаданное поле возвращает данные по умолчанию:
// пустой срез для списков, тестовую сущность для одиночных объектов.
//
//	mock := giteatest.NewMockClient()
//	mock.IsStarredFunc = func(ctx context.Context, owner, repo string) (bool, error) {
//	    return true, nil
//	}
//
// # FakeServer
//
// FakeServer - fake-сервер Gitea API (/api/v1) на go-chi поверх httptest.
// Хранит состояние в памяти: токены, адреса, подписки, ключи, репозитории,
// избранное, настройки, организации и команды. Каждый запрос записывается
// в журнал (Calls), что позволяет проверять порядок вызовов, заголовки и тела.
//
//	srv := giteatest.NewFakeServer(t, "MisileLaboratory", "secret")
//	h, err := gitea.New(ctx, gitea.Config{BaseURL: srv.URL, Username: "MisileLaboratory", Password: "secret", Cleanup: true})
//
// Override подменяет ответ одного эндпоинта, например для проверки
// обработки неожиданного статуса.
package giteatest
