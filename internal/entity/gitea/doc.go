// Package gitea содержит доменную модель Gitea API и слой отображения JSON в неё.
//
// Каждая сущность создаётся функцией ParseX из одного декодированного
// JSON-объекта (map[string]any). Конструктор первым читает контрольное
// поле (canary): если оно отсутствует, равно null или имеет неверный тип,
// возвращается *MalformedResponseError с исходными данными без изменений.
// Остальные поля читаются мягко: отсутствие или неверный тип даёт нулевое значение.
//
// Строгий режим (ValidateStrict) дополнительно проверяет объект по встроенной
// JSON Schema, требующей все документированные поля.
//
// Единственная изменяемая сущность - Settings: она отправляется на сервер
// целиком после изменения одного поля через Settings.Set.
package gitea
