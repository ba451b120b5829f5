package gitea

import (
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// parseStrict при strict сначала проверяет объект по JSON Schema kind, затем отображает его.
func parseStrict[T any](raw map[string]any, strict bool, kind entity.SchemaKind, parse func(map[string]any) (*T, error)) (*T, error) {
	if strict {
		if err := entity.ValidateStrict(kind, raw); err != nil {
			return nil, err
		}
	}
	return parse(raw)
}

// decodeOne отображает JSON-объект из тела ответа.
func decodeOne[T any](resp *Response, strict bool, kind entity.SchemaKind, parse func(map[string]any) (*T, error)) (*T, error) {
	raw, err := entity.DecodeObject(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseStrict(raw, strict, kind, parse)
}

// decodeList отображает JSON-массив из тела ответа. Пустой ответ даёт пустой non-nil срез,
// ошибка любого элемента отменяет весь результат.
func decodeList[T any](resp *Response, strict bool, kind entity.SchemaKind, parse func(map[string]any) (*T, error)) ([]T, error) {
	items, err := entity.DecodeArray(resp.Body)
	if err != nil {
		return nil, err
	}
	return entity.ParseList(items, func(raw map[string]any) (*T, error) {
		return parseStrict(raw, strict, kind, parse)
	})
}
