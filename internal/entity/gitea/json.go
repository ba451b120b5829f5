package gitea

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// DecodeObject декодирует тело ответа в JSON-объект.
// Числа сохраняются как json.Number, поэтому int64 идентификаторы не теряют точность.
func DecodeObject(body []byte) (map[string]any, error) {
	v, err := decode(body)
	if err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Cause: fmt.Errorf("ожидался JSON-объект, получено %s", jsonKind(v))}
	}
	return obj, nil
}

// DecodeArray декодирует тело ответа в JSON-массив объектов.
// Пустое тело и null трактуются как пустой список.
func DecodeArray(body []byte) ([]map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []map[string]any{}, nil
	}
	v, err := decode(body)
	if err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	if v == nil {
		return []map[string]any{}, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &MalformedResponseError{Cause: fmt.Errorf("ожидался JSON-массив, получено %s", jsonKind(v))}
	}
	items := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedResponseError{Cause: fmt.Errorf("элемент %d: ожидался JSON-объект, получено %s", i, jsonKind(item))}
		}
		items = append(items, obj)
	}
	return items, nil
}

func decode(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("декодирование JSON: %w", err)
	}
	return v, nil
}

// ParseList отображает каждый объект списка через parse.
// Отображение атомарно: первая ошибка прерывает разбор, частичный результат не возвращается.
// Пустой вход даёт пустой non-nil срез.
func ParseList[T any](items []map[string]any, parse func(map[string]any) (*T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Строгие читатели: используются для контрольных полей.

func requireBool(raw map[string]any, key string) (bool, bool) {
	v, ok := raw[key].(bool)
	return v, ok
}

func requireString(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key].(string)
	return v, ok
}

func requireObject(raw map[string]any, key string) (map[string]any, bool) {
	v, ok := raw[key].(map[string]any)
	return v, ok
}

func requireInt64(raw map[string]any, key string) (int64, bool) {
	return toInt64(raw[key])
}

// Мягкие читатели: отсутствие или неверный тип дают нулевое значение.

func str(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return v
}

func boolean(raw map[string]any, key string) bool {
	v, _ := raw[key].(bool)
	return v
}

func int64Of(raw map[string]any, key string) int64 {
	v, _ := toInt64(raw[key])
	return v
}

func intOf(raw map[string]any, key string) int {
	return int(int64Of(raw, key))
}

func object(raw map[string]any, key string) map[string]any {
	v, _ := raw[key].(map[string]any)
	return v
}

func objects(raw map[string]any, key string) []map[string]any {
	arr, _ := raw[key].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func stringList(raw map[string]any, key string) []string {
	arr, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
