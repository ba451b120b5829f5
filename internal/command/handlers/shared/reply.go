package shared

import (
	"strconv"

	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// Item возвращает Reply с одним объектом.
func Item(data any) *Reply {
	return &Reply{Data: data}
}

// List возвращает Reply со списком и метрикой "count" в сводке.
// nil-список заменяется пустым.
func List[T any](items []T) *Reply {
	if items == nil {
		items = []T{}
	}
	summary := output.NewSummaryInfo()
	summary.AddMetric("count", strconv.Itoa(len(items)), "")
	return &Reply{Data: items, Summary: summary}
}

// Done возвращает Reply для команды без данных в ответе сервера.
func Done(fields map[string]any) *Reply {
	return &Reply{Data: fields}
}
