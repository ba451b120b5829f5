package metrics

import (
	"context"
	"time"
)

// NopCollector - Collector, который ничего не записывает.
type NopCollector struct{}

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordRequest ничего не делает.
func (c *NopCollector) RecordRequest(string, int, time.Duration, bool) {}

// RecordCommand ничего не делает.
func (c *NopCollector) RecordCommand(string, time.Duration, bool) {}

// Push всегда возвращает nil.
func (c *NopCollector) Push(context.Context) error {
	return nil
}
