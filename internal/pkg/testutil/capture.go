// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, перехватывая os.Stdout, и возвращает вывод.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr выполняет fn, перехватывая os.Stderr, и возвращает вывод.
// Логгер, созданный внутри fn, пишет в перехваченный поток.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

// capture подменяет *target на pipe на время fn. Вывод читается
// параллельно, чтобы fn не блокировалась на заполненном буфере pipe.
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe")

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, readErr := buf.ReadFrom(r)
		done <- readErr
	}()

	orig := *target
	*target = w
	defer func() { *target = orig }()

	fn()

	_ = w.Close() //nolint:errcheck // test helper pipe close
	require.NoError(t, <-done, "не удалось прочитать вывод")
	_ = r.Close() //nolint:errcheck // test helper pipe close
	return buf.String()
}
