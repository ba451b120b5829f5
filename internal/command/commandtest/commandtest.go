// Package commandtest содержит помощники для тестов команд CLI.
package commandtest

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/adapter/gitea/giteatest"
	"github.com/Kargones/gitea-vcs/internal/command"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/output"
)

// Result - разобранный JSON-вывод команды. Data оставлен сырым
// для декодирования в тип конкретной команды.
type Result struct {
	Status   string            `json:"status"`
	Command  string            `json:"command"`
	Data     json.RawMessage   `json:"data"`
	Error    *output.ErrorInfo `json:"error"`
	Metadata *output.Metadata  `json:"metadata"`
}

// CommandRecord - одна запись RecordCommand.
type CommandRecord struct {
	Command string
	Success bool
}

// Collector записывает вызовы RecordCommand.
type Collector struct {
	mu       sync.Mutex
	Commands []CommandRecord
}

// RecordRequest ничего не делает.
func (c *Collector) RecordRequest(string, int, time.Duration, bool) {}

// RecordCommand запоминает команду и её успешность.
func (c *Collector) RecordCommand(cmd string, _ time.Duration, success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Commands = append(c.Commands, CommandRecord{Command: cmd, Success: success})
}

// Push ничего не делает.
func (c *Collector) Push(context.Context) error { return nil }

// Harness - окружение команды с JSON-выводом в буфер.
type Harness struct {
	Env       *command.Env
	Out       *bytes.Buffer
	Connector *giteatest.MockConnector
	Metrics   *Collector
}

// New создаёт Harness с клиентом client.
func New(client gitea.Client) *Harness {
	out := &bytes.Buffer{}
	conn := &giteatest.MockConnector{Client: client}
	collector := &Collector{}
	return &Harness{
		Env: &command.Env{
			Connector: conn,
			Tokens: func() (gitea.TokenStore, error) {
				return &giteatest.MockTokenStore{}, nil
			},
			Writer:  output.NewJSONWriter(),
			Out:     out,
			Logger:  logging.NewNopLogger(),
			Metrics: collector,
		},
		Out:       out,
		Connector: conn,
		Metrics:   collector,
	}
}

// Run выполняет h с аргументами args и возвращает разобранный вывод.
func (hs *Harness) Run(t *testing.T, h command.Handler, args ...string) (*Result, error) {
	t.Helper()
	hs.Out.Reset()
	err := h.Execute(context.Background(), hs.Env, args)

	var res Result
	require.NoError(t, json.Unmarshal(hs.Out.Bytes(), &res), "вывод должен быть JSON: %s", hs.Out.String())
	return &res, err
}

// DecodeData декодирует Data результата в v.
func DecodeData(t *testing.T, res *Result, v any) {
	t.Helper()
	require.NotEmpty(t, res.Data, "результат без data")
	require.NoError(t, json.Unmarshal(res.Data, v))
}

// Find возвращает обработчик с именем name из handlers.
func Find(t *testing.T, handlers []command.Handler, name string) command.Handler {
	t.Helper()
	for _, h := range handlers {
		if h.Name() == name {
			return h
		}
	}
	require.FailNow(t, "команда не найдена", name)
	return nil
}
