package command

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHandler - тестовый обработчик команды.
type mockHandler struct {
	name string
}

func (m *mockHandler) Name() string        { return m.name }
func (m *mockHandler) Description() string { return "mock: " + m.name }
func (m *mockHandler) Execute(_ context.Context, _ *Env, _ []string) error {
	return nil
}

func TestRegister_Success(t *testing.T) {
	clearRegistry()

	h := &mockHandler{name: "whoami"}
	require.NoError(t, Register(h))

	got, ok := Get("whoami")
	assert.True(t, ok, "команда должна быть найдена в реестре")
	assert.Equal(t, h, got, "должен вернуться тот же handler")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
		wantErr error
	}{
		{name: "nil handler", handler: nil, wantErr: ErrNilHandler},
		{name: "empty name", handler: &mockHandler{name: ""}, wantErr: ErrEmptyName},
		{name: "upper case", handler: &mockHandler{name: "WhoAmI"}, wantErr: ErrInvalidName},
		{name: "underscore", handler: &mockHandler{name: "add_key"}, wantErr: ErrInvalidName},
		{name: "leading dash", handler: &mockHandler{name: "-key"}, wantErr: ErrInvalidName},
		{name: "double dash", handler: &mockHandler{name: "add--key"}, wantErr: ErrInvalidName},
		{name: "leading digit", handler: &mockHandler{name: "1key"}, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearRegistry()
			err := Register(tt.handler)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, Names(), "реестр не должен измениться")
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	clearRegistry()

	require.NoError(t, Register(&mockHandler{name: "star"}))
	err := Register(&mockHandler{name: "star"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateHandler)
	assert.Contains(t, err.Error(), "star")
}

func TestRegister_ValidNameFormats(t *testing.T) {
	validNames := []string{
		"whoami",
		"add-gpg-key",
		"server-version",
		"a",
		"a1",
		"command123",
	}

	for _, name := range validNames {
		t.Run(name, func(t *testing.T) {
			clearRegistry()
			h := &mockHandler{name: name}
			require.NoError(t, Register(h), "валидное имя %s", name)

			got, ok := Get(name)
			assert.True(t, ok)
			assert.Equal(t, h, got)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	clearRegistry()

	got, ok := Get("non-existent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestAll_ReturnsCopy(t *testing.T) {
	clearRegistry()

	require.NoError(t, Register(&mockHandler{name: "repos"}))
	require.NoError(t, Register(&mockHandler{name: "orgs"}))

	all := All()
	assert.Len(t, all, 2)

	delete(all, "repos")
	_, ok := Get("repos")
	assert.True(t, ok, "изменение копии не должно затрагивать реестр")
}

func TestNames_Sorted(t *testing.T) {
	clearRegistry()
	assert.Empty(t, Names())

	for _, name := range []string{"unstar", "emails", "keys"} {
		require.NoError(t, Register(&mockHandler{name: name}))
	}

	assert.Equal(t, []string{"emails", "keys", "unstar"}, Names())
}

func TestConcurrentAccess(t *testing.T) {
	clearRegistry()

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			_ = Register(&mockHandler{name: fmt.Sprintf("concurrent-cmd-%d", idx)})
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			// Команда может быть ещё не зарегистрирована
			Get(fmt.Sprintf("concurrent-cmd-%d", idx))
		}(i)
	}

	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		name := fmt.Sprintf("concurrent-cmd-%d", i)
		_, found := Get(name)
		assert.True(t, found, "команда %s должна быть зарегистрирована", name)
	}
}
