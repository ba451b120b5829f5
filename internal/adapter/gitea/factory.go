package gitea

import "context"

// Compile-time проверка реализации интерфейса.
var (
	_ Connector  = (*Factory)(nil)
	_ TokenStore = (*TokenManager)(nil)
)

// Factory создаёт Handler по запросу.
// Без Config.Token каждый вызов Connect создаёт на сервере новый токен.
type Factory struct {
	Config Config
}

// NewFactory создаёт Factory с заданной конфигурацией.
func NewFactory(cfg Config) *Factory {
	return &Factory{Config: cfg}
}

// Connect создаёт аутентифицированный Handler.
func (f *Factory) Connect(ctx context.Context) (Client, error) {
	h, err := New(ctx, f.Config)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Tokens создаёт TokenManager по той же конфигурации.
// Требует Username и Password.
func (f *Factory) Tokens() (TokenStore, error) {
	m, err := NewTokenManager(f.Config)
	if err != nil {
		return nil, err
	}
	return m, nil
}
