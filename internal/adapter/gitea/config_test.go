package gitea

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitea-vcs/internal/constants"
)

func TestConfig_Validate(t *testing.T) {
	const base = "https://git.example.com"
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"токен без cleanup", Config{BaseURL: base, Token: "t"}, false},
		{"токен и пароль с cleanup", Config{BaseURL: base, Token: "t", Password: "p", Cleanup: true}, false},
		{"пароль с cleanup", Config{BaseURL: base, Username: "u", Password: "p", Cleanup: true}, false},
		{"пароль без cleanup", Config{BaseURL: base, Username: "u", Password: "p"}, false},
		{"ничего не задано", Config{BaseURL: base}, true},
		{"токен с cleanup без пароля", Config{BaseURL: base, Token: "t", Cleanup: true}, true},
		{"пароль без имени", Config{BaseURL: base, Password: "p"}, true},
		{"пустой адрес", Config{Token: "t"}, true},
		{"адрес без схемы", Config{BaseURL: "git.example.com", Token: "t"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidConfigError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Cleanup)
	assert.Equal(t, constants.DefaultTokenPrefix, cfg.TokenPrefix)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, constants.DefaultTokenPrefix, cfg.TokenPrefix)
	require.NotNil(t, cfg.HTTPClient)
	assert.Equal(t, DefaultTimeout, cfg.HTTPClient.Timeout)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Metrics)

	custom := &http.Client{Timeout: time.Second}
	cfg = Config{HTTPClient: custom, Timeout: time.Minute}.withDefaults()
	assert.Same(t, custom, cfg.HTTPClient)
}

func TestAPIURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://git.example.com", "https://git.example.com/api/v1"},
		{"https://git.example.com/", "https://git.example.com/api/v1"},
		{"https://git.example.com///", "https://git.example.com/api/v1"},
		{" https://git.example.com/gitea/ ", "https://git.example.com/gitea/api/v1"},
		{"http://localhost:3000", "http://localhost:3000/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := apiURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}

	_, err := apiURL("")
	assert.ErrorIs(t, err, errBaseURLRequired)
	_, err = apiURL("/relative")
	assert.ErrorIs(t, err, errBaseURLInvalid)
}
