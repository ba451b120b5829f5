package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/adapter/gitea/giteatest"
	"github.com/Kargones/gitea-vcs/internal/command/commandtest"
	"github.com/Kargones/gitea-vcs/internal/constants"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
	"github.com/Kargones/gitea-vcs/internal/pkg/apperrors"
)

func TestServerVersion(t *testing.T) {
	hs := commandtest.New(giteatest.NewMockClient())

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActServerVersion))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+giteatest.DefaultVersion+`"}`, string(res.Data))
}

func TestServerVersion_Require(t *testing.T) {
	hs := commandtest.New(giteatest.NewMockClient())
	cmd := commandtest.Find(t, Commands(), constants.ActServerVersion)

	res, err := hs.Run(t, cmd, "--require", ">= 1.20")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.21.4","constraint":">= 1.20","satisfied":true}`, string(res.Data))

	res, err = hs.Run(t, cmd, "--require", ">= 1.22")
	require.Error(t, err)
	assert.Equal(t, gitea.ErrGiteaUnsupportedVersion, res.Error.Code)
}

func TestTokens_List(t *testing.T) {
	hs := commandtest.New(nil)
	store := &giteatest.MockTokenStore{
		ListFunc: func(context.Context) ([]entity.AccessToken, error) {
			return []entity.AccessToken{
				{ID: 1, Name: "gitea-pythonvcs-abc", TokenLastEight: "11111111"},
				{ID: 2, Name: "ci-token", TokenLastEight: "22222222"},
			}, nil
		},
		CleanupFunc: func(context.Context, []entity.AccessToken) ([]string, error) {
			t.Fatal("без --cleanup токены не удаляются")
			return nil, nil
		},
	}
	hs.Env.Tokens = func() (gitea.TokenStore, error) { return store, nil }

	res, err := hs.Run(t, &TokensHandler{})
	require.NoError(t, err)
	assert.Zero(t, hs.Connector.Calls, "команда не создаёт новый токен")

	var data TokensData
	commandtest.DecodeData(t, res, &data)
	assert.Equal(t, constants.DefaultTokenPrefix, data.Prefix)
	require.Len(t, data.Tokens, 2)
	assert.True(t, data.Tokens[0].Managed)
	assert.False(t, data.Tokens[1].Managed)
	assert.Empty(t, data.Deleted)
}

func TestTokens_Cleanup(t *testing.T) {
	hs := commandtest.New(nil)
	hs.Env.Tokens = func() (gitea.TokenStore, error) {
		return &giteatest.MockTokenStore{
			ListFunc: func(context.Context) ([]entity.AccessToken, error) {
				return []entity.AccessToken{{Name: "gitea-pythonvcs-abc"}, {Name: "ci-token"}, {Name: "gitea-pythonvcs-def"}}, nil
			},
		}, nil
	}

	res, err := hs.Run(t, &TokensHandler{}, "--cleanup")
	require.NoError(t, err)

	var data TokensData
	commandtest.DecodeData(t, res, &data)
	assert.Equal(t, []string{"gitea-pythonvcs-abc", "gitea-pythonvcs-def"}, data.Deleted)
}

func TestTokens_StoreError(t *testing.T) {
	hs := commandtest.New(nil)
	hs.Env.Tokens = func() (gitea.TokenStore, error) {
		return nil, &gitea.InvalidConfigError{Reason: "нужен password"}
	}

	res, err := hs.Run(t, &TokensHandler{})
	require.Error(t, err)
	assert.Equal(t, gitea.ErrGiteaInvalidConfig, res.Error.Code)
}

func TestTokens_NotConfigured(t *testing.T) {
	hs := commandtest.New(nil)
	hs.Env.Tokens = nil

	res, err := hs.Run(t, &TokensHandler{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConfigValidate, res.Error.Code)
}

func TestTokens_UnexpectedArgument(t *testing.T) {
	hs := commandtest.New(nil)

	res, err := hs.Run(t, &TokensHandler{}, "extra")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCommandUsage, res.Error.Code)
}

// TestTokens_FakeServer удаляет токены клиента на тестовом сервере.
func TestTokens_FakeServer(t *testing.T) {
	srv := giteatest.NewFakeServer(t, "MisileLaboratory", "secret")
	srv.AddToken("gitea-pythonvcs-old")
	srv.AddToken("ci-token")

	cfg := gitea.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Username = srv.Username
	cfg.Password = srv.Password
	factory := gitea.NewFactory(cfg)

	hs := commandtest.New(nil)
	hs.Env.Tokens = factory.Tokens

	_, err := hs.Run(t, &TokensHandler{}, "--cleanup")
	require.NoError(t, err)
	assert.Equal(t, []string{"ci-token"}, srv.TokenNames())
}
