package repos

import (
	"context"
	"encoding/json"
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

func TestCreateRepo_OnlyNameByDefault(t *testing.T) {
	client := giteatest.NewMockClient()
	var body []byte
	client.CreateRepositoryFunc = func(_ context.Context, opt entity.RepoOption) (*entity.Repository, error) {
		var err error
		body, err = json.Marshal(opt)
		require.NoError(t, err)
		return giteatest.RepositoryData(), nil
	}
	hs := commandtest.New(client)

	_, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActCreateRepo), "test")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test"}`, string(body))
}

func TestCreateRepo_ExplicitFlags(t *testing.T) {
	client := giteatest.NewMockClient()
	var got entity.RepoOption
	client.CreateRepositoryFunc = func(_ context.Context, opt entity.RepoOption) (*entity.Repository, error) {
		got = opt
		return giteatest.RepositoryData(), nil
	}
	hs := commandtest.New(client)

	_, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActCreateRepo),
		"test", "--private=false", "--description", "demo", "--default-branch", "main")
	require.NoError(t, err)

	require.NotNil(t, got.Private, "явно заданный false передаётся")
	assert.False(t, *got.Private)
	assert.Equal(t, "demo", *got.Description)
	assert.Equal(t, "main", *got.DefaultBranch)
	assert.Nil(t, got.AutoInit)
	assert.Nil(t, got.License)
}

func TestStar_RequiresOwnerRepo(t *testing.T) {
	for _, arg := range []string{"base-repository", "/repo", "owner/", "a/b/c"} {
		t.Run(arg, func(t *testing.T) {
			hs := commandtest.New(giteatest.NewMockClient())
			res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActStar), arg)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCommandUsage, res.Error.Code)
		})
	}
}

func TestStarred_Check(t *testing.T) {
	client := giteatest.NewMockClient()
	client.IsStarredFunc = func(_ context.Context, owner, repo string) (bool, error) {
		return owner == "MisileLaboratory" && repo == "base-repository", nil
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActStarred), "--check", giteatest.BaseRepository)
	require.NoError(t, err)
	assert.JSONEq(t, `{"repository":"MisileLaboratory/base-repository","starred":true}`, string(res.Data))
}

// TestStarRoundTrip проходит star → starred → unstar через реальный
// Handler и тестовый сервер.
func TestStarRoundTrip(t *testing.T) {
	srv := giteatest.NewFakeServer(t, "MisileLaboratory", "secret")
	cfg := gitea.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Username = srv.Username
	cfg.Password = srv.Password
	cfg.HTTPClient = srv.Client()

	hs := commandtest.New(nil)
	hs.Env.Connector = gitea.NewFactory(cfg)

	_, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActStar), giteatest.BaseRepository)
	require.NoError(t, err)
	assert.True(t, srv.Starred("MisileLaboratory", "base-repository"))

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActStarred))
	require.NoError(t, err)
	var list []entity.Repository
	commandtest.DecodeData(t, res, &list)
	require.Len(t, list, 1)
	assert.Equal(t, giteatest.BaseRepository, list[0].FullName)

	_, err = hs.Run(t, commandtest.Find(t, Commands(), constants.ActUnstar), giteatest.BaseRepository)
	require.NoError(t, err)
	assert.False(t, srv.Starred("MisileLaboratory", "base-repository"))

	res, err = hs.Run(t, commandtest.Find(t, Commands(), constants.ActStar), "MisileLaboratory/missing")
	require.Error(t, err)
	assert.True(t, gitea.IsNotFoundError(err))
	assert.Equal(t, gitea.ErrGiteaAPI, res.Error.Code)
}
