package giteatest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

func TestMockClient_Defaults(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	assert.Equal(t, "MisileLaboratory", m.User().Username)

	followers, err := m.GetFollowers(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, followers)
	assert.Empty(t, followers)

	repos, err := m.GetRepositories(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, BaseRepository, repos[0].FullName)

	repo, err := m.CreateRepository(ctx, entity.RepoOption{Name: "test"})
	require.NoError(t, err)
	assert.Equal(t, "MisileLaboratory/test", repo.FullName)

	settings, err := m.ChangeSetting(ctx, "theme", "arc-green")
	require.NoError(t, err)
	assert.Equal(t, "arc-green", settings.Theme)

	_, err = m.ChangeSetting(ctx, "nope", "x")
	assert.ErrorIs(t, err, entity.ErrUnknownSetting)

	key, err := m.AddPublicKey(ctx, entity.CreateKeyOption{Key: "k", Title: "t", ReadOnly: entity.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, key.ReadOnly)

	starred, err := m.IsStarred(ctx, "o", "r")
	require.NoError(t, err)
	assert.False(t, starred)

	_, err = m.CheckServerVersion(ctx, ">= 1.20")
	assert.NoError(t, err)
	_, err = m.CheckServerVersion(ctx, ">= 2.0")
	var giteaErr *gitea.GiteaError
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaUnsupportedVersion, giteaErr.Code)
}

func TestMockClient_FuncOverride(t *testing.T) {
	boom := errors.New("boom")
	m := &MockClient{
		StarRepositoryFunc: func(_ context.Context, owner, repo string) error {
			if owner == "MisileLaboratory" && repo == "base-repository" {
				return nil
			}
			return boom
		},
		GetEmailsFunc: func(context.Context) ([]entity.Email, error) {
			return nil, boom
		},
	}

	assert.NoError(t, m.StarRepository(context.Background(), "MisileLaboratory", "base-repository"))
	assert.ErrorIs(t, m.StarRepository(context.Background(), "x", "y"), boom)

	_, err := m.GetEmails(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestMockConnector(t *testing.T) {
	client := NewMockClient()
	c := &MockConnector{Client: client}

	got, err := c.Connect(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, got)

	c.Err = errors.New("no route")
	_, err = c.Connect(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, c.Calls)
}
