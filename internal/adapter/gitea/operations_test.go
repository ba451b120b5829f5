package gitea_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/adapter/gitea/giteatest"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

func TestHandler_Emails(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	emails, err := h.GetEmails(ctx)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.True(t, emails[0].Primary)

	added, err := h.AddEmails(ctx, []string{"second@example.com", "third@example.com"})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, "second@example.com", added[0].Email)
	assert.False(t, added[0].Verified)

	require.NoError(t, h.RemoveEmails(ctx, []string{"second@example.com"}))

	emails, err = h.GetEmails(ctx)
	require.NoError(t, err)
	assert.Len(t, emails, 2)

	err = h.RemoveEmails(ctx, []string{"missing@example.com"})
	assert.True(t, gitea.IsNotFoundError(err))
}

func TestHandler_RemoveEmailsSendsBody(t *testing.T) {
	h, srv := newTestHandler(t)
	_, err := h.AddEmails(context.Background(), []string{"x@example.com"})
	require.NoError(t, err)
	srv.ResetCalls()

	require.NoError(t, h.RemoveEmails(context.Background(), []string{"x@example.com"}))

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.JSONEq(t, `{"emails":["x@example.com"]}`, string(calls[0].Body))
}

func TestHandler_Follow(t *testing.T) {
	h, srv := newTestHandler(t)
	ctx := context.Background()

	followers, err := h.GetFollowers(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, followers, "пустой список должен быть non-nil срезом")
	assert.Empty(t, followers)

	srv.AddFollower("octocat")
	followers, err = h.GetFollowers(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "octocat", followers[0].Username)

	require.NoError(t, h.FollowUser(ctx, "octocat"))
	following, err := h.GetFollowings(ctx, gitea.ListOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, following, 1)

	require.NoError(t, h.UnfollowUser(ctx, "octocat"))
	following, err = h.GetFollowings(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, following)

	err = h.FollowUser(ctx, testUser)
	assert.True(t, gitea.IsStatus(err, http.StatusForbidden))
}

func TestHandler_ListOptionsQuery(t *testing.T) {
	h, srv := newTestHandler(t)

	_, err := h.GetRepositories(context.Background(), gitea.ListOptions{Page: 2, Limit: 5})
	require.NoError(t, err)
	_, err = h.GetRepositories(context.Background(), gitea.ListOptions{})
	require.NoError(t, err)

	calls := srv.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "2", calls[0].Query.Get("page"))
	assert.Equal(t, "5", calls[0].Query.Get("limit"))
	assert.False(t, calls[1].Query.Has("page"))
	assert.False(t, calls[1].Query.Has("limit"))
}

func TestHandler_GPGKeys(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	key, err := h.AddGPGKey(ctx, entity.CreateGPGKeyOption{ArmoredKey: "-----BEGIN PGP PUBLIC KEY BLOCK-----"})
	require.NoError(t, err)
	assert.True(t, key.CanCertify)
	assert.NotNil(t, key.Subkeys)
	assert.Empty(t, key.Subkeys)

	got, err := h.GetGPGKey(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, key.KeyID, got.KeyID)

	keys, err := h.GetGPGKeys(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	require.NoError(t, h.DeleteGPGKey(ctx, key.ID))
	_, err = h.GetGPGKey(ctx, key.ID)
	assert.True(t, gitea.IsNotFoundError(err))

	_, err = h.AddGPGKey(ctx, entity.CreateGPGKeyOption{})
	var giteaErr *gitea.GiteaError
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaValidation, giteaErr.Code)
}

func TestHandler_PublicKeys(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()
	const keyText = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIFake laptop"

	key, err := h.AddPublicKey(ctx, entity.CreateKeyOption{Key: keyText, Title: "laptop", ReadOnly: entity.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, key.ReadOnly)
	require.NotNil(t, key.User)
	assert.Equal(t, testUser, key.User.Username)

	got, err := h.GetPublicKey(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, "laptop", got.Title)

	found, err := h.GetPublicKeys(ctx, giteatest.Fingerprint(keyText), gitea.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := h.GetPublicKeys(ctx, "SHA256:unknown", gitea.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, h.DeletePublicKey(ctx, key.ID))
	err = h.DeletePublicKey(ctx, key.ID)
	var apiErr *gitea.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, http.StatusNoContent, apiErr.Expected)
}

func TestHandler_CreateRepositorySendsOnlyName(t *testing.T) {
	h, srv := newTestHandler(t)

	repo, err := h.CreateRepository(context.Background(), entity.RepoOption{Name: "test"})
	require.NoError(t, err)
	assert.Equal(t, "test", repo.Name)
	assert.Equal(t, testUser+"/test", repo.FullName)
	require.NotNil(t, repo.Owner)
	assert.Nil(t, repo.ExternalTracker)
	assert.Nil(t, repo.RepoTransfer)

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"name":"test"}`, string(calls[0].Body))
}

func TestHandler_CreateRepositoryOptionalFields(t *testing.T) {
	h, srv := newTestHandler(t)

	_, err := h.CreateRepository(context.Background(), entity.RepoOption{
		Name:    "private-one",
		Private: entity.Ptr(true),
		Readme:  entity.Ptr("Default"),
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(srv.Calls()[0].Body, &body))
	assert.Equal(t, map[string]any{"name": "private-one", "private": true, "readme": "Default"}, body)
}

func TestHandler_CreateRepositoryValidation(t *testing.T) {
	h, srv := newTestHandler(t)

	_, err := h.CreateRepository(context.Background(), entity.RepoOption{Name: "  "})
	var giteaErr *gitea.GiteaError
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaValidation, giteaErr.Code)
	assert.ErrorIs(t, err, entity.ErrRepoNameRequired)
	assert.Empty(t, srv.Calls())
}

func TestHandler_CreateRepositoryConflict(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.CreateRepository(context.Background(), entity.RepoOption{Name: "base-repository"})
	assert.True(t, gitea.IsStatus(err, http.StatusConflict))
}

func TestHandler_StarRoundTrip(t *testing.T) {
	h, srv := newTestHandler(t)
	ctx := context.Background()

	starred, err := h.IsStarred(ctx, "MisileLaboratory", "base-repository")
	require.NoError(t, err)
	assert.False(t, starred)

	require.NoError(t, h.StarRepository(ctx, "MisileLaboratory", "base-repository"))
	assert.True(t, srv.Starred("MisileLaboratory", "base-repository"))

	list, err := h.GetStarredRepositories(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, giteatest.BaseRepository, list[0].FullName)

	starred, err = h.IsStarred(ctx, "MisileLaboratory", "base-repository")
	require.NoError(t, err)
	assert.True(t, starred)

	require.NoError(t, h.UnstarRepository(ctx, "MisileLaboratory", "base-repository"))
	assert.False(t, srv.Starred("MisileLaboratory", "base-repository"))

	list, err = h.GetStarredRepositories(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestHandler_StarUnknownRepository(t *testing.T) {
	h, _ := newTestHandler(t)

	err := h.StarRepository(context.Background(), "nobody", "nothing")
	var apiErr *gitea.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "StarRepository", apiErr.Operation)
}

func TestHandler_IsStarredPropagatesOtherStatuses(t *testing.T) {
	h, srv := newTestHandler(t)
	srv.Override(http.MethodGet, "/user/starred/MisileLaboratory/base-repository", http.StatusInternalServerError, `{}`)

	starred, err := h.IsStarred(context.Background(), "MisileLaboratory", "base-repository")
	assert.False(t, starred)
	assert.True(t, gitea.IsStatus(err, http.StatusInternalServerError))
}

func TestHandler_ChangeSettingRoundTrip(t *testing.T) {
	h, srv := newTestHandler(t)
	ctx := context.Background()

	settings, err := h.ChangeSetting(ctx, "theme", "arc-green")
	require.NoError(t, err)
	assert.Equal(t, "arc-green", settings.Theme)
	assert.Equal(t, "arc-green", srv.Setting("theme"))

	got, err := h.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "arc-green", got.Theme)
	assert.Equal(t, "unified", got.DiffViewStyle, "остальные поля не изменяются")

	assert.Equal(t, []string{"GET /user/settings", "PATCH /user/settings", "GET /user/settings"}, srv.CallLog())
}

func TestHandler_ChangeSettingInvalid(t *testing.T) {
	h, srv := newTestHandler(t)

	_, err := h.ChangeSetting(context.Background(), "unknown_field", "x")
	assert.ErrorIs(t, err, entity.ErrUnknownSetting)

	_, err = h.ChangeSetting(context.Background(), "hide_email", "yes")
	var giteaErr *gitea.GiteaError
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaValidation, giteaErr.Code)

	for _, c := range srv.CallLog() {
		assert.NotEqual(t, "PATCH /user/settings", c)
	}
}

func TestHandler_UpdateSettingsNil(t *testing.T) {
	h, _ := newTestHandler(t)
	_, err := h.UpdateSettings(context.Background(), nil)
	require.Error(t, err)
}

func TestHandler_OrganizationsAndTeams(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	orgs, err := h.GetOrganizations(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "MisileLab", orgs[0].Name)
	assert.Equal(t, entity.VisibilityPublic, orgs[0].Visibility)

	teams, err := h.GetTeams(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, entity.TeamPermissionOwner, teams[0].Permission)
	require.NotNil(t, teams[0].Organization)
	assert.Equal(t, "MisileLab", teams[0].Organization.Name)
}

func TestHandler_TeamWithInvalidPermission(t *testing.T) {
	h, srv := newTestHandler(t)
	srv.Override(http.MethodGet, "/user/teams", http.StatusOK, `[{"id":1,"name":"x","permission":"superuser"}]`)

	teams, err := h.GetTeams(context.Background(), gitea.ListOptions{})
	assert.Nil(t, teams)
	var malformed *entity.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "permission", malformed.Field)
}

func TestHandler_ServerVersion(t *testing.T) {
	h, srv := newTestHandler(t)
	ctx := context.Background()

	v, err := h.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, giteatest.DefaultVersion, v.Version)

	_, err = h.CheckServerVersion(ctx, ">= 1.20")
	require.NoError(t, err)

	srv.SetVersion("1.17.0")
	v, err = h.CheckServerVersion(ctx, ">= 1.20")
	require.NotNil(t, v)
	assert.Equal(t, "1.17.0", v.Version)
	var giteaErr *gitea.GiteaError
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaUnsupportedVersion, giteaErr.Code)

	_, err = h.CheckServerVersion(ctx, "not a constraint")
	require.True(t, errors.As(err, &giteaErr))
	assert.Equal(t, gitea.ErrGiteaValidation, giteaErr.Code)
}

func TestHandler_WrongStatusCarriesExactCode(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusBadGateway}
	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			h, srv := newTestHandler(t)
			srv.Override(http.MethodGet, "/user/emails", status, `{"message":"nope"}`)

			emails, err := h.GetEmails(context.Background())
			assert.Nil(t, emails)
			var apiErr *gitea.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, status, apiErr.Response.StatusCode)
			assert.Equal(t, "nope", apiErr.Message())
		})
	}
}

func TestHandler_ListIsAllOrNothing(t *testing.T) {
	h, srv := newTestHandler(t)
	srv.Override(http.MethodGet, "/user/emails", http.StatusOK, `[{"email":"a@example.com"},{"primary":true}]`)

	emails, err := h.GetEmails(context.Background())
	assert.Nil(t, emails)
	var malformed *entity.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "email", malformed.Field)
	assert.Equal(t, true, malformed.Data["primary"])
}

func TestHandler_StrictMode(t *testing.T) {
	srv := giteatest.NewFakeServer(t, testUser, testPassword)
	ctx := context.Background()

	lenientCfg := passwordConfig(srv)
	lenient, err := gitea.New(ctx, lenientCfg)
	require.NoError(t, err)

	strictCfg := passwordConfig(srv)
	strictCfg.Strict = true
	strictCfg.Cleanup = false
	strict, err := gitea.New(ctx, strictCfg)
	require.NoError(t, err, "полные ответы fake-сервера проходят строгую проверку")

	repos, err := strict.GetRepositories(ctx, gitea.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, repos, 1)

	srv.Override(http.MethodGet, "/user/emails", http.StatusOK, `[{"email":"a@example.com"}]`)

	emails, err := lenient.GetEmails(ctx)
	require.NoError(t, err)
	assert.Len(t, emails, 1)

	_, err = strict.GetEmails(ctx)
	var malformed *entity.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Error(t, malformed.Cause)
}

func TestHandler_ConcurrentCalls(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	errs := make(chan error, 10)
	for range 10 {
		go func() {
			_, err := h.Self(ctx)
			errs <- err
		}()
	}
	for range 10 {
		assert.NoError(t, <-errs)
	}
}
