package gitea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepository(t *testing.T) {
	repo, err := ParseRepository(mustObject(t, repositoryJSON))
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.ID)
	assert.Equal(t, "base-repository", repo.Name)
	assert.Equal(t, "MisileLaboratory/base-repository", repo.FullName)
	assert.Equal(t, "main", repo.DefaultBranch)
	assert.Equal(t, int64(128), repo.Size)
	assert.Equal(t, 2, repo.OpenIssuesCount)
	assert.Equal(t, Permission{Admin: true, Push: true, Pull: true}, repo.Permissions)
	assert.Equal(t, InternalTracker{EnableTimeTracker: true, AllowOnlyContributorsToTrackTime: true}, repo.InternalTracker)
	require.NotNil(t, repo.Owner)
	assert.Equal(t, "MisileLaboratory", repo.Owner.Username)
	assert.Nil(t, repo.ExternalTracker)
	assert.Nil(t, repo.RepoTransfer)
}

func TestParseRepository_Canary(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"отсутствует", map[string]any{"name": "r"}},
		{"null", map[string]any{"name": "r", "internal_tracker": nil}},
		{"не объект", map[string]any{"name": "r", "internal_tracker": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRepository(tt.raw)
			var mErr *MalformedResponseError
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, "internal_tracker", mErr.Field)
			assert.Equal(t, tt.raw, mErr.Data)
		})
	}
}

func TestParseRepository_OwnerErrorPropagates(t *testing.T) {
	raw := map[string]any{
		"internal_tracker": map[string]any{},
		"owner":            map[string]any{"login": "nobody"},
	}
	_, err := ParseRepository(raw)

	var mErr *MalformedResponseError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "active", mErr.Field)
}

func TestParseRepository_OptionalNested(t *testing.T) {
	tests := []struct {
		name         string
		external     any
		transfer     any
		wantExternal bool
		wantTransfer bool
	}{
		{name: "отсутствуют"},
		{name: "null", external: nil, transfer: nil},
		{name: "неверный тип", external: "tracker", transfer: 12},
		{name: "transfer без doer", external: nil, transfer: map[string]any{"recipient": map[string]any{"active": true}}},
		{
			name:         "заполнены",
			external:     map[string]any{"external_tracker_url": "https://jira.example.com", "external_tracker_format": "{index}", "external_tracker_style": "numeric"},
			transfer:     map[string]any{"doer": map[string]any{"login": "admin", "active": true}, "recipient": map[string]any{"login": "bob", "active": true}, "teams": []any{map[string]any{"id": 1, "permission": "write"}}},
			wantExternal: true,
			wantTransfer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"internal_tracker": map[string]any{}}
			if tt.name != "отсутствуют" {
				raw["external_tracker"] = tt.external
				raw["repo_transfer"] = tt.transfer
			}

			repo, err := ParseRepository(raw)
			require.NoError(t, err, "необязательные вложенные объекты не приводят к ошибке")

			if tt.wantExternal {
				require.NotNil(t, repo.ExternalTracker)
				assert.Equal(t, "https://jira.example.com", repo.ExternalTracker.URL)
				assert.Equal(t, "numeric", repo.ExternalTracker.Style)
			} else {
				assert.Nil(t, repo.ExternalTracker)
			}

			if tt.wantTransfer {
				require.NotNil(t, repo.RepoTransfer)
				assert.Equal(t, "admin", repo.RepoTransfer.Doer.Username)
				assert.Equal(t, "bob", repo.RepoTransfer.Recipient.Username)
				require.Len(t, repo.RepoTransfer.Teams, 1)
				assert.Equal(t, TeamPermissionWrite, repo.RepoTransfer.Teams[0].Permission)
			} else {
				assert.Nil(t, repo.RepoTransfer)
			}
		})
	}
}

func TestParseRepoTransfer_Canary(t *testing.T) {
	raw := map[string]any{"recipient": map[string]any{"active": true}}
	_, err := ParseRepoTransfer(raw)

	var mErr *MalformedResponseError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "doer", mErr.Field)
	assert.Equal(t, raw, mErr.Data)
}

func TestParseOrganization(t *testing.T) {
	org, err := ParseOrganization(mustObject(t,
		`{"id": 11, "name": "infra", "full_name": "Infrastructure", "visibility": "limited", "repo_admin_change_team_access": true}`))
	require.NoError(t, err)
	assert.Equal(t, int64(11), org.ID)
	assert.Equal(t, "infra", org.Name)
	assert.Equal(t, VisibilityLimited, org.Visibility)
	assert.True(t, org.RepoAdminChangeTeamAccess)

	legacy, err := ParseOrganization(map[string]any{"id": 12, "username": "legacy"})
	require.NoError(t, err)
	assert.Equal(t, "legacy", legacy.Name)

	for _, raw := range []map[string]any{{"name": "x"}, {"id": "11"}, {"id": 1.5}} {
		_, err := ParseOrganization(raw)
		var mErr *MalformedResponseError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "id", mErr.Field)
	}
}

func TestParseTeam_Permission(t *testing.T) {
	for _, p := range []string{"none", "read", "write", "admin", "owner"} {
		t.Run(p, func(t *testing.T) {
			team, err := ParseTeam(map[string]any{"id": 1, "permission": p})
			require.NoError(t, err)
			assert.Equal(t, TeamPermission(p), team.Permission)
		})
	}

	for _, p := range []any{"superuser", "", "READ", nil} {
		raw := map[string]any{"id": 1, "permission": p}
		_, err := ParseTeam(raw)

		var mErr *MalformedResponseError
		require.ErrorAs(t, err, &mErr, "permission=%v", p)
		assert.Equal(t, "permission", mErr.Field)
		assert.Equal(t, raw, mErr.Data)
	}
}

func TestParseTeam(t *testing.T) {
	team, err := ParseTeam(mustObject(t, `{
		"id": 4,
		"name": "Owners",
		"description": "",
		"organization": {"id": 11, "name": "infra"},
		"includes_all_repositories": true,
		"permission": "owner",
		"units": ["repo.code", "repo.issues"],
		"can_create_org_repo": true
	}`))
	require.NoError(t, err)
	assert.Equal(t, int64(4), team.ID)
	assert.Equal(t, "Owners", team.Name)
	require.NotNil(t, team.Organization)
	assert.Equal(t, "infra", team.Organization.Name)
	assert.Equal(t, []string{"repo.code", "repo.issues"}, team.Units)
	assert.True(t, team.CanCreateOrgRepo)

	_, err = ParseTeam(map[string]any{"id": 4, "permission": "read", "organization": map[string]any{"name": "x"}})
	var mErr *MalformedResponseError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "id", mErr.Field)
}
