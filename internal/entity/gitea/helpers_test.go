package gitea

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustObject(t *testing.T, body string) map[string]any {
	t.Helper()
	obj, err := DecodeObject([]byte(body))
	require.NoError(t, err)
	return obj
}

const userJSON = `{
	"id": 9007199254740993,
	"login": "MisileLaboratory",
	"full_name": "Misile Laboratory",
	"email": "misile@example.com",
	"avatar_url": "https://gitea.example.com/avatars/1",
	"language": "ko-KR",
	"is_admin": false,
	"last_login": "2022-05-01T10:00:00Z",
	"created": "2021-01-01T00:00:00Z",
	"restricted": false,
	"active": true,
	"prohibit_login": false,
	"location": "Seoul",
	"website": "https://example.com",
	"description": "",
	"visibility": "public",
	"followers_count": 3,
	"following_count": 4,
	"starred_repos_count": 5
}`

const gpgKeyJSON = `{
	"id": 7,
	"primary_key_id": "",
	"key_id": "ABCDEF0123456789",
	"public_key": "xsBNBF...",
	"emails": [{"email": "misile@example.com", "verified": true}],
	"subkeys": [{
		"id": 8,
		"primary_key_id": "ABCDEF0123456789",
		"key_id": "1111222233334444",
		"public_key": "zsBNBF...",
		"emails": [],
		"subkeys": null,
		"can_sign": false,
		"can_encrypt_comms": true,
		"can_encrypt_storage": true,
		"can_certify": false,
		"verified": true,
		"created_at": "2022-05-01T10:00:00Z",
		"expires_at": "0001-01-01T00:00:00Z"
	}],
	"can_sign": true,
	"can_encrypt_comms": false,
	"can_encrypt_storage": false,
	"can_certify": true,
	"verified": true,
	"created_at": "2022-05-01T10:00:00Z",
	"expires_at": "0001-01-01T00:00:00Z"
}`

const repositoryJSON = `{
	"id": 42,
	"owner": ` + userJSON + `,
	"name": "base-repository",
	"full_name": "MisileLaboratory/base-repository",
	"description": "base",
	"empty": false,
	"private": false,
	"fork": false,
	"template": false,
	"mirror": false,
	"archived": false,
	"internal": false,
	"size": 128,
	"html_url": "https://gitea.example.com/MisileLaboratory/base-repository",
	"ssh_url": "git@gitea.example.com:MisileLaboratory/base-repository.git",
	"clone_url": "https://gitea.example.com/MisileLaboratory/base-repository.git",
	"stars_count": 1,
	"forks_count": 0,
	"watchers_count": 1,
	"open_issues_count": 2,
	"default_branch": "main",
	"permissions": {"admin": true, "push": true, "pull": true},
	"has_issues": true,
	"internal_tracker": {
		"enable_time_tracker": true,
		"allow_only_contributors_to_track_time": true,
		"enable_issue_dependencies": false
	}
}`
