package gitea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrict_Valid(t *testing.T) {
	tests := []struct {
		kind SchemaKind
		body string
	}{
		{SchemaUser, userJSON},
		{SchemaGPGKey, gpgKeyJSON},
		{SchemaRepository, repositoryJSON},
		{SchemaEmail, `{"email": "a@example.com", "primary": true, "verified": true}`},
		{SchemaTeam, `{"id": 1, "name": "Owners", "permission": "owner", "organization": null}`},
		{SchemaServerVersion, `{"version": "1.21.4"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.NoError(t, ValidateStrict(tt.kind, mustObject(t, tt.body)))
		})
	}
}

func TestValidateStrict_Invalid(t *testing.T) {
	tests := []struct {
		name string
		kind SchemaKind
		body string
	}{
		{"user без login", SchemaUser, `{"id": 1, "active": true}`},
		{"email неверного типа", SchemaEmail, `{"email": 1, "primary": true, "verified": true}`},
		{"team с неизвестным permission", SchemaTeam, `{"id": 1, "name": "x", "permission": "god"}`},
		{"repository с неполным владельцем", SchemaRepository, `{"id": 1, "owner": {"active": true}, "name": "r", "full_name": "o/r", "private": false, "fork": false, "default_branch": "main", "permissions": {"admin": true, "push": true, "pull": true}, "internal_tracker": {}}`},
		{"пустая версия", SchemaServerVersion, `{"version": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustObject(t, tt.body)
			err := ValidateStrict(tt.kind, raw)

			var mErr *MalformedResponseError
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, raw, mErr.Data)
			assert.NotNil(t, mErr.Cause)
		})
	}
}

func TestValidateStrict_UnknownKind(t *testing.T) {
	err := ValidateStrict("branch", map[string]any{})
	require.Error(t, err)

	var mErr *MalformedResponseError
	assert.NotErrorAs(t, err, &mErr)
}
