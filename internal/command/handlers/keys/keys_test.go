package keys

import (
	"context"
	"os"
	"path/filepath"
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

const sshKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIG example"

func TestGPGKey_ByID(t *testing.T) {
	client := giteatest.NewMockClient()
	var gotID int64
	client.GetGPGKeyFunc = func(_ context.Context, id int64) (*entity.GPGKey, error) {
		gotID = id
		return giteatest.GPGKeyData(), nil
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActGPGKey), "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)

	var key entity.GPGKey
	commandtest.DecodeData(t, res, &key)
	assert.True(t, key.CanCertify)
}

func TestGPGKey_InvalidID(t *testing.T) {
	hs := commandtest.New(giteatest.NewMockClient())

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActGPGKey), "seven")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCommandUsage, res.Error.Code)
}

func TestAddGPGKey_FromFiles(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key.asc")
	sigFile := filepath.Join(dir, "sig.asc")
	require.NoError(t, os.WriteFile(keyFile, []byte("-----BEGIN PGP PUBLIC KEY BLOCK-----\n\n"), 0o600))
	require.NoError(t, os.WriteFile(sigFile, []byte("signature\n"), 0o600))

	client := giteatest.NewMockClient()
	var got entity.CreateGPGKeyOption
	client.AddGPGKeyFunc = func(_ context.Context, opt entity.CreateGPGKeyOption) (*entity.GPGKey, error) {
		got = opt
		return giteatest.GPGKeyData(), nil
	}
	hs := commandtest.New(client)

	_, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActAddGPGKey),
		"--file", keyFile, "--signature-file", sigFile)
	require.NoError(t, err)
	assert.Equal(t, "-----BEGIN PGP PUBLIC KEY BLOCK-----", got.ArmoredKey)
	assert.Equal(t, "signature", got.Signature)
}

func TestAddGPGKey_MissingFile(t *testing.T) {
	hs := commandtest.New(giteatest.NewMockClient())

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActAddGPGKey),
		"--file", filepath.Join(t.TempDir(), "absent.asc"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCommandExec, res.Error.Code)
}

func TestAddPublicKey(t *testing.T) {
	client := giteatest.NewMockClient()
	var got entity.CreateKeyOption
	client.AddPublicKeyFunc = func(_ context.Context, opt entity.CreateKeyOption) (*entity.PublicKey, error) {
		got = opt
		return giteatest.PublicKeyData(), nil
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActAddKey), "--title", "laptop", sshKey)
	require.NoError(t, err)
	assert.Equal(t, entity.CreateKeyOption{Key: sshKey, Title: "laptop"}, got, "read_only не передаётся без флага")

	var key entity.PublicKey
	commandtest.DecodeData(t, res, &key)
	assert.Equal(t, giteatest.Fingerprint(sshKey), key.Fingerprint)

	_, err = hs.Run(t, commandtest.Find(t, Commands(), constants.ActAddKey), "--title", "deploy", "--read-only", sshKey)
	require.NoError(t, err)
	require.NotNil(t, got.ReadOnly)
	assert.True(t, *got.ReadOnly)
}

func TestAddPublicKey_KeySourceConflicts(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "id.pub")
	require.NoError(t, os.WriteFile(keyFile, []byte(sshKey), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "both sources", args: []string{"--file", keyFile, sshKey}},
		{name: "no source", args: []string{"--title", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := commandtest.New(giteatest.NewMockClient())
			res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActAddKey), tt.args...)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCommandUsage, res.Error.Code)
		})
	}
}

func TestKeys_Fingerprint(t *testing.T) {
	client := giteatest.NewMockClient()
	var gotFP string
	client.GetPublicKeysFunc = func(_ context.Context, fp string, _ gitea.ListOptions) ([]entity.PublicKey, error) {
		gotFP = fp
		return []entity.PublicKey{*giteatest.PublicKeyData()}, nil
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActKeys), "--fingerprint", "SHA256:abc")
	require.NoError(t, err)
	assert.Equal(t, "SHA256:abc", gotFP)

	var keys []entity.PublicKey
	commandtest.DecodeData(t, res, &keys)
	assert.Len(t, keys, 1)
}

func TestDeleteKeys(t *testing.T) {
	client := giteatest.NewMockClient()
	var deleted []int64
	client.DeleteGPGKeyFunc = func(_ context.Context, id int64) error {
		deleted = append(deleted, id)
		return nil
	}
	client.DeletePublicKeyFunc = func(_ context.Context, id int64) error {
		deleted = append(deleted, -id)
		return nil
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActDeleteGPGKey), "7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":7}`, string(res.Data))

	_, err = hs.Run(t, commandtest.Find(t, Commands(), constants.ActDeleteKey), "3")
	require.NoError(t, err)
	assert.Equal(t, []int64{7, -3}, deleted)
}

func TestKey_NotFound(t *testing.T) {
	client := giteatest.NewMockClient()
	client.GetPublicKeyFunc = func(context.Context, int64) (*entity.PublicKey, error) {
		return nil, &gitea.APIError{Operation: "GetPublicKey", StatusCode: 404, Expected: 200}
	}
	hs := commandtest.New(client)

	res, err := hs.Run(t, commandtest.Find(t, Commands(), constants.ActKey), "99")
	require.Error(t, err)
	assert.True(t, gitea.IsNotFoundError(err))
	assert.Equal(t, gitea.ErrGiteaAPI, res.Error.Code)
}
