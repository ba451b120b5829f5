package giteatest

import (
	"context"

	"github.com/Kargones/gitea-vcs/internal/adapter/gitea"
	"github.com/Kargones/gitea-vcs/internal/constants"
	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// Compile-time проверки реализации интерфейсов
var (
	_ gitea.Client            = (*MockClient)(nil)
	_ gitea.UserReader        = (*MockClient)(nil)
	_ gitea.EmailManager      = (*MockClient)(nil)
	_ gitea.FollowManager     = (*MockClient)(nil)
	_ gitea.GPGKeyManager     = (*MockClient)(nil)
	_ gitea.PublicKeyManager  = (*MockClient)(nil)
	_ gitea.RepositoryManager = (*MockClient)(nil)
	_ gitea.SettingsManager   = (*MockClient)(nil)
	_ gitea.StarManager       = (*MockClient)(nil)
	_ gitea.OrgReader         = (*MockClient)(nil)
	_ gitea.VersionReader     = (*MockClient)(nil)
	_ gitea.Connector         = (*MockConnector)(nil)
	_ gitea.TokenStore        = (*MockTokenStore)(nil)
)

// MockClient - мок-реализация gitea.Client для тестирования.
// Использует функциональные поля для гибкой настройки поведения в тестах.
type MockClient struct {
	// UserReader
	UserFunc func() *entity.User
	SelfFunc func(ctx context.Context) (*entity.User, error)

	// EmailManager
	GetEmailsFunc    func(ctx context.Context) ([]entity.Email, error)
	AddEmailsFunc    func(ctx context.Context, emails []string) ([]entity.Email, error)
	RemoveEmailsFunc func(ctx context.Context, emails []string) error

	// FollowManager
	GetFollowersFunc  func(ctx context.Context, opts gitea.ListOptions) ([]entity.User, error)
	GetFollowingsFunc func(ctx context.Context, opts gitea.ListOptions) ([]entity.User, error)
	FollowUserFunc    func(ctx context.Context, username string) error
	UnfollowUserFunc  func(ctx context.Context, username string) error

	// GPGKeyManager
	GetGPGKeysFunc   func(ctx context.Context, opts gitea.ListOptions) ([]entity.GPGKey, error)
	GetGPGKeyFunc    func(ctx context.Context, id int64) (*entity.GPGKey, error)
	AddGPGKeyFunc    func(ctx context.Context, opt entity.CreateGPGKeyOption) (*entity.GPGKey, error)
	DeleteGPGKeyFunc func(ctx context.Context, id int64) error

	// PublicKeyManager
	GetPublicKeysFunc   func(ctx context.Context, fingerprint string, opts gitea.ListOptions) ([]entity.PublicKey, error)
	GetPublicKeyFunc    func(ctx context.Context, id int64) (*entity.PublicKey, error)
	AddPublicKeyFunc    func(ctx context.Context, opt entity.CreateKeyOption) (*entity.PublicKey, error)
	DeletePublicKeyFunc func(ctx context.Context, id int64) error

	// RepositoryManager
	GetRepositoriesFunc  func(ctx context.Context, opts gitea.ListOptions) ([]entity.Repository, error)
	CreateRepositoryFunc func(ctx context.Context, opt entity.RepoOption) (*entity.Repository, error)

	// SettingsManager
	GetSettingsFunc    func(ctx context.Context) (*entity.Settings, error)
	UpdateSettingsFunc func(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
	ChangeSettingFunc  func(ctx context.Context, field string, value any) (*entity.Settings, error)

	// StarManager
	GetStarredRepositoriesFunc func(ctx context.Context, opts gitea.ListOptions) ([]entity.Repository, error)
	StarRepositoryFunc         func(ctx context.Context, owner, repo string) error
	UnstarRepositoryFunc       func(ctx context.Context, owner, repo string) error
	IsStarredFunc              func(ctx context.Context, owner, repo string) (bool, error)

	// OrgReader
	GetOrganizationsFunc func(ctx context.Context, opts gitea.ListOptions) ([]entity.Organization, error)
	GetTeamsFunc         func(ctx context.Context, opts gitea.ListOptions) ([]entity.Team, error)

	// VersionReader
	ServerVersionFunc      func(ctx context.Context) (*entity.ServerVersion, error)
	CheckServerVersionFunc func(ctx context.Context, constraint string) (*entity.ServerVersion, error)
}

// NewMockClient создаёт MockClient с ответами по умолчанию.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// -------------------------------------------------------------------
// UserReader implementation
// -------------------------------------------------------------------

// User возвращает профиль. По умолчанию - UserData().
func (m *MockClient) User() *entity.User {
	if m.UserFunc != nil {
		return m.UserFunc()
	}
	return UserData()
}

// Self загружает профиль. По умолчанию - UserData().
func (m *MockClient) Self(ctx context.Context) (*entity.User, error) {
	if m.SelfFunc != nil {
		return m.SelfFunc(ctx)
	}
	return UserData(), nil
}

// -------------------------------------------------------------------
// EmailManager implementation
// -------------------------------------------------------------------

// GetEmails возвращает адреса. По умолчанию - один основной адрес.
func (m *MockClient) GetEmails(ctx context.Context) ([]entity.Email, error) {
	if m.GetEmailsFunc != nil {
		return m.GetEmailsFunc(ctx)
	}
	return []entity.Email{{Email: UserData().Email, Primary: true, Verified: true}}, nil
}

// AddEmails добавляет адреса. По умолчанию возвращает их как неподтверждённые.
func (m *MockClient) AddEmails(ctx context.Context, emails []string) ([]entity.Email, error) {
	if m.AddEmailsFunc != nil {
		return m.AddEmailsFunc(ctx, emails)
	}
	out := make([]entity.Email, 0, len(emails))
	for _, e := range emails {
		out = append(out, entity.Email{Email: e})
	}
	return out, nil
}

// RemoveEmails удаляет адреса.
func (m *MockClient) RemoveEmails(ctx context.Context, emails []string) error {
	if m.RemoveEmailsFunc != nil {
		return m.RemoveEmailsFunc(ctx, emails)
	}
	return nil
}

// -------------------------------------------------------------------
// FollowManager implementation
// -------------------------------------------------------------------

// GetFollowers возвращает подписчиков. По умолчанию - пустой срез.
func (m *MockClient) GetFollowers(ctx context.Context, opts gitea.ListOptions) ([]entity.User, error) {
	if m.GetFollowersFunc != nil {
		return m.GetFollowersFunc(ctx, opts)
	}
	return []entity.User{}, nil
}

// GetFollowings возвращает подписки. По умолчанию - пустой срез.
func (m *MockClient) GetFollowings(ctx context.Context, opts gitea.ListOptions) ([]entity.User, error) {
	if m.GetFollowingsFunc != nil {
		return m.GetFollowingsFunc(ctx, opts)
	}
	return []entity.User{}, nil
}

// FollowUser подписывается на пользователя.
func (m *MockClient) FollowUser(ctx context.Context, username string) error {
	if m.FollowUserFunc != nil {
		return m.FollowUserFunc(ctx, username)
	}
	return nil
}

// UnfollowUser отписывается от пользователя.
func (m *MockClient) UnfollowUser(ctx context.Context, username string) error {
	if m.UnfollowUserFunc != nil {
		return m.UnfollowUserFunc(ctx, username)
	}
	return nil
}

// -------------------------------------------------------------------
// GPGKeyManager implementation
// -------------------------------------------------------------------

// GetGPGKeys возвращает GPG-ключи. По умолчанию - пустой срез.
func (m *MockClient) GetGPGKeys(ctx context.Context, opts gitea.ListOptions) ([]entity.GPGKey, error) {
	if m.GetGPGKeysFunc != nil {
		return m.GetGPGKeysFunc(ctx, opts)
	}
	return []entity.GPGKey{}, nil
}

// GetGPGKey возвращает GPG-ключ. По умолчанию - GPGKeyData() с заданным id.
func (m *MockClient) GetGPGKey(ctx context.Context, id int64) (*entity.GPGKey, error) {
	if m.GetGPGKeyFunc != nil {
		return m.GetGPGKeyFunc(ctx, id)
	}
	k := GPGKeyData()
	k.ID = id
	return k, nil
}

// AddGPGKey добавляет GPG-ключ. По умолчанию - GPGKeyData() с переданным ключом.
func (m *MockClient) AddGPGKey(ctx context.Context, opt entity.CreateGPGKeyOption) (*entity.GPGKey, error) {
	if m.AddGPGKeyFunc != nil {
		return m.AddGPGKeyFunc(ctx, opt)
	}
	k := GPGKeyData()
	k.PublicKey = opt.ArmoredKey
	return k, nil
}

// DeleteGPGKey удаляет GPG-ключ.
func (m *MockClient) DeleteGPGKey(ctx context.Context, id int64) error {
	if m.DeleteGPGKeyFunc != nil {
		return m.DeleteGPGKeyFunc(ctx, id)
	}
	return nil
}

// -------------------------------------------------------------------
// PublicKeyManager implementation
// -------------------------------------------------------------------

// GetPublicKeys возвращает SSH-ключи. По умолчанию - пустой срез.
func (m *MockClient) GetPublicKeys(ctx context.Context, fingerprint string, opts gitea.ListOptions) ([]entity.PublicKey, error) {
	if m.GetPublicKeysFunc != nil {
		return m.GetPublicKeysFunc(ctx, fingerprint, opts)
	}
	return []entity.PublicKey{}, nil
}

// GetPublicKey возвращает SSH-ключ. По умолчанию - PublicKeyData() с заданным id.
func (m *MockClient) GetPublicKey(ctx context.Context, id int64) (*entity.PublicKey, error) {
	if m.GetPublicKeyFunc != nil {
		return m.GetPublicKeyFunc(ctx, id)
	}
	k := PublicKeyData()
	k.ID = id
	return k, nil
}

// AddPublicKey добавляет SSH-ключ. По умолчанию - PublicKeyData() с переданными полями.
func (m *MockClient) AddPublicKey(ctx context.Context, opt entity.CreateKeyOption) (*entity.PublicKey, error) {
	if m.AddPublicKeyFunc != nil {
		return m.AddPublicKeyFunc(ctx, opt)
	}
	k := PublicKeyData()
	k.Key = opt.Key
	k.Title = opt.Title
	if opt.ReadOnly != nil {
		k.ReadOnly = *opt.ReadOnly
	}
	return k, nil
}

// DeletePublicKey удаляет SSH-ключ.
func (m *MockClient) DeletePublicKey(ctx context.Context, id int64) error {
	if m.DeletePublicKeyFunc != nil {
		return m.DeletePublicKeyFunc(ctx, id)
	}
	return nil
}

// -------------------------------------------------------------------
// RepositoryManager implementation
// -------------------------------------------------------------------

// GetRepositories возвращает репозитории. По умолчанию - RepositoryData().
func (m *MockClient) GetRepositories(ctx context.Context, opts gitea.ListOptions) ([]entity.Repository, error) {
	if m.GetRepositoriesFunc != nil {
		return m.GetRepositoriesFunc(ctx, opts)
	}
	return []entity.Repository{*RepositoryData()}, nil
}

// CreateRepository создаёт репозиторий. По умолчанию - RepositoryData() с именем из opt.
func (m *MockClient) CreateRepository(ctx context.Context, opt entity.RepoOption) (*entity.Repository, error) {
	if m.CreateRepositoryFunc != nil {
		return m.CreateRepositoryFunc(ctx, opt)
	}
	r := RepositoryData()
	r.Name = opt.Name
	r.FullName = r.Owner.Username + "/" + opt.Name
	return r, nil
}

// -------------------------------------------------------------------
// SettingsManager implementation
// -------------------------------------------------------------------

// GetSettings возвращает настройки. По умолчанию - SettingsData().
func (m *MockClient) GetSettings(ctx context.Context) (*entity.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc(ctx)
	}
	return SettingsData(), nil
}

// UpdateSettings сохраняет настройки. По умолчанию возвращает переданные.
func (m *MockClient) UpdateSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	if m.UpdateSettingsFunc != nil {
		return m.UpdateSettingsFunc(ctx, settings)
	}
	return settings, nil
}

// ChangeSetting изменяет одну настройку. По умолчанию применяет её к SettingsData().
func (m *MockClient) ChangeSetting(ctx context.Context, field string, value any) (*entity.Settings, error) {
	if m.ChangeSettingFunc != nil {
		return m.ChangeSettingFunc(ctx, field, value)
	}
	s := SettingsData()
	if err := s.Set(field, value); err != nil {
		return nil, gitea.NewGiteaError(gitea.ErrGiteaValidation, "некорректная настройка", err)
	}
	return s, nil
}

// -------------------------------------------------------------------
// StarManager implementation
// -------------------------------------------------------------------

// GetStarredRepositories возвращает избранное. По умолчанию - пустой срез.
func (m *MockClient) GetStarredRepositories(ctx context.Context, opts gitea.ListOptions) ([]entity.Repository, error) {
	if m.GetStarredRepositoriesFunc != nil {
		return m.GetStarredRepositoriesFunc(ctx, opts)
	}
	return []entity.Repository{}, nil
}

// StarRepository добавляет репозиторий в избранное.
func (m *MockClient) StarRepository(ctx context.Context, owner, repo string) error {
	if m.StarRepositoryFunc != nil {
		return m.StarRepositoryFunc(ctx, owner, repo)
	}
	return nil
}

// UnstarRepository убирает репозиторий из избранного.
func (m *MockClient) UnstarRepository(ctx context.Context, owner, repo string) error {
	if m.UnstarRepositoryFunc != nil {
		return m.UnstarRepositoryFunc(ctx, owner, repo)
	}
	return nil
}

// IsStarred проверяет избранное. По умолчанию - false.
func (m *MockClient) IsStarred(ctx context.Context, owner, repo string) (bool, error) {
	if m.IsStarredFunc != nil {
		return m.IsStarredFunc(ctx, owner, repo)
	}
	return false, nil
}

// -------------------------------------------------------------------
// OrgReader implementation
// -------------------------------------------------------------------

// GetOrganizations возвращает организации. По умолчанию - пустой срез.
func (m *MockClient) GetOrganizations(ctx context.Context, opts gitea.ListOptions) ([]entity.Organization, error) {
	if m.GetOrganizationsFunc != nil {
		return m.GetOrganizationsFunc(ctx, opts)
	}
	return []entity.Organization{}, nil
}

// GetTeams возвращает команды. По умолчанию - пустой срез.
func (m *MockClient) GetTeams(ctx context.Context, opts gitea.ListOptions) ([]entity.Team, error) {
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc(ctx, opts)
	}
	return []entity.Team{}, nil
}

// -------------------------------------------------------------------
// VersionReader implementation
// -------------------------------------------------------------------

// ServerVersion возвращает версию сервера. По умолчанию - DefaultVersion.
func (m *MockClient) ServerVersion(ctx context.Context) (*entity.ServerVersion, error) {
	if m.ServerVersionFunc != nil {
		return m.ServerVersionFunc(ctx)
	}
	return &entity.ServerVersion{Version: DefaultVersion}, nil
}

// CheckServerVersion проверяет версию. По умолчанию сравнивает DefaultVersion с constraint.
func (m *MockClient) CheckServerVersion(ctx context.Context, constraint string) (*entity.ServerVersion, error) {
	if m.CheckServerVersionFunc != nil {
		return m.CheckServerVersionFunc(ctx, constraint)
	}
	v, _ := m.ServerVersion(ctx)
	ok, err := v.Satisfies(constraint)
	if err != nil {
		return v, gitea.NewGiteaError(gitea.ErrGiteaValidation, "не удалось проверить версию сервера", err)
	}
	if !ok {
		return v, gitea.NewGiteaError(gitea.ErrGiteaUnsupportedVersion, "версия не поддерживается", nil)
	}
	return v, nil
}

// -------------------------------------------------------------------
// Connector
// -------------------------------------------------------------------

// MockConnector возвращает заранее заданный Client или ошибку.
type MockConnector struct {
	Client gitea.Client
	Err    error
	// Calls - число вызовов Connect.
	Calls int
}

// Connect возвращает Client или Err.
func (c *MockConnector) Connect(_ context.Context) (gitea.Client, error) {
	c.Calls++
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Client, nil
}

// MockTokenStore - мок gitea.TokenStore.
type MockTokenStore struct {
	PrefixValue string
	ListFunc    func(ctx context.Context) ([]entity.AccessToken, error)
	CleanupFunc func(ctx context.Context, tokens []entity.AccessToken) ([]string, error)
}

// Prefix возвращает PrefixValue или префикс по умолчанию.
func (m *MockTokenStore) Prefix() string {
	if m.PrefixValue == "" {
		return constants.DefaultTokenPrefix
	}
	return m.PrefixValue
}

// List вызывает ListFunc. По умолчанию пустой список.
func (m *MockTokenStore) List(ctx context.Context) ([]entity.AccessToken, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []entity.AccessToken{}, nil
}

// Cleanup вызывает CleanupFunc. По умолчанию возвращает имена токенов с префиксом.
func (m *MockTokenStore) Cleanup(ctx context.Context, tokens []entity.AccessToken) ([]string, error) {
	if m.CleanupFunc != nil {
		return m.CleanupFunc(ctx, tokens)
	}
	deleted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if gitea.IsManagedToken(tok.Name, m.Prefix()) {
			deleted = append(deleted, tok.Name)
		}
	}
	return deleted, nil
}

// -------------------------------------------------------------------
// Тестовые данные
// -------------------------------------------------------------------

// UserData возвращает тестовый профиль пользователя.
func UserData() *entity.User {
	return &entity.User{
		ID:         1,
		Username:   "MisileLaboratory",
		FullName:   "Misile Laboratory",
		Email:      "misilelaboratory@example.com",
		Active:     true,
		Visibility: entity.VisibilityPublic,
	}
}

// GPGKeyData возвращает тестовый GPG-ключ.
func GPGKeyData() *entity.GPGKey {
	return &entity.GPGKey{
		ID:         7,
		KeyID:      "ABCDEF0123456789",
		PublicKey:  "xsBNBF...",
		Emails:     []entity.GPGKeyEmail{{Email: UserData().Email, Verified: true}},
		CanSign:    true,
		CanCertify: true,
		Verified:   true,
	}
}

// PublicKeyData возвращает тестовый SSH-ключ.
func PublicKeyData() *entity.PublicKey {
	return &entity.PublicKey{
		ID:          3,
		Key:         "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIG example",
		Title:       "laptop",
		Fingerprint: Fingerprint("ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIG example"),
		KeyType:     "user",
	}
}

// RepositoryData возвращает тестовый репозиторий BaseRepository.
func RepositoryData() *entity.Repository {
	return &entity.Repository{
		ID:            1,
		Owner:         UserData(),
		Name:          "base-repository",
		FullName:      BaseRepository,
		DefaultBranch: "main",
		Permissions:   entity.Permission{Admin: true, Push: true, Pull: true},
	}
}

// SettingsData возвращает тестовые настройки.
func SettingsData() *entity.Settings {
	return &entity.Settings{
		FullName:      "Misile Laboratory",
		Language:      "en-US",
		Theme:         "gitea",
		DiffViewStyle: "unified",
	}
}
