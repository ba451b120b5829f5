package gitea

import (
	"context"

	entity "github.com/Kargones/gitea-vcs/internal/entity/gitea"
)

// -------------------------------------------------------------------
// ISP-compliant интерфейсы
// -------------------------------------------------------------------

// UserReader предоставляет чтение профиля текущего пользователя.
type UserReader interface {
	// User возвращает профиль, загруженный при создании клиента.
	User() *entity.User
	// Self заново загружает профиль с сервера.
	Self(ctx context.Context) (*entity.User, error)
}

// EmailManager предоставляет операции с адресами электронной почты.
type EmailManager interface {
	GetEmails(ctx context.Context) ([]entity.Email, error)
	AddEmails(ctx context.Context, emails []string) ([]entity.Email, error)
	RemoveEmails(ctx context.Context, emails []string) error
}

// FollowManager предоставляет операции с подписками на пользователей.
type FollowManager interface {
	GetFollowers(ctx context.Context, opts ListOptions) ([]entity.User, error)
	GetFollowings(ctx context.Context, opts ListOptions) ([]entity.User, error)
	FollowUser(ctx context.Context, username string) error
	UnfollowUser(ctx context.Context, username string) error
}

// GPGKeyManager предоставляет операции с GPG-ключами.
type GPGKeyManager interface {
	GetGPGKeys(ctx context.Context, opts ListOptions) ([]entity.GPGKey, error)
	GetGPGKey(ctx context.Context, id int64) (*entity.GPGKey, error)
	AddGPGKey(ctx context.Context, opt entity.CreateGPGKeyOption) (*entity.GPGKey, error)
	DeleteGPGKey(ctx context.Context, id int64) error
}

// PublicKeyManager предоставляет операции с SSH-ключами.
type PublicKeyManager interface {
	GetPublicKeys(ctx context.Context, fingerprint string, opts ListOptions) ([]entity.PublicKey, error)
	GetPublicKey(ctx context.Context, id int64) (*entity.PublicKey, error)
	AddPublicKey(ctx context.Context, opt entity.CreateKeyOption) (*entity.PublicKey, error)
	DeletePublicKey(ctx context.Context, id int64) error
}

// RepositoryManager предоставляет операции с репозиториями пользователя.
type RepositoryManager interface {
	GetRepositories(ctx context.Context, opts ListOptions) ([]entity.Repository, error)
	CreateRepository(ctx context.Context, opt entity.RepoOption) (*entity.Repository, error)
}

// SettingsManager предоставляет операции с настройками пользователя.
type SettingsManager interface {
	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
	ChangeSetting(ctx context.Context, field string, value any) (*entity.Settings, error)
}

// StarManager предоставляет операции с избранными репозиториями.
type StarManager interface {
	GetStarredRepositories(ctx context.Context, opts ListOptions) ([]entity.Repository, error)
	StarRepository(ctx context.Context, owner, repo string) error
	UnstarRepository(ctx context.Context, owner, repo string) error
	IsStarred(ctx context.Context, owner, repo string) (bool, error)
}

// OrgReader предоставляет чтение организаций и команд пользователя.
type OrgReader interface {
	GetOrganizations(ctx context.Context, opts ListOptions) ([]entity.Organization, error)
	GetTeams(ctx context.Context, opts ListOptions) ([]entity.Team, error)
}

// VersionReader предоставляет чтение версии сервера.
type VersionReader interface {
	ServerVersion(ctx context.Context) (*entity.ServerVersion, error)
	CheckServerVersion(ctx context.Context, constraint string) (*entity.ServerVersion, error)
}

// Client - композитный интерфейс, объединяющий все операции Gitea.
type Client interface {
	UserReader
	EmailManager
	FollowManager
	GPGKeyManager
	PublicKeyManager
	RepositoryManager
	SettingsManager
	StarManager
	OrgReader
	VersionReader
}

// Connector создаёт Client. Позволяет отложить сетевую инициализацию
// до момента, когда клиент действительно нужен команде.
type Connector interface {
	Connect(ctx context.Context) (Client, error)
}

// TokenStore управляет токенами доступа пользователя через basic auth.
type TokenStore interface {
	// Prefix возвращает префикс имён токенов, создаваемых клиентом.
	Prefix() string
	// List возвращает токены пользователя.
	List(ctx context.Context) ([]entity.AccessToken, error)
	// Cleanup удаляет токены клиента из tokens и возвращает их имена.
	Cleanup(ctx context.Context, tokens []entity.AccessToken) ([]string, error)
}
