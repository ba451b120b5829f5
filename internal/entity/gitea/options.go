package gitea

import (
	"errors"
	"strings"
)

// ErrRepoNameRequired возвращается RepoOption.Validate для пустого имени.
var ErrRepoNameRequired = errors.New("имя репозитория обязательно")

// RepoOption - параметры создания репозитория (POST /user/repos).
//
// Необязательные поля - указатели с omitempty: незаданное поле
// не попадает в тело запроса, сервер никогда не получает null.
type RepoOption struct {
	Name          string  `json:"name"`
	AutoInit      *bool   `json:"auto_init,omitempty"`
	DefaultBranch *string `json:"default_branch,omitempty"`
	Description   *string `json:"description,omitempty"`
	Gitignores    *string `json:"gitignores,omitempty"`
	IssueLabels   *string `json:"issue_labels,omitempty"`
	License       *string `json:"license,omitempty"`
	Private       *bool   `json:"private,omitempty"`
	Readme        *string `json:"readme,omitempty"`
	Template      *bool   `json:"template,omitempty"`
	TrustModel    *string `json:"trust_model,omitempty"`
}

// Validate проверяет обязательные поля.
func (o RepoOption) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrRepoNameRequired
	}
	return nil
}

// CreateTokenOption - тело запроса создания токена.
type CreateTokenOption struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes,omitempty"`
}

// CreateGPGKeyOption - тело запроса добавления GPG-ключа.
type CreateGPGKeyOption struct {
	ArmoredKey string `json:"armored_public_key"`
	Signature  string `json:"armored_signature,omitempty"`
}

// CreateKeyOption - тело запроса добавления SSH-ключа.
type CreateKeyOption struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	ReadOnly *bool  `json:"read_only,omitempty"`
}

// EmailOption - тело запросов добавления и удаления адресов.
type EmailOption struct {
	Emails []string `json:"emails"`
}

// Ptr возвращает указатель на v. Удобно для необязательных полей опций.
func Ptr[T any](v T) *T {
	return &v
}
