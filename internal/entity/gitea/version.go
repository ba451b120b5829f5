package gitea

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// ServerVersion - версия сервера Gitea (GET /version).
type ServerVersion struct {
	Version string `json:"version"`
}

// ParseServerVersion создаёт ServerVersion. Контрольное поле - "version".
func ParseServerVersion(raw map[string]any) (*ServerVersion, error) {
	v, ok := requireString(raw, "version")
	if !ok {
		return nil, malformed(raw, "version")
	}
	return &ServerVersion{Version: v}, nil
}

// Semver разбирает строку версии. Суффиксы сборки вида "+dev-12-gabc" допускаются.
func (v *ServerVersion) Semver() (*version.Version, error) {
	parsed, err := version.NewVersion(v.Version)
	if err != nil {
		return nil, fmt.Errorf("разбор версии Gitea %q: %w", v.Version, err)
	}
	return parsed, nil
}

// Satisfies проверяет версию на соответствие ограничению, например ">= 1.20".
func (v *ServerVersion) Satisfies(constraint string) (bool, error) {
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("разбор ограничения версии %q: %w", constraint, err)
	}
	parsed, err := v.Semver()
	if err != nil {
		return false, err
	}
	return constraints.Check(parsed), nil
}
