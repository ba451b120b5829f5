package gitea

import "fmt"

// Organization - организация Gitea.
type Organization struct {
	ID                        int64      `json:"id"`
	Name                      string     `json:"name"`
	FullName                  string     `json:"full_name"`
	AvatarURL                 string     `json:"avatar_url"`
	Description               string     `json:"description"`
	Website                   string     `json:"website"`
	Location                  string     `json:"location"`
	Visibility                Visibility `json:"visibility"`
	RepoAdminChangeTeamAccess bool       `json:"repo_admin_change_team_access"`
}

// ParseOrganization создаёт Organization. Контрольное поле - "id".
// Gitea отдаёт имя в "name" и дублирует его в устаревшем "username".
func ParseOrganization(raw map[string]any) (*Organization, error) {
	id, ok := requireInt64(raw, "id")
	if !ok {
		return nil, malformed(raw, "id")
	}
	name := str(raw, "name")
	if name == "" {
		name = str(raw, "username")
	}
	return &Organization{
		ID:                        id,
		Name:                      name,
		FullName:                  str(raw, "full_name"),
		AvatarURL:                 str(raw, "avatar_url"),
		Description:               str(raw, "description"),
		Website:                   str(raw, "website"),
		Location:                  str(raw, "location"),
		Visibility:                ParseVisibility(str(raw, "visibility")),
		RepoAdminChangeTeamAccess: boolean(raw, "repo_admin_change_team_access"),
	}, nil
}

// TeamPermission - уровень доступа команды.
type TeamPermission string

// Допустимые значения TeamPermission.
const (
	TeamPermissionNone  TeamPermission = "none"
	TeamPermissionRead  TeamPermission = "read"
	TeamPermissionWrite TeamPermission = "write"
	TeamPermissionAdmin TeamPermission = "admin"
	TeamPermissionOwner TeamPermission = "owner"
)

// ParseTeamPermission строго проверяет значение уровня доступа.
func ParseTeamPermission(s string) (TeamPermission, error) {
	switch p := TeamPermission(s); p {
	case TeamPermissionNone, TeamPermissionRead, TeamPermissionWrite, TeamPermissionAdmin, TeamPermissionOwner:
		return p, nil
	default:
		return "", fmt.Errorf("недопустимый уровень доступа команды %q", s)
	}
}

// Team - команда организации.
type Team struct {
	ID                      int64          `json:"id"`
	Name                    string         `json:"name"`
	Description             string         `json:"description"`
	Organization            *Organization  `json:"organization,omitempty"`
	IncludesAllRepositories bool           `json:"includes_all_repositories"`
	Permission              TeamPermission `json:"permission"`
	Units                   []string       `json:"units,omitempty"`
	CanCreateOrgRepo        bool           `json:"can_create_org_repo"`
}

// ParseTeam создаёт Team. Контрольное поле - "id".
// Значение "permission" вне {none, read, write, admin, owner} делает ответ некорректным.
func ParseTeam(raw map[string]any) (*Team, error) {
	id, ok := requireInt64(raw, "id")
	if !ok {
		return nil, malformed(raw, "id")
	}

	perm, err := ParseTeamPermission(str(raw, "permission"))
	if err != nil {
		return nil, &MalformedResponseError{Data: raw, Field: "permission", Cause: err}
	}

	team := &Team{
		ID:                      id,
		Name:                    str(raw, "name"),
		Description:             str(raw, "description"),
		IncludesAllRepositories: boolean(raw, "includes_all_repositories"),
		Permission:              perm,
		Units:                   stringList(raw, "units"),
		CanCreateOrgRepo:        boolean(raw, "can_create_org_repo"),
	}

	if o := object(raw, "organization"); o != nil {
		org, err := ParseOrganization(o)
		if err != nil {
			return nil, err
		}
		team.Organization = org
	}
	return team, nil
}
