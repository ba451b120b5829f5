package giteatest

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
)

const createdAt = "2022-05-01T10:00:00Z"

// selfObject - профиль текущего пользователя. Вызывается под s.mu.
func (s *FakeServer) selfObject() map[string]any {
	obj := userObject(1, s.Username)
	if fullName, ok := s.settings["full_name"].(string); ok {
		obj["full_name"] = fullName
	}
	for _, e := range s.emails {
		if e.primary {
			obj["email"] = e.address
		}
	}
	obj["followers_count"] = len(s.followers)
	obj["following_count"] = len(s.following)
	obj["starred_repos_count"] = len(s.stars)
	return obj
}

func (s *FakeServer) userObjects(logins []string) []map[string]any {
	out := make([]map[string]any, 0, len(logins))
	for i, login := range logins {
		out = append(out, userObject(int64(100+i), login))
	}
	return out
}

func userObject(id int64, login string) map[string]any {
	return map[string]any{
		"id":                  id,
		"login":               login,
		"full_name":           login,
		"email":               strings.ToLower(login) + "@example.com",
		"avatar_url":          "https://gitea.example.com/avatars/" + strconv.FormatInt(id, 10),
		"language":            "en-US",
		"is_admin":            false,
		"last_login":          createdAt,
		"created":             createdAt,
		"restricted":          false,
		"active":              true,
		"prohibit_login":      false,
		"location":            "",
		"website":             "",
		"description":         "",
		"visibility":          "public",
		"followers_count":     0,
		"following_count":     0,
		"starred_repos_count": 0,
	}
}

func emailObject(e *email) map[string]any {
	return map[string]any{"email": e.address, "primary": e.primary, "verified": e.verified}
}

func (s *FakeServer) gpgKeyObject(id int64, armored string) map[string]any {
	keyID := strings.ToUpper(strconv.FormatInt(0x1000000000+id, 16))
	emails := make([]any, 0, len(s.emails))
	for _, e := range s.emails {
		emails = append(emails, emailObject(e))
	}
	return map[string]any{
		"id":                  id,
		"primary_key_id":      "",
		"key_id":              keyID,
		"public_key":          armored,
		"emails":              emails,
		"subkeys":             []any{},
		"can_sign":            true,
		"can_encrypt_comms":   false,
		"can_encrypt_storage": false,
		"can_certify":         true,
		"verified":            true,
		"created_at":          createdAt,
		"expires_at":          "0001-01-01T00:00:00Z",
	}
}

func (s *FakeServer) repositoryObject(repo *repository) map[string]any {
	var owner map[string]any
	if repo.owner == s.Username {
		owner = s.selfObject()
	} else {
		owner = userObject(2, repo.owner)
	}
	stars := 0
	if s.stars[repo.fullName()] {
		stars = 1
	}
	return map[string]any{
		"id":                repo.id,
		"owner":             owner,
		"name":              repo.name,
		"full_name":         repo.fullName(),
		"description":       repo.description,
		"empty":             false,
		"private":           repo.private,
		"fork":              false,
		"template":          false,
		"mirror":            false,
		"archived":          false,
		"internal":          false,
		"size":              0,
		"html_url":          s.URL + "/" + repo.fullName(),
		"ssh_url":           "git@localhost:" + repo.fullName() + ".git",
		"clone_url":         s.URL + "/" + repo.fullName() + ".git",
		"stars_count":       stars,
		"forks_count":       0,
		"watchers_count":    1,
		"open_issues_count": 0,
		"default_branch":    "main",
		"permissions":       map[string]any{"admin": true, "push": true, "pull": true},
		"internal_tracker": map[string]any{
			"enable_time_tracker":                   true,
			"allow_only_contributors_to_track_time": true,
			"enable_issue_dependencies":             true,
		},
		"external_tracker": nil,
		"repo_transfer":    nil,
	}
}

func (s *FakeServer) organizationObject(id int64, name string) map[string]any {
	return map[string]any{
		"id":                            id,
		"name":                          name,
		"username":                      name,
		"full_name":                     name,
		"avatar_url":                    "https://gitea.example.com/avatars/org",
		"description":                   "",
		"website":                       "",
		"location":                      "",
		"visibility":                    "public",
		"repo_admin_change_team_access": false,
	}
}

// sortedByID возвращает значения хранилища в порядке возрастания id.
func sortedByID(store map[int64]map[string]any) []map[string]any {
	ids := make([]int64, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, store[id])
	}
	return out
}

// paginate применяет параметры page и limit.
func paginate(r *http.Request, items []map[string]any) []map[string]any {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if limit <= 0 {
		return items
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []map[string]any{}
	}
	end := min(start+limit, len(items))
	return items[start:end]
}
