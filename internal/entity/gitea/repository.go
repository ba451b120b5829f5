package gitea

// Repository - репозиторий Gitea.
type Repository struct {
	ID              int64            `json:"id"`
	Owner           *User            `json:"owner"`
	Name            string           `json:"name"`
	FullName        string           `json:"full_name"`
	Description     string           `json:"description"`
	Empty           bool             `json:"empty"`
	Private         bool             `json:"private"`
	Fork            bool             `json:"fork"`
	Template        bool             `json:"template"`
	Mirror          bool             `json:"mirror"`
	Archived        bool             `json:"archived"`
	Internal        bool             `json:"internal"`
	Size            int64            `json:"size"`
	Language        string           `json:"language"`
	HTMLURL         string           `json:"html_url"`
	SSHURL          string           `json:"ssh_url"`
	CloneURL        string           `json:"clone_url"`
	Website         string           `json:"website"`
	StarsCount      int              `json:"stars_count"`
	ForksCount      int              `json:"forks_count"`
	WatchersCount   int              `json:"watchers_count"`
	OpenIssuesCount int              `json:"open_issues_count"`
	DefaultBranch   string           `json:"default_branch"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Permissions     Permission       `json:"permissions"`
	HasIssues       bool             `json:"has_issues"`
	HasWiki         bool             `json:"has_wiki"`
	HasPullRequests bool             `json:"has_pull_requests"`
	HasProjects     bool             `json:"has_projects"`
	InternalTracker InternalTracker  `json:"internal_tracker"`
	ExternalTracker *ExternalTracker `json:"external_tracker,omitempty"`
	RepoTransfer    *RepoTransfer    `json:"repo_transfer,omitempty"`
}

// ParseRepository создаёт Repository. Контрольное поле - "internal_tracker" (объект).
//
// Ошибка разбора владельца возвращается. "external_tracker" и "repo_transfer"
// необязательны: отсутствие или некорректное значение даёт nil без ошибки.
func ParseRepository(raw map[string]any) (*Repository, error) {
	tracker, ok := requireObject(raw, "internal_tracker")
	if !ok {
		return nil, malformed(raw, "internal_tracker")
	}

	repo := &Repository{
		ID:              int64Of(raw, "id"),
		Name:            str(raw, "name"),
		FullName:        str(raw, "full_name"),
		Description:     str(raw, "description"),
		Empty:           boolean(raw, "empty"),
		Private:         boolean(raw, "private"),
		Fork:            boolean(raw, "fork"),
		Template:        boolean(raw, "template"),
		Mirror:          boolean(raw, "mirror"),
		Archived:        boolean(raw, "archived"),
		Internal:        boolean(raw, "internal"),
		Size:            int64Of(raw, "size"),
		Language:        str(raw, "language"),
		HTMLURL:         str(raw, "html_url"),
		SSHURL:          str(raw, "ssh_url"),
		CloneURL:        str(raw, "clone_url"),
		Website:         str(raw, "website"),
		StarsCount:      intOf(raw, "stars_count"),
		ForksCount:      intOf(raw, "forks_count"),
		WatchersCount:   intOf(raw, "watchers_count"),
		OpenIssuesCount: intOf(raw, "open_issues_count"),
		DefaultBranch:   str(raw, "default_branch"),
		CreatedAt:       str(raw, "created_at"),
		UpdatedAt:       str(raw, "updated_at"),
		Permissions:     parsePermission(object(raw, "permissions")),
		HasIssues:       boolean(raw, "has_issues"),
		HasWiki:         boolean(raw, "has_wiki"),
		HasPullRequests: boolean(raw, "has_pull_requests"),
		HasProjects:     boolean(raw, "has_projects"),
		InternalTracker: parseInternalTracker(tracker),
	}

	if o, present := raw["owner"]; present && o != nil {
		ownerRaw, ok := o.(map[string]any)
		if !ok {
			return nil, malformed(raw, "owner")
		}
		owner, err := ParseUser(ownerRaw)
		if err != nil {
			return nil, err
		}
		repo.Owner = owner
	}

	if ext, ok := requireObject(raw, "external_tracker"); ok {
		repo.ExternalTracker = parseExternalTracker(ext)
	}

	if tr, ok := requireObject(raw, "repo_transfer"); ok {
		if transfer, err := ParseRepoTransfer(tr); err == nil {
			repo.RepoTransfer = transfer
		}
	}

	return repo, nil
}

// Permission - права текущего пользователя на репозиторий.
type Permission struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

func parsePermission(raw map[string]any) Permission {
	return Permission{
		Admin: boolean(raw, "admin"),
		Push:  boolean(raw, "push"),
		Pull:  boolean(raw, "pull"),
	}
}

// InternalTracker - настройки встроенного трекера задач.
type InternalTracker struct {
	EnableTimeTracker                bool `json:"enable_time_tracker"`
	AllowOnlyContributorsToTrackTime bool `json:"allow_only_contributors_to_track_time"`
	EnableIssueDependencies          bool `json:"enable_issue_dependencies"`
}

func parseInternalTracker(raw map[string]any) InternalTracker {
	return InternalTracker{
		EnableTimeTracker:                boolean(raw, "enable_time_tracker"),
		AllowOnlyContributorsToTrackTime: boolean(raw, "allow_only_contributors_to_track_time"),
		EnableIssueDependencies:          boolean(raw, "enable_issue_dependencies"),
	}
}

// ExternalTracker - настройки внешнего трекера задач.
type ExternalTracker struct {
	URL    string `json:"external_tracker_url"`
	Format string `json:"external_tracker_format"`
	Style  string `json:"external_tracker_style"`
}

func parseExternalTracker(raw map[string]any) *ExternalTracker {
	return &ExternalTracker{
		URL:    str(raw, "external_tracker_url"),
		Format: str(raw, "external_tracker_format"),
		Style:  str(raw, "external_tracker_style"),
	}
}

// RepoTransfer - ожидающая передача репозитория.
type RepoTransfer struct {
	Doer      *User  `json:"doer"`
	Recipient *User  `json:"recipient,omitempty"`
	Teams     []Team `json:"teams"`
}

// ParseRepoTransfer создаёт RepoTransfer. Контрольное поле - "doer" (объект).
func ParseRepoTransfer(raw map[string]any) (*RepoTransfer, error) {
	doerRaw, ok := requireObject(raw, "doer")
	if !ok {
		return nil, malformed(raw, "doer")
	}
	doer, err := ParseUser(doerRaw)
	if err != nil {
		return nil, err
	}

	transfer := &RepoTransfer{Doer: doer}
	if r := object(raw, "recipient"); r != nil {
		recipient, err := ParseUser(r)
		if err != nil {
			return nil, err
		}
		transfer.Recipient = recipient
	}

	teams, err := ParseList(objects(raw, "teams"), ParseTeam)
	if err != nil {
		return nil, err
	}
	transfer.Teams = teams
	return transfer, nil
}
