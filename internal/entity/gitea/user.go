package gitea

// User - пользователь Gitea.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"login"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	AvatarURL      string     `json:"avatar_url"`
	Language       string     `json:"language"`
	IsAdmin        bool       `json:"is_admin"`
	LastLogin      string     `json:"last_login"`
	Created        string     `json:"created"`
	Restricted     bool       `json:"restricted"`
	Active         bool       `json:"active"`
	ProhibitLogin  bool       `json:"prohibit_login"`
	Location       string     `json:"location"`
	Website        string     `json:"website"`
	Description    string     `json:"description"`
	Visibility     Visibility `json:"visibility"`
	FollowersCount int        `json:"followers_count"`
	FollowingCount int        `json:"following_count"`
	StarredCount   int        `json:"starred_repos_count"`
}

// ParseUser создаёт User из JSON-объекта. Контрольное поле - "active".
func ParseUser(raw map[string]any) (*User, error) {
	active, ok := requireBool(raw, "active")
	if !ok {
		return nil, malformed(raw, "active")
	}
	return &User{
		ID:             int64Of(raw, "id"),
		Username:       str(raw, "login"),
		FullName:       str(raw, "full_name"),
		Email:          str(raw, "email"),
		AvatarURL:      str(raw, "avatar_url"),
		Language:       str(raw, "language"),
		IsAdmin:        boolean(raw, "is_admin"),
		LastLogin:      str(raw, "last_login"),
		Created:        str(raw, "created"),
		Restricted:     boolean(raw, "restricted"),
		Active:         active,
		ProhibitLogin:  boolean(raw, "prohibit_login"),
		Location:       str(raw, "location"),
		Website:        str(raw, "website"),
		Description:    str(raw, "description"),
		Visibility:     ParseVisibility(str(raw, "visibility")),
		FollowersCount: intOf(raw, "followers_count"),
		FollowingCount: intOf(raw, "following_count"),
		StarredCount:   intOf(raw, "starred_repos_count"),
	}, nil
}

// Email - адрес электронной почты пользователя.
type Email struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// ParseEmail создаёт Email. Контрольное поле - "email".
func ParseEmail(raw map[string]any) (*Email, error) {
	email, ok := requireString(raw, "email")
	if !ok {
		return nil, malformed(raw, "email")
	}
	return &Email{
		Email:    email,
		Primary:  boolean(raw, "primary"),
		Verified: boolean(raw, "verified"),
	}, nil
}

// GPGKeyEmail - адрес, привязанный к GPG-ключу.
type GPGKeyEmail struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// ParseGPGKeyEmail создаёт GPGKeyEmail. Контрольное поле - "email".
func ParseGPGKeyEmail(raw map[string]any) (*GPGKeyEmail, error) {
	email, ok := requireString(raw, "email")
	if !ok {
		return nil, malformed(raw, "email")
	}
	return &GPGKeyEmail{Email: email, Verified: boolean(raw, "verified")}, nil
}
