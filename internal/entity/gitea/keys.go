package gitea

// GPGKey - GPG-ключ пользователя для подписи коммитов и тегов.
//
// Subkeys различает три состояния: nil (поле отсутствует или null),
// пустой срез (сервер вернул []) и заполненный список.
type GPGKey struct {
	ID                int64         `json:"id"`
	PrimaryKeyID      string        `json:"primary_key_id"`
	KeyID             string        `json:"key_id"`
	PublicKey         string        `json:"public_key"`
	Emails            []GPGKeyEmail `json:"emails"`
	Subkeys           []GPGKey      `json:"subkeys"`
	CanSign           bool          `json:"can_sign"`
	CanEncryptComms   bool          `json:"can_encrypt_comms"`
	CanEncryptStorage bool          `json:"can_encrypt_storage"`
	CanCertify        bool          `json:"can_certify"`
	Verified          bool          `json:"verified"`
	CreatedAt         string        `json:"created_at"`
	ExpiresAt         string        `json:"expires_at"`
}

// ParseGPGKey создаёт GPGKey. Контрольное поле - "can_certify".
// Подключи разбираются рекурсивно, ошибка любого из них возвращается как есть.
func ParseGPGKey(raw map[string]any) (*GPGKey, error) {
	canCertify, ok := requireBool(raw, "can_certify")
	if !ok {
		return nil, malformed(raw, "can_certify")
	}

	emails, err := ParseList(objects(raw, "emails"), ParseGPGKeyEmail)
	if err != nil {
		return nil, err
	}

	subkeys, err := parseSubkeys(raw)
	if err != nil {
		return nil, err
	}

	return &GPGKey{
		ID:                int64Of(raw, "id"),
		PrimaryKeyID:      str(raw, "primary_key_id"),
		KeyID:             str(raw, "key_id"),
		PublicKey:         str(raw, "public_key"),
		Emails:            emails,
		Subkeys:           subkeys,
		CanSign:           boolean(raw, "can_sign"),
		CanEncryptComms:   boolean(raw, "can_encrypt_comms"),
		CanEncryptStorage: boolean(raw, "can_encrypt_storage"),
		CanCertify:        canCertify,
		Verified:          boolean(raw, "verified"),
		CreatedAt:         str(raw, "created_at"),
		ExpiresAt:         str(raw, "expires_at"),
	}, nil
}

// parseSubkeys возвращает nil для отсутствующего поля, null и строки "null".
func parseSubkeys(raw map[string]any) ([]GPGKey, error) {
	switch v := raw["subkeys"].(type) {
	case nil:
		return nil, nil
	case string:
		if v == "null" {
			return nil, nil
		}
		return nil, malformed(raw, "subkeys")
	case []any:
		items := make([]map[string]any, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, malformed(raw, "subkeys")
			}
			items = append(items, obj)
		}
		return ParseList(items, ParseGPGKey)
	default:
		return nil, malformed(raw, "subkeys")
	}
}

// PublicKey - публичный SSH-ключ пользователя.
type PublicKey struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Fingerprint string `json:"fingerprint"`
	CreatedAt   string `json:"created_at"`
	ReadOnly    bool   `json:"read_only"`
	KeyType     string `json:"key_type"`
	User        *User  `json:"user,omitempty"`
}

// ParsePublicKey создаёт PublicKey. Контрольное поле - "created_at".
// Вложенный "user" необязателен; если он присутствует, ошибка его разбора возвращается.
func ParsePublicKey(raw map[string]any) (*PublicKey, error) {
	createdAt, ok := requireString(raw, "created_at")
	if !ok {
		return nil, malformed(raw, "created_at")
	}

	key := &PublicKey{
		ID:          int64Of(raw, "id"),
		Key:         str(raw, "key"),
		URL:         str(raw, "url"),
		Title:       str(raw, "title"),
		Fingerprint: str(raw, "fingerprint"),
		CreatedAt:   createdAt,
		ReadOnly:    boolean(raw, "read_only"),
		KeyType:     str(raw, "key_type"),
	}

	if u := object(raw, "user"); u != nil {
		user, err := ParseUser(u)
		if err != nil {
			return nil, err
		}
		key.User = user
	}
	return key, nil
}

// AccessToken - токен доступа пользователя.
// SHA1 заполняется сервером только в ответе на создание токена.
type AccessToken struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	SHA1           string   `json:"sha1,omitempty"`
	TokenLastEight string   `json:"token_last_eight"`
	Scopes         []string `json:"scopes,omitempty"`
}

// ParseAccessToken создаёт AccessToken. Контрольное поле - "name".
func ParseAccessToken(raw map[string]any) (*AccessToken, error) {
	name, ok := requireString(raw, "name")
	if !ok {
		return nil, malformed(raw, "name")
	}
	return &AccessToken{
		ID:             int64Of(raw, "id"),
		Name:           name,
		SHA1:           str(raw, "sha1"),
		TokenLastEight: str(raw, "token_last_eight"),
		Scopes:         stringList(raw, "scopes"),
	}, nil
}
