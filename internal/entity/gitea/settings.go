package gitea

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSetting возвращается Settings.Set для неизвестного имени поля.
var ErrUnknownSetting = errors.New("неизвестная настройка")

// Settings - настройки текущего пользователя.
//
// Отправляется на сервер целиком (PATCH /user/settings), поэтому теги JSON
// не содержат omitempty: сервер получает все поля из последнего чтения.
type Settings struct {
	FullName      string `json:"full_name"`
	Website       string `json:"website"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	DiffViewStyle string `json:"diff_view_style"`
	HideEmail     bool   `json:"hide_email"`
	HideActivity  bool   `json:"hide_activity"`
}

// ParseSettings создаёт Settings. Поля не проверяются: источник истины - сервер.
func ParseSettings(raw map[string]any) (*Settings, error) {
	if raw == nil {
		return nil, &MalformedResponseError{Cause: errors.New("ожидался JSON-объект настроек")}
	}
	return &Settings{
		FullName:      str(raw, "full_name"),
		Website:       str(raw, "website"),
		Description:   str(raw, "description"),
		Location:      str(raw, "location"),
		Language:      str(raw, "language"),
		Theme:         str(raw, "theme"),
		DiffViewStyle: str(raw, "diff_view_style"),
		HideEmail:     boolean(raw, "hide_email"),
		HideActivity:  boolean(raw, "hide_activity"),
	}, nil
}

// Set изменяет ровно одно поле, заданное JSON-именем.
// Строковые поля принимают string, флаги принимают bool.
func (s *Settings) Set(field string, value any) error {
	if p := s.stringField(field); p != nil {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("настройка %q: ожидается string, получено %T", field, value)
		}
		*p = v
		return nil
	}
	if p := s.boolField(field); p != nil {
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("настройка %q: ожидается bool, получено %T", field, value)
		}
		*p = v
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownSetting, field)
}

// IsBoolSetting сообщает, что поле field является флагом.
func IsBoolSetting(field string) bool {
	return (&Settings{}).boolField(field) != nil
}

// SettingNames возвращает отсортированный список допустимых имён полей.
func SettingNames() []string {
	names := []string{
		"full_name", "website", "description", "location", "language",
		"theme", "diff_view_style", "hide_email", "hide_activity",
	}
	sort.Strings(names)
	return names
}

func (s *Settings) stringField(field string) *string {
	switch field {
	case "full_name":
		return &s.FullName
	case "website":
		return &s.Website
	case "description":
		return &s.Description
	case "location":
		return &s.Location
	case "language":
		return &s.Language
	case "theme":
		return &s.Theme
	case "diff_view_style":
		return &s.DiffViewStyle
	default:
		return nil
	}
}

func (s *Settings) boolField(field string) *bool {
	switch field {
	case "hide_email":
		return &s.HideEmail
	case "hide_activity":
		return &s.HideActivity
	default:
		return nil
	}
}
