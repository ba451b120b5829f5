package gitea

// Visibility описывает видимость аккаунта или организации.
type Visibility string

// Допустимые значения Visibility.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityLimited Visibility = "limited"
	VisibilityPrivate Visibility = "private"
	// VisibilityUnknown - значение не задано или не распознано.
	VisibilityUnknown Visibility = ""
)

// ParseVisibility преобразует строку в Visibility. Функция тотальна:
// только точные "public", "limited", "private" распознаются,
// всё остальное (включая пустую строку) даёт VisibilityUnknown.
func ParseVisibility(s string) Visibility {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityLimited, VisibilityPrivate:
		return Visibility(s)
	default:
		return VisibilityUnknown
	}
}

// IsKnown сообщает, является ли значение одним из допустимых.
func (v Visibility) IsKnown() bool {
	return v != VisibilityUnknown
}

// String реализует fmt.Stringer.
func (v Visibility) String() string {
	if v == VisibilityUnknown {
		return "unknown"
	}
	return string(v)
}
