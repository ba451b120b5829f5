package giteatest

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // формат sha1 токенов Gitea
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// DefaultVersion - версия, которую FakeServer сообщает по GET /version.
const DefaultVersion = "1.21.4"

// BaseRepository - репозиторий, существующий на FakeServer сразу после создания.
const BaseRepository = "MisileLaboratory/base-repository"

// Call - запись журнала запросов FakeServer.
type Call struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	Body          []byte
}

// String возвращает "METHOD path", где path задан относительно /api/v1.
func (c Call) String() string {
	return c.Method + " " + strings.TrimPrefix(c.Path, apiPrefix)
}

type override struct {
	status int
	body   string
}

type token struct {
	id   int64
	name string
	sha1 string
}

type email struct {
	address  string
	primary  bool
	verified bool
}

type repository struct {
	id          int64
	owner       string
	name        string
	description string
	private     bool
}

func (r *repository) fullName() string {
	return r.owner + "/" + r.name
}

const apiPrefix = "/api/v1"

// FakeServer - in-memory реализация подмножества Gitea API.
// Безопасен для конкурентных запросов.
type FakeServer struct {
	// URL - базовый адрес сервера без /api/v1.
	URL string
	// Username и Password - учётные данные basic auth для /users/{name}/tokens.
	Username string
	Password string

	srv    *httptest.Server
	router chi.Router

	mu         sync.Mutex
	nextID     int64
	calls      []Call
	overrides  map[string]override
	tokens     []*token
	emails     []*email
	followers  []string
	following  []string
	gpgKeys    map[int64]map[string]any
	publicKeys map[int64]map[string]any
	repos      []*repository
	stars      map[string]bool
	settings   map[string]any
	orgs       []map[string]any
	teams      []map[string]any
	version    string
}

// NewFakeServer запускает FakeServer и останавливает его по завершении теста.
// Репозиторий BaseRepository, одна организация и одна команда создаются сразу.
func NewFakeServer(t testing.TB, username, password string) *FakeServer {
	t.Helper()

	s := &FakeServer{
		Username:   username,
		Password:   password,
		overrides:  make(map[string]override),
		gpgKeys:    make(map[int64]map[string]any),
		publicKeys: make(map[int64]map[string]any),
		stars:      make(map[string]bool),
		version:    DefaultVersion,
		settings: map[string]any{
			"full_name":       username,
			"website":         "",
			"description":     "",
			"location":        "",
			"language":        "en-US",
			"theme":           "gitea",
			"diff_view_style": "unified",
			"hide_email":      false,
			"hide_activity":   false,
		},
	}
	s.emails = []*email{{address: strings.ToLower(username) + "@example.com", primary: true, verified: true}}
	owner, name, _ := strings.Cut(BaseRepository, "/")
	s.repos = []*repository{{id: s.id(), owner: owner, name: name, description: "base repository"}}
	org := s.organizationObject(s.id(), "MisileLab")
	s.orgs = []map[string]any{org}
	s.teams = []map[string]any{{
		"id":                        s.id(),
		"name":                      "Owners",
		"description":               "",
		"organization":              org,
		"includes_all_repositories": true,
		"permission":                "owner",
		"units":                     []any{"repo.code", "repo.issues"},
		"can_create_org_repo":       true,
	}}

	s.router = s.routes()
	s.srv = httptest.NewServer(s.router)
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// Client возвращает HTTP-клиент, доверяющий серверу.
func (s *FakeServer) Client() *http.Client {
	return s.srv.Client()
}

// Calls возвращает копию журнала запросов.
func (s *FakeServer) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallLog возвращает журнал в виде строк "METHOD path".
func (s *FakeServer) CallLog() []string {
	calls := s.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// ResetCalls очищает журнал запросов.
func (s *FakeServer) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// Override подменяет ответ на method path (path относительно /api/v1).
func (s *FakeServer) Override(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+apiPrefix+path] = override{status: status, body: body}
}

// AddToken создаёт токен с заданным именем и возвращает его sha1.
func (s *FakeServer) AddToken(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addToken(name).sha1
}

// TokenNames возвращает имена существующих токенов в порядке создания.
func (s *FakeServer) TokenNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.tokens))
	for i, tok := range s.tokens {
		names[i] = tok.name
	}
	return names
}

// AddFollower добавляет подписчика текущего пользователя.
func (s *FakeServer) AddFollower(login string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.followers = append(s.followers, login)
}

// AddRepository создаёт репозиторий owner/name.
func (s *FakeServer) AddRepository(owner, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repos = append(s.repos, &repository{id: s.id(), owner: owner, name: name})
}

// Starred сообщает, находится ли owner/repo в избранном.
func (s *FakeServer) Starred(owner, repo string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stars[owner+"/"+repo]
}

// Setting возвращает текущее значение настройки.
func (s *FakeServer) Setting(field string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings[field]
}

// SetVersion задаёт версию, возвращаемую GET /version.
func (s *FakeServer) SetVersion(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = v
}

func (s *FakeServer) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *FakeServer) addToken(name string) *token {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s-%d", name, s.nextID))) //nolint:gosec // не криптографическое использование
	tok := &token{id: s.id(), name: name, sha1: hex.EncodeToString(sum[:])}
	s.tokens = append(s.tokens, tok)
	return tok
}

// -------------------------------------------------------------------
// Middleware
// -------------------------------------------------------------------

// record записывает запрос в журнал; тело восстанавливается для обработчика.
func (s *FakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		o, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(o.status)
			_, _ = io.WriteString(w, o.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// basicAuth защищает эндпоинты токенов.
func (s *FakeServer) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			writeMessage(w, http.StatusUnauthorized, "auth required")
			return
		}
		if chi.URLParam(r, "username") != s.Username {
			writeMessage(w, http.StatusForbidden, "only the owner can manage tokens")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tokenAuth принимает токен из заголовка "Authorization: token <t>" или параметра token.
func (s *FakeServer) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		candidate := r.URL.Query().Get("token")
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "token ") {
			candidate = strings.TrimPrefix(h, "token ")
		}
		if !s.validToken(candidate) {
			writeMessage(w, http.StatusUnauthorized, "token is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *FakeServer) validToken(candidate string) bool {
	if candidate == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range s.tokens {
		if tok.sha1 == candidate {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message, "url": "https://docs.gitea.com/api"})
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
