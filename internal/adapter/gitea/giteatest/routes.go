package giteatest

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *FakeServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Route(apiPrefix, func(r chi.Router) {
		r.Get("/version", s.handleVersion)

		r.Group(func(r chi.Router) {
			r.Use(s.basicAuth)
			r.Get("/users/{username}/tokens", s.handleListTokens)
			r.Post("/users/{username}/tokens", s.handleCreateToken)
			r.Delete("/users/{username}/tokens/{token}", s.handleDeleteToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.tokenAuth)
			r.Get("/user", s.handleSelf)

			r.Get("/user/emails", s.handleListEmails)
			r.Post("/user/emails", s.handleAddEmails)
			r.Delete("/user/emails", s.handleRemoveEmails)

			r.Get("/user/followers", s.handleFollowers)
			r.Get("/user/following", s.handleFollowing)
			r.Put("/user/following/{username}", s.handleFollow)
			r.Delete("/user/following/{username}", s.handleUnfollow)

			r.Get("/user/gpg_keys", s.handleListGPGKeys)
			r.Post("/user/gpg_keys", s.handleAddGPGKey)
			r.Get("/user/gpg_keys/{id}", s.handleGetGPGKey)
			r.Delete("/user/gpg_keys/{id}", s.handleDeleteGPGKey)

			r.Get("/user/keys", s.handleListPublicKeys)
			r.Post("/user/keys", s.handleAddPublicKey)
			r.Get("/user/keys/{id}", s.handleGetPublicKey)
			r.Delete("/user/keys/{id}", s.handleDeletePublicKey)

			r.Get("/user/repos", s.handleListRepos)
			r.Post("/user/repos", s.handleCreateRepo)

			r.Get("/user/starred", s.handleListStarred)
			r.Get("/user/starred/{owner}/{repo}", s.handleIsStarred)
			r.Put("/user/starred/{owner}/{repo}", s.handleStar)
			r.Delete("/user/starred/{owner}/{repo}", s.handleUnstar)

			r.Get("/user/settings", s.handleGetSettings)
			r.Patch("/user/settings", s.handleUpdateSettings)

			r.Get("/user/orgs", s.handleListOrgs)
			r.Get("/user/teams", s.handleListTeams)
		})
	})
	return r
}

// -------------------------------------------------------------------
// Версия и токены
// -------------------------------------------------------------------

func (s *FakeServer) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"version": s.version})
}

func (s *FakeServer) handleListTokens(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.tokens))
	for _, tok := range s.tokens {
		out = append(out, map[string]any{
			"id":               tok.id,
			"name":             tok.name,
			"sha1":             "",
			"token_last_eight": tok.sha1[len(tok.sha1)-8:],
			"scopes":           []any{"all"},
		})
	}
	writeJSON(w, http.StatusOK, paginate(r, out))
}

func (s *FakeServer) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string   `json:"name"`
		Scopes []string `json:"scopes"`
	}
	if err := decodeBody(r, &body); err != nil || body.Name == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range s.tokens {
		if tok.name == body.Name {
			writeMessage(w, http.StatusUnprocessableEntity, "access token name has been used already")
			return
		}
	}
	tok := s.addToken(body.Name)
	scopes := make([]any, 0, len(body.Scopes))
	for _, sc := range body.Scopes {
		scopes = append(scopes, sc)
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":               tok.id,
		"name":             tok.name,
		"sha1":             tok.sha1,
		"token_last_eight": tok.sha1[len(tok.sha1)-8:],
		"scopes":           scopes,
	})
}

func (s *FakeServer) handleDeleteToken(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "token")
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tokens, func(t *token) bool {
		return t.name == name || strconv.FormatInt(t.id, 10) == name
	})
	if i < 0 {
		writeMessage(w, http.StatusNotFound, "access token does not exist")
		return
	}
	s.tokens = slices.Delete(s.tokens, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------------------------------------------------
// Пользователь, адреса, подписки
// -------------------------------------------------------------------

func (s *FakeServer) handleSelf(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.selfObject())
}

func (s *FakeServer) handleListEmails(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.emails))
	for _, e := range s.emails {
		out = append(out, emailObject(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *FakeServer) handleAddEmails(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Emails []string `json:"emails"`
	}
	if err := decodeBody(r, &body); err != nil || len(body.Emails) == 0 {
		writeMessage(w, http.StatusUnprocessableEntity, "emails are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(body.Emails))
	for _, addr := range body.Emails {
		if s.emailIndex(addr) >= 0 {
			writeMessage(w, http.StatusUnprocessableEntity, "email address has been used: "+addr)
			return
		}
	}
	for _, addr := range body.Emails {
		e := &email{address: addr}
		s.emails = append(s.emails, e)
		out = append(out, emailObject(e))
	}
	writeJSON(w, http.StatusCreated, out)
}

func (s *FakeServer) handleRemoveEmails(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Emails []string `json:"emails"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "emails are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, addr := range body.Emails {
		if s.emailIndex(addr) < 0 {
			writeMessage(w, http.StatusNotFound, "email address does not exist: "+addr)
			return
		}
	}
	for _, addr := range body.Emails {
		i := s.emailIndex(addr)
		s.emails = slices.Delete(s.emails, i, i+1)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *FakeServer) emailIndex(addr string) int {
	return slices.IndexFunc(s.emails, func(e *email) bool { return strings.EqualFold(e.address, addr) })
}

func (s *FakeServer) handleFollowers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, s.userObjects(s.followers)))
}

func (s *FakeServer) handleFollowing(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, s.userObjects(s.following)))
}

func (s *FakeServer) handleFollow(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "username")
	s.mu.Lock()
	defer s.mu.Unlock()
	if login == s.Username {
		writeMessage(w, http.StatusForbidden, "cannot follow yourself")
		return
	}
	if !slices.Contains(s.following, login) {
		s.following = append(s.following, login)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *FakeServer) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "username")
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.following, login); i >= 0 {
		s.following = slices.Delete(s.following, i, i+1)
	}
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------------------------------------------------
// Ключи
// -------------------------------------------------------------------

func (s *FakeServer) handleListGPGKeys(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, sortedByID(s.gpgKeys)))
}

func (s *FakeServer) handleAddGPGKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ArmoredKey string `json:"armored_public_key"`
	}
	if err := decodeBody(r, &body); err != nil || strings.TrimSpace(body.ArmoredKey) == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "armored_public_key is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	key := s.gpgKeyObject(id, body.ArmoredKey)
	s.gpgKeys[id] = key
	writeJSON(w, http.StatusCreated, key)
}

func (s *FakeServer) handleGetGPGKey(w http.ResponseWriter, r *http.Request) {
	s.getByID(w, r, s.gpgKeys, "GPG key does not exist")
}

func (s *FakeServer) handleDeleteGPGKey(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.gpgKeys, "GPG key does not exist")
}

func (s *FakeServer) handleListPublicKeys(w http.ResponseWriter, r *http.Request) {
	fingerprint := r.URL.Query().Get("fingerprint")
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := sortedByID(s.publicKeys)
	if fingerprint != "" {
		keys = slices.DeleteFunc(keys, func(k map[string]any) bool { return k["fingerprint"] != fingerprint })
	}
	writeJSON(w, http.StatusOK, paginate(r, keys))
}

func (s *FakeServer) handleAddPublicKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key      string `json:"key"`
		Title    string `json:"title"`
		ReadOnly bool   `json:"read_only"`
	}
	if err := decodeBody(r, &body); err != nil || body.Key == "" || body.Title == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "key and title are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fp := Fingerprint(body.Key)
	for _, k := range s.publicKeys {
		if k["fingerprint"] == fp {
			writeMessage(w, http.StatusUnprocessableEntity, "key content has been used as non-deploy key")
			return
		}
	}
	id := s.id()
	key := map[string]any{
		"id":          id,
		"key":         body.Key,
		"url":         s.URL + apiPrefix + "/user/keys/" + strconv.FormatInt(id, 10),
		"title":       body.Title,
		"fingerprint": fp,
		"created_at":  createdAt,
		"read_only":   body.ReadOnly,
		"key_type":    "user",
		"user":        s.selfObject(),
	}
	s.publicKeys[id] = key
	writeJSON(w, http.StatusCreated, key)
}

func (s *FakeServer) handleGetPublicKey(w http.ResponseWriter, r *http.Request) {
	s.getByID(w, r, s.publicKeys, "public key does not exist")
}

func (s *FakeServer) handleDeletePublicKey(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.publicKeys, "public key does not exist")
}

// Fingerprint вычисляет отпечаток SSH-ключа так, как его возвращает FakeServer.
func Fingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "SHA256:" + base64.RawStdEncoding.EncodeToString(sum[:])
}

func (s *FakeServer) getByID(w http.ResponseWriter, r *http.Request, store map[int64]map[string]any, notFound string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := store[id]
	if err != nil || !ok {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (s *FakeServer) deleteByID(w http.ResponseWriter, r *http.Request, store map[int64]map[string]any, notFound string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := store[id]; err != nil || !ok {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	delete(store, id)
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------------------------------------------------
// Репозитории и избранное
// -------------------------------------------------------------------

func (s *FakeServer) handleListRepos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.repos))
	for _, repo := range s.repos {
		if repo.owner == s.Username {
			out = append(out, s.repositoryObject(repo))
		}
	}
	writeJSON(w, http.StatusOK, paginate(r, out))
}

func (s *FakeServer) handleCreateRepo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Private     bool   `json:"private"`
	}
	if err := decodeBody(r, &body); err != nil || strings.TrimSpace(body.Name) == "" {
		writeMessage(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findRepo(s.Username, body.Name) != nil {
		writeMessage(w, http.StatusConflict, "The repository with the same name already exists.")
		return
	}
	repo := &repository{id: s.id(), owner: s.Username, name: body.Name, description: body.Description, private: body.Private}
	s.repos = append(s.repos, repo)
	writeJSON(w, http.StatusCreated, s.repositoryObject(repo))
}

func (s *FakeServer) findRepo(owner, name string) *repository {
	for _, repo := range s.repos {
		if strings.EqualFold(repo.owner, owner) && strings.EqualFold(repo.name, name) {
			return repo
		}
	}
	return nil
}

func (s *FakeServer) handleListStarred(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.stars))
	for _, repo := range s.repos {
		if s.stars[repo.fullName()] {
			out = append(out, s.repositoryObject(repo))
		}
	}
	writeJSON(w, http.StatusOK, paginate(r, out))
}

func (s *FakeServer) handleIsStarred(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	repo := s.findRepo(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
	if repo == nil || !s.stars[repo.fullName()] {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *FakeServer) handleStar(w http.ResponseWriter, r *http.Request) {
	s.setStar(w, r, true)
}

func (s *FakeServer) handleUnstar(w http.ResponseWriter, r *http.Request) {
	s.setStar(w, r, false)
}

func (s *FakeServer) setStar(w http.ResponseWriter, r *http.Request, starred bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	repo := s.findRepo(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
	if repo == nil {
		writeMessage(w, http.StatusNotFound, "repository does not exist")
		return
	}
	if starred {
		s.stars[repo.fullName()] = true
	} else {
		delete(s.stars, repo.fullName())
	}
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------------------------------------------------
// Настройки, организации, команды
// -------------------------------------------------------------------

func (s *FakeServer) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.settings)
}

func (s *FakeServer) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeBody(r, &body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "invalid settings")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range body {
		if _, known := s.settings[k]; known {
			s.settings[k] = v
		}
	}
	writeJSON(w, http.StatusOK, s.settings)
}

func (s *FakeServer) handleListOrgs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, s.orgs))
}

func (s *FakeServer) handleListTeams(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, paginate(r, s.teams))
}
