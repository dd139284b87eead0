package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/core/auth"
	"github.com/JamesLawwd/BITSA/internal/core/database"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type app struct {
	ts  *httptest.Server
	db  *gorm.DB
	jwt *auth.JWTer
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := domain.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "bitsa", TTL: 7 * 24 * time.Hour}
	ts := httptest.NewServer(New(Deps{Log: zap.NewNop(), DB: db, JWT: j}))
	t.Cleanup(ts.Close)
	return &app{ts: ts, db: db, jwt: j}
}

// seedUser inserts a user directly and returns it with a valid token.
func (a *app) seedUser(t *testing.T, name, role string) (*domain.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        name + "@ueab.ac.ke",
		PasswordHash: hash,
		Role:         role,
	}
	if err := a.db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	tok, err := a.jwt.Issue(u.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return u, tok
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Total   *int64          `json:"total"`
	Data    json.RawMessage `json:"data"`
}

// doJSON fires a request with an optional bearer token and decodes the envelope.
func (a *app) doJSON(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, a.ts.URL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return res.StatusCode, env
}

func unmarshalData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)

	reg := map[string]any{
		"name":     "Alice Wanjiku",
		"email":    "Alice@ueab.ac.ke",
		"password": "secret123",
	}
	code, env := a.doJSON(t, http.MethodPost, "/api/auth/register", "", reg)
	if code != http.StatusCreated || !env.Success {
		t.Fatalf("register: code=%d success=%v msg=%q", code, env.Success, env.Message)
	}
	var session struct {
		User  domain.User `json:"user"`
		Token string      `json:"token"`
	}
	unmarshalData(t, env, &session)
	if session.Token == "" {
		t.Fatal("register returned no token")
	}
	if session.User.Email != "alice@ueab.ac.ke" {
		t.Fatalf("email not lowercased: %q", session.User.Email)
	}
	if session.User.Role != domain.RoleStudent {
		t.Fatalf("expected student role, got %q", session.User.Role)
	}

	// Duplicate email, even with different case.
	code, env = a.doJSON(t, http.MethodPost, "/api/auth/register", "", reg)
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate register: code=%d", code)
	}
	if env.Message != "User already exists" {
		t.Fatalf("duplicate register message: %q", env.Message)
	}

	// Login.
	code, env = a.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "alice@ueab.ac.ke", "password": "secret123",
	})
	if code != http.StatusOK {
		t.Fatalf("login: code=%d msg=%q", code, env.Message)
	}
	unmarshalData(t, env, &session)

	// Wrong password and unknown email are indistinguishable.
	for _, creds := range []map[string]any{
		{"email": "alice@ueab.ac.ke", "password": "wrongpass"},
		{"email": "nobody@ueab.ac.ke", "password": "secret123"},
	} {
		code, env = a.doJSON(t, http.MethodPost, "/api/auth/login", "", creds)
		if code != http.StatusUnauthorized {
			t.Fatalf("login %v: code=%d", creds, code)
		}
		if env.Message != "Invalid credentials" {
			t.Fatalf("login %v message: %q", creds, env.Message)
		}
	}

	// Me via bearer token.
	code, env = a.doJSON(t, http.MethodGet, "/api/auth/me", session.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("me: code=%d", code)
	}
	var me domain.User
	unmarshalData(t, env, &me)
	if me.ID != session.User.ID {
		t.Fatalf("me returned wrong user: %s", me.ID)
	}

	// Me via session cookie.
	req, _ := http.NewRequest(http.MethodGet, a.ts.URL+"/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: session.Token})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("me via cookie: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me via cookie: code=%d", res.StatusCode)
	}

	// Me without a token.
	code, env = a.doJSON(t, http.MethodGet, "/api/auth/me", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("me unauthenticated: code=%d", code)
	}
	if env.Message != "Not authorized to access this route" {
		t.Fatalf("unauthenticated message: %q", env.Message)
	}

	// Logout replaces the cookie with a dead value.
	res, err = http.Get(a.ts.URL + "/api/auth/logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	res.Body.Close()
	var cleared bool
	for _, ck := range res.Cookies() {
		if ck.Name == "token" && ck.Value == "none" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("logout did not clear the session cookie")
	}
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t)

	cases := []map[string]any{
		{"email": "x@ueab.ac.ke", "password": "secret123"},          // missing name
		{"name": "X", "email": "not-an-email", "password": "abcdef"}, // bad email
		{"name": "X", "email": "x@ueab.ac.ke", "password": "short"},  // short password
	}
	for i, body := range cases {
		code, _ := a.doJSON(t, http.MethodPost, "/api/auth/register", "", body)
		if code != http.StatusBadRequest {
			t.Fatalf("case %d: code=%d", i, code)
		}
	}
}

func TestBlogOwnershipAndViews(t *testing.T) {
	a := newTestApp(t)
	_, alice := a.seedUser(t, "alice", domain.RoleStudent)
	_, bob := a.seedUser(t, "bob", domain.RoleStudent)
	_, admin := a.seedUser(t, "admin", domain.RoleAdmin)

	post := map[string]any{
		"title":     "Freshers Orientation",
		"content":   "Welcome to BITSA.",
		"category":  "announcement",
		"tags":      []string{"orientation"},
		"published": true,
	}
	code, env := a.doJSON(t, http.MethodPost, "/api/blog", alice, post)
	if code != http.StatusCreated {
		t.Fatalf("create: code=%d msg=%q", code, env.Message)
	}
	var created domain.BlogPost
	unmarshalData(t, env, &created)
	if created.Views != 0 {
		t.Fatalf("new post views=%d", created.Views)
	}

	// Anonymous create is rejected.
	if code, _ := a.doJSON(t, http.MethodPost, "/api/blog", "", post); code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: code=%d", code)
	}

	// Every read bumps the view counter.
	for i := 1; i <= 3; i++ {
		code, env = a.doJSON(t, http.MethodGet, "/api/blog/"+created.ID, "", nil)
		if code != http.StatusOK {
			t.Fatalf("get: code=%d", code)
		}
		var got domain.BlogPost
		unmarshalData(t, env, &got)
		if got.Views != i {
			t.Fatalf("read %d: views=%d", i, got.Views)
		}
	}

	update := map[string]any{"title": "Freshers Orientation 2026", "content": "Updated.", "published": true}

	// Non-owner cannot touch it.
	code, env = a.doJSON(t, http.MethodPut, "/api/blog/"+created.ID, bob, update)
	if code != http.StatusForbidden {
		t.Fatalf("non-owner update: code=%d msg=%q", code, env.Message)
	}
	if code, _ := a.doJSON(t, http.MethodDelete, "/api/blog/"+created.ID, bob, nil); code != http.StatusForbidden {
		t.Fatalf("non-owner delete: code=%d", code)
	}

	// Owner can.
	code, env = a.doJSON(t, http.MethodPut, "/api/blog/"+created.ID, alice, update)
	if code != http.StatusOK {
		t.Fatalf("owner update: code=%d msg=%q", code, env.Message)
	}
	var updated domain.BlogPost
	unmarshalData(t, env, &updated)
	if updated.Title != "Freshers Orientation 2026" {
		t.Fatalf("title not updated: %q", updated.Title)
	}

	// So can an admin.
	if code, _ := a.doJSON(t, http.MethodDelete, "/api/blog/"+created.ID, admin, nil); code != http.StatusOK {
		t.Fatalf("admin delete: code=%d", code)
	}
	if code, _ := a.doJSON(t, http.MethodGet, "/api/blog/"+created.ID, "", nil); code != http.StatusNotFound {
		t.Fatalf("get deleted: code=%d", code)
	}
}

func TestBlogListFilters(t *testing.T) {
	a := newTestApp(t)
	_, alice := a.seedUser(t, "alice", domain.RoleStudent)

	for i := 0; i < 4; i++ {
		body := map[string]any{
			"title":     fmt.Sprintf("Post %d", i),
			"content":   "body",
			"category":  "article",
			"published": i%2 == 0,
		}
		if code, _ := a.doJSON(t, http.MethodPost, "/api/blog", alice, body); code != http.StatusCreated {
			t.Fatalf("seed post %d: code=%d", i, code)
		}
	}

	code, env := a.doJSON(t, http.MethodGet, "/api/blog?published=true", "", nil)
	if code != http.StatusOK {
		t.Fatalf("list: code=%d", code)
	}
	if env.Count == nil || *env.Count != 2 || env.Total == nil || *env.Total != 2 {
		t.Fatalf("published filter: count=%v total=%v", env.Count, env.Total)
	}

	code, env = a.doJSON(t, http.MethodGet, "/api/blog?page=1&limit=3", "", nil)
	if code != http.StatusOK {
		t.Fatalf("page: code=%d", code)
	}
	if env.Count == nil || *env.Count != 3 || env.Total == nil || *env.Total != 4 {
		t.Fatalf("pagination: count=%v total=%v", env.Count, env.Total)
	}
}

func TestEventRegistrationOverHTTP(t *testing.T) {
	a := newTestApp(t)
	_, organizer := a.seedUser(t, "organizer", domain.RoleStudent)
	_, alice := a.seedUser(t, "alice", domain.RoleStudent)
	_, bob := a.seedUser(t, "bob", domain.RoleStudent)
	_, carol := a.seedUser(t, "carol", domain.RoleStudent)

	body := map[string]any{
		"title":                "Career Fair",
		"description":          "Annual career fair",
		"date":                 time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"location":             "Main Hall",
		"category":             "career",
		"registrationRequired": true,
		"maxParticipants":      2,
		"published":            true,
	}
	code, env := a.doJSON(t, http.MethodPost, "/api/events", organizer, body)
	if code != http.StatusCreated {
		t.Fatalf("create event: code=%d msg=%q", code, env.Message)
	}
	var e domain.Event
	unmarshalData(t, env, &e)

	reg := "/api/events/" + e.ID + "/register"

	if code, env = a.doJSON(t, http.MethodPost, reg, alice, nil); code != http.StatusOK {
		t.Fatalf("alice register: code=%d msg=%q", code, env.Message)
	}
	code, env = a.doJSON(t, http.MethodPost, reg, alice, nil)
	if code != http.StatusBadRequest || env.Message != "Already registered for this event" {
		t.Fatalf("duplicate register: code=%d msg=%q", code, env.Message)
	}
	if code, env = a.doJSON(t, http.MethodPost, reg, bob, nil); code != http.StatusOK {
		t.Fatalf("bob register: code=%d msg=%q", code, env.Message)
	}
	code, env = a.doJSON(t, http.MethodPost, reg, carol, nil)
	if code != http.StatusBadRequest || env.Message != "Event is full" {
		t.Fatalf("over-capacity register: code=%d msg=%q", code, env.Message)
	}

	code, env = a.doJSON(t, http.MethodGet, "/api/events/"+e.ID, "", nil)
	if code != http.StatusOK {
		t.Fatalf("get event: code=%d", code)
	}
	var got domain.Event
	unmarshalData(t, env, &got)
	if len(got.RegisteredUsers) != 2 {
		t.Fatalf("expected 2 registered, got %d", len(got.RegisteredUsers))
	}

	// Registration requires a session.
	if code, _ = a.doJSON(t, http.MethodPost, reg, "", nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous register: code=%d", code)
	}

	// Unknown event.
	code, _ = a.doJSON(t, http.MethodPost, "/api/events/missing/register", alice, nil)
	if code != http.StatusNotFound {
		t.Fatalf("missing event register: code=%d", code)
	}
}

func TestContactFlow(t *testing.T) {
	a := newTestApp(t)
	_, student := a.seedUser(t, "student", domain.RoleStudent)
	adminU, admin := a.seedUser(t, "admin", domain.RoleAdmin)

	// Static club info is public.
	code, env := a.doJSON(t, http.MethodGet, "/api/contact/info", "", nil)
	if code != http.StatusOK {
		t.Fatalf("info: code=%d", code)
	}
	var info struct {
		Email string `json:"email"`
	}
	unmarshalData(t, env, &info)
	if info.Email != "bitsaclub@ueab.ac.ke" {
		t.Fatalf("info email: %q", info.Email)
	}

	// Anyone can send a message.
	code, env = a.doJSON(t, http.MethodPost, "/api/contact", "", map[string]any{
		"name": "Visitor", "email": "visitor@example.com",
		"subject": "Membership", "message": "How do I join?",
	})
	if code != http.StatusCreated {
		t.Fatalf("send: code=%d msg=%q", code, env.Message)
	}
	var msg domain.Contact
	unmarshalData(t, env, &msg)
	if msg.Status != domain.ContactPending {
		t.Fatalf("new message status: %q", msg.Status)
	}

	// The inbox is admin-only.
	if code, _ = a.doJSON(t, http.MethodGet, "/api/contact", "", nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous inbox: code=%d", code)
	}
	code, env = a.doJSON(t, http.MethodGet, "/api/contact", student, nil)
	if code != http.StatusForbidden {
		t.Fatalf("student inbox: code=%d", code)
	}
	if env.Message != "User role 'student' is not authorized to access this route" {
		t.Fatalf("forbidden message: %q", env.Message)
	}
	code, env = a.doJSON(t, http.MethodGet, "/api/contact", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("admin inbox: code=%d", code)
	}
	if env.Count == nil || *env.Count != 1 {
		t.Fatalf("inbox count: %v", env.Count)
	}

	// Replying flips the status and records the admin.
	code, env = a.doJSON(t, http.MethodPut, "/api/contact/"+msg.ID, admin, map[string]any{
		"reply": "Come to the lab on Friday.",
	})
	if code != http.StatusOK {
		t.Fatalf("reply: code=%d msg=%q", code, env.Message)
	}
	var replied domain.Contact
	unmarshalData(t, env, &replied)
	if replied.Status != domain.ContactReplied {
		t.Fatalf("replied status: %q", replied.Status)
	}
	if replied.RepliedBy == nil || replied.RepliedBy.ID != adminU.ID {
		t.Fatalf("repliedBy: %v", replied.RepliedBy)
	}
}

func TestAdminEndpoints(t *testing.T) {
	a := newTestApp(t)
	student, studentTok := a.seedUser(t, "student", domain.RoleStudent)
	otherAdmin, _ := a.seedUser(t, "other", domain.RoleAdmin)
	_, admin := a.seedUser(t, "admin", domain.RoleAdmin)

	// Students cannot reach the admin surface.
	if code, _ := a.doJSON(t, http.MethodGet, "/api/admin/stats", studentTok, nil); code != http.StatusForbidden {
		t.Fatalf("student stats: code=%d", code)
	}

	code, env := a.doJSON(t, http.MethodGet, "/api/admin/stats", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("stats: code=%d", code)
	}
	var stats struct {
		Users struct {
			Total int64 `json:"total"`
		} `json:"users"`
		Contacts struct {
			Total   int64 `json:"total"`
			Pending int64 `json:"pending"`
		} `json:"contacts"`
	}
	unmarshalData(t, env, &stats)
	if stats.Users.Total != 3 {
		t.Fatalf("user total: %d", stats.Users.Total)
	}

	// Promote the student.
	code, env = a.doJSON(t, http.MethodPut, "/api/admin/users/"+student.ID+"/role", admin, map[string]any{"role": "admin"})
	if code != http.StatusOK {
		t.Fatalf("promote: code=%d msg=%q", code, env.Message)
	}
	var promoted domain.User
	unmarshalData(t, env, &promoted)
	if promoted.Role != domain.RoleAdmin {
		t.Fatalf("role after promote: %q", promoted.Role)
	}

	// The promotion is live on the next request without a new token.
	if code, _ = a.doJSON(t, http.MethodGet, "/api/admin/stats", studentTok, nil); code != http.StatusOK {
		t.Fatalf("stats after promote: code=%d", code)
	}

	// Demote back so the delete path below is testable.
	if code, _ = a.doJSON(t, http.MethodPut, "/api/admin/users/"+student.ID+"/role", admin, map[string]any{"role": "student"}); code != http.StatusOK {
		t.Fatalf("demote: code=%d", code)
	}

	// Admin accounts cannot be deleted.
	code, env = a.doJSON(t, http.MethodDelete, "/api/admin/users/"+otherAdmin.ID, admin, nil)
	if code != http.StatusBadRequest || env.Message != "Cannot delete admin user" {
		t.Fatalf("delete admin: code=%d msg=%q", code, env.Message)
	}

	// Students can.
	if code, _ = a.doJSON(t, http.MethodDelete, "/api/admin/users/"+student.ID, admin, nil); code != http.StatusOK {
		t.Fatalf("delete student: code=%d", code)
	}
	if code, _ = a.doJSON(t, http.MethodGet, "/api/admin/stats", studentTok, nil); code != http.StatusUnauthorized {
		t.Fatalf("deleted user token still works: code=%d", code)
	}

	// Unknown targets.
	if code, _ = a.doJSON(t, http.MethodPut, "/api/admin/users/missing/role", admin, map[string]any{"role": "admin"}); code != http.StatusNotFound {
		t.Fatalf("promote missing: code=%d", code)
	}
	if code, _ = a.doJSON(t, http.MethodDelete, "/api/admin/users/missing", admin, nil); code != http.StatusNotFound {
		t.Fatalf("delete missing: code=%d", code)
	}
}

func TestGalleryCRUD(t *testing.T) {
	a := newTestApp(t)
	_, alice := a.seedUser(t, "alice", domain.RoleStudent)
	_, bob := a.seedUser(t, "bob", domain.RoleStudent)

	body := map[string]any{
		"title":     "Hackathon 2026",
		"images":    []string{"/uploads/hack1.jpg", "/uploads/hack2.jpg"},
		"category":  "events",
		"published": true,
	}
	code, env := a.doJSON(t, http.MethodPost, "/api/gallery", alice, body)
	if code != http.StatusCreated {
		t.Fatalf("create: code=%d msg=%q", code, env.Message)
	}
	var g domain.Gallery
	unmarshalData(t, env, &g)
	if len(g.Images) != 2 {
		t.Fatalf("images: %d", len(g.Images))
	}

	// Images are mandatory.
	code, _ = a.doJSON(t, http.MethodPost, "/api/gallery", alice, map[string]any{"title": "Empty"})
	if code != http.StatusBadRequest {
		t.Fatalf("imageless create: code=%d", code)
	}

	if code, _ = a.doJSON(t, http.MethodGet, "/api/gallery/"+g.ID, "", nil); code != http.StatusOK {
		t.Fatalf("public get: code=%d", code)
	}
	if code, _ = a.doJSON(t, http.MethodDelete, "/api/gallery/"+g.ID, bob, nil); code != http.StatusForbidden {
		t.Fatalf("non-owner delete: code=%d", code)
	}
	if code, _ = a.doJSON(t, http.MethodDelete, "/api/gallery/"+g.ID, alice, nil); code != http.StatusOK {
		t.Fatalf("owner delete: code=%d", code)
	}
}

func TestProfileUpdate(t *testing.T) {
	a := newTestApp(t)
	u, tok := a.seedUser(t, "alice", domain.RoleStudent)

	code, env := a.doJSON(t, http.MethodPut, "/api/users/profile", tok, map[string]any{
		"bio": "BIT, 3rd year", "phone": "0700000000",
	})
	if code != http.StatusOK {
		t.Fatalf("update: code=%d msg=%q", code, env.Message)
	}
	var got domain.User
	unmarshalData(t, env, &got)
	if got.Bio != "BIT, 3rd year" || got.Phone != "0700000000" {
		t.Fatalf("partial update lost fields: %+v", got)
	}
	if got.Name != u.Name {
		t.Fatalf("untouched field changed: %q", got.Name)
	}
}
