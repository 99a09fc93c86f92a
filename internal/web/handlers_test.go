package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"kingdomsperil/internal/game"
	"kingdomsperil/internal/outcomes"
)

func testServer(t *testing.T) (*Server, *outcomes.MemoryLog) {
	t.Helper()
	story, err := game.DefaultStory()
	if err != nil {
		t.Fatalf("DefaultStory: %v", err)
	}
	mem := outcomes.NewMemoryLog()
	return NewServer(&game.Engine{Story: story, Log: mem}), mem
}

func startSession(t *testing.T, srv *Server, name string) *http.Cookie {
	t.Helper()
	form := url.Values{"name": {name}}
	req := httptest.NewRequest(http.MethodPost, "/start", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect from /start, got %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("expected session cookie")
	return nil
}

func do(srv *Server, method, target string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersMenu(t *testing.T) {
	srv, _ := testServer(t)
	rec := do(srv, http.MethodGet, "/", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Start New Adventure") {
		t.Error("expected menu content")
	}
}

func TestStart_CreatesSessionAndPlayRendersScene(t *testing.T) {
	srv, _ := testServer(t)
	cookie := startSession(t, srv, "Lancelot")

	rec := do(srv, http.MethodGet, "/play", cookie, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Lancelot") {
		t.Error("expected player name substituted into scene text")
	}
	if !strings.Contains(body, "Head to the castle gates") {
		t.Error("expected option buttons")
	}
}

func TestPlay_WithoutSessionRedirects(t *testing.T) {
	srv, _ := testServer(t)
	rec := do(srv, http.MethodGet, "/play", nil, nil)
	if rec.Code != http.StatusFound {
		t.Errorf("expected redirect, got %d", rec.Code)
	}
}

func TestPlay_ChoiceAdvances(t *testing.T) {
	srv, _ := testServer(t)
	cookie := startSession(t, srv, "Lancelot")

	rec := do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"castle"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "massive gates") {
		t.Error("expected castle entrance scene")
	}
}

func TestPlay_ForgedChoiceReRendersWithMessage(t *testing.T) {
	srv, _ := testServer(t)
	cookie := startSession(t, srv, "Lancelot")

	rec := do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"teleport"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid choice") {
		t.Error("expected invalid-choice message")
	}
}

func TestPlay_FatalEndingDropsSession(t *testing.T) {
	srv, mem := testServer(t)
	cookie := startSession(t, srv, "Lancelot")

	do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"castle"}})
	do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"1"}})
	rec := do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"a"}})

	body := rec.Body.String()
	if !strings.Contains(body, "tragedy") {
		t.Errorf("expected tragedy page, got:\n%s", body)
	}
	if _, ok := srv.Sessions.Get(cookie.Value); ok {
		t.Error("expected session removed after terminal")
	}
	lines, _ := mem.ReadAll()
	if len(lines) != 1 || lines[0] != "Fell in main entrance combat" {
		t.Errorf("expected recorded outcome, got %v", lines)
	}
}

func TestAnswer_RiddleFlow(t *testing.T) {
	srv, mem := testServer(t)
	cookie := startSession(t, srv, "Lancelot")

	do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"castle"}})
	rec := do(srv, http.MethodPost, "/play", cookie, url.Values{"choice": {"2"}})
	if !strings.Contains(rec.Body.String(), "magical barrier") {
		t.Fatal("expected riddle scene")
	}

	rec = do(srv, http.MethodPost, "/answer", cookie, url.Values{"answer": {"M"}})
	if !strings.Contains(rec.Body.String(), "ancient library") {
		t.Errorf("expected secret library after correct answer, got:\n%s", rec.Body.String())
	}
	lines, _ := mem.ReadAll()
	if len(lines) != 1 || lines[0] != "Solved side entrance riddle" {
		t.Errorf("expected riddle outcome, got %v", lines)
	}
}

func TestOutcomes_ShowsSentinelThenReport(t *testing.T) {
	srv, mem := testServer(t)

	rec := do(srv, http.MethodGet, "/outcomes", nil, nil)
	if !strings.Contains(rec.Body.String(), game.NoOutcomes) {
		t.Error("expected sentinel for empty log")
	}

	_ = mem.Append("Heroically rescued princess")
	rec = do(srv, http.MethodGet, "/outcomes", nil, nil)
	if !strings.Contains(rec.Body.String(), "1. Heroically rescued princess") {
		t.Error("expected numbered report")
	}
}

func TestChronicle_ServesPDF(t *testing.T) {
	srv, _ := testServer(t)
	rec := do(srv, http.MethodGet, "/chronicle", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected PDF content type, got %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected PDF body")
	}
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	id := store.NewID()
	if len(id) != 32 {
		t.Errorf("expected 32-char hex id, got %q", id)
	}

	if _, ok := store.Get(id); ok {
		t.Error("expected miss before put")
	}
	store.Put(id, &game.Session{PlayerName: "X"})
	if sess, ok := store.Get(id); !ok || sess.PlayerName != "X" {
		t.Error("expected stored session")
	}
	store.Delete(id)
	if _, ok := store.Get(id); ok {
		t.Error("expected miss after delete")
	}
}
