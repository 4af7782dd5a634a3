package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"farmacia/internal/http/handlers"
	applog "farmacia/internal/log"
	"farmacia/internal/repos"
)

const (
	userEmail  = "user@demo.cl"
	adminEmail = "admin@demo.cl"
)

func newEngine() *html.Engine {
	engine := html.New("../../web/templates", ".html")
	engine.AddFuncMap(handlers.ViewFuncs())
	return engine
}

// Minimal app with every real route and no CSRF
func newTestApp(t *testing.T) (*fiber.App, *handlers.Deps, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	deps := handlers.NewDeps(db)

	app := fiber.New(fiber.Config{Views: newEngine()})
	app.Use(requestid.New())
	app.Use(handlers.AttachUser(deps.Auth))
	handlers.Mount(app, deps)
	return app, deps, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func do(t *testing.T, app *fiber.App, req *http.Request, sid string) (*http.Response, string) {
	t.Helper()
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, path, sid string) (*http.Response, string) {
	t.Helper()
	return do(t, app, httptest.NewRequest("GET", path, nil), sid)
}

func postForm(t *testing.T, app *fiber.App, path, sid string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, app, req, sid)
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := postForm(t, app, "/login", "", url.Values{"email": {email}, "password": {"123456"}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login %s: status %d body=%s", email, resp.StatusCode, body)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("no sid cookie after login")
	}
	return sid
}

func expectRedirect(t *testing.T, resp *http.Response, to string) {
	t.Helper()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect to %s, got %d", to, resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != to {
		t.Fatalf("expected Location %s, got %s", to, loc)
	}
}

type logEntry struct {
	Level  string         `json:"level"`
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	User   string         `json:"user"`
	Fields map[string]any `json:"fields"`
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	applog.SetOutput(&buf)
	defer applog.SetOutput(os.Stdout)

	fn()
	_ = applog.Sync()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findLog(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
