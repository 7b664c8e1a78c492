package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PizzaBo93/posapppizza/internal/config"
	"github.com/PizzaBo93/posapppizza/internal/handlers"
	"github.com/PizzaBo93/posapppizza/internal/models"
	"github.com/PizzaBo93/posapppizza/internal/router"
	"github.com/PizzaBo93/posapppizza/internal/services"
	"github.com/PizzaBo93/posapppizza/internal/store"
)

func newTestRouter(t *testing.T, storeResponse string) (http.Handler, *services.SessionService) {
	t.Helper()

	storeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(storeResponse))
	}))
	t.Cleanup(storeServer.Close)

	templateDir := t.TempDir()
	page := `<html><title>{{.Title}}</title></html>`
	for _, name := range []string{"index.html", "menu.html", "staffapp.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(templateDir, name), []byte(page), 0o644))
	}

	cfg := config.Config{
		Port:           "8080",
		FrontendOrigin: "http://localhost:3000",
		TemplateDir:    templateDir,
		StaticDir:      t.TempDir(),
	}

	storeClient := store.NewClient(storeServer.URL, "test-key", 5*time.Second, zerolog.Nop())
	sessions := services.NewSessionService("router-test-secret", "HS256", time.Hour, zerolog.Nop())

	pages, err := handlers.NewPageHandler(cfg.TemplateDir, zerolog.Nop())
	require.NoError(t, err)

	return router.SetupRouter(cfg, storeClient, sessions, pages, zerolog.Nop()), sessions
}

func TestPagesReachableWithoutSession(t *testing.T) {
	r, _ := newTestRouter(t, `[]`)

	for _, path := range []string{"/", "/menu", "/staffapp", "/health"} {
		res := httptest.NewRecorder()
		r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, res.Code, "path %s", path)
	}
}

func TestOrdersRequireSession(t *testing.T) {
	r, _ := newTestRouter(t, `[]`)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestOrdersWithSessionCookie(t *testing.T) {
	r, sessions := newTestRouter(t, `[{"id":1,"status":"pending","store_code":"S1"}]`)

	token, err := sessions.CreateSession(&models.User{
		ID:          7,
		Username:    "alice",
		StoreCode:   "S1",
		Role:        "cashier",
		Permissions: services.PermissionsFor("cashier"),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"store_code":"S1"`)
}

func TestPreflightCarriesCORSHeaders(t *testing.T) {
	r, _ := newTestRouter(t, `[]`)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders/42", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, "http://localhost:3000", res.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, res.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	assert.Equal(t, "true", res.Header().Get("Access-Control-Allow-Credentials"))
}

func TestPreflightRejectsForeignOrigin(t *testing.T) {
	r, _ := newTestRouter(t, `[]`)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders/42", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogoutWithoutSession(t *testing.T) {
	r, _ := newTestRouter(t, `[]`)

	res := httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	assert.Equal(t, http.StatusOK, res.Code)
}
