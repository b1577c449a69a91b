package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"kanael-cafe/cart"
	"kanael-cafe/config"
	"kanael-cafe/middleware"
	"kanael-cafe/models"
	"kanael-cafe/routes"

	"github.com/gin-gonic/gin"
)

const (
	testAdminPassword = "letmein"
	cartCookieName    = "kanael_cart"
)

// setupRouter builds the full application against a fresh database in a
// temp dir. The demo catalog is seeded, so menu item 1 is the Signature
// Chocolate Cake at 7.99.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("JWT_SECRET", "handlers_test_secret")
	t.Setenv("ADMIN_PASSWORD", testAdminPassword)

	config.Load()
	config.InitDB()

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	routes.SetupRoutes(r)
	return r
}

func getPage(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// cartCookie signs a cart the way the handlers do, for seeding requests.
func cartCookie(t *testing.T, c cart.Cart) *http.Cookie {
	t.Helper()
	tok, err := cart.Token(c, config.JWTSecret)
	if err != nil {
		t.Fatalf("sign cart: %v", err)
	}
	return &http.Cookie{Name: cartCookieName, Value: tok}
}

// cartFromResponse decodes the cart cookie a handler set, if any.
func cartFromResponse(t *testing.T, w *httptest.ResponseRecorder) (cart.Cart, bool) {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cartCookieName {
			return cart.FromToken(ck.Value, config.JWTSecret), true
		}
	}
	return nil, false
}

// adminCookie logs in through the real endpoint and returns the session.
func adminCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(r, "/admin/login", url.Values{"password": {testAdminPassword}})
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("login did not set an admin session cookie")
	return nil
}

func orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	config.DB.Model(&models.Order{}).Count(&n)
	return n
}

func menuCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	config.DB.Model(&models.MenuItem{}).Count(&n)
	return n
}

func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}
