package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/questlog/questlog/internal/core/domain"
	"github.com/questlog/questlog/internal/core/service"
)

func issueToken(t *testing.T, svc *service.TokenService) string {
	t.Helper()
	pair, err := svc.Issue(&domain.User{UserID: 7, Username: "alice"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return pair.AccessToken
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, rec := newAuthContext("Bearer " + issueToken(t, tokens))

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != 7 {
			t.Fatalf("user_id not set, got %v", c.Get("user_id"))
		}
		if c.Get("username") != "alice" {
			t.Fatalf("username not set, got %v", c.Get("username"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newAuthContext("")

	err := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})(c)
	assertUnauthorized(t, err)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	for _, header := range []string{"Token abc", "Bearer", "bearer-without-space"} {
		c, _ := newAuthContext(header)
		err := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("next must not be called for %q", header)
			return nil
		})(c)
		assertUnauthorized(t, err)
	}
}

func TestAuthMiddleware_RejectsForgedAndExpired(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	foreign := issueToken(t, service.NewTokenService("other-secret", time.Hour))
	expired := issueToken(t, service.NewTokenService("secret", -time.Minute))

	for _, token := range []string{foreign, expired, "garbage"} {
		c, _ := newAuthContext("Bearer " + token)
		err := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("next must not be called")
			return nil
		})(c)
		// All verification failures look identical to the client.
		assertUnauthorized(t, err)
	}
}
