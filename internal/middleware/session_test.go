package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldbase/admin/internal/audit"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(ClientID(shell.SessionName))

	// Marks the session logged in without touching the token cookie.
	e.GET("/test/login", func(c echo.Context) error {
		sess, _ := session.Get(shell.SessionName, c)
		st := shell.LoadState(sess)
		st.LoggedIn = true
		shell.SaveState(sess, st)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/test/client", func(c echo.Context) error {
		return c.String(http.StatusOK, ClientIDFrom(c)+"|"+audit.ClientFrom(c.Request().Context()))
	})
	e.POST("/register", func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	}, RequireSession())
	return e
}

func serve(e *echo.Echo, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == shell.SessionName {
			found = c
		}
	}
	require.NotNil(t, found, "session cookie not set")
	return found
}

func TestClientID(t *testing.T) {
	e := newTestServer()

	first := serve(e, httptest.NewRequest(http.MethodGet, "/test/client", nil))
	require.Equal(t, http.StatusOK, first.Code)
	ids := first.Body.String()
	assert.Regexp(t, `^[0-9a-f-]{36}\|[0-9a-f-]{36}$`, ids)

	again := serve(e, httptest.NewRequest(http.MethodGet, "/test/client", nil), sessionCookie(t, first))
	assert.Equal(t, ids, again.Body.String(), "id is stable across requests")

	other := serve(e, httptest.NewRequest(http.MethodGet, "/test/client", nil))
	assert.NotEqual(t, ids, other.Body.String())
}

func TestRequireSession(t *testing.T) {
	e := newTestServer()
	login := serve(e, httptest.NewRequest(http.MethodGet, "/test/login", nil))
	loggedIn := sessionCookie(t, login)
	token := &http.Cookie{Name: "auth_token", Value: "tok"}

	t.Run("anonymous request is redirected", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/register", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("htmx request gets an HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		req.Header.Set("HX-Request", "true")
		rec := serve(e, req, token)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	})

	t.Run("logged in session without token is rejected", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/register", nil), loggedIn)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("logged in session with token passes", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/register", nil), loggedIn, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "protected", rec.Body.String())
	})
}
