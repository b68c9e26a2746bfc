package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestUniversalRenderer(t *testing.T) {
	r := NewUniversalRenderer()
	templComp := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<main>templ</main>")
		return err
	})

	t.Run("renders both component kinds", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), templComp)
		require.NoError(t, err)
		assert.Equal(t, "<main>templ</main>", string(out))

		out, err = r.RenderComponent(context.Background(), h.Span(g.Text("node")))
		require.NoError(t, err)
		assert.Equal(t, "<span>node</span>", string(out))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})

	t.Run("echo render", func(t *testing.T) {
		e := echo.New()
		e.Renderer = r
		e.GET("/", func(c echo.Context) error {
			return c.Render(http.StatusAccepted, "", h.P(g.Text("hi")))
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "<p>hi</p>", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	})

	t.Run("page", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, r.RenderPage(c, http.StatusOK, templComp))
		assert.Equal(t, "<main>templ</main>", rec.Body.String())
	})
}
