package handlers

import (
	"net/http"
	"strconv"

	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/middleware"
	"github.com/fieldbase/admin/internal/view"
	"github.com/fieldbase/admin/web/src/templates/layouts"
	"github.com/fieldbase/admin/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// ShellHandler serves the boot page, the shell fragment and the sidebar intents.
type ShellHandler struct {
	app *App
}

// NewShellHandler creates a new ShellHandler.
func NewShellHandler(app *App) *ShellHandler {
	return &ShellHandler{app: app}
}

// BootGet renders the loading page for the default route and every menu path.
// Other paths are not found.
func (h *ShellHandler) BootGet(c echo.Context) error {
	path := c.Request().URL.Path
	if h.app.normalizePath(path) != path {
		return echo.ErrNotFound
	}

	title := ""
	if l, ok := h.app.menus.Menu().Link(path); ok {
		title = l.Label
	}

	flashes := view.GetFlashData(c)
	page := layouts.Base(title, flashes, view.Component(pages.Boot(path)))
	return c.Render(http.StatusOK, "", page)
}

// ShellGet renders the #app for a path. With a width it is the boot request:
// the stored token is validated and the sidebar is reset for the viewport.
// Without one it is an in-app navigation that reuses the session state.
func (h *ShellHandler) ShellGet(c echo.Context) error {
	ctx := c.Request().Context()
	path := h.app.normalizePath(c.QueryParam("path"))
	store := clientstore.NewCookieStore(c)
	sess, st := h.app.load(c)

	if c.QueryParams().Has("width") {
		width, err := strconv.Atoi(c.QueryParam("width"))
		if err != nil {
			width = 0
		}
		st = h.app.shell.Boot(ctx, store, st, width)
	}

	if err := h.app.save(c, sess, st); err != nil {
		return err
	}
	return h.app.render(c, st, path, initialForm(c))
}

// SidebarTogglePost flips the sidebar and re-renders the shell.
func (h *ShellHandler) SidebarTogglePost(c echo.Context) error {
	path := h.app.normalizePath(c.QueryParam("path"))

	sess, st := h.app.load(c)
	st = h.app.shell.ToggleSidebar(st)
	if err := h.app.save(c, sess, st); err != nil {
		return err
	}
	return h.app.render(c, st, path, initialForm(c))
}

// SectionTogglePost expands or collapses one sidebar section and re-renders the sidebar.
func (h *ShellHandler) SectionTogglePost(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.app.menus.Menu().Section(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown section")
	}
	path := h.app.normalizePath(c.QueryParam("path"))

	sess, st := h.app.load(c)
	st = h.app.shell.ToggleSection(st, id)
	if err := h.app.save(c, sess, st); err != nil {
		return err
	}
	return h.app.renderSidebar(c, st, path)
}

// ViewportPost applies the responsive sidebar default for a new width. It
// answers 204 when the sidebar state does not change.
func (h *ShellHandler) ViewportPost(c echo.Context) error {
	var form viewportForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid width")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid width")
	}

	sess, st := h.app.load(c)
	st, changed := h.app.shell.Resize(st, form.Width)
	if !changed {
		return c.NoContent(http.StatusNoContent)
	}
	middleware.FromContext(c.Request().Context()).Debug("Sidebar follows viewport", "width", form.Width, "open", st.Sidebar.Open)

	if err := h.app.save(c, sess, st); err != nil {
		return err
	}
	return h.app.render(c, st, h.app.normalizePath(c.QueryParam("path")), initialForm(c))
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
