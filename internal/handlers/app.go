package handlers

import (
	"net/http"

	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/internal/middleware"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/fieldbase/admin/web/src/templates/pages"
	"github.com/fieldbase/admin/web/src/templates/partials"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// App renders the #app fragment from the shell state kept in the session.
// Every handler that changes shell state goes through it.
type App struct {
	shell *shell.Shell
	menus *navigation.Provider
}

// NewApp creates an App.
func NewApp(s *shell.Shell, menus *navigation.Provider) *App {
	return &App{shell: s, menus: menus}
}

// load reads the shell state. An unreadable session yields a fresh state, and
// a session whose token cookie is gone is never logged in.
func (a *App) load(c echo.Context) (*sessions.Session, shell.State) {
	sess, err := session.Get(shell.SessionName, c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Discarding unreadable shell session", "error", err)
	}
	st := a.shell.Refresh(shell.LoadState(sess))
	if _, ok := clientstore.NewCookieStore(c).Get(domain.StorageKeyToken); !ok {
		st.LoggedIn = false
	}
	return sess, st
}

func (a *App) save(c echo.Context, sess *sessions.Session, st shell.State) error {
	shell.SaveState(sess, st)
	return sess.Save(c.Request(), c.Response())
}

// normalizePath maps anything that is not the default route or a menu path
// onto the default route.
func (a *App) normalizePath(path string) string {
	if path == shell.DefaultRoute || a.menus.Menu().HasPath(path) {
		return path
	}
	return shell.DefaultRoute
}

// render writes the #app for st: the authenticated shell, or the login panel
// showing form under the logout banner.
func (a *App) render(c echo.Context, st shell.State, path string, form login.Form) error {
	if !st.LoggedIn {
		banner := partials.LogoutBanner(st.LogoutMessage, a.shell.BannerRemaining(st))
		return c.Render(http.StatusOK, "", pages.LoginPanel(form, banner))
	}
	return c.Render(http.StatusOK, "", pages.Shell(a.shellProps(st, path)))
}

func (a *App) renderSidebar(c echo.Context, st shell.State, path string) error {
	return c.Render(http.StatusOK, "", partials.Sidebar(a.sidebarProps(st, path)))
}

func (a *App) sidebarProps(st shell.State, path string) partials.SidebarProps {
	return partials.SidebarProps{
		Menu:        a.menus.Menu(),
		State:       st.Sidebar,
		CurrentPath: path,
		DisplayName: navigation.DisplayName(st.FirstName, st.LastName),
	}
}

func (a *App) shellProps(st shell.State, path string) pages.ShellProps {
	sidebar := a.sidebarProps(st, path)
	return pages.ShellProps{
		Sidebar:       sidebar,
		LoggingOut:    st.LoggingOut,
		ContentMargin: st.ContentMargin(),
		Content:       a.content(st, path, sidebar),
	}
}

// content picks the routed panel for path.
func (a *App) content(st shell.State, path string, sidebar partials.SidebarProps) g.Node {
	switch path {
	case shell.DefaultRoute:
		return pages.Welcome(sidebar.DisplayName)
	case RegisterPath:
		return pages.RegisterPanel(pages.RegisterProps{SidebarOpen: st.Sidebar.Open})
	}
	title := path
	if l, ok := sidebar.Menu.Link(path); ok {
		title = l.Label
	}
	return pages.Placeholder(title)
}

// initialForm is the login form shown when nothing was submitted.
func initialForm(c echo.Context) login.Form {
	return login.Initial(login.ModeLogin, clientstore.NewCookieStore(c))
}
