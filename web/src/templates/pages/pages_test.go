package pages

import (
	"bytes"
	"testing"
	"time"

	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/fieldbase/admin/web/src/templates/partials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestBoot(t *testing.T) {
	out := render(t, Boot("/projects/add"))
	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, `hx-get="/shell?path=%2Fprojects%2Fadd"`)
	assert.Contains(t, out, `hx-trigger="load"`)
	assert.Contains(t, out, "window.innerWidth")
}

func TestLoginPanel(t *testing.T) {
	t.Run("login mode", func(t *testing.T) {
		form := login.Form{Mode: login.ModeLogin, Username: "alice", RememberMe: true, Error: domain.MsgLoginFailed}
		out := render(t, LoginPanel(form, nil))

		assert.Contains(t, out, `hx-post="/login"`)
		assert.Contains(t, out, `value="alice"`)
		assert.Contains(t, out, `type="password"`)
		assert.Contains(t, out, "checked")
		assert.Contains(t, out, domain.MsgLoginFailed)
		assert.Contains(t, out, "Logging in...")
		assert.Contains(t, out, "Forgot Password?")
		assert.Contains(t, out, `hx-get="/login/mode?mode=forgot"`)
	})

	t.Run("forgot password mode", func(t *testing.T) {
		form := login.Form{Mode: login.ModeForgotPassword, Notice: domain.MsgResetSent}
		out := render(t, LoginPanel(form, nil))

		assert.Contains(t, out, `hx-post="/forgot-password"`)
		assert.NotContains(t, out, `type="password"`)
		assert.NotContains(t, out, "Remember Me")
		assert.Contains(t, out, "Send Password Reset Email")
		assert.Contains(t, out, "Sending...")
		assert.Contains(t, out, "Back to Login")
		assert.Contains(t, out, domain.MsgResetSent)
	})

	t.Run("banner", func(t *testing.T) {
		banner := partials.LogoutBanner(domain.MsgLoggedOut, 2*time.Second)
		out := render(t, LoginPanel(login.Form{}, banner))

		assert.Contains(t, out, domain.MsgLoggedOut)
		assert.Contains(t, out, `hx-trigger="load delay:2000ms"`)
	})
}

func shellProps(open bool, section, path string) ShellProps {
	sb := navigation.NewSidebar(open).ToggleSection(section)
	return ShellProps{
		Sidebar: partials.SidebarProps{
			Menu:        navigation.DefaultMenu(),
			State:       sb,
			CurrentPath: path,
			DisplayName: "Admin",
		},
		ContentMargin: 250,
		Content:       Welcome("Admin"),
	}
}

func TestShell(t *testing.T) {
	t.Run("open sidebar with an expanded section", func(t *testing.T) {
		out := render(t, Shell(shellProps(true, "organization", "/register")))

		assert.Contains(t, out, "Welcome, Admin")
		assert.Contains(t, out, "width: 250px")
		assert.Contains(t, out, "margin-left: 250px")
		assert.Contains(t, out, "←")
		assert.Contains(t, out, "Add User")
		assert.Contains(t, out, `class="section-link active"`)
		assert.NotContains(t, out, "Add Project")
		assert.Contains(t, out, "Logout")
	})

	t.Run("collapsed sidebar hides labels and links", func(t *testing.T) {
		p := shellProps(false, "organization", "/")
		p.ContentMargin = 60
		out := render(t, Shell(p))

		assert.Contains(t, out, "width: 25px")
		assert.Contains(t, out, "margin-left: 60px")
		assert.Contains(t, out, "→")
		assert.NotContains(t, out, "Organization Profile")
		assert.NotContains(t, out, "Add User")
		assert.NotContains(t, out, "Welcome, Admin</p>")
	})

	t.Run("logout disabled while logging out", func(t *testing.T) {
		p := shellProps(true, "", "/")
		p.LoggingOut = true
		assert.Contains(t, render(t, Shell(p)), "disabled")
	})
}

func TestRegisterPanel(t *testing.T) {
	out := render(t, RegisterPanel(RegisterProps{
		User:        domain.NewUser{FirstName: "Ada", Role: "Volunteer", Password: "secret-pass"},
		Error:       domain.MsgRegistrationInvalid,
		SidebarOpen: true,
	}))

	assert.Contains(t, out, `value="Ada"`)
	assert.Contains(t, out, "register-container narrow")
	assert.NotContains(t, out, "secret-pass")
	assert.Contains(t, out, domain.MsgRegistrationInvalid)
	for _, role := range domain.Roles {
		assert.Contains(t, out, role)
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Contains(t, render(t, Placeholder("Volunteer")), "This section is not available yet.")
}
