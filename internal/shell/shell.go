// Package shell is the root of the authenticated UI: it validates the stored
// token at boot, reacts to login and logout, and picks the responsive sidebar
// default.
package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldbase/admin/internal/audit"
	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/filecoin-project/go-clock"
)

// DefaultRoute is where login success and the end of a logout lead.
const DefaultRoute = "/"

// Content margins in pixels, next to an open or collapsed sidebar.
const (
	ContentMarginOpen      = 250
	ContentMarginCollapsed = 60
)

// TokenValidator checks a bearer token against the backend.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) error
}

// Options configures a Shell.
type Options struct {
	// Breakpoint is the viewport width at and above which the sidebar starts open.
	Breakpoint int
	// BannerDuration is how long the logout confirmation stays visible.
	BannerDuration time.Duration
	Clock          clock.Clock
	Recorder       *audit.Recorder
}

// State is the per-browser shell state kept between requests.
type State struct {
	domain.SessionState
	Sidebar     navigation.Sidebar
	BannerUntil time.Time
}

// ContentMargin returns the left margin of the routed content panel.
func (st State) ContentMargin() int {
	if st.Sidebar.Open {
		return ContentMarginOpen
	}
	return ContentMarginCollapsed
}

// Shell owns session and sidebar transitions.
type Shell struct {
	validator TokenValidator
	opts      Options
}

// New creates a Shell. Zero options fall back to a 768px breakpoint, a 2s
// banner and the wall clock.
func New(v TokenValidator, opts Options) *Shell {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = 768
	}
	if opts.BannerDuration <= 0 {
		opts.BannerDuration = 2 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	return &Shell{validator: v, opts: opts}
}

// SidebarDefault reports whether the sidebar starts open for a viewport width.
func (s *Shell) SidebarDefault(width int) bool {
	return width >= s.opts.Breakpoint
}

// Boot runs the startup sequence: it validates the stored token and resets the
// sidebar for the reported viewport width. A width of zero or less means the
// width is unknown and is treated as a wide viewport. Validation failures are
// logged and leave the session unauthenticated; they never surface as errors.
func (s *Shell) Boot(ctx context.Context, store clientstore.Store, st State, width int) State {
	st.Loading = true
	st.LoggedIn = s.validate(ctx, store)
	st.Loading = false
	if !st.LoggedIn {
		st.FirstName, st.LastName = "", ""
	}

	open := width <= 0 || s.SidebarDefault(width)
	st.Sidebar = navigation.NewSidebar(open)
	return s.Refresh(st)
}

func (s *Shell) validate(ctx context.Context, store clientstore.Store) bool {
	token, ok := store.Get(domain.StorageKeyToken)
	if !ok {
		return false
	}

	err := s.validator.ValidateToken(ctx, token)
	if err == nil {
		return true
	}

	if errors.Is(err, domain.ErrInvalidToken) {
		slog.WarnContext(ctx, "Invalid token or session expired", "error", err)
	} else {
		slog.ErrorContext(ctx, "Error validating token", "error", err)
	}
	if clearErr := store.Clear(domain.StorageKeyToken); clearErr != nil {
		slog.ErrorContext(ctx, "Failed to discard invalid token", "error", clearErr)
	}
	s.opts.Recorder.Record(ctx, audit.TopicInvalidated, err.Error())
	return false
}

// LoginSucceeded stores the token, remembers the user's names and marks the
// session authenticated. A pending logout banner is dropped. The caller
// navigates to DefaultRoute.
func (s *Shell) LoginSucceeded(ctx context.Context, store clientstore.Store, st State, id domain.Identity) (State, error) {
	if id.Token == "" {
		return st, fmt.Errorf("login succeeded without a token: %w", domain.ErrInvalidToken)
	}
	if err := store.Set(domain.StorageKeyToken, id.Token); err != nil {
		return st, fmt.Errorf("failed to store token: %w", err)
	}
	st.LoggedIn = true
	st.FirstName, st.LastName = id.FirstName, id.LastName
	st.BannerUntil = time.Time{}
	s.opts.Recorder.Record(ctx, audit.TopicLogin, "")
	return s.Refresh(st), nil
}

// Logout clears the token immediately and starts the confirmation banner.
// After BannerDuration the banner expires and the caller navigates to DefaultRoute.
func (s *Shell) Logout(ctx context.Context, store clientstore.Store, st State) (State, error) {
	if err := store.Clear(domain.StorageKeyToken); err != nil {
		return st, fmt.Errorf("failed to clear token: %w", err)
	}
	st.LoggedIn = false
	st.FirstName, st.LastName = "", ""
	st.BannerUntil = s.opts.Clock.Now().Add(s.opts.BannerDuration)
	s.opts.Recorder.Record(ctx, audit.TopicLogout, "")
	return s.Refresh(st), nil
}

// Refresh recomputes the banner fields against the clock and drops an expired banner.
func (s *Shell) Refresh(st State) State {
	if !st.BannerUntil.IsZero() && s.opts.Clock.Now().Before(st.BannerUntil) {
		st.LoggingOut = true
		st.LogoutMessage = domain.MsgLoggedOut
		return st
	}
	st.BannerUntil = time.Time{}
	st.LoggingOut = false
	st.LogoutMessage = ""
	return st
}

// BannerRemaining returns how long the banner stays visible.
func (s *Shell) BannerRemaining(st State) time.Duration {
	if !st.LoggingOut {
		return 0
	}
	if d := st.BannerUntil.Sub(s.opts.Clock.Now()); d > 0 {
		return d
	}
	return 0
}

// Resize applies the responsive default for a new viewport width. It reports
// whether the sidebar state changed.
func (s *Shell) Resize(st State, width int) (State, bool) {
	open := s.SidebarDefault(width)
	if st.Sidebar.Open == open {
		return st, false
	}
	st.Sidebar = st.Sidebar.SetOpen(open)
	return st, true
}

// ToggleSidebar flips the sidebar.
func (s *Shell) ToggleSidebar(st State) State {
	st.Sidebar = st.Sidebar.Toggle()
	return st
}

// ToggleSection expands or collapses a sidebar section.
func (s *Shell) ToggleSection(st State, id string) State {
	st.Sidebar = st.Sidebar.ToggleSection(id)
	return st
}
