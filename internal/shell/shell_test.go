package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/filecoin-project/go-clock"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	err    error
	calls  int
	tokens []string
}

func (v *stubValidator) ValidateToken(_ context.Context, token string) error {
	v.calls++
	v.tokens = append(v.tokens, token)
	return v.err
}

func newShell(v TokenValidator, clk clock.Clock) *Shell {
	return New(v, Options{Breakpoint: 768, BannerDuration: 2 * time.Second, Clock: clk})
}

func TestSidebarDefault(t *testing.T) {
	s := newShell(&stubValidator{}, clock.NewMock())

	for w := 0; w <= 2000; w++ {
		assert.Equal(t, w >= 768, s.SidebarDefault(w), "width %d", w)
	}
	assert.False(t, s.SidebarDefault(767))
	assert.True(t, s.SidebarDefault(768))
	assert.True(t, s.SidebarDefault(1024))
}

func TestBoot(t *testing.T) {
	ctx := context.Background()

	t.Run("without a token the backend is not called", func(t *testing.T) {
		v := &stubValidator{}
		st := newShell(v, clock.NewMock()).Boot(ctx, clientstore.NewMemoryStore(), State{}, 1024)

		assert.Zero(t, v.calls)
		assert.False(t, st.LoggedIn)
		assert.False(t, st.Loading)
	})

	t.Run("a valid token logs in", func(t *testing.T) {
		v := &stubValidator{}
		store := clientstore.NewMemoryStore()
		require.NoError(t, store.Set(domain.StorageKeyToken, "abc"))

		st := newShell(v, clock.NewMock()).Boot(ctx, store, State{}, 1024)

		assert.True(t, st.LoggedIn)
		assert.Equal(t, []string{"abc"}, v.tokens)
		_, ok := store.Get(domain.StorageKeyToken)
		assert.True(t, ok)
	})

	t.Run("a rejected token is cleared", func(t *testing.T) {
		v := &stubValidator{err: domain.ErrInvalidToken}
		store := clientstore.NewMemoryStore()
		require.NoError(t, store.Set(domain.StorageKeyToken, "stale"))

		st := newShell(v, clock.NewMock()).Boot(ctx, store, State{}, 1024)

		assert.False(t, st.LoggedIn)
		_, ok := store.Get(domain.StorageKeyToken)
		assert.False(t, ok)
	})

	t.Run("a network failure is treated as logged out", func(t *testing.T) {
		v := &stubValidator{err: errors.New("connection refused")}
		store := clientstore.NewMemoryStore()
		require.NoError(t, store.Set(domain.StorageKeyToken, "abc"))

		st := newShell(v, clock.NewMock()).Boot(ctx, store, State{SessionState: domain.SessionState{LoggedIn: true}}, 1024)

		assert.False(t, st.LoggedIn)
		_, ok := store.Get(domain.StorageKeyToken)
		assert.False(t, ok)
	})

	t.Run("sidebar follows the viewport and sections reset", func(t *testing.T) {
		s := newShell(&stubValidator{}, clock.NewMock())
		prev := State{}
		prev.Sidebar = prev.Sidebar.ToggleSection("project")

		narrow := s.Boot(ctx, clientstore.NewMemoryStore(), prev, 500)
		assert.False(t, narrow.Sidebar.Open)
		assert.Empty(t, narrow.Sidebar.OpenSection)

		wide := s.Boot(ctx, clientstore.NewMemoryStore(), prev, 1280)
		assert.True(t, wide.Sidebar.Open)

		unknown := s.Boot(ctx, clientstore.NewMemoryStore(), prev, 0)
		assert.True(t, unknown.Sidebar.Open)
	})
}

func TestLoginSucceeded(t *testing.T) {
	ctx := context.Background()
	s := newShell(&stubValidator{}, clock.NewMock())
	store := clientstore.NewMemoryStore()

	id := domain.Identity{Token: "tok", FirstName: "ada", LastName: "lovelace"}
	st, err := s.LoginSucceeded(ctx, store, State{BannerUntil: time.Unix(0, 0).Add(time.Hour)}, id)
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.False(t, st.LoggingOut)
	assert.Equal(t, "ada", st.FirstName)
	assert.Equal(t, "lovelace", st.LastName)

	token, ok := store.Get(domain.StorageKeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	st, err = s.Logout(ctx, store, st)
	require.NoError(t, err)
	assert.Empty(t, st.FirstName+st.LastName)

	_, err = s.LoginSucceeded(ctx, store, State{}, domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMock()
	s := newShell(&stubValidator{}, clk)
	store := clientstore.NewMemoryStore()
	require.NoError(t, store.Set(domain.StorageKeyToken, "tok"))

	st, err := s.Logout(ctx, store, State{SessionState: domain.SessionState{LoggedIn: true}})
	require.NoError(t, err)

	_, ok := store.Get(domain.StorageKeyToken)
	assert.False(t, ok, "token is cleared before the banner ends")
	assert.False(t, st.LoggedIn)
	assert.True(t, st.LoggingOut)
	assert.Equal(t, domain.MsgLoggedOut, st.LogoutMessage)
	assert.Equal(t, 2*time.Second, s.BannerRemaining(st))

	clk.Add(1500 * time.Millisecond)
	st = s.Refresh(st)
	assert.True(t, st.LoggingOut)
	assert.Equal(t, 500*time.Millisecond, s.BannerRemaining(st))

	clk.Add(500 * time.Millisecond)
	st = s.Refresh(st)
	assert.False(t, st.LoggingOut)
	assert.Empty(t, st.LogoutMessage)
	assert.True(t, st.BannerUntil.IsZero())
	assert.Zero(t, s.BannerRemaining(st))
}

func TestResize(t *testing.T) {
	s := newShell(&stubValidator{}, clock.NewMock())
	st := State{}
	st.Sidebar = st.Sidebar.SetOpen(true)

	st, changed := s.Resize(st, 1024)
	assert.False(t, changed)

	st, changed = s.Resize(st, 600)
	assert.True(t, changed)
	assert.False(t, st.Sidebar.Open)
	assert.Equal(t, ContentMarginCollapsed, st.ContentMargin())

	st = s.ToggleSidebar(st)
	assert.True(t, st.Sidebar.Open)
	assert.Equal(t, ContentMarginOpen, st.ContentMargin())
}

func TestToggleSection(t *testing.T) {
	s := newShell(&stubValidator{}, clock.NewMock())
	st := State{}

	st = s.ToggleSection(st, "organization")
	st = s.ToggleSection(st, "project")
	assert.Equal(t, "project", st.Sidebar.OpenSection)
	assert.False(t, st.Sidebar.Expanded("organization"))

	st = s.ToggleSection(st, "project")
	assert.Empty(t, st.Sidebar.OpenSection)
}

func TestStatePersistence(t *testing.T) {
	sess := sessions.NewSession(sessions.NewCookieStore([]byte("secret")), SessionName)

	empty := LoadState(sess)
	assert.False(t, empty.LoggedIn)
	assert.True(t, empty.Sidebar.Open)

	until := time.Unix(1700000000, 0)
	st := State{SessionState: domain.SessionState{LoggedIn: true, FirstName: "Ada", LastName: "Lovelace"}, BannerUntil: until}
	st.Sidebar = st.Sidebar.SetOpen(false).ToggleSection("activity")
	SaveState(sess, st)

	got := LoadState(sess)
	assert.True(t, got.LoggedIn)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.False(t, got.Sidebar.Open)
	assert.Equal(t, "activity", got.Sidebar.OpenSection)
	assert.True(t, until.Equal(got.BannerUntil))

	got.BannerUntil = time.Time{}
	SaveState(sess, got)
	assert.NotContains(t, sess.Values, keyBannerUntil)
}
