package shell

import (
	"time"

	"github.com/fieldbase/admin/internal/navigation"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie session holding the shell state.
const SessionName = "fieldbase-session"

const (
	keyLoggedIn    = "logged_in"
	keySidebarOpen = "sidebar_open"
	keyOpenSection = "open_section"
	keyBannerUntil = "banner_until"
	keyFirstName   = "first_name"
	keyLastName    = "last_name"
)

// LoadState reads the shell state from a session. Missing values yield an
// unauthenticated state with an open sidebar.
func LoadState(sess *sessions.Session) State {
	var st State
	st.LoggedIn, _ = sess.Values[keyLoggedIn].(bool)
	st.FirstName, _ = sess.Values[keyFirstName].(string)
	st.LastName, _ = sess.Values[keyLastName].(string)

	open := true
	if v, ok := sess.Values[keySidebarOpen].(bool); ok {
		open = v
	}
	st.Sidebar = navigation.NewSidebar(open)
	st.Sidebar.OpenSection, _ = sess.Values[keyOpenSection].(string)

	if nanos, ok := sess.Values[keyBannerUntil].(int64); ok && nanos > 0 {
		st.BannerUntil = time.Unix(0, nanos)
	}
	return st
}

// SaveState writes the shell state into a session. The caller saves the session.
func SaveState(sess *sessions.Session, st State) {
	sess.Values[keyLoggedIn] = st.LoggedIn
	sess.Values[keyFirstName] = st.FirstName
	sess.Values[keyLastName] = st.LastName
	sess.Values[keySidebarOpen] = st.Sidebar.Open
	sess.Values[keyOpenSection] = st.Sidebar.OpenSection
	if st.BannerUntil.IsZero() {
		delete(sess.Values, keyBannerUntil)
	} else {
		sess.Values[keyBannerUntil] = st.BannerUntil.UnixNano()
	}
}
