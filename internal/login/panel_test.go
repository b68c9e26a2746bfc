package login_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldbase/admin/internal/backend"
	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/login"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, username, password string) (backend.Reply, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(backend.Reply), args.Error(1)
}

func (m *mockAuthenticator) ForgotPassword(ctx context.Context, email string) (backend.Reply, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(backend.Reply), args.Error(1)
}

// successCounter records how often the success callback fired and with what.
type successCounter struct {
	calls int
	id    domain.Identity
}

func (s *successCounter) fn(_ context.Context, id domain.Identity) error {
	s.calls++
	s.id = id
	return nil
}

func TestSubmitLogin_Validation(t *testing.T) {
	cases := []login.Credentials{
		{Username: "", Password: "pw"},
		{Username: "ada", Password: ""},
		{},
	}
	for _, creds := range cases {
		auth := &mockAuthenticator{}
		panel := login.NewPanel(auth, nil)
		counter := &successCounter{}

		form := panel.Submit(context.Background(), "client", clientstore.NewMemoryStore(), creds, counter.fn)

		assert.Equal(t, domain.MsgMissingCredentials, form.Error)
		assert.False(t, form.Succeeded)
		assert.Zero(t, counter.calls)
		auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestSubmitLogin_Success(t *testing.T) {
	t.Run("remember me persists the username only", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, "ada", "s3cret").
			Return(backend.Reply{Status: 200, Message: domain.LoginSuccessSentinel, Token: "tok", FirstName: "Ada", LastName: "Lovelace"}, nil).Once()
		store := clientstore.NewMemoryStore()
		counter := &successCounter{}

		form := login.NewPanel(auth, nil).Submit(context.Background(), "client", store,
			login.Credentials{Username: "ada", Password: "s3cret", RememberMe: true}, counter.fn)

		assert.True(t, form.Succeeded)
		assert.Empty(t, form.Error)
		assert.Equal(t, 1, counter.calls)
		assert.Equal(t, domain.Identity{Token: "tok", FirstName: "Ada", LastName: "Lovelace"}, counter.id)
		name, ok := store.Get(domain.StorageKeyUsername)
		assert.True(t, ok)
		assert.Equal(t, "ada", name)
		auth.AssertExpectations(t)
	})

	t.Run("without remember me the username is not stored", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("Login", mock.Anything, "ada", "s3cret").
			Return(backend.Reply{Status: 200, Message: domain.LoginSuccessSentinel, Token: "tok"}, nil).Once()
		store := clientstore.NewMemoryStore()
		counter := &successCounter{}

		form := login.NewPanel(auth, nil).Submit(context.Background(), "client", store,
			login.Credentials{Username: "ada", Password: "s3cret"}, counter.fn)

		assert.True(t, form.Succeeded)
		assert.Equal(t, 1, counter.calls)
		_, ok := store.Get(domain.StorageKeyUsername)
		assert.False(t, ok)
	})
}

func TestSubmitLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		reply   backend.Reply
		err     error
		wantErr string
	}{
		{"custom message is shown verbatim", backend.Reply{Status: 401, Message: "Account locked"}, nil, "Account locked"},
		{"missing message falls back", backend.Reply{Status: 401}, nil, domain.MsgLoginFailed},
		{"success without token", backend.Reply{Status: 200, Message: domain.LoginSuccessSentinel}, nil, domain.MsgLoginFailed},
		{"transport error", backend.Reply{}, errors.New("connection refused"), domain.MsgServerError},
		{"malformed reply", backend.Reply{}, domain.ErrMalformedReply, domain.MsgServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthenticator{}
			auth.On("Login", mock.Anything, "ada", "pw").Return(tt.reply, tt.err).Once()
			store := clientstore.NewMemoryStore()
			counter := &successCounter{}

			form := login.NewPanel(auth, nil).Submit(context.Background(), "client", store,
				login.Credentials{Username: "ada", Password: "pw", RememberMe: true}, counter.fn)

			assert.Equal(t, tt.wantErr, form.Error)
			assert.False(t, form.Succeeded)
			assert.Zero(t, counter.calls)
			assert.Equal(t, "ada", form.Username, "the username stays in the form")
			_, ok := store.Get(domain.StorageKeyUsername)
			assert.False(t, ok)
		})
	}
}

func TestSubmitForgotPassword(t *testing.T) {
	t.Run("requires an email", func(t *testing.T) {
		auth := &mockAuthenticator{}

		form := login.NewPanel(auth, nil).Submit(context.Background(), "client", clientstore.NewMemoryStore(), login.ResetRequest{}, nil)

		assert.Equal(t, domain.MsgMissingEmail, form.Error)
		assert.Equal(t, login.ModeForgotPassword, form.Mode)
		auth.AssertNotCalled(t, "ForgotPassword", mock.Anything, mock.Anything)
	})

	t.Run("success shows the confirmation", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("ForgotPassword", mock.Anything, "ada@example.com").
			Return(backend.Reply{Status: 200, Message: domain.PasswordResetSuccessSentinel}, nil).Once()

		form := login.NewPanel(auth, nil).Submit(context.Background(), "client", clientstore.NewMemoryStore(),
			login.ResetRequest{Email: "ada@example.com"}, nil)

		assert.Empty(t, form.Error)
		assert.Equal(t, domain.MsgResetSent, form.Notice)
		assert.False(t, form.Succeeded, "a reset never logs the user in")
	})

	t.Run("failure shows the message or the fallback", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("ForgotPassword", mock.Anything, "unknown@example.com").
			Return(backend.Reply{Status: 404, Message: "No such user"}, nil).Once()
		auth.On("ForgotPassword", mock.Anything, "quiet@example.com").
			Return(backend.Reply{Status: 500}, nil).Once()
		panel := login.NewPanel(auth, nil)

		form := panel.Submit(context.Background(), "client", clientstore.NewMemoryStore(), login.ResetRequest{Email: "unknown@example.com"}, nil)
		assert.Equal(t, "No such user", form.Error)

		form = panel.Submit(context.Background(), "client", clientstore.NewMemoryStore(), login.ResetRequest{Email: "quiet@example.com"}, nil)
		assert.Equal(t, domain.MsgResetFailed, form.Error)
	})
}

// blockingAuthenticator holds Login until release is closed.
type blockingAuthenticator struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingAuthenticator) Login(ctx context.Context, username, password string) (backend.Reply, error) {
	close(b.entered)
	<-b.release
	return backend.Reply{Status: 200, Message: domain.LoginSuccessSentinel, Token: "tok"}, nil
}

func (b *blockingAuthenticator) ForgotPassword(ctx context.Context, email string) (backend.Reply, error) {
	return backend.Reply{}, nil
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	auth := &blockingAuthenticator{entered: make(chan struct{}), release: make(chan struct{})}
	panel := login.NewPanel(auth, login.NewGuard())
	creds := login.Credentials{Username: "ada", Password: "pw"}

	done := make(chan login.Form)
	go func() {
		done <- panel.Submit(context.Background(), "client-1", clientstore.NewMemoryStore(), creds, nil)
	}()
	<-auth.entered

	second := panel.Submit(context.Background(), "client-1", clientstore.NewMemoryStore(), creds, nil)
	assert.Equal(t, domain.MsgBusy, second.Error)

	close(auth.release)
	first := <-done
	assert.True(t, first.Succeeded)
}

func TestInitial(t *testing.T) {
	store := clientstore.NewMemoryStore()
	assert.Empty(t, login.Initial(login.ModeLogin, store).Username)

	require.NoError(t, store.Set(domain.StorageKeyUsername, "ada"))
	form := login.Initial(login.ModeLogin, store)
	assert.Equal(t, "ada", form.Username)
	assert.True(t, form.RememberMe)
}

func TestGuard(t *testing.T) {
	g := login.NewGuard()

	release, err := g.Acquire("a")
	require.NoError(t, err)
	_, err = g.Acquire("a")
	assert.ErrorIs(t, err, domain.ErrBusy)
	_, err = g.Acquire("b")
	assert.NoError(t, err, "other clients are independent")

	release()
	release()
	_, err = g.Acquire("a")
	assert.NoError(t, err)

	_, err = g.Acquire("")
	assert.NoError(t, err)
	_, err = g.Acquire("")
	assert.NoError(t, err, "an empty key is never guarded")
}

func TestMode(t *testing.T) {
	assert.Equal(t, login.ModeForgotPassword, login.ParseMode("forgot"))
	assert.Equal(t, login.ModeLogin, login.ParseMode("anything"))
	assert.Equal(t, login.ModeLogin, login.ModeForgotPassword.Other())
	assert.Equal(t, "Logging in...", login.ModeLogin.BusyLabel())
	assert.Equal(t, "Sending...", login.ModeForgotPassword.BusyLabel())
	assert.Equal(t, "Back to Login", login.ModeForgotPassword.ToggleLabel())
}
