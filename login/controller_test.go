package login_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/aquamodel"
	"github.com/jrsteele09/go-aqua-client/login"
	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/session"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	resp  *aquamodel.AuthResponse
	err   error
	calls []string
	creds aquamodel.Credentials
}

func (f *fakeAuth) Login(_ context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error) {
	f.calls = append(f.calls, "login")
	f.creds = creds
	return f.resp, f.err
}

func (f *fakeAuth) Register(_ context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error) {
	f.calls = append(f.calls, "register")
	f.creds = creds
	return f.resp, f.err
}

type fakeView struct {
	errors        []string
	notifications []string
	visited       []pages.Page
}

func (v *fakeView) ShowError(message string) { v.errors = append(v.errors, message) }
func (v *fakeView) Notify(message string)    { v.notifications = append(v.notifications, message) }
func (v *fakeView) Navigate(page pages.Page) { v.visited = append(v.visited, page) }

func (v *fakeView) lastError() string {
	if len(v.errors) == 0 {
		return ""
	}
	return v.errors[len(v.errors)-1]
}

type fixture struct {
	auth  *fakeAuth
	store *session.InMemoryStore
	view  *fakeView
	ctrl  *login.Controller
}

func setup(t *testing.T, resp *aquamodel.AuthResponse, err error) *fixture {
	t.Helper()
	f := &fixture{
		auth:  &fakeAuth{resp: resp, err: err},
		store: session.NewInMemoryStore(),
		view:  &fakeView{},
	}
	f.ctrl = login.New(f.auth, session.New(f.store), f.view)
	return f
}

func TestController_LoginSuccess(t *testing.T) {
	f := setup(t, &aquamodel.AuthResponse{AccessToken: "tok"}, nil)

	require.NoError(t, f.ctrl.Login(context.Background(), "a@b.com", "pw"))

	require.Equal(t, []string{"login"}, f.auth.calls)
	require.Equal(t, aquamodel.Credentials{Email: "a@b.com", Password: "pw"}, f.auth.creds)
	token, ok := f.store.Get(session.TokenKey)
	require.True(t, ok)
	require.Equal(t, "tok", token)
	require.Equal(t, []pages.Page{pages.Dashboard}, f.view.visited)
	require.Equal(t, []string{""}, f.view.errors)
}

func TestController_SuccessWithoutToken(t *testing.T) {
	for _, mode := range []login.Mode{login.ModeLogin, login.ModeRegister} {
		t.Run(mode.String(), func(t *testing.T) {
			f := setup(t, &aquamodel.AuthResponse{Message: "User registered"}, nil)

			require.NoError(t, f.ctrl.Submit(context.Background(), mode, "a@b.com", "pw"))

			require.Equal(t, []string{mode.String()}, f.auth.calls)
			require.Equal(t, []string{"User registered"}, f.view.notifications)
			require.Equal(t, []pages.Page{pages.Login}, f.view.visited)
			_, ok := f.store.Get(session.TokenKey)
			require.False(t, ok)
		})
	}
}

func TestController_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "error field",
			err:     &api.StatusError{StatusCode: http.StatusConflict, ErrorText: "Email already in use"},
			message: "Email already in use",
		},
		{
			name:    "generic fallback",
			err:     &api.StatusError{StatusCode: http.StatusInternalServerError},
			message: login.GenericErrorMessage,
		},
		{
			name:    "message field is not an error field",
			err:     &api.StatusError{StatusCode: http.StatusBadRequest, Message: "ignored"},
			message: login.GenericErrorMessage,
		},
		{
			name:    "transport failure",
			err:     errors.New("connection refused"),
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, nil, tt.err)

			err := f.ctrl.Register(context.Background(), "a@b.com", "pw")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.err)

			require.Equal(t, tt.message, f.view.lastError())
			require.Empty(t, f.view.visited)
			require.Empty(t, f.view.notifications)
			_, ok := f.store.Get(session.TokenKey)
			require.False(t, ok)
		})
	}
}
