package login

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/aquamodel"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/session"
)

// GenericErrorMessage is shown when a failed response carries no error text.
const GenericErrorMessage = "An error occurred."

// Mode selects which form was submitted.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// Authenticator issues credentials against the backend.
type Authenticator interface {
	Login(ctx context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error)
	Register(ctx context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error)
}

// View is what the login and registration pages can display.
type View interface {
	pages.Navigator
	// ShowError writes message into the inline error element. An empty message clears it.
	ShowError(message string)
	// Notify shows a blocking notification to the user.
	Notify(message string)
}

// Controller handles login and registration form submissions.
type Controller struct {
	auth    Authenticator
	session *session.Session
	view    View
}

func New(auth Authenticator, sess *session.Session, view View) *Controller {
	return &Controller{
		auth:    auth,
		session: sess,
		view:    view,
	}
}

func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.Submit(ctx, ModeLogin, email, password)
}

func (c *Controller) Register(ctx context.Context, email, password string) error {
	return c.Submit(ctx, ModeRegister, email, password)
}

// Submit posts the credentials once. A returned token is stored and the user
// lands on the dashboard; a token-less success (registration) notifies and
// goes to the login page. Every failure ends up in the inline error element.
func (c *Controller) Submit(ctx context.Context, mode Mode, email, password string) error {
	c.view.ShowError("")

	creds := aquamodel.Credentials{Email: email, Password: password}
	var (
		resp *aquamodel.AuthResponse
		err  error
	)
	switch mode {
	case ModeRegister:
		resp, err = c.auth.Register(ctx, creds)
	default:
		resp, err = c.auth.Login(ctx, creds)
	}
	if err != nil {
		c.view.ShowError(errorMessage(err))
		return apperrors.Wrapf(err, "%s", mode)
	}

	if resp.HasToken() {
		if err := c.session.SetToken(resp.AccessToken); err != nil {
			c.view.ShowError(err.Error())
			return apperrors.Wrapf(err, "%s store token", mode)
		}
		c.view.Navigate(pages.Dashboard)
		return nil
	}

	log.Info().Str("mode", mode.String()).Msg("authenticated without token")
	c.view.Notify(resp.Message)
	c.view.Navigate(pages.Login)
	return nil
}

func errorMessage(err error) string {
	var statusErr *api.StatusError
	if apperrors.As(err, &statusErr) {
		if statusErr.ErrorText != "" {
			return statusErr.ErrorText
		}
		return GenericErrorMessage
	}
	return err.Error()
}
