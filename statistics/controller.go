package statistics

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/aquamodel"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/session"
)

type Backend interface {
	GetStatistics(ctx context.Context, token string) (aquamodel.Statistics, error)
}

type View interface {
	pages.Navigator
	ShowStatistics(stats aquamodel.Statistics)
}

// Controller renders the statistics page. Failures have no visible error
// surface; they are only logged.
type Controller struct {
	backend Backend
	session *session.Session
	view    View
}

func New(backend Backend, sess *session.Session, view View) *Controller {
	return &Controller{
		backend: backend,
		session: sess,
		view:    view,
	}
}

func (c *Controller) Guard() bool {
	return c.session.Guard(c.view)
}

func (c *Controller) Load(ctx context.Context) error {
	token, ok := c.session.Token()
	if !ok {
		c.session.Logout(c.view)
		return apperrors.ErrNoToken
	}

	stats, err := c.backend.GetStatistics(ctx, token)
	if err != nil {
		log.Err(err).Msg("Failed to fetch statistics")
		if api.IsUnauthorized(err) {
			c.session.Logout(c.view)
		}
		return apperrors.Wrapf(err, "statistics load")
	}

	c.view.ShowStatistics(stats)
	return nil
}
