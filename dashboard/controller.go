package dashboard

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/aquamodel"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/session"
)

// DefaultRingRadius matches the radius of the progress ring in the page markup.
const DefaultRingRadius = 90

// Backend loads and stores the app state.
type Backend interface {
	GetData(ctx context.Context, token string) (aquamodel.StatePatch, error)
	SaveData(ctx context.Context, token string, state aquamodel.State) error
}

// View is what the dashboard page can display.
type View interface {
	pages.Navigator
	ShowState(state aquamodel.State, ring Ring)
	SetGoalInput(goal int)
	ShowModal(m Modal, visible bool)
}

// Controller drives the dashboard for one page lifetime. The state it holds
// is only ever replaced by a backend load or by the user's own edits.
type Controller struct {
	backend Backend
	session *session.Session
	view    View
	radius  float64
	state   aquamodel.State
	modals  map[Modal]bool
}

type Option func(*Controller)

// WithRingRadius sets the progress ring radius.
func WithRingRadius(radius float64) Option {
	return func(c *Controller) {
		if radius > 0 {
			c.radius = radius
		}
	}
}

func New(backend Backend, sess *session.Session, view View, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		session: sess,
		view:    view,
		radius:  DefaultRingRadius,
		state:   aquamodel.DefaultState(),
		modals:  make(map[Modal]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current app state.
func (c *Controller) State() aquamodel.State {
	return c.state
}

// Guard redirects to the login page when there is no session token.
func (c *Controller) Guard() bool {
	return c.session.Guard(c.view)
}

// Load fetches the app state and renders it. A 401 logs the user out; any
// other failure is logged and leaves the state untouched.
func (c *Controller) Load(ctx context.Context) error {
	token, ok := c.session.Token()
	if !ok {
		c.Logout()
		return apperrors.ErrNoToken
	}

	patch, err := c.backend.GetData(ctx, token)
	if err != nil {
		if api.IsUnauthorized(err) {
			c.Logout()
		} else {
			log.Err(err).Msg("Failed to fetch user data")
		}
		return apperrors.Wrapf(err, "dashboard load")
	}

	c.state = c.state.Merge(patch)
	c.Render()
	return nil
}

// Render writes the state and the progress ring to the view.
func (c *Controller) Render() {
	c.view.ShowState(c.state, NewRing(c.state.Consumed, c.state.Goal, c.radius))
}

// AddWater increments consumed, renders at once and then saves. The local
// increment is kept even if the save fails. Amounts that would overflow the
// running total are rejected.
func (c *Controller) AddWater(ctx context.Context, amount int) error {
	if amount <= 0 || amount > math.MaxInt-c.state.Consumed {
		return apperrors.Wrapf(apperrors.ErrInvalidAmount, "add water %d", amount)
	}
	c.state.Consumed += amount
	c.Render()
	return c.Save(ctx)
}

// ChooseAmount handles a pick in the add-water panel: the water is added and
// the panel closes.
func (c *Controller) ChooseAmount(ctx context.Context, amount int) error {
	err := c.AddWater(ctx, amount)
	if apperrors.Is(err, apperrors.ErrInvalidAmount) {
		return err
	}
	c.Close(ModalAddWater)
	return err
}

// Save pushes the full state to the backend. Failures are logged and
// returned; a 401 also logs the user out. Local state is never rolled back.
func (c *Controller) Save(ctx context.Context) error {
	token, ok := c.session.Token()
	if !ok {
		log.Warn().Msg("Save skipped: no session token")
		return apperrors.ErrNoToken
	}

	if err := c.backend.SaveData(ctx, token, c.state); err != nil {
		log.Err(err).Int("consumed", c.state.Consumed).Int("goal", c.state.Goal).Msg("Failed to save user data")
		if api.IsUnauthorized(err) {
			c.Logout()
		}
		return apperrors.Wrapf(err, "dashboard save")
	}
	return nil
}

// OpenSettings pre-fills the goal input and shows the settings panel.
func (c *Controller) OpenSettings() {
	c.view.SetGoalInput(c.state.Goal)
	c.Open(ModalSettings)
}

// SaveSettings accepts a strictly positive integer goal, renders, saves and
// closes the panel. Anything else is rejected without touching the state.
func (c *Controller) SaveSettings(ctx context.Context, input string) error {
	goal, ok := parseLeadingInt(input)
	if !ok || goal <= 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidGoal, "goal %q", input)
	}

	c.state.Goal = goal
	c.Render()
	err := c.Save(ctx)
	c.Close(ModalSettings)
	return err
}

// Logout clears the session token and goes to the login page.
func (c *Controller) Logout() {
	c.session.Logout(c.view)
}

// parseLeadingInt reads an optionally signed integer prefix, ignoring
// leading whitespace and any trailing characters ("2500ml" is 2500).
// Prefixes too large for an int are rejected.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
