package server

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/aquamodel"
	"github.com/jrsteele09/go-aqua-client/dashboard"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
	"github.com/jrsteele09/go-aqua-client/pages"
)

// ringStrokeWidth matches .progress-ring-fill in style.css
const ringStrokeWidth = 14

// WaterAmounts are the choices offered in the add-water panel, in millilitres
var WaterAmounts = []int{250, 500, 750, 1000}

// DashboardPageData contains data for rendering the dashboard
type DashboardPageData struct {
	AppName      string
	State        aquamodel.State
	Ring         dashboard.Ring
	Percent      int
	RingSize     float64
	RingCenter   float64
	Amounts      []int
	GoalInput    string
	AddWaterOpen bool
	SettingsOpen bool
}

func (s *Server) newDashboard(w http.ResponseWriter, r *http.Request, view *pageView) *dashboard.Controller {
	return dashboard.New(s.api, s.newSession(w, r), view, dashboard.WithRingRadius(s.config.GetRingRadius()))
}

// loadDashboard guards the page and fetches the state. It returns false when
// the response has already been written. Actions that mutate the state stop
// when the load failed, since saving would overwrite the backend record with
// the page defaults.
func (s *Server) loadDashboard(w http.ResponseWriter, r *http.Request, view *pageView, mutating bool) (*dashboard.Controller, bool) {
	ctrl := s.newDashboard(w, r, view)
	if !ctrl.Guard() {
		view.followNavigation(w, r)
		return nil, false
	}
	if err := ctrl.Load(r.Context()); err != nil {
		if view.followNavigation(w, r) {
			return nil, false
		}
		if mutating {
			redirectSuccess(w, r, pages.Dashboard.String())
			return nil, false
		}
		ctrl.Render()
	}
	return ctrl, true
}

func (s *Server) dashboardData(view *pageView) DashboardPageData {
	goalInput := ""
	if view.goalInput > 0 {
		goalInput = strconv.Itoa(view.goalInput)
	}
	return DashboardPageData{
		AppName:      s.config.GetAppName(),
		State:        view.state,
		Ring:         view.ring,
		Percent:      view.ring.Percent(),
		RingSize:     2 * (view.ring.Radius + ringStrokeWidth),
		RingCenter:   view.ring.Radius + ringStrokeWidth,
		Amounts:      WaterAmounts,
		GoalInput:    goalInput,
		AddWaterOpen: view.modals[dashboard.ModalAddWater],
		SettingsOpen: view.modals[dashboard.ModalSettings],
	}
}

// DashboardPageHandler renders the dashboard (GET /). ?modal=add-water or
// ?modal=settings opens the matching panel.
func (s *Server) DashboardPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()
		ctrl, ok := s.loadDashboard(w, r, view, false)
		if !ok {
			return
		}

		if m, ok := dashboard.ParseModal(r.URL.Query().Get(queryModal)); ok {
			if m == dashboard.ModalSettings {
				ctrl.OpenSettings()
			} else {
				ctrl.Open(m)
			}
		}

		renderPage(w, tmpl, http.StatusOK, s.dashboardData(view))
	}
}

// AddWaterHandler adds the chosen amount (POST /water). Only the amounts
// offered in the panel are accepted.
func (s *Server) AddWaterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		ctrl, ok := s.loadDashboard(w, r, view, true)
		if !ok {
			return
		}

		amount, err := strconv.Atoi(r.FormValue("amount"))
		if err != nil || !slices.Contains(WaterAmounts, amount) {
			log.Warn().Str("amount", r.FormValue("amount")).Msg("Ignoring amount not offered in the panel")
			redirectSuccess(w, r, pages.Dashboard.String())
			return
		}

		if err := ctrl.ChooseAmount(r.Context(), amount); err != nil {
			log.Err(err).Int("amount", amount).Msg("Add water did not complete")
		}
		if !view.followNavigation(w, r) {
			redirectSuccess(w, r, pages.Dashboard.String())
		}
	}
}

// SaveSettingsHandler updates the daily goal (POST /settings). A rejected
// goal re-renders the dashboard with the settings panel still open.
func (s *Server) SaveSettingsHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		ctrl, ok := s.loadDashboard(w, r, view, true)
		if !ok {
			return
		}

		input := r.FormValue("goal")
		ctrl.OpenSettings()
		err := ctrl.SaveSettings(r.Context(), input)
		if apperrors.Is(err, apperrors.ErrInvalidGoal) {
			data := s.dashboardData(view)
			data.GoalInput = input
			renderPage(w, tmpl, http.StatusUnprocessableEntity, data)
			return
		}
		if err != nil {
			log.Err(err).Msg("Save settings did not complete")
		}
		if !view.followNavigation(w, r) {
			redirectSuccess(w, r, pages.Dashboard.String())
		}
	}
}

// LogoutHandler clears the session token (GET /logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()
		s.newDashboard(w, r, view).Logout()
		view.followNavigation(w, r)
	}
}
