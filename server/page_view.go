package server

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-aqua-client/aquamodel"
	"github.com/jrsteele09/go-aqua-client/dashboard"
	"github.com/jrsteele09/go-aqua-client/login"
	"github.com/jrsteele09/go-aqua-client/pages"
	"github.com/jrsteele09/go-aqua-client/statistics"
)

var (
	_ login.View      = (*pageView)(nil)
	_ dashboard.View  = (*pageView)(nil)
	_ statistics.View = (*pageView)(nil)
)

// pageView collects what a controller displayed during one request. The
// handler then either follows the navigation or renders the page from it.
type pageView struct {
	navigatedTo string
	errorMsg    string
	notice      string

	state     aquamodel.State
	ring      dashboard.Ring
	goalInput int
	modals    map[dashboard.Modal]bool

	stats *aquamodel.Statistics
}

func newPageView() *pageView {
	return &pageView{
		modals: make(map[dashboard.Modal]bool),
	}
}

// Navigate records the first navigation; later ones are ignored since the
// browser can only follow one.
func (v *pageView) Navigate(page pages.Page) {
	if v.navigatedTo == "" {
		v.navigatedTo = page.String()
	}
}

func (v *pageView) ShowError(message string) {
	v.errorMsg = message
}

func (v *pageView) Notify(message string) {
	v.notice = message
}

func (v *pageView) ShowState(state aquamodel.State, ring dashboard.Ring) {
	v.state = state
	v.ring = ring
}

func (v *pageView) SetGoalInput(goal int) {
	v.goalInput = goal
}

func (v *pageView) ShowModal(m dashboard.Modal, visible bool) {
	v.modals[m] = visible
}

func (v *pageView) ShowStatistics(stats aquamodel.Statistics) {
	v.stats = &stats
}

// followNavigation redirects when the controller navigated. A pending notice
// travels with the redirect so the next page can show it.
func (v *pageView) followNavigation(w http.ResponseWriter, r *http.Request) bool {
	if v.navigatedTo == "" {
		return false
	}
	target := v.navigatedTo
	if v.notice != "" {
		target += "?" + url.Values{queryMessage: {v.notice}}.Encode()
	}
	redirectSuccess(w, r, target)
	return true
}
