package server

import (
	"net/http"

	"github.com/jrsteele09/go-aqua-client/aquamodel"
	"github.com/jrsteele09/go-aqua-client/statistics"
)

// StatisticsPageData contains data for rendering the statistics page
type StatisticsPageData struct {
	AppName string
	Loaded  bool
	Stats   aquamodel.Statistics
}

// StatisticsPageHandler renders the statistics page (GET /statistics)
func (s *Server) StatisticsPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("statistics.html")

	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()
		ctrl := statistics.New(s.api, s.newSession(w, r), view)
		if !ctrl.Guard() {
			view.followNavigation(w, r)
			return
		}

		// Failures are logged by the controller; the page keeps its placeholders
		_ = ctrl.Load(r.Context())
		if view.followNavigation(w, r) {
			return
		}

		data := StatisticsPageData{AppName: s.config.GetAppName()}
		if view.stats != nil {
			data.Loaded = true
			data.Stats = *view.stats
		}
		renderPage(w, tmpl, http.StatusOK, data)
	}
}
