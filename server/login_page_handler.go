package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/login"
	"github.com/jrsteele09/go-aqua-client/pages"
)

// AuthPageData contains data for rendering the login and registration pages
type AuthPageData struct {
	AppName  string
	Register bool
	Error    string
	Notice   string // Confirmation carried over from a previous page
	Email    string // Preserve email on error
}

// LoginPageUIHandler displays the login page (GET /login)
func (s *Server) LoginPageUIHandler() http.HandlerFunc {
	return s.authPageHandler("login.html", false)
}

// RegisterPageUIHandler displays the registration page (GET /register)
func (s *Server) RegisterPageUIHandler() http.HandlerFunc {
	return s.authPageHandler("register.html", true)
}

func (s *Server) authPageHandler(templateName string, register bool) http.HandlerFunc {
	tmpl := mustParseTemplate(templateName)

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		data := AuthPageData{
			AppName:  s.config.GetAppName(),
			Register: register,
			Error:    query.Get(queryError),
			Notice:   query.Get(queryMessage),
			Email:    query.Get(queryEmail),
		}
		renderPage(w, tmpl, http.StatusOK, data)
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login)
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return s.authSubmissionHandler(login.ModeLogin, pages.Login)
}

// RegisterSubmissionHandler processes the registration form submission (POST /register)
func (s *Server) RegisterSubmissionHandler() http.HandlerFunc {
	return s.authSubmissionHandler(login.ModeRegister, pages.Register)
}

func (s *Server) authSubmissionHandler(mode login.Mode, formPage pages.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		view := newPageView()
		ctrl := login.New(s.api, s.newSession(w, r), view)
		if err := ctrl.Submit(r.Context(), mode, email, password); err != nil {
			log.Err(err).Str("mode", mode.String()).Msg("Authentication failed")
			redirectWithError(w, r, formPage, view.errorMsg, email)
			return
		}

		if !view.followNavigation(w, r) {
			redirectSuccess(w, r, formPage.String())
		}
	}
}
