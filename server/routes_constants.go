package server

import "github.com/jrsteele09/go-aqua-client/pages"

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Pages
	RouteDashboard  = "/{$}"
	RouteLogin      = string(pages.Login)
	RouteRegister   = string(pages.Register)
	RouteStatistics = string(pages.Statistics)
	RouteLogout     = "/logout"

	// Dashboard actions
	RouteAddWater = "/water"
	RouteSettings = "/settings"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"

	queryError   = "error"
	queryMessage = "message"
	queryEmail   = "email"
	queryModal   = "modal"
)
