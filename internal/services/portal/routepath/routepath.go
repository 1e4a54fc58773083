// Package routepath stores canonical HTTP paths for portal modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Login           = "/login"
	Signup          = "/signup"
	Logout          = "/logout"
	Health          = "/up"
	Metrics         = "/metrics"
	StaticPrefix    = "/static/"
	LegacyDashboard = "/dashboard"
	AppPrefix       = "/app/"
	AppDashboard    = "/app/dashboard"
	DashboardPrefix = "/app/dashboard/"
	DashboardExport = "/app/dashboard/export.csv"
)

// AppDashboardWithQuery returns the dashboard route carrying query values.
func AppDashboardWithQuery(values url.Values) string {
	return withQuery(AppDashboard, values)
}

// DashboardExportWithQuery returns the CSV export route carrying query values.
func DashboardExportWithQuery(values url.Values) string {
	return withQuery(DashboardExport, values)
}

func withQuery(path string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Label returns a bounded route label for metrics.
func Label(path string) string {
	path = strings.TrimSpace(path)
	switch path {
	case Root, Login, Signup, Logout, Health, Metrics, LegacyDashboard, AppDashboard, DashboardExport:
		return path
	}
	switch {
	case strings.HasPrefix(path, StaticPrefix):
		return StaticPrefix
	case strings.HasPrefix(path, AppPrefix):
		return AppPrefix
	default:
		return "other"
	}
}
