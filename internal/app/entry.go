package app

import (
	"net/http"
	"strings"
)

const (
	// LoggedInFlag marks an active admin session. Presence alone counts; the
	// value is never validated.
	LoggedInFlag = "admin_logged_in"

	DashboardPath = "/dashboard"
	LoginPath     = "/login"
)

type FlagReader interface {
	Lookup(key string) (string, bool)
}

type Navigator interface {
	Navigate(path string)
}

// RouteEntry sends the visitor to the dashboard when the logged-in flag is
// set and to the login page otherwise. It navigates exactly once.
func RouteEntry(flags FlagReader, nav Navigator) {
	if value, ok := flags.Lookup(LoggedInFlag); ok && value != "" {
		nav.Navigate(DashboardPath)
		return
	}

	nav.Navigate(LoginPath)
}

// cookieFlags exposes request cookies as persisted flags.
type cookieFlags struct {
	r *http.Request
}

func (f cookieFlags) Lookup(key string) (string, bool) {
	c, err := f.r.Cookie(key)
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(c.Value), true
}

// redirectNavigator answers the request with a bodiless redirect.
type redirectNavigator struct {
	w http.ResponseWriter
}

func (n redirectNavigator) Navigate(path string) {
	n.w.Header().Set("Location", path)
	n.w.WriteHeader(http.StatusFound)
}

func entry(w http.ResponseWriter, r *http.Request) {
	RouteEntry(cookieFlags{r: r}, redirectNavigator{w: w})
}
