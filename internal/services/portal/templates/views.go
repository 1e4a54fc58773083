package templates

// Toast is a one-time notice shown above page content.
type Toast struct {
	Kind    string
	Message string
}

// LayoutView is the shared page chrome.
type LayoutView struct {
	Title      string
	Lang       string
	Loc        Localizer
	Toast      *Toast
	Email      string
	LogoutPath string
	LoginPath  string
	SignupPath string
	HomePath   string
	StylePath  string
}

// LandingView is the anonymous home page.
type LandingView struct {
	Loc        Localizer
	LoginPath  string
	SignupPath string
}

// FieldErrors maps form field names to localized messages.
type FieldErrors map[string]string

// AuthFormView backs both the login and signup forms.
type AuthFormView struct {
	Loc       Localizer
	Signup    bool
	Action    string
	AltPath   string
	Name      string
	Email     string
	Errors    FieldErrors
	Alert     string
	MinLength int
}

// PageLink is one pagination entry.
type PageLink struct {
	Number int
	URL    string
	Active bool
}

// DashboardFilters echoes the active filter inputs back into the form.
type DashboardFilters struct {
	Search  string
	Country string
	Start   string
	End     string
	Filter  string
	OrderBy string
}

// DashboardView is the submissions table page.
type DashboardView struct {
	Loc         Localizer
	Action      string
	ResetURL    string
	ExportURL   string
	Filters     DashboardFilters
	Countries   []string
	Headers     []string
	Rows        [][]string
	Total       int
	Pages       []PageLink
	PreviousURL string
	NextURL     string
	Error       string
}

// ErrorView is the app error page body.
type ErrorView struct {
	Loc      Localizer
	Status   int
	Heading  string
	Message  string
	HomePath string
}
