package i18n

// Message catalog keys.
const (
	KeySiteName = "site.name"
	KeyTitle    = "site.title"

	KeyLandingHeading = "landing.heading"
	KeyLandingBody    = "landing.body"
	KeyNavLogin       = "nav.login"
	KeyNavSignup      = "nav.signup"
	KeyNavLogout      = "nav.logout"

	KeyLoginTitle     = "login.title"
	KeyLoginSubmit    = "login.submit"
	KeyLoginSuccess   = "login.success"
	KeyLoginFailed    = "login.failed"
	KeyLoginNoAccount = "login.no_account"

	KeySignupTitle      = "signup.title"
	KeySignupSubmit     = "signup.submit"
	KeySignupSuccess    = "signup.success"
	KeySignupFailed     = "signup.failed"
	KeySignupHasAccount = "signup.has_account"

	KeyFieldName     = "field.name"
	KeyFieldEmail    = "field.email"
	KeyFieldPassword = "field.password"

	KeyNameRequired     = "validation.name_required"
	KeyEmailRequired    = "validation.email_required"
	KeyPasswordRequired = "validation.password_required"
	KeyPasswordTooShort = "validation.password_too_short"

	KeyDashboardTitle     = "dashboard.title"
	KeyDashboardSignedIn  = "dashboard.signed_in_as"
	KeyDashboardDownload  = "dashboard.download_csv"
	KeyDashboardSearch    = "dashboard.search_placeholder"
	KeyDashboardCountries = "dashboard.all_countries"
	KeyDashboardStart     = "dashboard.start_date"
	KeyDashboardEnd       = "dashboard.end_date"
	KeyDashboardFilter    = "dashboard.filter_placeholder"
	KeyDashboardOrder     = "dashboard.order_placeholder"
	KeyDashboardApply     = "dashboard.apply"
	KeyDashboardReset     = "dashboard.reset"
	KeyDashboardEmpty     = "dashboard.empty"
	KeyDashboardSummary   = "dashboard.summary"
	KeyDashboardPrevious  = "dashboard.previous"
	KeyDashboardNext      = "dashboard.next"
	KeyDashboardBadQuery  = "dashboard.invalid_query"
	KeySessionExpired     = "session.expired"

	KeyErrorNotFoundTitle   = "error.not_found_title"
	KeyErrorServerTitle     = "error.server_title"
	KeyErrorNotFoundMessage = "error.not_found_message"
	KeyErrorServerMessage   = "error.server_message"
	KeyErrorBackHome        = "error.back_home"
)
