package i18n

import "golang.org/x/text/message"

func init() {
	lang := english

	message.SetString(lang, KeySiteName, "Maitri Healthcare Portal")
	message.SetString(lang, KeyTitle, "%s | Maitri Healthcare Portal")

	message.SetString(lang, KeyLandingHeading, "Welcome to Maitri Healthcare Portal")
	message.SetString(lang, KeyLandingBody, "Please Login to view the Details via Dashboard")
	message.SetString(lang, KeyNavLogin, "Login")
	message.SetString(lang, KeyNavSignup, "Signup")
	message.SetString(lang, KeyNavLogout, "Logout")

	message.SetString(lang, KeyLoginTitle, "Login")
	message.SetString(lang, KeyLoginSubmit, "Login")
	message.SetString(lang, KeyLoginSuccess, "Login successful!")
	message.SetString(lang, KeyLoginFailed, "Login failed")
	message.SetString(lang, KeyLoginNoAccount, "No account yet?")

	message.SetString(lang, KeySignupTitle, "Signup")
	message.SetString(lang, KeySignupSubmit, "Signup")
	message.SetString(lang, KeySignupSuccess, "Signup successful!")
	message.SetString(lang, KeySignupFailed, "Signup failed")
	message.SetString(lang, KeySignupHasAccount, "Already registered?")

	message.SetString(lang, KeyFieldName, "Name")
	message.SetString(lang, KeyFieldEmail, "Email")
	message.SetString(lang, KeyFieldPassword, "Password")

	message.SetString(lang, KeyNameRequired, "Name is required")
	message.SetString(lang, KeyEmailRequired, "Email is required")
	message.SetString(lang, KeyPasswordRequired, "Password is required")
	message.SetString(lang, KeyPasswordTooShort, "Password must be at least 6 characters")

	message.SetString(lang, KeyDashboardTitle, "Maitri Italy Dashboard")
	message.SetString(lang, KeyDashboardSignedIn, "Signed in as %s")
	message.SetString(lang, KeyDashboardDownload, "Download CSV")
	message.SetString(lang, KeyDashboardSearch, "Search name/email")
	message.SetString(lang, KeyDashboardCountries, "All Countries")
	message.SetString(lang, KeyDashboardStart, "From")
	message.SetString(lang, KeyDashboardEnd, "To")
	message.SetString(lang, KeyDashboardFilter, `Advanced filter, e.g. docs_ready = "Yes"`)
	message.SetString(lang, KeyDashboardOrder, "Order by, e.g. created_at desc")
	message.SetString(lang, KeyDashboardApply, "Apply")
	message.SetString(lang, KeyDashboardReset, "Reset")
	message.SetString(lang, KeyDashboardEmpty, "No submissions found.")
	message.SetString(lang, KeyDashboardSummary, "%d submissions")
	message.SetString(lang, KeyDashboardPrevious, "Previous")
	message.SetString(lang, KeyDashboardNext, "Next")
	message.SetString(lang, KeyDashboardBadQuery, "Filters not applied: %s")
	message.SetString(lang, KeySessionExpired, "Session expired or unauthorized")

	message.SetString(lang, KeyErrorNotFoundTitle, "Page not found")
	message.SetString(lang, KeyErrorServerTitle, "Something went wrong")
	message.SetString(lang, KeyErrorNotFoundMessage, "The page you requested does not exist.")
	message.SetString(lang, KeyErrorServerMessage, "Please try again in a moment.")
	message.SetString(lang, KeyErrorBackHome, "Back to home")
}
