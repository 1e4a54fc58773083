package i18n

import "golang.org/x/text/message"

func init() {
	lang := italian

	message.SetString(lang, KeySiteName, "Portale Maitri Healthcare")
	message.SetString(lang, KeyTitle, "%s | Portale Maitri Healthcare")

	message.SetString(lang, KeyLandingHeading, "Benvenuto nel Portale Maitri Healthcare")
	message.SetString(lang, KeyLandingBody, "Accedi per consultare i dettagli nella Dashboard")
	message.SetString(lang, KeyNavLogin, "Accedi")
	message.SetString(lang, KeyNavSignup, "Registrati")
	message.SetString(lang, KeyNavLogout, "Esci")

	message.SetString(lang, KeyLoginTitle, "Accesso")
	message.SetString(lang, KeyLoginSubmit, "Accedi")
	message.SetString(lang, KeyLoginSuccess, "Accesso effettuato!")
	message.SetString(lang, KeyLoginFailed, "Accesso non riuscito")
	message.SetString(lang, KeyLoginNoAccount, "Non hai un account?")

	message.SetString(lang, KeySignupTitle, "Registrazione")
	message.SetString(lang, KeySignupSubmit, "Registrati")
	message.SetString(lang, KeySignupSuccess, "Registrazione completata!")
	message.SetString(lang, KeySignupFailed, "Registrazione non riuscita")
	message.SetString(lang, KeySignupHasAccount, "Sei già registrato?")

	message.SetString(lang, KeyFieldName, "Nome")
	message.SetString(lang, KeyFieldEmail, "Email")
	message.SetString(lang, KeyFieldPassword, "Password")

	message.SetString(lang, KeyNameRequired, "Il nome è obbligatorio")
	message.SetString(lang, KeyEmailRequired, "L'email è obbligatoria")
	message.SetString(lang, KeyPasswordRequired, "La password è obbligatoria")
	message.SetString(lang, KeyPasswordTooShort, "La password deve contenere almeno 6 caratteri")

	message.SetString(lang, KeyDashboardTitle, "Dashboard Maitri Italia")
	message.SetString(lang, KeyDashboardSignedIn, "Accesso come %s")
	message.SetString(lang, KeyDashboardDownload, "Scarica CSV")
	message.SetString(lang, KeyDashboardSearch, "Cerca nome/email")
	message.SetString(lang, KeyDashboardCountries, "Tutti i paesi")
	message.SetString(lang, KeyDashboardStart, "Dal")
	message.SetString(lang, KeyDashboardEnd, "Al")
	message.SetString(lang, KeyDashboardFilter, `Filtro avanzato, es. docs_ready = "Yes"`)
	message.SetString(lang, KeyDashboardOrder, "Ordina per, es. created_at desc")
	message.SetString(lang, KeyDashboardApply, "Applica")
	message.SetString(lang, KeyDashboardReset, "Azzera")
	message.SetString(lang, KeyDashboardEmpty, "Nessuna candidatura trovata.")
	message.SetString(lang, KeyDashboardSummary, "%d candidature")
	message.SetString(lang, KeyDashboardPrevious, "Precedente")
	message.SetString(lang, KeyDashboardNext, "Successiva")
	message.SetString(lang, KeyDashboardBadQuery, "Filtri non applicati: %s")
	message.SetString(lang, KeySessionExpired, "Sessione scaduta o non autorizzata")

	message.SetString(lang, KeyErrorNotFoundTitle, "Pagina non trovata")
	message.SetString(lang, KeyErrorServerTitle, "Si è verificato un errore")
	message.SetString(lang, KeyErrorNotFoundMessage, "La pagina richiesta non esiste.")
	message.SetString(lang, KeyErrorServerMessage, "Riprova tra qualche istante.")
	message.SetString(lang, KeyErrorBackHome, "Torna alla home")
}
