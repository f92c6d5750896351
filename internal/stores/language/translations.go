package language

// UI string tables. A lookup for a key missing from the active table returns
// the key itself, so a forgotten translation never crashes a screen.
var translations = map[string]map[string]string{
	"da": {
		// Navigation
		"home":     "Hjem",
		"camera":   "Scan",
		"results":  "Resultater",
		"profile":  "Profil",
		"settings": "Indstillinger",

		// Home
		"readyToScan":     "Er du klar til at scanne?",
		"scanDescription": "Med kamera-scanneren kan du hurtigt finde prisen på en vare - uden at skulle søge manuelt.",
		"scanNow":         "Scan nu",

		// Profile
		"memberSince": "Medlem siden",
		"scans":       "Scans",
		"favorites":   "Favoritter",
		"elo":         "Elo",
		"recentScans": "Seneste scans",
		"noScansYet":  "Ingen scans endnu. Start med at scanne for at se din historik her!",
		"loading":     "Indlæser...",

		// Settings
		"back":             "Tilbage",
		"logout":           "Log ud",
		"addNewUser":       "Tilføj ny bruger",
		"deleteProfile":    "Slet profil",
		"profileSettings":  "Profilindstillinger",
		"notifications":    "Notifikationer",
		"languageAndTheme": "Sprog og tema",
		"footerText":       "Sammenlign priser fra flere butikker - direkte efter du scanner varen.",

		// Language settings
		"language":       "Sprog",
		"selectLanguage": "Vælg sprog",
		"danish":         "Dansk",
		"english":        "Engelsk",

		// Auth
		"scana":          "Scana",
		"scanOnTheGo":    "Scan på farten!",
		"email":          "Email",
		"password":       "Kodeord",
		"login":          "Log ind",
		"signup":         "Tilmeld dig",
		"welcomeBack":    "Velkommen tilbage til Scana!",
		"dontHaveAccount": "Har du ikke en konto?",
		"createAccount":  "Opret konto",
		"haveAccount":    "Har du en bruger? Login",

		// Scan flow
		"processing":  "Behandler...",
		"analyzing":   "Analyserer produkt...",
		"identifying": "Identificerer produkt...",
		"searching":   "Søger priser...",
		"success":     "Succes!",

		// Results
		"bestOffers":          "Bedste tilbud",
		"addToFavorites":      "Tilføj til favoritter",
		"removeFromFavorites": "Fjern fra favoritter",
		"shipping":            "Fragt",
		"deliveryTime":        "Leveringstid",
		"rating":              "Bedømmelse",
		"reviews":             "anmeldelser",

		// Common
		"cancel":  "Annuller",
		"confirm": "Bekræft",
		"save":    "Gem",
		"delete":  "Slet",
	},
	"en": {
		// Navigation
		"home":     "Home",
		"camera":   "Scan",
		"results":  "Results",
		"profile":  "Profile",
		"settings": "Settings",

		// Home
		"readyToScan":     "Ready to scan?",
		"scanDescription": "With the camera scanner you can quickly find the price of an item - without having to search manually.",
		"scanNow":         "Scan Now",

		// Profile
		"memberSince": "Member since",
		"scans":       "Scans",
		"favorites":   "Favorites",
		"elo":         "Elo",
		"recentScans": "Recent Scans",
		"noScansYet":  "No scans yet. Start scanning to see your history here!",
		"loading":     "Loading...",

		// Settings
		"back":             "Back",
		"logout":           "Log out",
		"addNewUser":       "Add new user",
		"deleteProfile":    "Delete profile",
		"profileSettings":  "Profile settings",
		"notifications":    "Notifications",
		"languageAndTheme": "Language and theme",
		"footerText":       "Compare prices from several stores - right after you scan the item.",

		// Language settings
		"language":       "Language",
		"selectLanguage": "Select language",
		"danish":         "Danish",
		"english":        "English",

		// Auth
		"scana":          "Scana",
		"scanOnTheGo":    "Scan on the go!",
		"email":          "Email",
		"password":       "Password",
		"login":          "Log in",
		"signup":         "Sign up",
		"welcomeBack":    "Welcome back to Scana!",
		"dontHaveAccount": "Don't have an account?",
		"createAccount":  "Create account",
		"haveAccount":    "Already have an account? Log in",

		// Scan flow
		"processing":  "Processing...",
		"analyzing":   "Analyzing product...",
		"identifying": "Identifying product...",
		"searching":   "Searching prices...",
		"success":     "Success!",

		// Results
		"bestOffers":          "Best offers",
		"addToFavorites":      "Add to favorites",
		"removeFromFavorites": "Remove from favorites",
		"shipping":            "Shipping",
		"deliveryTime":        "Delivery time",
		"rating":              "Rating",
		"reviews":             "reviews",

		// Common
		"cancel":  "Cancel",
		"confirm": "Confirm",
		"save":    "Save",
		"delete":  "Delete",
	},
}
