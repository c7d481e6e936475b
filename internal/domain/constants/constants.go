package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// AnonUser is written as modifier of history entries created without an acting user.
const AnonUser = "anon"

// Well-known group names used by the access checker.
const (
	GroupAdmin   = "PF_Admin"
	GroupFinance = "PF_Finance"
)

// Job areas.
const (
	JobAreaReindex   = "reindex"
	JobAreaUserPrefs = "userPrefs"
)
