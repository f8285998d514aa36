// Package constants holds configuration enum values.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Persistence drivers
const (
	PersistenceDriverMemory    = "memory"
	PersistenceDriverPostgres  = "postgres"
	PersistenceDriverFirestore = "firestore"
	PersistenceDriverMongo     = "mongo"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token verifiers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Review resubmission policies
const (
	// ResubmitPolicyReplace swaps the user's previous rating for the new one.
	ResubmitPolicyReplace = "replace"
	// ResubmitPolicyAccumulate counts every submission, including edits.
	ResubmitPolicyAccumulate = "accumulate"
)
