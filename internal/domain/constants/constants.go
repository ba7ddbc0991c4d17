// Package constants holds shared enumerations used across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Dispatch signal transports.
const (
	PubSubProviderMemory = "memory"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Roles carried in access tokens.
const (
	RoleUser    = "user"
	RoleService = "service"
)
