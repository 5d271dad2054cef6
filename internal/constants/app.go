package constants

// Application Information
const (
	AppName    = "Brevetti Records Service"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Cache Key Prefixes
const (
	CacheKeyPrefix       = "brevetti:"
	CacheKeyPatentStats  = CacheKeyPrefix + "stats:patents"
	CacheKeyHolderStats  = CacheKeyPrefix + "stats:holders"
	CacheKeyStatsPattern = CacheKeyPrefix + "stats:*"
)

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
