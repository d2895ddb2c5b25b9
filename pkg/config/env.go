package config

const (
	EnvPrefix = "KANVAH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres   = "postgres"
	DriverSQLite     = "sqlite"
	defaultSQLiteDSN = "file:kanvah.db?cache=shared&_foreign_keys=on"

	EnvAppEnv   = "KANVAH_APP_ENV"
	EnvPort     = "KANVAH_APP_PORT"
	EnvLogLevel = "KANVAH_LOG_LEVEL"

	EnvDBDSN    = "KANVAH_DB_DSN"
	EnvDBDriver = "KANVAH_DB_DRIVER"
	EnvDBHost   = "KANVAH_DB_HOST"
	EnvDBUser   = "KANVAH_DB_USER"
	EnvDBName   = "KANVAH_DB_NAME"

	EnvRedisURL = "KANVAH_REDIS_URL"

	EnvJWTSecret              = "KANVAH_JWT_SECRET"
	EnvJWTIssuer              = "KANVAH_JWT_ISSUER"
	EnvJWTExpMins             = "KANVAH_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "KANVAH_REFRESH_TOKEN_TTL_MINUTES"

	EnvCheckoutTaxRate          = "KANVAH_CHECKOUT_TAX_RATE"
	EnvCheckoutFreeShipping     = "KANVAH_CHECKOUT_FREE_SHIPPING_THRESHOLD"
	EnvCheckoutStandardShipping = "KANVAH_CHECKOUT_STANDARD_SHIPPING"
	EnvCheckoutExpressShipping  = "KANVAH_CHECKOUT_EXPRESS_SHIPPING"
	EnvCheckoutProcessingDelay  = "KANVAH_CHECKOUT_PROCESSING_DELAY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
