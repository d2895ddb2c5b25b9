package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Checkout      CheckoutConfig
	Reviews       ReviewsConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KANVAH_APP_ENV" required:"true"`
	Port         string `envconfig:"KANVAH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KANVAH_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"KANVAH_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"KANVAH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KANVAH_DB_DSN"`
	Driver string `envconfig:"KANVAH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"KANVAH_DB_HOST"`
	LegacyPort     int    `envconfig:"KANVAH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"KANVAH_DB_USER"`
	LegacyPassword string `envconfig:"KANVAH_DB_PASSWORD"`
	LegacyName     string `envconfig:"KANVAH_DB_NAME"`
	LegacySSLMode  string `envconfig:"KANVAH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KANVAH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KANVAH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KANVAH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KANVAH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver targets an embedded SQLite file.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"KANVAH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"KANVAH_REDIS_ADDR"`
	Password     string        `envconfig:"KANVAH_REDIS_PASSWORD"`
	DB           int           `envconfig:"KANVAH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KANVAH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KANVAH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KANVAH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KANVAH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KANVAH_REDIS_WRITE_TIMEOUT" default:"5s"`
	Namespace    string        `envconfig:"KANVAH_REDIS_NAMESPACE" default:"kanvah"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"KANVAH_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"KANVAH_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"KANVAH_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"KANVAH_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// AccessTTL is how long a minted access token stays valid.
func (j JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KANVAH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KANVAH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KANVAH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KANVAH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KANVAH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"KANVAH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"KANVAH_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"KANVAH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"KANVAH_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"KANVAH_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"KANVAH_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate  bool `envconfig:"KANVAH_AUTO_MIGRATE" default:"false"`
	SeedDemoData bool `envconfig:"KANVAH_SEED_DEMO_DATA" default:"true"`
}

type CheckoutConfig struct {
	TaxRate               string        `envconfig:"KANVAH_CHECKOUT_TAX_RATE" default:"0.08"`
	FreeShippingThreshold string        `envconfig:"KANVAH_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"150"`
	StandardShipping      string        `envconfig:"KANVAH_CHECKOUT_STANDARD_SHIPPING" default:"12.99"`
	ExpressShipping       string        `envconfig:"KANVAH_CHECKOUT_EXPRESS_SHIPPING" default:"24.99"`
	ProcessingDelay       time.Duration `envconfig:"KANVAH_CHECKOUT_PROCESSING_DELAY" default:"2s"`
	SessionTTL            time.Duration `envconfig:"KANVAH_CART_SESSION_TTL" default:"720h"`
}

type ReviewsConfig struct {
	SubmitDelay   time.Duration `envconfig:"KANVAH_REVIEWS_SUBMIT_DELAY" default:"800ms"`
	MaxImageBytes int           `envconfig:"KANVAH_REVIEWS_MAX_IMAGE_BYTES" default:"5242880"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"KANVAH_CORS_ALLOWED_ORIGINS" default:"*"`
}

func (c CheckoutConfig) validate() error {
	amounts := map[string]string{
		EnvCheckoutTaxRate:          c.TaxRate,
		EnvCheckoutFreeShipping:     c.FreeShippingThreshold,
		EnvCheckoutStandardShipping: c.StandardShipping,
		EnvCheckoutExpressShipping:  c.ExpressShipping,
	}
	for env, raw := range amounts {
		if !isDecimalLiteral(raw) {
			return fmt.Errorf("%s must be a non-negative decimal, got %q", env, raw)
		}
	}
	if c.ProcessingDelay < 0 {
		return fmt.Errorf("%s must not be negative", EnvCheckoutProcessingDelay)
	}
	return nil
}

func isDecimalLiteral(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	dot := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot && i > 0:
			dot = true
		default:
			return false
		}
	}
	return true
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = defaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
