package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/akshat7606/QuickC/pkg/mapmyindia"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// MapMyIndia credentials. Either scheme alone is enough; with both, the
	// static key is tried first.
	MapMyIndiaStaticKey    string `env:"MAPMYINDIA_STATIC_KEY"`
	MapMyIndiaClientID     string `env:"MAPMYINDIA_CLIENT_ID"`
	MapMyIndiaClientSecret string `env:"MAPMYINDIA_CLIENT_SECRET"`

	MapMyIndiaDebug      bool   `env:"MAPMYINDIA_DEBUG" envDefault:"false"`
	MapMyIndiaAdminToken string `env:"MAPMYINDIA_ADMIN_TOKEN"` // empty disables /v1/mapmyindia/logs
	MapMyIndiaLogFile    string `env:"MAPMYINDIA_LOG_FILE" envDefault:"mapmyindia_failures.log"`
	MapMyIndiaLogMax     int    `env:"MAPMYINDIA_LOG_MAX_ENTRIES" envDefault:"5000"` // 0 keeps everything

	MapMyIndiaRestBaseURL  string `env:"MAPMYINDIA_REST_BASE_URL" envDefault:"https://apis.mapmyindia.com/advancedmaps/v1"`
	MapMyIndiaAtlasBaseURL string `env:"MAPMYINDIA_ATLAS_BASE_URL" envDefault:"https://atlas.mapmyindia.com/api/places"`
	MapMyIndiaTokenURL     string `env:"MAPMYINDIA_TOKEN_URL" envDefault:"https://outpost.mapmyindia.com/api/security/oauth/token"`

	FrontendOrigins string `env:"FRONTEND_ORIGINS" envDefault:"http://localhost:5173"` // comma separated
	DatabaseFile    string `env:"CAB_DATABASE_FILE" envDefault:"cab_aggregator.db"`
	DriversFile     string `env:"CAB_DRIVERS_FILE"` // optional, overrides the embedded roster

	Env                  string        `env:"ENV" envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                 int           `env:"PORT" envDefault:"5000"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads an optional dotenv file, then the environment. Variables
// already set in the environment win over the file. An explicit envFile
// must exist; the default ".env" may be absent.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.MapMyIndiaLogMax < 0 {
		return errors.New("MAPMYINDIA_LOG_MAX_ENTRIES must not be negative")
	}
	if strings.TrimSpace(c.MapMyIndiaLogFile) == "" {
		return errors.New("MAPMYINDIA_LOG_FILE must not be empty")
	}
	if strings.TrimSpace(c.DatabaseFile) == "" {
		return errors.New("CAB_DATABASE_FILE must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.ShutdownGracePeriod <= 0 {
		return errors.New("SHUTDOWN_GRACE_PERIOD must be positive")
	}
	return nil
}

// Credentials returns the MapMyIndia credential set.
func (c Config) Credentials() mapmyindia.Credentials {
	return mapmyindia.Credentials{
		StaticKey:    c.MapMyIndiaStaticKey,
		ClientID:     c.MapMyIndiaClientID,
		ClientSecret: c.MapMyIndiaClientSecret,
	}
}

// Secrets are the configured values that must never be logged.
func (c Config) Secrets() []string {
	return append(c.Credentials().Secrets(), c.MapMyIndiaAdminToken)
}
