package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port            int           `default:"8080"`
	ShutdownTimeout time.Duration `default:"10s"`
}

type Integrations struct {
	Beer           []string `default:"untappd_web"`
	UntappdBaseURL string   `default:"https://untappd.com"`
}

// Rules holds the rolling windows that throttle a user's writes.
type Rules struct {
	BeerWindow   time.Duration `default:"24h"`
	RatingWindow time.Duration `default:"168h"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Rules        Rules
}

const envPrefix = "BEERREVIEW" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Rules.BeerWindow <= 0 || config.Rules.RatingWindow <= 0 {
		return nil, fmt.Errorf("%w: rule windows must be positive", ErrConfiguration)
	}

	return &config, nil
}
