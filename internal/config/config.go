package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/garrettladley/thoura/internal/xslog"
)

type Config struct {
	LogLevel xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Oura     Oura        `envPrefix:"OURA_"`
	Archive  Archive     `envPrefix:"ARCHIVE_"`
}

type Oura struct {
	AccessToken string        `env:"ACCESS_TOKEN,required"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.ouraring.com/v1"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Archive.DSN selects the export sink. Empty means the SQLite file under the
// thoura config directory.
type Archive struct {
	DSN string `env:"DSN"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
