package config

import (
	"errors"
	"flag"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	DefaultServerAddr      = "127.0.0.1:8001"
	DefaultLogLevel        = "info"
	DefaultMaxConns        = 16
	DefaultShutdownTimeout = 10 * time.Second
)

var ErrMissingDSN = errors.New("database DSN is not set")

type Config struct {
	ServerAddr      string        `env:"ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_DSN"`
	LogLevel        string        `env:"LOG_LEVEL"`
	MaxConns        int           `env:"MAX_CONNS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Read fills the config from command line flags first, then lets the environment override them.
func Read(args []string) (*Config, error) {
	conf := new(Config)
	flags := flag.NewFlagSet("usercrud", flag.ContinueOnError)
	flags.StringVar(&conf.ServerAddr, "a", DefaultServerAddr, "Server address. Usage: -a=host:port")
	flags.StringVar(&conf.DatabaseDSN, "d", "", "PostgreSQL database DSN")
	flags.StringVar(&conf.LogLevel, "l", DefaultLogLevel, "Log level: debug, info, warning, error")
	flags.IntVar(&conf.MaxConns, "c", DefaultMaxConns, "Maximum number of open database connections")
	flags.DurationVar(&conf.ShutdownTimeout, "t", DefaultShutdownTimeout, "Graceful shutdown timeout")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := env.Parse(conf); err != nil {
		return nil, err
	}
	if conf.DatabaseDSN == "" {
		return nil, ErrMissingDSN
	}
	if conf.MaxConns <= 0 {
		conf.MaxConns = DefaultMaxConns
	}
	return conf, nil
}
