package config

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
)

const (
	BackingMap   = "map"
	BackingCache = "cache"
)

const (
	DefaultAddr      = ":8080"
	DefaultIndexName = "books"
	DefaultMaxCached = 3
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr       string
	RedisUrl   string
	ElasticUrl string
	IndexName  string
	MaxCached  int
	Backing    string
	Debug      bool
}

// Flags returns the command line flags, each also readable from the
// environment.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "addr",
			Value:  DefaultAddr,
			Usage:  "HTTP listen address",
			EnvVar: "LISTEN_ADDR",
		},
		cli.StringFlag{
			Name:   "redis-url",
			Usage:  "redis address for the activity log; in-memory when empty",
			EnvVar: "REDIS_URL",
		},
		cli.StringFlag{
			Name:   "elastic-url",
			Usage:  "elasticsearch URL to mirror books into; disabled when empty",
			EnvVar: "ELASTIC_URL",
		},
		cli.StringFlag{
			Name:   "index-name",
			Value:  DefaultIndexName,
			Usage:  "elasticsearch index name",
			EnvVar: "ELASTIC_INDEX",
		},
		cli.IntFlag{
			Name:   "max-cached",
			Value:  DefaultMaxCached,
			Usage:  "number of requests kept per user",
			EnvVar: "MAX_NUMBER_CACHED",
		},
		cli.StringFlag{
			Name:   "backing",
			Value:  BackingMap,
			Usage:  "book store container: map or cache",
			EnvVar: "BOOK_BACKING",
		},
		cli.BoolFlag{
			Name:   "debug",
			Usage:  "development logging and gin debug mode",
			EnvVar: "DEBUG",
		},
	}
}

// Load reads and validates the flags parsed into c.
func Load(c *cli.Context) (Config, error) {
	cfg := Config{
		Addr:       c.String("addr"),
		RedisUrl:   c.String("redis-url"),
		ElasticUrl: c.String("elastic-url"),
		IndexName:  c.String("index-name"),
		MaxCached:  c.Int("max-cached"),
		Backing:    c.String("backing"),
		Debug:      c.Bool("debug"),
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if cfg.MaxCached <= 0 {
		return fmt.Errorf("%w: max-cached must be positive, got %d", ErrInvalidConfig, cfg.MaxCached)
	}
	if cfg.IndexName == "" {
		return fmt.Errorf("%w: empty index name", ErrInvalidConfig)
	}
	switch cfg.Backing {
	case BackingMap, BackingCache:
	default:
		return fmt.Errorf("%w: unknown backing %q", ErrInvalidConfig, cfg.Backing)
	}
	return nil
}
