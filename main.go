package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"library/cache"
	"library/config"
	"library/db"
	"library/service"
)

func main() {
	app := cli.NewApp()
	app.Name = "library"
	app.Usage = "in-memory library book store"
	app.Flags = config.Flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	books, err := db.NewBookStore(newBacking(cfg))
	if err != nil {
		logger.Error("create book store", zap.Error(err))
		return err
	}

	indexer, err := newIndexer(cfg)
	if err != nil {
		logger.Error("connect elasticsearch", zap.String("url", cfg.ElasticUrl), zap.Error(err))
		return err
	}

	cacher, err := newCacher(cfg)
	if err != nil {
		logger.Error("connect redis", zap.String("addr", cfg.RedisUrl), zap.Error(err))
		return err
	}

	routes := service.SetupRoutes(service.NewHandler(books, indexer, cacher, logger))

	logger.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.String("backing", cfg.Backing),
		zap.Bool("elastic", cfg.ElasticUrl != ""),
		zap.Bool("redis", cfg.RedisUrl != ""),
	)
	return routes.Run(cfg.Addr)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newBacking(cfg config.Config) db.Backing {
	if cfg.Backing == config.BackingCache {
		return db.NewCacheBacking(nil)
	}
	return db.NewMapBacking()
}

func newIndexer(cfg config.Config) (db.BookIndexer, error) {
	if cfg.ElasticUrl == "" {
		return db.NopIndexer{}, nil
	}

	client, err := config.SetupElasticSearch(cfg.ElasticUrl)
	if err != nil {
		return nil, err
	}
	return db.CreateElasticBookIndexer(cfg.IndexName, client), nil
}

func newCacher(cfg config.Config) (cache.RequestCacher, error) {
	if cfg.RedisUrl == "" {
		return cache.CreateMemoryCache(cfg.MaxCached), nil
	}

	client, err := config.SetupRedis(cfg.RedisUrl)
	if err != nil {
		return nil, err
	}
	return cache.CreateRedisCache(client, cfg.MaxCached), nil
}
