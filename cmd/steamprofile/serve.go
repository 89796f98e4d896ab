package main

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/steamprofile"
	"github.com/buzkaaclicker/steamprofile/command"
	"github.com/buzkaaclicker/steamprofile/config"
	"github.com/buzkaaclicker/steamprofile/inmem"
	"github.com/buzkaaclicker/steamprofile/persistent"
	"github.com/buzkaaclicker/steamprofile/steam"
	"github.com/buzkaaclicker/steamprofile/transport/rest"
	"github.com/buzkaaclicker/steamprofile/webapp"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidwall/buntdb"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the plugin server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			return serve(cmd.Context(), cfg)
		},
	}
}

// openUserStore picks postgres when configured and falls back to memory.
func openUserStore(ctx context.Context, cfg config.Config) (steamprofile.SteamUserStore, func(), error) {
	if cfg.PostgresDsn == "" {
		logrus.Warningln("POSTGRES_DSN is not set, linked accounts are kept in memory.")
		return inmem.NewSteamUserStore(), func() {}, nil
	}

	logrus.Infoln("Opening database.")
	db, err := persistent.PgOpen(ctx, cfg.PostgresDsn, cfg.Debug)
	if err != nil {
		return nil, nil, err
	}
	if err = persistent.CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store := &persistent.SteamUserStore{DB: db, EncryptionKey: []byte(cfg.EncryptionKey)}
	return store, func() { _ = db.Close() }, nil
}

func openProfileCache(ctx context.Context, cfg config.Config) (steamprofile.ProfileCache, func(), error) {
	if cfg.RedisAddr != "" {
		rdb, err := persistent.RedisOpen(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		cache := &persistent.RedisProfileCache{Rdb: rdb, TTL: cfg.ProfileCacheTTL}
		return cache, func() { _ = rdb.Close() }, nil
	}

	bdb, err := buntdb.Open(cfg.KVPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open buntdb: %w", err)
	}
	cache := &persistent.BuntProfileCache{Buntdb: bdb, TTL: cfg.ProfileCacheTTL}
	return cache, func() { _ = bdb.Close() }, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logrus.WithField("version", version).Infoln("Starting plugin server.")

	api := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: rest.ErrorHandler,
	})
	api.Use(rest.LogHandler())

	configErr := cfg.IsValid()
	if configErr != nil {
		logrus.WithError(configErr).Errorln("Invalid configuration, every request will be rejected.")
	}
	api.Use(rest.RequireValidConfig(configErr))
	api.Get("/status", monitor.New())

	if configErr == nil {
		users, closeUsers, err := openUserStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("user store: %w", err)
		}
		defer closeUsers()

		cache, closeCache, err := openProfileCache(ctx, cfg)
		if err != nil {
			return fmt.Errorf("profile cache: %w", err)
		}
		defer closeCache()

		steamApi := steam.NewApi(cfg.SteamApiUrl)

		userInfoController := rest.UserInfoController{Users: users, Steam: steamApi, Cache: cache}
		commandController := rest.CommandController{
			Executor: &command.Executor{
				Users:     users,
				Steam:     steamApi,
				Cache:     cache,
				PluginId:  webapp.PluginId,
				Version:   version,
				BuildHash: buildHash,
			},
		}
		assetsController := rest.AssetsController{Dir: cfg.AssetsDir}

		userInfoController.InstallTo(api)
		commandController.InstallTo(api)
		assetsController.InstallTo(api)
	}
	api.Use(rest.NotFoundHandler)

	logrus.WithField("addr", cfg.ListenAddr).Infoln("Starting listening... To shut down use ^C")
	go func() {
		if err := api.Listen(cfg.ListenAddr); err != nil {
			logrus.WithError(err).Fatalln("Could not listen.")
		}
	}()

	awaitInterruption()

	logrus.Infoln("Shutting down...")
	if err := api.ShutdownWithTimeout(5 * time.Second); err != nil {
		logrus.WithError(err).Warningln("Fiber shutdown failed.")
	}
	return nil
}
