package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"province-exporter/config"
	"province-exporter/controller"
	"province-exporter/locales"
	"province-exporter/provider"
	"province-exporter/utils"
	"province-exporter/writer"

	"github.com/phuslu/log"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
}

func run(ctx context.Context) error {
	v := viper.GetViper()
	if err := utils.InitializeViper(v, "config", "yml"); err != nil {
		return err
	}
	cfg, err := config.InitializeConfig(v)
	if err != nil {
		return err
	}

	log.DefaultLogger = utils.NewLogger(utils.LogConfig{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Maxsize: cfg.Log.Maxsize,
		Backups: cfg.Log.Backups,
	}, os.Stderr, utils.NewTraceId())
	logger := &log.DefaultLogger
	logger.Info().Str("Service", config.ServiceName).Str("BaseUrl", cfg.Provider.BaseUrl).Msg("starting export")

	opts := provider.Options{
		BaseUrl:      cfg.Provider.BaseUrl,
		Timeout:      cfg.Provider.Timeout,
		UserAgent:    cfg.Provider.UserAgent,
		MaxRedirects: cfg.Provider.MaxRedirects,
		Logger:       logger,
	}
	if cfg.Redis.Enabled {
		client, err := config.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		opts.Cache = provider.NewRedisCache(client, cfg.Redis.TTL)
	}

	sinks := []controller.Sink{writer.NewJSONFile(cfg.Output.Json, cfg.Output.Indent)}
	if cfg.Output.Xlsx != "" {
		sinks = append(sinks, writer.NewExcel(cfg.Output.Xlsx))
	}
	if cfg.Postgres.Enabled {
		pool, err := config.ConnectDb(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()
		sinks = append(sinks, writer.NewPostgres(pool))
	}

	bundle, err := utils.NewBundle(locales.FS)
	if err != nil {
		return err
	}

	exporter := &controller.Exporter{
		Source:    provider.NewClient(opts),
		Sinks:     sinks,
		Localizer: utils.LoadLocalizer(bundle, cfg.Locale),
		Stdout:    os.Stdout,
		Logger:    logger,
	}
	_, err = exporter.Run(ctx)
	return err
}
