package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/Feuerlord2/govalorant/internal/config"
	"github.com/Feuerlord2/govalorant/internal/generator"
	"github.com/Feuerlord2/govalorant/internal/transport"
	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.WithError(err).Fatal("Feed generation failed")
	}
	log.Info("Feed generation complete!")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := config.SetupLogging(cfg); err != nil {
		return err
	}

	languages, err := cfg.ParsedLanguages()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	httpClient, err := transport.New(transport.Options{
		Timeout:    cfg.Timeout,
		UserAgent:  cfg.UserAgent,
		Registerer: reg,
	})
	if err != nil {
		return errors.Wrap(err, "create http client")
	}

	client, err := govalorant.NewClient(httpClient,
		govalorant.WithBaseURL(cfg.BaseURL),
		govalorant.WithLogger(log.StandardLogger()),
	)
	if err != nil {
		return err
	}

	gen := generator.New(client, generator.Options{
		OutputDir:   cfg.OutputDir,
		Formats:     cfg.Formats,
		Concurrency: cfg.Concurrency,
	})

	log.WithFields(log.Fields{
		"languages": cfg.Languages,
		"output":    cfg.OutputDir,
	}).Info("Generating bundle feeds")

	runErr := gen.Run(ctx, languages)

	if err := gen.WriteIndex(languages); err != nil {
		log.WithError(err).Error("Failed to write index")
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			log.WithError(err).WithField("file", cfg.MetricsFile).Error("Failed to write metrics")
		}
	}

	return runErr
}
