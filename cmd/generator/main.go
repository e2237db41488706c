package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Feuerlord2/govalorant/internal/config"
	"github.com/Feuerlord2/govalorant/internal/generator"
	"github.com/Feuerlord2/govalorant/internal/transport"
	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

// Usage: generator [language] [--file]
// Prints the RSS feed of one language to stdout; --file also writes it to the
// current directory.
func main() {
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := config.SetupLogging(cfg); err != nil {
		log.Fatalf("Error configuring logging: %v", err)
	}

	lang := govalorant.EnglishUS
	if len(os.Args) > 1 {
		lang, err = govalorant.ParseLanguage(os.Args[1])
		if err != nil {
			log.Fatalf("Invalid language: %s. Valid languages: %v", os.Args[1], govalorant.Languages())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout)
	defer cancel()

	httpClient, err := transport.New(transport.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		log.Fatalf("Error creating HTTP client: %v", err)
	}
	client, err := govalorant.NewClient(httpClient, govalorant.WithBaseURL(cfg.BaseURL))
	if err != nil {
		log.Fatalf("Error creating API client: %v", err)
	}

	gen := generator.New(client, generator.Options{Now: time.Now})

	log.WithField("language", lang.String()).Info("Generating RSS feed")

	feed, err := gen.Feed(ctx, lang)
	if err != nil {
		log.WithError(err).Error("Error fetching bundles")
		os.Exit(1)
	}
	if len(feed.Items) == 0 {
		log.WithField("language", lang.String()).Warn("No bundles found")
	}

	rss, err := generator.Render(feed, generator.FormatRSS)
	if err != nil {
		log.Fatalf("Error generating RSS feed: %v", err)
	}

	fmt.Print(rss)

	if len(os.Args) > 2 && os.Args[2] == "--file" {
		filename := generator.FileName(lang, generator.FormatRSS)
		if err := os.WriteFile(filename, []byte(rss), 0o644); err != nil {
			log.WithError(err).Error("Error writing RSS file")
		} else {
			log.WithField("file", filename).Info("RSS file successfully created")
		}
	}
}
