// Package generator turns the Valorant bundle catalog into RSS and Atom feeds.
package generator

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/Feuerlord2/govalorant/internal/models"
	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

const (
	FormatRSS  = "rss"
	FormatAtom = "atom"

	defaultSiteURL = "https://playvalorant.com/"
)

// BundleSource is the part of *govalorant.Client the generator needs.
type BundleSource interface {
	GetBundles(ctx context.Context, lang govalorant.Language) ([]govalorant.Bundle, error)
	ResourceURL(family string, id uuid.UUID) string
}

// Options configures a Generator. Zero values fall back to defaults.
type Options struct {
	OutputDir   string
	Formats     []string
	Concurrency int
	SiteURL     string
	Now         func() time.Time
}

// Generator fetches bundles per language and writes one feed file per format.
type Generator struct {
	source      BundleSource
	outputDir   string
	formats     []string
	concurrency int
	siteURL     string
	now         func() time.Time
}

// New creates a generator reading bundles from source.
func New(source BundleSource, opts Options) *Generator {
	g := &Generator{
		source:      source,
		outputDir:   opts.OutputDir,
		formats:     lo.Uniq(opts.Formats),
		concurrency: opts.Concurrency,
		siteURL:     opts.SiteURL,
		now:         opts.Now,
	}
	if g.outputDir == "" {
		g.outputDir = "docs"
	}
	if len(g.formats) == 0 {
		g.formats = []string{FormatRSS}
	}
	if g.concurrency < 1 {
		g.concurrency = 1
	}
	if g.siteURL == "" {
		g.siteURL = defaultSiteURL
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// Run builds the feeds for every language. A failing language does not stop
// the others; all failures are returned together.
func (g *Generator) Run(ctx context.Context, languages []govalorant.Language) error {
	var (
		mu   sync.Mutex
		errs error
		eg   errgroup.Group
	)
	eg.SetLimit(g.concurrency)

	for _, lang := range languages {
		eg.Go(func() error {
			if err := g.updateLanguage(ctx, lang); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()

	return errs
}

func (g *Generator) updateLanguage(ctx context.Context, lang govalorant.Language) error {
	logger := log.WithField("language", lang.String())
	logger.Info("Fetching bundles from Valorant API")

	feed, err := g.Feed(ctx, lang)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch bundles")
		return errors.Wrapf(err, "language %s", lang)
	}

	for _, format := range g.formats {
		path := filepath.Join(g.outputDir, FileName(lang, format))
		if err := g.writeFeed(feed, format, path); err != nil {
			logger.WithError(err).WithField("file", path).Error("Failed to write feed to file")
			return errors.Wrapf(err, "language %s", lang)
		}
	}

	logger.WithField("bundles", len(feed.Items)).Info("Successfully created feeds")
	return nil
}

// Feed fetches the bundles for lang and builds their feed.
func (g *Generator) Feed(ctx context.Context, lang govalorant.Language) (*feeds.Feed, error) {
	bundles, err := g.source.GetBundles(ctx, lang)
	if err != nil {
		return nil, err
	}
	return g.BuildFeed(lang, bundles), nil
}

// BuildFeed creates a feed with one item per publishable bundle, sorted by title.
func (g *Generator) BuildFeed(lang govalorant.Language, bundles []govalorant.Bundle) *feeds.Feed {
	now := g.now()

	entries := lo.FilterMap(bundles, func(b govalorant.Bundle, _ int) (*models.Entry, bool) {
		e := g.newEntry(b, lang, now)
		return e, e.IsValid()
	})
	if skipped := len(bundles) - len(entries); skipped > 0 {
		log.WithFields(log.Fields{
			"language": lang.String(),
			"skipped":  skipped,
		}).Warn("Skipped bundles without title or id")
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].FullTitle()) < strings.ToLower(entries[j].FullTitle())
	})

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Valorant Store Bundles (%s)", languageLabel(lang)),
		Link:        &feeds.Link{Href: g.siteURL},
		Description: "All Valorant store bundles with artwork and descriptions.",
		Id:          fmt.Sprintf("valorant-bundles-%s", strings.ToLower(languageLabel(lang))),
		Created:     now,
		Updated:     now,
	}

	feed.Items = make([]*feeds.Item, len(entries))
	for idx, e := range entries {
		feed.Items[idx] = &feeds.Item{
			Title:       e.FullTitle(),
			Link:        &feeds.Link{Href: e.Link},
			Description: e.FullDescription(),
			Content:     createRichContent(e),
			Id:          e.GUID(),
			Created:     e.CreatedAt,
			Updated:     e.CreatedAt,
		}
	}

	return feed
}

func (g *Generator) newEntry(b govalorant.Bundle, lang govalorant.Language, now time.Time) *models.Entry {
	return &models.Entry{
		ID:               b.UUID,
		Title:            plainText(b.DisplayName),
		SubTitle:         plainText(lo.FromPtr(b.DisplayNameSubText)),
		Link:             g.source.ResourceURL("bundles", b.UUID),
		Description:      plainText(b.Description),
		ExtraDescription: plainText(lo.FromPtr(b.ExtraDescription)),
		PromoDescription: plainText(lo.FromPtr(b.PromoDescription)),
		ImageURL:         b.DisplayIcon,
		PromoImageURL:    lo.FromPtr(b.VerticalPromoImage),
		Language:         languageLabel(lang),
		CreatedAt:        now,
	}
}

// Render serialises feed in the given format.
func Render(feed *feeds.Feed, format string) (string, error) {
	switch format {
	case FormatRSS:
		return feed.ToRss()
	case FormatAtom:
		return feed.ToAtom()
	default:
		return "", errors.Newf("unsupported feed format %q", format)
	}
}

// FileName is the output file for a language and format, e.g. bundles-en-us.rss.
func FileName(lang govalorant.Language, format string) string {
	return fmt.Sprintf("bundles-%s.%s", strings.ToLower(languageLabel(lang)), format)
}

func (g *Generator) writeFeed(feed *feeds.Feed, format, filename string) error {
	content, err := Render(feed, format)
	if err != nil {
		return errors.Wrap(err, "failed to generate feed content")
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to create feed file %s", filename)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(content); err != nil {
		return errors.Wrap(err, "failed to write feed content")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush feed file")
	}

	log.WithFields(log.Fields{
		"file": filename,
		"size": len(content),
	}).Debug("Feed written")
	return nil
}

// languageLabel is the code used in titles and file names; upstream's default
// language stands in for NoLanguage.
func languageLabel(lang govalorant.Language) string {
	if lang == govalorant.NoLanguage {
		return govalorant.EnglishUS.Code()
	}
	return lang.Code()
}
