package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/smartystreets/goconvey/convey"

	"github.com/Feuerlord2/govalorant/internal/config"
	govalorant "github.com/Feuerlord2/govalorant/pkg"
)

var configEnvVars = []string{
	"VALORANT_CONFIG",
	"VALORANT_LOG_LEVEL",
	"VALORANT_LOG_FORMAT",
	"VALORANT_BASE_URL",
	"VALORANT_TIMEOUT",
	"VALORANT_USER_AGENT",
	"VALORANT_LANGUAGES",
	"VALORANT_OUTPUT_DIR",
	"VALORANT_FORMATS",
	"VALORANT_CONCURRENCY",
	"VALORANT_METRICS_FILE",
}

func clearConfigEnvVars() {
	for _, name := range configEnvVars {
		_ = os.Unsetenv(name)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, govalorant.DefaultBaseURL)
				convey.So(cfg.Timeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Languages, convey.ShouldResemble, []string{"en-US", "de-DE"})
				convey.So(cfg.Formats, convey.ShouldResemble, []string{"rss"})
				convey.So(cfg.OutputDir, convey.ShouldEqual, "docs")
				convey.So(cfg.Concurrency, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("VALORANT_TIMEOUT", "5s")
			_ = os.Setenv("VALORANT_LANGUAGES", "fr-FR, ja-JP")
			_ = os.Setenv("VALORANT_FORMATS", "rss,atom")
			_ = os.Setenv("VALORANT_CONCURRENCY", "2")
			_ = os.Setenv("VALORANT_OUTPUT_DIR", "public")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Timeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.Languages, convey.ShouldResemble, []string{"fr-FR", "ja-JP"})
				convey.So(cfg.Formats, convey.ShouldResemble, []string{"rss", "atom"})
				convey.So(cfg.Concurrency, convey.ShouldEqual, 2)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "public")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeTempConfig(t, `
log_level: debug
log_format: json
timeout: 10s
languages:
  - ko-KR
output_dir: site
concurrency: 8
`)
			_ = os.Setenv("VALORANT_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.Timeout, convey.ShouldEqual, 10*time.Second)
				convey.So(cfg.Languages, convey.ShouldResemble, []string{"ko-KR"})
				convey.So(cfg.OutputDir, convey.ShouldEqual, "site")
				convey.So(cfg.Concurrency, convey.ShouldEqual, 8)
			})

			convey.Convey("And env vars take precedence over the file", func() {
				_ = os.Setenv("VALORANT_OUTPUT_DIR", "from-env")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "from-env")
				convey.So(cfg.Concurrency, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("VALORANT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a language is unknown", func() {
			_ = os.Setenv("VALORANT_LANGUAGES", "en-US,xx-XX")

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(errors.Is(err, govalorant.ErrUnknownLanguage), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a feed format is unsupported", func() {
			_ = os.Setenv("VALORANT_FORMATS", "rss,pdf")

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "pdf")
			})
		})

		convey.Convey("When the log format is unsupported", func() {
			_ = os.Setenv("VALORANT_LOG_FORMAT", "xml")

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "log_format")
			})
		})

		convey.Convey("When concurrency is zero", func() {
			_ = os.Setenv("VALORANT_CONCURRENCY", "0")

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestDotEnvLoading(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dotEnv := filepath.Join(dir, ".env")

	convey.Convey("Given a .env file in the working directory", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		err := os.WriteFile(dotEnv, []byte("VALORANT_OUTPUT_DIR=from-dotenv\nVALORANT_USER_AGENT=dotenv-agent\nVALORANT_FORMATS=atom\n"), 0o600)
		convey.So(err, convey.ShouldBeNil)
		defer os.Remove(dotEnv)

		convey.Convey("When no env vars are set", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then the .env entries are applied", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "from-dotenv")
				convey.So(cfg.UserAgent, convey.ShouldEqual, "dotenv-agent")
				convey.So(cfg.Formats, convey.ShouldResemble, []string{"atom"})
			})
		})

		convey.Convey("When an env var is already set", func() {
			_ = os.Setenv("VALORANT_OUTPUT_DIR", "from-env")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it wins over the .env entry", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "from-env")
				convey.So(cfg.UserAgent, convey.ShouldEqual, "dotenv-agent")
			})
		})
	})

	convey.Convey("Given no .env file in the working directory", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		cfg, err := config.Load(context.Background())

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.OutputDir, convey.ShouldEqual, "docs")
		convey.So(cfg.UserAgent, convey.ShouldBeEmpty)
	})
}

func TestParsedLanguages(t *testing.T) {
	convey.Convey("Given a config with repeated languages", t, func() {
		cfg := config.New()
		cfg.Languages = []string{"de-DE", "en-us", "DE-de"}

		langs, err := cfg.ParsedLanguages()

		convey.So(err, convey.ShouldBeNil)
		convey.So(langs, convey.ShouldResemble, []govalorant.Language{govalorant.German, govalorant.EnglishUS})
	})
}

func TestSetupLogging(t *testing.T) {
	convey.Convey("Given an unknown log level", t, func() {
		cfg := config.New()
		cfg.LogLevel = "loud"

		err := config.SetupLogging(cfg)

		convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}
