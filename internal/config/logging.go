package config

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging applies the log level and format to the standard logrus logger.
func SetupLogging(cfg *Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "log_level"), ErrInvalidConfig)
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
