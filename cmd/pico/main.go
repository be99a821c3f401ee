package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/pico"
	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/router/endpoints"
	"github.com/indigo-web/pico/router/middleware"
	"github.com/rs/zerolog"
)

var (
	addr        = flag.String("addr", ":4221", "address to listen on")
	directory   = flag.String("directory", "", "directory served by the /files endpoints")
	configPath  = flag.String("config", "", "path to a JSON config file")
	readTimeout = flag.Duration("read-timeout", 0, "drop clients silent for longer than this, 0 to wait forever")
	foldHeaders = flag.Bool("case-insensitive-headers", false, "look headers up ignoring the case of their names")
	logLevel    = flag.String("log-level", "info", "one of trace, debug, info, warn, error")
)

func main() {
	flag.Parse()

	logger := newLogger(*logLevel)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("bad config")
	}

	r := middleware.Recover(middleware.LogRequests(endpoints.New(cfg.Files), logger))
	app := pico.New(*addr).
		Tune(cfg).
		Logger(logger)

	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		sig := <-signals
		<-started
		logger.Info().Stringer("signal", sig).Msg("shutting down")
		app.Stop()
	}()

	if err = app.Serve(r); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

// loadConfig applies flags on top of the config file, if any, or the defaults. Only the
// flags explicitly passed override the file.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if len(*configPath) > 0 {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "directory":
			cfg.Files.Root = *directory
		case "read-timeout":
			cfg.NET.ReadTimeout = *readTimeout
		case "case-insensitive-headers":
			cfg.Headers.CaseInsensitive = *foldHeaders
		}
	})

	return cfg, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
