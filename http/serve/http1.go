package serve

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/internal/protocol/http1"
	"github.com/indigo-web/pico/router"
	"github.com/indigo-web/pico/transport"
	"github.com/rs/zerolog"
)

// HTTP1 serves exactly one request from the connection. Nothing escapes it: errors are
// logged and a panic only drops this very connection. Note, that the connection isn't
// closed here.
func HTTP1(cfg *config.Config, conn net.Conn, r router.Router, logger zerolog.Logger) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error().
				Interface("panic", p).
				Stringer("remote", conn.RemoteAddr()).
				Msg("connection dropped")
		}
	}()

	client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	suit := http1.New(cfg, r, client, logger)

	if err := suit.ServeOnce(); err != nil && !errors.Is(err, io.EOF) {
		logger.Debug().
			Err(err).
			Stringer("remote", conn.RemoteAddr()).
			Msg("connection failed")
	}
}
