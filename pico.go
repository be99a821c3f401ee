package pico

import (
	"net"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http/serve"
	"github.com/indigo-web/pico/internal/address"
	"github.com/indigo-web/pico/router"
	"github.com/indigo-web/pico/router/endpoints"
	"github.com/indigo-web/pico/transport"
	"github.com/rs/zerolog"
)

// App binds a single TCP listener and serves one request per accepted connection.
type App struct {
	addr       string
	cfg        *config.Config
	logger     zerolog.Logger
	hooks      hooks
	supervisor transport.Supervisor
}

// New returns a new App instance. An address consisting of the port only, e.g. ":4221",
// is bound on all interfaces.
func New(addr string) *App {
	return &App{
		addr:       address.Normalize(addr),
		cfg:        config.Default(),
		logger:     zerolog.Nop(),
		supervisor: transport.NewSupervisor(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger. Nothing is logged by default.
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback as soon as the listener is bound, so connections may
// already be established at the moment.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application and blocks until it's stopped. If nil is passed instead
// of a router, the endpoints router over the configured files root is used.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = endpoints.New(a.cfg.Files)
	}

	if err := a.supervisor.Add(a.addr, transport.NewTCP(), a.newConnCallback(r)); err != nil {
		return err
	}

	a.logger.Info().
		Stringer("addr", a.supervisor.Addrs()[0]).
		Str("files", a.cfg.Files.Root).
		Msg("listening")

	callIfNotNil(a.hooks.OnStart)
	err := a.supervisor.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	if err != nil {
		a.logger.Error().Err(err).Msg("listener failed")
	} else {
		a.logger.Info().Msg("stopped")
	}

	return err
}

// Addr returns the bound address. Must be called after the start notification.
func (a *App) Addr() net.Addr {
	return a.supervisor.Addrs()[0]
}

// Stop stops accepting new connections and waits until all the connections being served
// are done. Must be called only while Serve is running.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func (a *App) newConnCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		serve.HTTP1(a.cfg, conn, r, a.logger)
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
