package config

import (
	"time"
)

type (
	Headers struct {
		// Prealloc is the initial capacity of request headers storage.
		Prealloc int
		// CaseInsensitive makes header lookups (e.g. User-Agent, Accept-Encoding) compare names
		// ASCII case-insensitively. Names are compared exactly by default.
		CaseInsensitive bool `test:"nullable"`
	}

	Body struct {
		// RespectContentLength truncates the request body to the Content-Length header value,
		// if it's presented and shorter than the received body. By default, everything after
		// the headers block is considered the body.
		RespectContentLength bool `test:"nullable"`
	}

	NET struct {
		// ReadBufferSize is a size of the buffer in bytes the request is read into. The request
		// is read at most once, so anything beyond it is lost.
		ReadBufferSize int
		// ReadTimeout limits how long a connection may stay silent before being dropped.
		// Zero disables the deadline, so a stalled client blocks its goroutine forever.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize is the initial capacity of the buffer the response is rendered into.
		WriteBufferSize int
	}

	Files struct {
		// Root is the directory served by the /files endpoints. Empty value disables them.
		Root string `test:"nullable"`
	}
)

// Config holds settings used across various parts of pico, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
	NET     NET
	Files   Files
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			WriteBufferSize:           1024,
		},
	}
}
