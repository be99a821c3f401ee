package serve

import (
	"bytes"
	"testing"
	"time"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/router/endpoints"
	"github.com/indigo-web/pico/router/simple"
	"github.com/indigo-web/pico/transport/dummy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHTTP1(t *testing.T) {
	r := endpoints.New(config.Files{})

	t.Run("echo", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET /echo/abc HTTP/1.1\r\nHost: localhost:4221\r\n\r\n"))
		HTTP1(config.Default(), conn, r, zerolog.Nop())

		want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc"
		require.Equal(t, want, string(conn.Data))
		require.True(t, conn.Timeout.IsZero())
		require.False(t, conn.Closed)
	})

	t.Run("malformed", func(t *testing.T) {
		conn := dummy.NewConn([]byte("hello\r\n\r\n"))
		HTTP1(config.Default(), conn, r, zerolog.Nop())
		require.Equal(t, "HTTP/1.1 500 Internal Server Error\r\n\r\n", string(conn.Data))
	})

	t.Run("single read", func(t *testing.T) {
		conn := dummy.NewConn(
			[]byte("GET /echo/abc HTTP/1.1\r\n"),
			[]byte("Host: localhost\r\n\r\n"),
		)
		HTTP1(config.Default(), conn, r, zerolog.Nop())
		require.Equal(t, "HTTP/1.1 500 Internal Server Error\r\n\r\n", string(conn.Data))
	})

	t.Run("request larger than the buffer", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadBufferSize = 16
		conn := dummy.NewConn([]byte("GET /echo/abc HTTP/1.1\r\n\r\n"))
		HTTP1(cfg, conn, r, zerolog.Nop())
		require.Equal(t, "HTTP/1.1 500 Internal Server Error\r\n\r\n", string(conn.Data))
	})

	t.Run("nothing received", func(t *testing.T) {
		conn := dummy.NewConn()
		HTTP1(config.Default(), conn, r, zerolog.Nop())
		require.Empty(t, conn.Data)
	})

	t.Run("read timeout", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadTimeout = time.Second
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		HTTP1(cfg, conn, r, zerolog.Nop())
		require.False(t, conn.Timeout.IsZero())
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", string(conn.Data))
	})

	t.Run("panic", func(t *testing.T) {
		var buff bytes.Buffer
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NotPanics(t, func() {
			r := simple.New(func(*http.Request) *http.Response {
				panic("oops")
			}, nil)
			HTTP1(config.Default(), conn, r, zerolog.New(&buff))
		})
		require.Empty(t, conn.Data)
		require.Contains(t, buff.String(), "connection dropped")
	})
}
