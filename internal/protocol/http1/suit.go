package http1

import (
	"io"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/router"
	"github.com/indigo-web/pico/transport"
	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"
)

// Suit serves a single request: it reads it, lets the router handle it and writes the
// response back.
type Suit struct {
	*Parser
	*serializer
	router router.Router
	client transport.Client
	logger zerolog.Logger
}

func New(cfg *config.Config, r router.Router, client transport.Client, logger zerolog.Logger) *Suit {
	return &Suit{
		Parser:     NewParser(cfg),
		serializer: newSerializer(client, make([]byte, 0, cfg.NET.WriteBufferSize)),
		router:     r,
		client:     client,
		logger:     logger,
	}
}

// ServeOnce reads the request in a single read. If nothing could be read, no response is
// written and the read error is returned. A malformed request is handed to the router's
// OnError with a nil request.
func (s *Suit) ServeOnce() error {
	data, err := s.client.Read()
	if len(data) == 0 {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		return err
	}

	request, err := s.Parse(data)
	var response *http.Response

	if err != nil {
		s.logger.Warn().
			Err(err).
			Stringer("remote", s.client.Remote()).
			Str("preview", preview(data)).
			Msg("malformed request")
		response = s.router.OnError(nil, err)
	} else {
		request.Remote = s.client.Remote()
		response = s.router.OnRequest(request)
	}

	return s.Write(notNil(response))
}

func notNil(resp *http.Response) *http.Response {
	if resp != nil {
		return resp
	}

	return http.NewResponse()
}

// preview returns the beginning of the data without copying, so the result must not
// outlive the data.
func preview(data []byte) string {
	const maxLen = 64

	if len(data) > maxLen {
		data = data[:maxLen]
	}

	return uf.B2S(data)
}
