package middleware

import (
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/pico/router"
	"github.com/rs/zerolog"
)

type logging struct {
	next   router.Router
	logger zerolog.Logger
}

// LogRequests logs every handled request with its response code. Server errors are logged on
// the warn level, including malformed requests, which have no method nor path.
func LogRequests(next router.Router, logger zerolog.Logger) router.Router {
	return logging{
		next:   next,
		logger: logger,
	}
}

func (l logging) OnRequest(request *http.Request) *http.Response {
	response := l.next.OnRequest(request)
	fields := response.Expose()

	level := zerolog.InfoLevel
	if fields.Code >= status.InternalServerError {
		level = zerolog.WarnLevel
	}

	l.logger.WithLevel(level).
		Str("method", request.Method).
		Str("path", request.Path).
		Uint16("code", uint16(fields.Code)).
		Int("body", len(fields.Body)).
		Msg("request")

	return response
}

func (l logging) OnError(request *http.Request, err error) *http.Response {
	response := l.next.OnError(request, err)
	event := l.logger.Warn().Err(err)
	if request != nil {
		event = event.
			Str("method", request.Method).
			Str("path", request.Path)
	}

	event.Uint16("code", uint16(response.Expose().Code)).Msg("request failed")

	return response
}
