package router

import (
	"github.com/indigo-web/pico/http"
)

type Router interface {
	// OnRequest handles a successfully parsed request.
	OnRequest(request *http.Request) *http.Response
	// OnError renders a response for an error, which occurred either while parsing (then the
	// request is nil) or while handling the request.
	OnError(request *http.Request, err error) *http.Response
}
