// Package endpoints implements the fixed set of routes pico serves:
//
//	/              200 OK with no body
//	/echo/{s}      s as text/plain, gzip-compressed if the client accepts it
//	/user-agent    the User-Agent header value as text/plain
//	/files/{name}  GET reads and POST writes {root}/{name}
//
// Anything else is 404 Not Found.
package endpoints

import (
	"strings"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/codec"
	"github.com/indigo-web/pico/http/method"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/pico/internal/codecutil"
	"github.com/indigo-web/pico/router"
)

var _ router.Router = new(Router)

type handler func(*http.Request) (*http.Response, error)

// Router holds no mutable state, so a single instance serves all the connections.
type Router struct {
	root   string
	codecs *codecutil.Cache
}

// New returns a router serving files from cfg.Root, if it's set. The codecs are the ones
// the /echo endpoint may compress with; gzip is used if none are passed.
func New(cfg config.Files, codecs ...codec.Codec) *Router {
	if len(codecs) == 0 {
		codecs = []codec.Codec{codec.NewGZIP()}
	}

	return &Router{
		root:   cfg.Root,
		codecs: codecutil.NewCache(codecs),
	}
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	response, err := r.route(request)(request)
	if err != nil {
		return r.OnError(request, err)
	}

	return response
}

// OnError discards everything and responds with a bare status line, 500 Internal Server
// Error unless the error is a status.HTTPError carrying another code.
func (r *Router) OnError(_ *http.Request, err error) *http.Response {
	return http.Error(err)
}

func (r *Router) route(request *http.Request) handler {
	path := request.Path

	switch {
	case path == "/":
		return index
	case strings.HasPrefix(path, "/echo"):
		return r.echo
	case path == "/user-agent":
		return r.userAgent
	case strings.HasPrefix(path, "/files"):
		switch request.Method {
		case method.GET:
			return r.getFile
		case method.POST:
			return r.postFile
		}
	}

	return notFound
}

// segment returns everything after the second slash, further slashes included.
func segment(path string) (string, error) {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) < 3 {
		return "", status.ErrBadTarget
	}

	return parts[2], nil
}

func notFound(*http.Request) (*http.Response, error) {
	return http.Code(status.NotFound), nil
}
