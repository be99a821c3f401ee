package endpoints

import (
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/mime"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/utils/uf"
)

func index(*http.Request) (*http.Response, error) {
	return http.NewResponse(), nil
}

// echo responds with the path remainder after /echo/. Compression is negotiated via the
// Accept-Encoding header, so the Content-Length is the one of the compressed body, if any.
func (r *Router) echo(request *http.Request) (*http.Response, error) {
	content, err := segment(request.Path)
	if err != nil {
		return nil, err
	}

	body := uf.S2B(content)
	response := http.NewResponse().ContentType(mime.Plain)

	if accept, found := request.Headers.Get("Accept-Encoding"); found {
		if c := r.codecs.Negotiate(accept); c != nil {
			if body, err = r.codecs.Encode(c, body); err != nil {
				return nil, err
			}

			response.Header("Content-Encoding", c.Token())
		}
	}

	return response.
		ContentLength(len(body)).
		Bytes(body), nil
}

func (r *Router) userAgent(request *http.Request) (*http.Response, error) {
	ua, found := request.Headers.Get("User-Agent")
	if !found {
		return nil, status.ErrNoUserAgent
	}

	return http.NewResponse().
		ContentType(mime.Plain).
		ContentLength(len(ua)).
		String(ua), nil
}
