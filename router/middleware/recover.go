package middleware

import (
	"fmt"

	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/router"
)

type recovering struct {
	next router.Router
}

// Recover catches panics in handlers and reports them via OnError instead, so a half-cooked
// response is never sent.
func Recover(next router.Router) router.Router {
	return recovering{next: next}
}

func (r recovering) OnRequest(request *http.Request) (response *http.Response) {
	defer func() {
		if p := recover(); p != nil {
			response = r.next.OnError(request, fmt.Errorf("handler panicked: %v", p))
		}
	}()

	return r.next.OnRequest(request)
}

func (r recovering) OnError(request *http.Request, err error) *http.Response {
	return r.next.OnError(request, err)
}
