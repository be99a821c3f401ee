package httptest

import (
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/kv"
)

// Dump renders the request back into its wire form. Headers are rendered in their order,
// the body is appended verbatim.
func Dump(request *http.Request) string {
	var buff []byte

	buff = append(buff, request.Method...)
	buff = space(buff)
	buff = append(buff, request.Path...)
	buff = space(buff)
	buff = append(buff, request.Protocol...)
	buff = crlf(buff)

	if request.Headers != nil {
		for _, h := range request.Headers.Expose() {
			buff = header(buff, h)
		}
	}

	buff = crlf(buff)
	buff = append(buff, request.Body...)

	return string(buff)
}

func space(b []byte) []byte {
	return append(b, ' ')
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}

func header(b []byte, h kv.Pair) []byte {
	b = append(b, h.Key...)
	b = colonsp(b)
	b = append(b, h.Value...)

	return crlf(b)
}

func colonsp(b []byte) []byte {
	return append(b, ':', ' ')
}
