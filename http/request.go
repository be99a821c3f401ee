package http

import (
	"net"

	"github.com/indigo-web/pico/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents an HTTP request. It's built once from a single read and isn't mutated
// after being passed to a router.
type Request struct {
	// Method is the raw method token. It's compared case-sensitively and isn't validated against
	// any set of known methods.
	Method string
	// Path is the request target exactly as it was received. Always begins with a slash.
	Path string
	// Protocol is the raw protocol token of the request line. It isn't validated nor used.
	Protocol string
	// Headers holds header pairs in their original order, duplicates included.
	Headers Headers
	// Body is everything after the headers block. Never nil.
	Body []byte
	// Remote holds the remote address, if known.
	Remote net.Addr
}

func NewRequest(method, path, protocol string, headers Headers, body []byte) *Request {
	return &Request{
		Method:   method,
		Path:     path,
		Protocol: protocol,
		Headers:  headers,
		Body:     body,
	}
}
