package http1

import (
	"bytes"
	"strconv"

	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/pico/kv"
)

var (
	crlf          = []byte("\r\n")
	headersEnd    = []byte("\r\n\r\n")
	colonSpace    = []byte(": ")
	space         = []byte(" ")
	contentLength = "Content-Length"
)

// Parser turns a single read buffer into a request. It's stateless between calls and may
// be shared by goroutines.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse expects the whole request to be presented in data. Every field of the returned
// request is a copy, so the data may be reused right after the call. Nothing is returned
// but an error if the request is malformed.
func (p *Parser) Parse(data []byte) (*http.Request, error) {
	// the read buffer might be larger than the request itself
	data = bytes.TrimRight(data, "\x00")

	requestLine, rest, found := bytes.Cut(data, crlf)
	if !found {
		return nil, status.ErrNoRequestLine
	}

	method, path, protocol, err := parseRequestLine(requestLine)
	if err != nil {
		return nil, err
	}

	headers := kv.NewPrealloc(p.cfg.Headers.Prealloc)
	if p.cfg.Headers.CaseInsensitive {
		headers.CaseInsensitive()
	}

	var body []byte

	if bytes.HasPrefix(rest, crlf) {
		body = rest[len(crlf):]
	} else {
		var headersBlock []byte
		headersBlock, body, found = bytes.Cut(rest, headersEnd)
		if !found {
			return nil, status.ErrNoHeadersEnd
		}

		if err = parseHeaders(headers, headersBlock); err != nil {
			return nil, err
		}
	}

	if p.cfg.Body.RespectContentLength {
		if body, err = truncate(headers, body); err != nil {
			return nil, err
		}
	}

	return http.NewRequest(method, path, protocol, headers, clone(body)), nil
}

func parseRequestLine(line []byte) (method, path, protocol string, err error) {
	tokens := bytes.Split(line, space)
	if len(tokens) != 3 {
		return "", "", "", status.ErrBadRequestLine
	}

	for _, token := range tokens {
		if len(token) == 0 {
			return "", "", "", status.ErrBadRequestLine
		}
	}

	if tokens[1][0] != '/' {
		return "", "", "", status.ErrBadRequestLine
	}

	return string(tokens[0]), string(tokens[1]), string(tokens[2]), nil
}

func parseHeaders(headers *kv.Storage, block []byte) error {
	for len(block) > 0 {
		var line []byte
		line, block, _ = bytes.Cut(block, crlf)

		key, value, found := bytes.Cut(line, colonSpace)
		if !found {
			return status.ErrBadHeaderLine
		}

		headers.Add(string(key), string(value))
	}

	return nil
}

// truncate cuts the body down to the first Content-Length header value. A longer declared
// length than received is not an error, as there's no way to read the rest anyway.
func truncate(headers *kv.Storage, body []byte) ([]byte, error) {
	value, found := headers.Get(contentLength)
	if !found {
		return body, nil
	}

	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		return nil, status.ErrBadContentLength
	}

	if length < len(body) {
		body = body[:length]
	}

	return body, nil
}

// clone copies the data, guaranteeing a non-nil result.
func clone(data []byte) []byte {
	return append(make([]byte, 0, len(data)), data...)
}
