package http1

import (
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/pico/transport"
)

const protocol = "HTTP/1.1 "

type serializer struct {
	client transport.Client
	buff   []byte
}

func newSerializer(client transport.Client, buff []byte) *serializer {
	return &serializer{
		client: client,
		buff:   buff,
	}
}

// Write renders the response and transmits it in a single write.
func (s *serializer) Write(response *http.Response) error {
	s.buff = AppendResponse(s.buff[:0], response)
	_, err := s.client.Write(s.buff)

	return err
}

// AppendResponse renders the response into dst. Headers are rendered in the order they were
// set, nothing is added implicitly and the body is appended as is.
func AppendResponse(dst []byte, response *http.Response) []byte {
	fields := response.Expose()

	dst = append(dst, protocol...)
	dst = appendStatus(dst, fields.Code, fields.Status)

	for _, header := range fields.Headers {
		dst = append(dst, header.Key...)
		dst = append(dst, ": "...)
		dst = append(dst, header.Value...)
		dst = append(dst, "\r\n"...)
	}

	dst = append(dst, "\r\n"...)

	return append(dst, fields.Body...)
}

func appendStatus(dst []byte, code status.Code, text status.Status) []byte {
	dst = append(dst, status.StringCode(code)...)
	dst = append(dst, ' ')

	if len(text) == 0 {
		text = status.Text(code)
	}

	dst = append(dst, text...)
	return append(dst, "\r\n"...)
}
