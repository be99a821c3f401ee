package http

import (
	"errors"
	"strconv"

	"github.com/indigo-web/pico/http/mime"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/utils/uf"
)

// Fields are the raw values a Response has been built of.
type Fields struct {
	Code    status.Code
	Status  status.Status
	Headers []Header
	Body    []byte
}

// Response is a builder of an HTTP response. Nothing is added implicitly: headers are
// rendered exactly as they were set, in the same order.
type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// no headers and an empty body.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code: status.OK,
		},
	}
}

// Code sets a Response code. The status text is derived from the code, unless set explicitly
// via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header appends the values under the key. Existing entries aren't touched, so setting the
// same key twice results in two header lines.
func (r *Response) Header(key string, values ...string) *Response {
	for _, value := range values {
		r.fields.Headers = append(r.fields.Headers, Header{
			Key:   key,
			Value: value,
		})
	}

	return r
}

// ContentType is a shorthand for Header("Content-Type", value)
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// ContentLength is a shorthand for Header("Content-Length", length)
func (r *Response) ContentLength(length int) *Response {
	return r.Header("Content-Length", strconv.Itoa(length))
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// Error discards everything set before and sets the code to the one the error carries, if
// it's a status.HTTPError, or 500 Internal Server Error otherwise. The error message is never
// disclosed to the client. Passing nil does nothing.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.InternalServerError
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	return r.Clear().Code(code)
}

// Expose returns the values the response is built of.
func (r *Response) Expose() Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields = Fields{
		Code:    status.OK,
		Headers: r.fields.Headers[:0],
	}

	return r
}

// Code is a predicate to NewResponse().Code(...)
func Code(code status.Code) *Response {
	return NewResponse().Code(code)
}

// Error is a predicate to NewResponse().Error(...)
func Error(err error) *Response {
	return NewResponse().Error(err)
}
