package httptest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/indigo-web/pico/kv"
)

// Response is a parsed raw response, as the client sees it.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

func NewResponse() Response {
	return Response{
		Headers: kv.New(),
	}
}

// Parse parses a single response received over a connection the server closed right after.
// The body is verified against the Content-Length, if any, and must be empty otherwise.
func Parse(raw string) (response Response, err error) {
	var found bool
	response = NewResponse()

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	if !found {
		return response, fmt.Errorf("bad status line: lacking status text")
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response: only status line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %s: no breaking CRLF", headerLine)
		}
		if len(headerLine) == 0 {
			break
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return response, err
		}

		response.Headers.Add(key, value)
	}

	response.Body, err = processBody(response, raw)

	return response, err
}

func parseHeaderLine(line string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(line, ": ")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no value", line)
	}

	return key, value, nil
}

func processBody(response Response, data string) (string, error) {
	contentLengths := slices.Collect(response.Headers.Values("Content-Length"))
	switch len(contentLengths) {
	case 0:
		if len(data) == 0 {
			return "", nil
		}

		return "", fmt.Errorf("bad response: got body without Content-Length")
	case 1:
		length, err := strconv.Atoi(contentLengths[0])
		if err != nil {
			return "", err
		}

		if len(data) != length {
			return "", fmt.Errorf("bad response: Content-Length is %d, got %d bytes", length, len(data))
		}

		return data, nil
	default:
		return "", fmt.Errorf(
			"bad response: too many content-lengths: %s", strings.Join(contentLengths, ", "),
		)
	}
}
