package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Malformed requests are reported as 500 Internal Server Error, the same as failures
// inside handlers.
var (
	ErrNoRequestLine       = NewError(InternalServerError, "request line is not terminated by CRLF")
	ErrBadRequestLine      = NewError(InternalServerError, "malformed request line")
	ErrNoHeadersEnd        = NewError(InternalServerError, "headers block is not terminated by an empty line")
	ErrBadHeaderLine       = NewError(InternalServerError, "header line lacks the \": \" separator")
	ErrBadContentLength    = NewError(InternalServerError, "invalid Content-Length value")
	ErrNoUserAgent         = NewError(InternalServerError, "User-Agent header is missing")
	ErrNoFilesRoot         = NewError(InternalServerError, "files directory is not configured")
	ErrBadTarget           = NewError(InternalServerError, "request target has too few segments")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
