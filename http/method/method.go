// Package method lists common request method tokens. Methods are kept as raw strings,
// so any successfully tokenized verb is a valid method and comparison is case-sensitive.
package method

type Method = string

const (
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	CONNECT Method = "CONNECT"
	OPTIONS Method = "OPTIONS"
	TRACE   Method = "TRACE"
	PATCH   Method = "PATCH"
)
