package types // import "github.com/staticweb/staticd/api/types"

import "net/http"

// Response is a fully materialized HTTP response: status, headers and
// body bytes. Responses are built once per request and handed to the
// post-processing hook before being written to the wire, so the body
// has to be held in memory rather than streamed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse returns an empty response with the given status code.
func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Header:     http.Header{},
	}
}
