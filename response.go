package ultralite

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Response is the uniform wrapper around a completed HTTP exchange. It is
// immutable once constructed; Text and JSON decode the stored body bytes on
// every call, so re-decoding is idempotent.
//
// A Response also implements Chainable: its verb methods reuse the
// TransportContext (and therefore the cookie jar and security mode) of the
// request that produced it.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header

	content []byte
	cookies []*http.Cookie
	request *Request
	tctx    *TransportContext
	client  *Client
}

// newResponse wraps the raw transport response. The cookie snapshot is taken
// at construction time against the final request URL, after the jar has
// absorbed the response's Set-Cookie headers.
func newResponse(httpResp *http.Response, body []byte, req *Request, tctx *TransportContext, client *Client) *Response {
	var cookies []*http.Cookie
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		cookies = tctx.jar.Cookies(httpResp.Request.URL)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		content:    body,
		cookies:    cookies,
		request:    req,
		tctx:       tctx,
		client:     client,
	}
}

// Reason returns the reason phrase of the status line, e.g. "OK" for 200.
func (r *Response) Reason() string {
	return strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
}

// Content returns the raw body bytes exactly as received.
func (r *Response) Content() []byte {
	return r.content
}

// Request returns the request descriptor that produced this response.
func (r *Response) Request() *Request {
	return r.request
}

// Context returns the transport context the response was produced over.
// Chained verb calls reuse it implicitly.
func (r *Response) Context() *TransportContext {
	return r.tctx
}

// GetHeader returns the value of the specified header
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// Text decodes the body using the charset declared in the Content-Type
// header, defaulting to UTF-8 when none is declared. An unknown charset or
// invalid UTF-8 input returns a DecodeError rather than silently
// substituting characters.
func (r *Response) Text() (string, error) {
	charset := responseCharset(r.Headers.Get("Content-Type"))

	if charset == "" || strings.EqualFold(charset, "utf-8") {
		if !utf8.Valid(r.content) {
			return "", &DecodeError{What: "text", Err: errInvalidUTF8}
		}
		return string(r.content), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", &DecodeError{What: "text", Err: err}
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), r.content)
	if err != nil {
		return "", &DecodeError{What: "text", Err: err}
	}
	return string(decoded), nil
}

// JSON decodes the body text as JSON into v. Malformed JSON returns a
// DecodeError, distinguishable from transport errors.
func (r *Response) JSON(v interface{}) error {
	text, err := r.Text()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &DecodeError{What: "json", Err: err}
	}
	return nil
}

// RaiseForStatus returns nil when the status code is within [200,300) and a
// StatusError carrying the code and reason phrase otherwise.
func (r *Response) RaiseForStatus() error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	return &StatusError{Code: r.StatusCode, Reason: r.Reason()}
}

// IsSuccess returns true if the response status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// Cookies returns the cookie snapshot taken when the response was
// constructed.
func (r *Response) Cookies() []*http.Cookie {
	return r.cookies
}

// CookiesDict returns the snapshot as a flattened name→value mapping.
// Cookies whose names collide keep the last value seen.
func (r *Response) CookiesDict() map[string]string {
	out := make(map[string]string, len(r.cookies))
	for _, c := range r.cookies {
		out[c.Name] = c.Value
	}
	return out
}

// chain returns a client bound to this response's transport context. The
// chained client inherits the originating client's default headers and
// timeout.
func (r *Response) chain() *Client {
	return &Client{
		headers: r.client.headers,
		timeout: r.client.timeout,
		tctx:    r.tctx,
	}
}

// Get issues a GET request on this response's chain.
func (r *Response) Get(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return r.chain().Get(ctx, url, opts...)
}

// Head issues a HEAD request on this response's chain.
func (r *Response) Head(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return r.chain().Head(ctx, url, opts...)
}

// Put issues a PUT request on this response's chain.
func (r *Response) Put(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return r.chain().Put(ctx, url, opts...)
}

// Post issues a POST request on this response's chain.
func (r *Response) Post(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return r.chain().Post(ctx, url, opts...)
}

// Delete issues a DELETE request on this response's chain.
func (r *Response) Delete(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return r.chain().Delete(ctx, url, opts...)
}

// responseCharset extracts the charset parameter from a Content-Type value.
// A missing or unparseable header yields the empty string, which callers
// treat as UTF-8.
func responseCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
