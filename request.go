package ultralite

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
)

// Request describes a single HTTP exchange before dispatch: method, target
// URL, headers, query parameters and body. A Request is built fresh per call
// and never mutated after dispatch.
type Request struct {
	Method      string
	URL         string
	QueryParams url.Values
	Headers     map[string]string
	Body        []byte

	// jar, when set, roots a fresh chain instead of reusing the client's.
	jar *Jar
}

// NewRequest creates a new request descriptor
func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method:      method,
		URL:         rawURL,
		QueryParams: make(url.Values),
		Headers:     make(map[string]string),
	}
}

// WithHeader adds a header to the request
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithQueryParam adds a query parameter to the request
func (r *Request) WithQueryParam(key, value string) *Request {
	r.QueryParams.Add(key, value)
	return r
}

// WithQueryParams adds multiple query parameters to the request
func (r *Request) WithQueryParams(params map[string]string) *Request {
	for key, value := range params {
		r.QueryParams.Add(key, value)
	}
	return r
}

// WithBody sets the body of the request. For GET and HEAD the body is
// dropped at build time rather than rejected.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// WithJar overrides the cookie jar for this request, rooting a fresh chain
// unrelated to the client's current one.
func (r *Request) WithJar(jar *Jar) *Request {
	r.jar = jar
	return r
}

// methodHasBody reports whether method semantically carries a request body.
func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// supportedMethod reports whether method is one of the implemented verbs.
func supportedMethod(method string) bool {
	switch method {
	case http.MethodHead, http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete:
		return true
	}
	return false
}

// build constructs the outgoing http.Request. Query parameters are encoded
// and merged into any query string already present on the URL. defaults are
// the client-wide headers; caller headers win on case-insensitive collision.
func (r *Request) build(defaults map[string]string) (*http.Request, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, err
	}

	query := u.Query()
	for key, values := range r.QueryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	u.RawQuery = query.Encode()

	// A body supplied for a method that does not carry one is ignored.
	var bodyReader io.Reader
	if len(r.Body) > 0 && methodHasBody(r.Method) {
		bodyReader = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequest(r.Method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range defaults {
		req.Header.Set(key, value)
	}
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
