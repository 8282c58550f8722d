package ultralite

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout is applied when no WithTimeout option is given. A zero
// timeout means a call may block until its context is cancelled.
const DefaultTimeout = 30 * time.Second

// Chainable is anything that can issue verb requests: a Client rooting a new
// chain, or a Response continuing the chain that produced it. Both delegate
// to the same pipeline and hold a TransportContext.
type Chainable interface {
	Get(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Head(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Put(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Post(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
	Delete(ctx context.Context, url string, opts ...RequestOption) (*Response, error)
}

// Client is the façade exposing the verb methods. It owns per-instance
// default headers and composes the pipeline: resolve transport → build
// request → dispatch → wrap response.
type Client struct {
	headers map[string]string
	timeout time.Duration
	jar     *Jar

	// tctx is set when the client continues an existing chain (a Response's
	// chained verb calls construct such clients).
	tctx *TransportContext
}

// Option is a function that configures a Client
type Option func(*Client)

// NewClient creates a new client with the given options
func NewClient(options ...Option) *Client {
	client := &Client{
		headers: make(map[string]string),
		timeout: DefaultTimeout,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTimeout sets the per-call timeout. Zero disables the timeout entirely;
// callers then control cancellation through the context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a default header sent with every request. Caller-supplied
// request headers win on collision.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders adds multiple default headers
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithJar sets the cookie jar used by the chain this client roots.
func WithJar(jar *Jar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// RequestOption mutates a request descriptor before dispatch.
type RequestOption func(*Request)

// WithParams adds query parameters to the request URL.
func WithParams(params map[string]string) RequestOption {
	return func(r *Request) {
		r.WithQueryParams(params)
	}
}

// WithRequestHeaders adds headers to the request, overriding client defaults
// on collision.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		for key, value := range headers {
			r.WithHeader(key, value)
		}
	}
}

// WithBody sets the request body. Ignored for GET and HEAD.
func WithBody(body []byte) RequestOption {
	return func(r *Request) {
		r.WithBody(body)
	}
}

// WithRequestJar overrides the cookie jar for a single request, rooting a
// fresh chain unrelated to the client's current one.
func WithRequestJar(jar *Jar) RequestOption {
	return func(r *Request) {
		r.WithJar(jar)
	}
}

// Do executes the request and returns the wrapped response. Unsupported
// methods fail with NotImplementedError before any transport work.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if !supportedMethod(req.Method) {
		return nil, &NotImplementedError{Method: req.Method}
	}

	// A per-request jar override abandons the current chain.
	tctx := c.tctx
	jar := c.jar
	if req.jar != nil {
		tctx = nil
		jar = req.jar
	}

	tctx, err := resolveTransport(req.URL, tctx, jar, c.timeout)
	if err != nil {
		return nil, err
	}

	httpReq, err := req.build(c.headers)
	if err != nil {
		return nil, err
	}
	httpReq = httpReq.WithContext(ctx)

	httpResp, body, err := send(tctx, httpReq)
	if err != nil {
		return nil, err
	}

	return newResponse(httpResp, body, req, tctx, c), nil
}

// Call issues a request with an arbitrary method string. Methods outside
// the supported verb set return a NotImplementedError.
func (c *Client) Call(ctx context.Context, method, url string, opts ...RequestOption) (*Response, error) {
	req := NewRequest(method, url)
	for _, opt := range opts {
		opt(req)
	}
	return c.Do(ctx, req)
}

// Get issues a GET request
func (c *Client) Get(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.Call(ctx, http.MethodGet, url, opts...)
}

// Head issues a HEAD request
func (c *Client) Head(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.Call(ctx, http.MethodHead, url, opts...)
}

// Put issues a PUT request
func (c *Client) Put(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.Call(ctx, http.MethodPut, url, opts...)
}

// Post issues a POST request
func (c *Client) Post(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.Call(ctx, http.MethodPost, url, opts...)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, url string, opts ...RequestOption) (*Response, error) {
	return c.Call(ctx, http.MethodDelete, url, opts...)
}

var (
	_ Chainable = (*Client)(nil)
	_ Chainable = (*Response)(nil)
)
