package ultralite

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Mode is the security mode of a transport context.
type Mode int

const (
	// ModePlain sends requests over unencrypted TCP.
	ModePlain Mode = iota
	// ModeTLS sends requests over TLS. Once a chain is in ModeTLS it never
	// downgrades to ModePlain.
	ModeTLS
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeTLS {
		return "tls"
	}
	return "plain"
}

// TransportContext is the reusable transport state shared by a chain of
// requests: the underlying http.Client, its cookie jar, and the security
// mode the chain is bound to. A context is created by the request that roots
// a chain and reused by calls chained off the resulting Response.
type TransportContext struct {
	mode   Mode
	jar    *Jar
	client *http.Client
}

// Mode returns the security mode the context is bound to.
func (t *TransportContext) Mode() Mode { return t.mode }

// Jar returns the cookie jar shared by the chain.
func (t *TransportContext) Jar() *Jar { return t.jar }

// newTLSConfig builds the TLS configuration for encrypted transports. It is
// a package variable so tests can substitute a failing builder and verify
// that construction failure surfaces before any network attempt.
var newTLSConfig = func() (*tls.Config, error) {
	return &tls.Config{MinVersion: tls.VersionTLS12}, nil
}

// resolveTransport returns the transport context to use for rawURL.
//
// When existing is non-nil its security mode is authoritative: an encrypted
// context refuses a plain URL with a ProtocolError, without opening a
// connection, and a plain context is upgraded and locked to TLS by its first
// encrypted request. With no existing context the mode is derived from the
// URL scheme. In either case, failure to build a TLS configuration surfaces
// as a TLSError and never silently falls back to plain.
//
// Resolution is purely in-memory object construction; no I/O happens here.
func resolveTransport(rawURL string, existing *TransportContext, jar *Jar, timeout time.Duration) (*TransportContext, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("ultralite: parsing URL %q: %w", rawURL, err)
	}

	var mode Mode
	switch u.Scheme {
	case "http":
		mode = ModePlain
	case "https":
		mode = ModeTLS
	default:
		return nil, fmt.Errorf("ultralite: unsupported URL scheme %q", u.Scheme)
	}

	if existing != nil {
		if existing.mode == ModeTLS && mode == ModePlain {
			return nil, &ProtocolError{URL: rawURL}
		}
		// The first encrypted request on a plain-rooted chain locks the
		// chain to TLS: every later call on this context must be encrypted.
		if existing.mode == ModePlain && mode == ModeTLS {
			tlsConfig, err := newTLSConfig()
			if err != nil {
				return nil, &TLSError{Err: err}
			}
			if transport, ok := existing.client.Transport.(*http.Transport); ok {
				transport.TLSClientConfig = tlsConfig
			}
			existing.mode = ModeTLS
		}
		return existing, nil
	}

	if jar == nil {
		jar, err = NewJar()
		if err != nil {
			return nil, err
		}
	}

	transport := &http.Transport{}
	if mode == ModeTLS {
		tlsConfig, err := newTLSConfig()
		if err != nil {
			return nil, &TLSError{Err: err}
		}
		transport.TLSClientConfig = tlsConfig
	}

	return &TransportContext{
		mode: mode,
		jar:  jar,
		client: &http.Client{
			Transport: transport,
			Jar:       jar.httpJar(),
			Timeout:   timeout,
		},
	}, nil
}

// send issues the exchange over the context's transport and reads the full
// response body. Non-2xx statuses are not errors here: status, headers and
// body are always captured, and status handling is deferred to
// Response.RaiseForStatus. Connection-level failures surface as ConnError.
func send(tctx *TransportContext, httpReq *http.Request) (*http.Response, []byte, error) {
	httpResp, err := tctx.client.Do(httpReq)
	if err != nil {
		return nil, nil, &ConnError{URL: httpReq.URL.String(), Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, &ConnError{URL: httpReq.URL.String(), Err: err}
	}

	return httpResp, body, nil
}
