// Package ultralite is a small convenience layer over net/http that mirrors
// the ergonomics of high-level HTTP client libraries: verb methods, default
// headers, cookie persistence across chained calls, and a uniform response
// wrapper.
//
// Basic Usage:
//
//	client := ultralite.NewClient(
//	    ultralite.WithTimeout(10*time.Second),
//	    ultralite.WithHeader("User-Agent", "ultralite"),
//	)
//
//	resp, err := client.Get(context.Background(), "https://httpbin.org/get",
//	    ultralite.WithParams(map[string]string{"foo": "bar"}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := resp.RaiseForStatus(); err != nil {
//	    log.Fatal(err)
//	}
//
//	var body map[string]any
//	if err := resp.JSON(&body); err != nil {
//	    log.Fatal(err)
//	}
//
// Chaining:
//
// A Response exposes the same verb methods as a Client. A chained call
// reuses the transport context of the response it hangs off, so cookies set
// by earlier responses are sent on later requests automatically:
//
//	login, err := client.Post(ctx, "https://example.com/login",
//	    ultralite.WithBody([]byte(`{"user":"me"}`)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	profile, err := login.Get(ctx, "https://example.com/me")
//
// A chain that has issued an encrypted request is locked to encrypted
// transport: chaining a plain http:// call off it fails with a
// ProtocolError before any connection is opened.
//
// Errors:
//
// Failures surface as distinct types so callers can branch with errors.As:
// TLSError (encrypted transport could not be built), ProtocolError
// (encrypted-to-plain downgrade on a chain), ConnError (DNS, connect or
// handshake failure), StatusError (from RaiseForStatus), DecodeError (text
// or JSON decoding) and NotImplementedError (unsupported method).
//
// Thread Safety:
//
// Client is safe for concurrent use. The cookie jar is the only mutable
// state shared by a chain and serializes its own mutation.
package ultralite
