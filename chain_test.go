package ultralite

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_EncryptedRootLocksMode(t *testing.T) {
	original := newTLSConfig
	defer func() { newTLSConfig = original }()

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	// The test server uses a self-signed certificate.
	newTLSConfig = func() (*tls.Config, error) {
		return &tls.Config{InsecureSkipVerify: true}, nil
	}

	client := NewClient()

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, ModeTLS, resp.Context().Mode())

	// Chained encrypted calls keep working.
	again, err := resp.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Same(t, resp.Context(), again.Context())

	// A plain call on the encrypted chain is refused.
	_, err = again.Get(context.Background(), "http://example.com")
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestChain_UpgradeToEncryptedLocksMode(t *testing.T) {
	original := newTLSConfig
	defer func() { newTLSConfig = original }()

	plainServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer plainServer.Close()

	tlsServer := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer tlsServer.Close()

	// The test server uses a self-signed certificate.
	newTLSConfig = func() (*tls.Config, error) {
		return &tls.Config{InsecureSkipVerify: true}, nil
	}

	client := NewClient()

	// The chain starts plain.
	first, err := client.Get(context.Background(), plainServer.URL)
	require.NoError(t, err)
	require.Equal(t, ModePlain, first.Context().Mode())

	// The first encrypted request locks the chain to TLS.
	second, err := first.Get(context.Background(), tlsServer.URL)
	require.NoError(t, err)
	assert.Same(t, first.Context(), second.Context())
	require.Equal(t, ModeTLS, second.Context().Mode())

	// A later plain call must now fail before any connection is opened.
	ct := &countingTransport{}
	second.Context().client.Transport = ct

	_, err = second.Get(context.Background(), plainServer.URL)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, int32(0), ct.calls.Load(), "plain call after upgrade must not reach the transport")
}

func TestChain_ResponseReusesContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithHeader("X-Chain", "yes"))

	first, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	second, err := first.Get(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Same(t, first.Context(), second.Context(), "chained call must reuse the transport context")
	assert.Same(t, first.Context().Jar(), second.Context().Jar(), "chained call must share the jar")
}

func TestChain_ClientAndResponseAreChainable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var link Chainable = NewClient()

	resp, err := link.Get(context.Background(), server.URL)
	require.NoError(t, err)

	// A Response satisfies the same verb surface as a Client.
	link = resp
	_, err = link.Head(context.Background(), server.URL)
	require.NoError(t, err)
}
