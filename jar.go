package ultralite

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// Jar is the cookie store associated with a request chain. It wraps the
// standard cookie jar configured with the public suffix list, so insertion
// follows standard domain, path and expiry matching: cookies with malformed
// or overly broad domains are dropped rather than stored.
//
// The dispatcher applies the jar to outgoing requests and absorbs Set-Cookie
// response headers into it automatically. The underlying jar serializes its
// own mutation, so a Jar may be shared by concurrent chained calls.
type Jar struct {
	jar *cookiejar.Jar
}

// NewJar creates an empty cookie jar
func NewJar() (*Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	return &Jar{jar: jar}, nil
}

// Cookies returns the cookies that would be sent with a request to u.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// SetCookies absorbs response cookies for u into the jar, following the
// standard insertion policy.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)
}

// Dict returns a flattened name→value view of the cookies that apply to u.
// When names collide the last value seen wins; callers needing every cookie
// use Cookies instead.
func (j *Jar) Dict(u *url.URL) map[string]string {
	out := make(map[string]string)
	for _, c := range j.Cookies(u) {
		out[c.Name] = c.Value
	}
	return out
}

// httpJar exposes the underlying http.CookieJar for wiring into an
// http.Client.
func (j *Jar) httpJar() http.CookieJar {
	return j.jar
}
