// Package output renders requests and responses for the terminal, with
// optional colorization and verbose detail.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ultralite-go/ultralite"
)

// Formatter is responsible for formatting HTTP requests and responses in text format
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a new formatter with the given options. Colors are
// also disabled automatically when stdout is not a terminal.
func NewFormatter(verbose, noColor bool) *Formatter {
	if !noColor && !IsTerminal() {
		noColor = true
	}

	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats an HTTP request for display
func (f *Formatter) FormatRequest(req *ultralite.Request) string {
	var buf strings.Builder

	fullURL := req.URL
	if len(req.QueryParams) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + req.QueryParams.Encode()
	}

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method),
		f.scheme.URL.Sprint(fullURL)))

	if f.Verbose && len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(key),
				f.scheme.HeaderValue.Sprint(value)))
		}
	}

	if len(req.Body) > 0 {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(req.Body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats an HTTP response for display
func (f *Formatter) FormatResponse(resp *ultralite.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s\n", statusColor.Sprint(resp.Status)))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n",
					f.scheme.HeaderKey.Sprint(key),
					f.scheme.HeaderValue.Sprint(value)))
			}
		}

		if cookies := resp.CookiesDict(); len(cookies) > 0 {
			buf.WriteString("  Cookies:\n")
			for name, value := range cookies {
				buf.WriteString(fmt.Sprintf("    %s=%s\n",
					f.scheme.Cookie.Sprint(name), value))
			}
		}
	}

	if text, err := resp.Text(); err == nil && text != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(formatJSONString(text))
		buf.WriteString("\n")
	}

	return buf.String()
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, []byte(s), "  ", "  ")
	if err != nil {
		return s
	}
	return prettyJSON.String()
}
