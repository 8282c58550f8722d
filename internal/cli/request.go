package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ultralite-go/ultralite"
	"github.com/ultralite-go/ultralite/internal/config"
	"github.com/ultralite-go/ultralite/internal/output"
	"github.com/ultralite-go/ultralite/pkg/jsonpath"
	"github.com/ultralite-go/ultralite/pkg/jsonschema"
)

// addRequestFlags registers the flags shared by every verb command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameters as key=value (can be used multiple times)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", ultralite.DefaultTimeout, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("extract", "", "JSONPath expression to extract from the response body")
	cmd.Flags().String("schema", "", "Path to a JSON Schema file to validate the response body against")
	cmd.Flags().String("profile", "", "Path to a YAML profile with default headers and timeout")
	cmd.Flags().Bool("fail", false, "Exit with an error when the status code is outside the 2XX range")
}

// addBodyFlags registers the body flag for verbs that carry one.
func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "Request body")
}

// parsePairs splits "key<sep>value" strings into a map, trimming whitespace.
// Entries without the separator are skipped.
func parsePairs(pairs []string, sep string) map[string]string {
	out := make(map[string]string)
	for _, pair := range pairs {
		parts := strings.SplitN(pair, sep, 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// runRequest executes a verb command against rawURL: build the client from
// flags and profile, dispatch, format the exchange, then run any extraction
// or schema validation the caller asked for.
func runRequest(cmd *cobra.Command, method, rawURL string) error {
	headers, _ := cmd.Flags().GetStringArray("header")
	queries, _ := cmd.Flags().GetStringArray("query")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")
	extract, _ := cmd.Flags().GetString("extract")
	schemaPath, _ := cmd.Flags().GetString("schema")
	profilePath, _ := cmd.Flags().GetString("profile")
	fail, _ := cmd.Flags().GetBool("fail")

	defaultHeaders := make(map[string]string)
	defaultParams := make(map[string]string)

	if profilePath != "" {
		profile, err := config.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		if errs := config.ValidateProfile(profile); len(errs) > 0 {
			return fmt.Errorf("invalid profile: %s", errs[0].Error())
		}
		for key, value := range profile.Headers {
			defaultHeaders[key] = value
		}
		for key, value := range profile.Params {
			defaultParams[key] = value
		}
		if profile.Timeout != "" && !cmd.Flags().Changed("timeout") {
			timeout, _ = time.ParseDuration(profile.Timeout)
		}
	}

	client := ultralite.NewClient(
		ultralite.WithTimeout(timeout),
		ultralite.WithHeaders(defaultHeaders),
	)

	req := ultralite.NewRequest(method, rawURL).
		WithQueryParams(defaultParams).
		WithQueryParams(parsePairs(queries, "="))
	for key, value := range parsePairs(headers, ":") {
		req.WithHeader(key, value)
	}

	if cmd.Flags().Lookup("data") != nil {
		data, _ := cmd.Flags().GetString("data")
		if data != "" {
			req.WithBody([]byte(data))
		}
	}

	formatter := output.NewFormatter(verbose, noColor)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(req))

	resp, err := client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))

	if schemaPath != "" {
		if err := validateSchema(cmd, resp, schemaPath, noColor); err != nil {
			return err
		}
	}

	if extract != "" {
		text, err := resp.Text()
		if err != nil {
			return err
		}
		value, err := jsonpath.Extract(text, extract)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}

	if fail {
		return resp.RaiseForStatus()
	}
	return nil
}

// validateSchema checks the response body against the JSON Schema at path.
func validateSchema(cmd *cobra.Command, resp *ultralite.Response, path string, noColor bool) error {
	schema, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema %s: %w", path, err)
	}

	text, err := resp.Text()
	if err != nil {
		return err
	}

	valid, errs := jsonschema.ValidateWithErrors(text, string(schema))
	if !valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Schema validation failed\n", output.ErrorIcon(noColor))
		if len(errs) > 0 {
			return fmt.Errorf("schema validation: %s", errs.Error())
		}
		return fmt.Errorf("schema validation failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Schema validation passed\n", output.SuccessIcon(noColor))
	return nil
}
