// Package urlutil provides URL parsing, construction, and small HTTP
// convenience helpers.
package urlutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// Parts is a URL decomposed into its components.
type Parts struct {
	Scheme      string
	Host        string
	Port        string
	Path        string
	Query       string
	QueryParams map[string]string
	Fragment    string
	Username    string
	Password    string
}

// Parse splits a URL into its components
func Parse(rawURL string) (*Parts, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	parts := &Parts{
		Scheme:      u.Scheme,
		Host:        u.Hostname(),
		Port:        u.Port(),
		Path:        u.Path,
		Query:       u.RawQuery,
		QueryParams: DecodeQuery(u.RawQuery),
		Fragment:    u.Fragment,
	}
	if u.User != nil {
		parts.Username = u.User.Username()
		parts.Password, _ = u.User.Password()
	}
	return parts, nil
}

// Build joins a base URL, a path, and query parameters
func Build(base, path string, params map[string]string) string {
	result := base
	if path != "" {
		result = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	}
	if len(params) > 0 {
		result += "?" + EncodeQuery(params)
	}
	return result
}

// EncodeQuery encodes parameters as a URL query string with sorted keys
func EncodeQuery(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

// DecodeQuery decodes a query string into a flat map; repeated keys
// keep their first value.
func DecodeQuery(query string) map[string]string {
	params := make(map[string]string)
	values, err := url.ParseQuery(query)
	if err != nil {
		return params
	}
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[0]
		}
	}
	return params
}

// ExtractDomain returns the hostname of a URL with any leading "www."
// stripped, or "" if the URL does not parse.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// IsValid reports whether the string is an absolute http or https URL
// with a host.
func IsValid(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CheckResult describes the outcome of a URL reachability check.
type CheckResult struct {
	Valid       bool
	StatusCode  int
	ContentType string
	Err         error
}

// Check performs a HEAD request against the URL and reports
// reachability. Any 2xx or 3xx status counts as valid.
func Check(ctx context.Context, rawURL string) *CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return &CheckResult{Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &CheckResult{Err: err}
	}
	defer resp.Body.Close()

	return &CheckResult{
		Valid:       resp.StatusCode < 400,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
}

// FetchJSON fetches a URL and decodes its JSON body into v
func FetchJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// downloadChunkSize matches the classifier's streaming read size.
const downloadChunkSize = 8192

// Download streams a URL to a local file in fixed-size chunks and
// returns the number of bytes written. A failed download removes the
// partial file.
func Download(ctx context.Context, rawURL, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	written, err := io.CopyBuffer(out, resp.Body, make([]byte, downloadChunkSize))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dest)
		return 0, err
	}
	return written, nil
}

var titleRe = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

// PageTitle fetches a page and returns the contents of its <title>
// element, or "" when there is none.
func PageTitle(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	match := titleRe.FindSubmatch(body)
	if match == nil {
		return "", nil
	}
	return strings.TrimSpace(string(match[1])), nil
}
