package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrSourceUnavailable reports that the sheet could not be fetched or its
// locator could not be understood. It is never fatal: the caller is expected
// to ask for a corrected locator and retry.
var ErrSourceUnavailable = errors.New("sheet source unavailable")

// Config holds configuration for the sheet fetcher.
type Config struct {
	// TimeoutSeconds bounds a single CSV export download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// RowSource fetches the raw row set behind a source locator.
type RowSource interface {
	// Fetch returns the sheet's rows, split into positional fields.
	// Failures are wrapped in ErrSourceUnavailable.
	Fetch(ctx context.Context, locator, sheet string) ([][]string, error)
}

// HTTPSource fetches CSV exports over HTTP.
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates a fetcher with strict transport timeouts.
func NewHTTPSource(timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &HTTPSource{client: &http.Client{Transport: transport, Timeout: timeout}}
}

// Fetch downloads the CSV export behind the locator and parses it into rows.
func (s *HTTPSource) Fetch(ctx context.Context, locator, sheet string) ([][]string, error) {
	target, err := ExportURL(locator, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	r := csv.NewReader(resp.Body)
	// Sheet rows are ragged; field counts vary per row.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed csv: %v", ErrSourceUnavailable, err)
	}
	return rows, nil
}

// ExportURL resolves a user-supplied locator into a fetchable CSV URL.
// Google Sheets edit links are rewritten to the gviz CSV export endpoint
// with the sheet name applied; any other http(s) locator is assumed to be
// a CSV endpoint already.
func ExportURL(locator, sheet string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(locator))
	if err != nil {
		return "", fmt.Errorf("invalid locator: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid locator scheme %q", u.Scheme)
	}

	if u.Host == "docs.google.com" {
		id := spreadsheetID(u.Path)
		if id == "" {
			return "", fmt.Errorf("locator has no spreadsheet id")
		}
		export := url.URL{
			Scheme: "https",
			Host:   "docs.google.com",
			Path:   "/spreadsheets/d/" + id + "/gviz/tq",
		}
		q := url.Values{}
		q.Set("tqx", "out:csv")
		if sheet != "" {
			q.Set("sheet", sheet)
		}
		export.RawQuery = q.Encode()
		return export.String(), nil
	}

	return u.String(), nil
}

func spreadsheetID(path string) string {
	const prefix = "/spreadsheets/d/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
