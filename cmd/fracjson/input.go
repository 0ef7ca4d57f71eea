package main

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultAcceptHeader = "application/json, application/jsonc;q=0.9, text/plain;q=0.5, */*;q=0.1"

type urlOptions struct {
	acceptAll bool
	insecure  bool
}

// parseHTTPURL reports whether raw is an http(s) URL and parses it.
func parseHTTPURL(raw string) (*url.URL, bool, error) {
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return nil, false, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, true, fmt.Errorf("parse url: %w", err)
	}
	if u.Host == "" {
		return nil, true, fmt.Errorf("parse url: missing host in %q", raw)
	}
	return u, true, nil
}

// openURL issues a GET for u and returns the response body.
func openURL(u *url.URL, opts urlOptions) (io.Reader, io.Closer, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	client := &http.Client{Transport: transport, Timeout: 60 * time.Second}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, nil, err
	}
	accept := defaultAcceptHeader
	if opts.acceptAll {
		accept = "*/*"
	}
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("GET %s: %s", u.Redacted(), resp.Status)
	}
	return resp.Body, resp.Body, nil
}

// readInput returns the contents of a file, of stdin for "-", or of the
// response body for an http(s) URL.
func readInput(name string, stdin io.Reader, opts urlOptions) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	u, isURL, err := parseHTTPURL(name)
	if err != nil {
		return nil, err
	}
	if isURL {
		r, closer, err := openURL(u, opts)
		if err != nil {
			return nil, err
		}
		defer closer.Close()
		return io.ReadAll(r)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}
