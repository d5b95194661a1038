package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError is returned for non-2xx responses other than 404.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

type baseClient struct {
	baseURL string
	http    *http.Client
}

func newBaseClient(baseURL string, httpClient *http.Client) baseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return baseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// getJSON decodes the response into out. It reports found=false on 404.
func (c baseClient) getJSON(path string, out any) (bool, error) {
	return c.do(http.MethodGet, path, nil, out)
}

func (c baseClient) postJSON(path string, in, out any) (bool, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return c.do(http.MethodPost, path, bytes.NewReader(body), out)
}

func (c baseClient) do(method, path string, body io.Reader, out any) (bool, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}
