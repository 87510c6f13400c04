package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %s", e.Status)
}

type API struct {
	client  *http.Client
	baseURL string
	log     *zap.Logger
}

func NewAPI(baseURL string, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{client: http.DefaultClient, baseURL: baseURL, log: log}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Get issues a GET for path with params and decodes the JSON body into v.
// Any status outside 2xx is returned as *HTTPError.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	u := fmt.Sprintf("%s%s", a.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	a.log.Debug("GET", zap.String("url", u))
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u, err)
	}
	return nil
}
