package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"cleartrack/src/utils"
)

// ExternalAPIService is a struct representing a configurable external service
type ExternalAPIService struct{}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService() *ExternalAPIService {
	return &ExternalAPIService{}
}

// makeRequest is a helper function to make HTTP requests, supporting optional query parameters and headers
func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint string, params url.Values, body interface{}, headers map[string]string) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	var err error
	var jsonBody []byte
	if body != nil {
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode > http.StatusCreated {
		resp.Body.Close()
		return nil, utils.NewHTTPError(resp.StatusCode, resp.Status)
	}
	return resp, nil
}

// Get makes a GET request to the external service, accepting optional query parameters and headers
func (s *ExternalAPIService) Get(ctx context.Context, endpoint string, params url.Values, headers map[string]string) (*http.Response, error) {
	return s.makeRequest(ctx, "GET", endpoint, params, nil, headers)
}

// Post makes a POST request to the external service, accepting optional query parameters and headers
func (s *ExternalAPIService) Post(ctx context.Context, endpoint string, params url.Values, body interface{}, headers map[string]string) (*http.Response, error) {
	return s.makeRequest(ctx, "POST", endpoint, params, body, headers)
}
