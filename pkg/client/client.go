package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/forgelab/repoforge/internal/domain"
)

// Client is the API client for the repoforge progress API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetProgress retrieves the corpus completion state
func (c *Client) GetProgress() (*domain.RunProgress, error) {
	var response struct {
		Data *domain.RunProgress `json:"data"`
	}
	if err := c.get("/api/v1/progress", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetLatestRun retrieves the most recent generation run
func (c *Client) GetLatestRun() (*domain.RunRecord, error) {
	var response struct {
		Data *domain.RunRecord `json:"data"`
	}
	if err := c.get("/api/v1/runs/latest", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// ListRepos retrieves ledger rows for generated repositories
func (c *Client) ListRepos(limit int) ([]*domain.RepoRecord, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var response struct {
		Data []*domain.RepoRecord `json:"data"`
	}
	if err := c.get("/api/v1/repos", params, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetRepo retrieves the ledger row for one repository
func (c *Client) GetRepo(name string) (*domain.RepoRecord, error) {
	var response struct {
		Data *domain.RepoRecord `json:"data"`
	}
	if err := c.get("/api/v1/repos/"+url.PathEscape(name), nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, result)
}
