package edx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// CourseRun is one schedulable offering of a course as known to the catalog.
type CourseRun struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// CatalogClient calls the course-catalog API using the service-level token.
type CatalogClient struct {
	baseURL string
	tokens  oauth2.TokenSource
	client  *http.Client
}

// NewCatalogClient creates a client for the catalog API. The token source
// is shared process-wide so the service token is fetched once and reused.
func NewCatalogClient(baseURL string, tokens oauth2.TokenSource) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type catalogPage struct {
	Results []CourseRun `json:"results"`
}

// CourseRuns looks up course runs by key in a single batched request. The
// key set is comma-joined with no pagination; an oversized set is a known
// limitation of the upstream endpoint, not handled here.
func (c *CatalogClient) CourseRuns(ctx context.Context, keys []string) ([]CourseRun, error) {
	q := url.Values{}
	q.Set("keys", strings.Join(keys, ","))
	endpoint := c.baseURL + "/course_runs/?" + q.Encode()

	var page catalogPage
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, wrapUpstream("looking up course runs", err)
	}
	return page.Results, nil
}

// Search runs a free-text catalog search with the skill's fixed filters:
// edX partner, course runs only, end date in the future, first page of ten.
func (c *CatalogClient) Search(ctx context.Context, query string) ([]CourseRun, error) {
	q := url.Values{}
	q.Set("partner", "edx")
	q.Set("end__gt", "now")
	q.Set("content_type", "courserun")
	q.Set("page", "1")
	q.Set("page_size", "10")
	q.Set("q", query)
	endpoint := c.baseURL + "/search/all/?" + q.Encode()

	var page catalogPage
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, wrapUpstream("searching catalog", err)
	}
	return page.Results, nil
}

func (c *CatalogClient) get(ctx context.Context, endpoint string, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("fetching service token: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "JWT "+token.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}
