// Package edx wraps the two upstream REST APIs the skill depends on: the
// LMS enrollment API (user-authenticated) and the course-catalog API
// (service-authenticated). The two stay separate clients because they are
// independently owned services with different credentials and failure
// domains.
package edx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Enrollment is one enrollment record as returned by the LMS API, reduced
// to the course-run key the skill cares about.
type Enrollment struct {
	CourseID string
}

// EnrollmentClient calls the LMS enrollment endpoint. All calls carry the
// requesting user's token; there is no service-level fallback.
type EnrollmentClient struct {
	baseURL string
	client  *http.Client
}

// NewEnrollmentClient creates a client for the LMS enrollment API.
func NewEnrollmentClient(baseURL string) *EnrollmentClient {
	return &EnrollmentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type enrollmentWire struct {
	CourseDetails struct {
		CourseID string `json:"course_id"`
	} `json:"course_details"`
}

// List fetches the user's enrollment records. All other fields of the
// upstream payload are discarded.
func (c *EnrollmentClient) List(ctx context.Context, userToken string) ([]Enrollment, error) {
	endpoint := c.baseURL + "/enrollment/v1/enrollment"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, wrapUpstream("listing enrollments", err)
	}
	req.Header.Set("Authorization", "Bearer "+userToken)

	var records []enrollmentWire
	if err := c.do(req, &records); err != nil {
		return nil, wrapUpstream("listing enrollments", err)
	}

	enrollments := make([]Enrollment, 0, len(records))
	for _, r := range records {
		enrollments = append(enrollments, Enrollment{CourseID: r.CourseDetails.CourseID})
	}
	return enrollments, nil
}

type enrollmentChange struct {
	Mode          string `json:"mode"`
	CourseDetails struct {
		CourseID string `json:"course_id"`
		IsActive bool   `json:"is_active"`
	} `json:"course_details"`
}

// SetActive posts an enrollment change for the given course run. Mode is
// fixed to "audit". There is no confirmation read-back; a nil return means
// the upstream accepted the request.
func (c *EnrollmentClient) SetActive(ctx context.Context, userToken, courseID string, active bool) error {
	change := enrollmentChange{Mode: "audit"}
	change.CourseDetails.CourseID = courseID
	change.CourseDetails.IsActive = active

	payload, err := json.Marshal(change)
	if err != nil {
		return wrapUpstream("changing enrollment", err)
	}

	endpoint := c.baseURL + "/enrollment/v1/enrollment"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return wrapUpstream("changing enrollment", err)
	}
	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		return wrapUpstream("changing enrollment", err)
	}
	return nil
}

// do executes a request and decodes a JSON response body into out when
// out is non-nil.
func (c *EnrollmentClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}
