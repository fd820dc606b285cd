package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves a learner profile by opaque student identifier.
//
// Callers treat any error as "no profile available": question generation
// proceeds unpersonalized. Implementations must not retry.
type Fetcher interface {
	Fetch(ctx context.Context, studentID string) (*StudentLearningProfile, error)
}

// HTTPFetcher queries the external profile-builder service.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher against the profile service at baseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch performs a single GET against the profile service.
func (f *HTTPFetcher) Fetch(ctx context.Context, studentID string) (*StudentLearningProfile, error) {
	u := fmt.Sprintf("%s/students/%s/profile", f.baseURL, url.PathEscape(studentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile service returned %d", resp.StatusCode)
	}

	var p StudentLearningProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// StaticFetcher serves profiles from memory. Used in tests and by the CLI
// when no profile service is configured.
type StaticFetcher struct {
	Profiles map[string]*StudentLearningProfile
}

// Fetch returns the stored profile or an error when the student is unknown.
func (f *StaticFetcher) Fetch(_ context.Context, studentID string) (*StudentLearningProfile, error) {
	if p, ok := f.Profiles[studentID]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no profile for student %q", studentID)
}
