// Package feed fetches and decodes the remote scores document.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultURL serves the latest finished or in-progress scores.
const DefaultURL = "https://nhl-score-api.herokuapp.com/api/scores/latest"

// Transport error categories reported to the user.
var (
	ErrConnect = errors.New("cannot connect to the API")
	ErrTimeout = errors.New("API request timed out")
	ErrDecode  = errors.New("API returned malformed data")
)

// Client fetches the scores feed.
type Client struct {
	http    *http.Client
	baseURL string
	log     *logrus.Logger
}

// NewClient creates a feed client with a 30 second request timeout.
func NewClient(logger *logrus.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultURL,
		log:     logger,
	}
}

// WithURL points the client at a different feed endpoint. Used by tests.
func (c *Client) WithURL(u string) *Client {
	c.baseURL = u
	return c
}

// FetchLatest performs the single GET round trip and decodes the body.
// Failures are wrapped in one of the transport error categories.
func (c *Client) FetchLatest(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	c.log.WithField("url", c.baseURL).Debug("fetching scores")

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrDecode, resp.Status)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	c.log.WithField("games", len(payload.Games)).Debug("feed decoded")

	return &payload, nil
}
