// Package feed fetches the post collection from the remote API.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"postdeck/internal/config"
	"postdeck/internal/domain"
	"postdeck/internal/logging"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Limit is the maximum number of posts to request.
	Limit int
	// Timeout bounds the whole HTTP exchange.
	Timeout time.Duration
	// ImageURLTemplate is a fmt template with one %d verb for the post ID.
	ImageURLTemplate string
	// Logger receives fetch diagnostics. Defaults to the global logger.
	Logger logging.Logger
}

// OptionsFromConfig builds Options from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		BaseURL:          config.Get("feed_base_url", "https://jsonplaceholder.typicode.com"),
		Limit:            config.GetInt("feed_limit", 18),
		Timeout:          config.GetDuration("feed_timeout", 10*time.Second),
		ImageURLTemplate: config.Get("feed_image_url_template", "https://picsum.photos/seed/%d/600/400"),
	}
}

// Client fetches posts over HTTP and decorates them with derived image URLs.
type Client struct {
	baseURL       string
	limit         int
	imageTemplate string
	httpClient    *http.Client
	logger        logging.Logger
}

// NewClient creates a feed client. Zero option fields fall back to the
// defaults from OptionsFromConfig semantics.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://jsonplaceholder.typicode.com"
	}
	if opts.Limit <= 0 {
		opts.Limit = 18
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ImageURLTemplate == "" {
		opts.ImageURLTemplate = "https://picsum.photos/seed/%d/600/400"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetGlobal()
	}
	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		limit:         opts.Limit,
		imageTemplate: opts.ImageURLTemplate,
		httpClient:    &http.Client{Timeout: opts.Timeout},
		logger:        logger,
	}
}

// Fetch retrieves the post collection. Posts come back in API order, with
// invalid entries and duplicate IDs dropped, and each post decorated with an
// image URL derived from its ID.
func (c *Client) Fetch(ctx context.Context) ([]domain.Post, error) {
	url := fmt.Sprintf("%s/posts?_limit=%d", c.baseURL, c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected feed response status: %s", resp.Status)
	}

	var raw []domain.Post
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	posts := make([]domain.Post, 0, len(raw))
	seen := make(map[int]bool, len(raw))
	for _, post := range raw {
		if err := post.Validate(); err != nil {
			c.logger.Warn("dropping invalid post from feed", "id", post.ID, "error", err)
			continue
		}
		if seen[post.ID] {
			c.logger.Warn("dropping duplicate post from feed", "id", post.ID)
			continue
		}
		seen[post.ID] = true
		post.ImageURL = fmt.Sprintf(c.imageTemplate, post.ID)
		posts = append(posts, post)
	}

	c.logger.Debug("feed fetched", "url", url, "posts", len(posts))
	return posts, nil
}
