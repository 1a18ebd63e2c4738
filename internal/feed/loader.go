package feed

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"postdeck/internal/domain"
	"postdeck/internal/logging"
)

// Loader wraps a Client with the minimum-display-delay policy: the fetch and
// a fixed timer run concurrently and both must finish before Load returns,
// so the loading state stays visible for at least MinDelay.
type Loader struct {
	client   *Client
	minDelay time.Duration
	logger   logging.Logger
}

// NewLoader creates a loader. A non-positive minDelay disables the floor.
func NewLoader(client *Client, minDelay time.Duration) *Loader {
	return &Loader{
		client:   client,
		minDelay: minDelay,
		logger:   client.logger,
	}
}

// Load fetches the collection while holding the loading state for at least
// the configured minimum. Fetch failures are recovered locally as an empty
// collection and never propagated. The only returned error is the context's,
// so a caller that tore down mid-load can tell the result apart and discard it.
func (l *Loader) Load(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetched, err := l.client.Fetch(gctx)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			l.logger.Warn("feed fetch failed, loading empty collection", "error", err)
			return nil
		}
		posts = fetched
		return nil
	})

	g.Go(func() error {
		if l.minDelay <= 0 {
			return nil
		}
		timer := time.NewTimer(l.minDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}
