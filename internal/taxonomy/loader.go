package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/harukit/mekiki/internal/common"
)

// Loader fetches the classification tree from a remote category source at
// session start. Any failure, empty payload, or non-array payload falls
// back to the fixed default tree.
type Loader struct {
	httpClient *http.Client
	url        string
	fallback   []Node
}

// NewLoader creates a loader for the given category source URL. An empty
// URL disables remote loading entirely.
func NewLoader(url string) *Loader {
	return &Loader{
		url:      url,
		fallback: DefaultTree(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// categoriesPayload matches both shapes the category source is known to
// return: a bare array or an object wrapping one.
type categoriesPayload struct {
	Categories []Node `json:"categories"`
}

// Load fetches the remote tree and returns an index over it. On any
// failure the returned index wraps the default tree; the error is logged,
// never propagated, because category loading must not block a session.
func (l *Loader) Load(ctx context.Context) *Index {
	nodes, err := l.fetch(ctx)
	if err != nil {
		slog.Warn("category source unavailable, using built-in tree", "error", err)
		return NewIndex(l.fallback)
	}
	if len(nodes) == 0 {
		slog.Warn("category source returned no categories, using built-in tree")
		return NewIndex(l.fallback)
	}
	slog.Debug("loaded remote classification tree", "roots", len(nodes))
	return NewIndex(nodes)
}

func (l *Loader) fetch(ctx context.Context) ([]Node, error) {
	if l.url == "" {
		return nil, common.ErrCategorySource
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCategorySource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", common.ErrCategorySource, resp.StatusCode)
	}

	// Bare array first, wrapped object second. Anything else is treated
	// as absence, not error.
	var nodes []Node
	if err := json.Unmarshal(body, &nodes); err == nil {
		return nodes, nil
	}

	var wrapped categoriesPayload
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Categories, nil
	}

	return nil, fmt.Errorf("%w: payload is not a category array", common.ErrCategorySource)
}
