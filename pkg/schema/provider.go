package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	verrors "github.com/vango-dev/vadmin/internal/errors"
)

// FetchFunc supplies the schema from the server.
type FetchFunc func(ctx context.Context) (Schema, error)

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets the logger used for degraded fetches.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

// Provider caches the fetched schema.
//
// A fetch failure degrades to the empty schema — route resolution proceeds
// with "no server-declared view" — and is not cached, so the next Get
// retries. Refresh forces a refetch; a generation counter discards a
// refresh that was superseded by Invalidate or a newer Refresh.
type Provider struct {
	fetch  FetchFunc
	logger *slog.Logger

	mu      sync.Mutex
	cached  *Schema
	fetchID uint64
}

// NewProvider creates a provider over the given fetch function.
func NewProvider(fetch FetchFunc, opts ...ProviderOption) *Provider {
	p := &Provider{fetch: fetch}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Get returns the cached schema, fetching it first if needed.
// Never returns an error: failures degrade to the empty schema.
func (p *Provider) Get(ctx context.Context) Schema {
	p.mu.Lock()
	if p.cached != nil {
		s := *p.cached
		p.mu.Unlock()
		return s
	}
	id := p.fetchID
	p.mu.Unlock()

	s, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warn("schema fetch failed, degrading to empty schema",
			"error", verrors.New("E040").Wrap(err))
		return Schema{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetchID == id && p.cached == nil {
		p.cached = &s
	}
	return s
}

// Refresh forces a refetch, replacing the cache on success.
func (p *Provider) Refresh(ctx context.Context) (Schema, error) {
	p.mu.Lock()
	p.fetchID++
	id := p.fetchID
	p.mu.Unlock()

	s, err := p.fetch(ctx)
	if err != nil {
		return Schema{}, verrors.New("E040").Wrap(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetchID != id {
		// Superseded while in flight; keep whatever is newer.
		return s, nil
	}
	p.cached = &s
	return s, nil
}

// Invalidate drops the cache so the next Get refetches.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.fetchID++
	p.cached = nil
	p.mu.Unlock()
}

// NewHTTPFetcher returns a FetchFunc that GETs and decodes a schema
// document from url. A nil client uses a 30 second timeout default.
func NewHTTPFetcher(url string, client *http.Client) FetchFunc {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return func(ctx context.Context) (Schema, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return Schema{}, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return Schema{}, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return Schema{}, fmt.Errorf("schema endpoint returned status %d", resp.StatusCode)
		}

		var s Schema
		if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
			return Schema{}, fmt.Errorf("invalid schema document: %w", err)
		}
		return s, nil
	}
}
