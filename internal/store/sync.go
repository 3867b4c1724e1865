package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/safephone/scamscan/internal/model"
)

// DefaultSyncTimeout bounds each leg of the sync exchange. The sync is
// best-effort; a slow endpoint must not stall the caller indefinitely.
const DefaultSyncTimeout = 15 * time.Second

// Syncer exchanges the local phone report map with a remote community
// endpoint: push the local map, then pull the remote map and merge by
// timestamp. Both legs are best-effort; any network or parse failure
// leaves the local store unchanged and is never surfaced as an error.
type Syncer struct {
	store  *Store
	client *http.Client
}

// SyncerOption customizes a Syncer.
type SyncerOption func(*Syncer)

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(client *http.Client) SyncerOption {
	return func(s *Syncer) { s.client = client }
}

// NewSyncer creates a Syncer for the given store.
func NewSyncer(store *Store, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		store:  store,
		client: &http.Client{Timeout: DefaultSyncTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync pushes the local phone map to the endpoint, then pulls the remote
// map and merges it. An empty endpoint skips both legs. The returned
// counts reflect whichever legs succeeded.
func (s *Syncer) Sync(ctx context.Context, endpoint string) model.SyncResult {
	var result model.SyncResult
	if endpoint == "" {
		return result
	}

	phones := s.store.ReportedPhones(ctx)
	result.Pushed = s.push(ctx, endpoint, phones)
	result.Pulled = s.pull(ctx, endpoint)
	return result
}

// push uploads the local map. Returns the number of records pushed, zero
// on any failure.
func (s *Syncer) push(ctx context.Context, endpoint string, phones []model.ReportedPhone) int {
	payload, err := json.Marshal(model.SyncPayload{Phones: phones})
	if err != nil {
		s.store.logger.Warn("sync push encode failed", "error", err)
		return 0
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		s.store.logger.Warn("sync push request failed", "error", err)
		return 0
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", s.store.DeviceID(ctx))

	resp, err := s.client.Do(req)
	if err != nil {
		s.store.logger.Warn("sync push failed", "error", err)
		return 0
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.store.logger.Warn("sync push rejected", "status", resp.StatusCode)
		return 0
	}
	return len(phones)
}

// pull downloads the remote map and merges it into the local store.
// Returns the number of remote records received, zero on any failure.
func (s *Syncer) pull(ctx context.Context, endpoint string) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.store.logger.Warn("sync pull request failed", "error", err)
		return 0
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.store.logger.Warn("sync pull failed", "error", err)
		return 0
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.store.logger.Warn("sync pull rejected", "status", resp.StatusCode)
		return 0
	}

	var payload model.SyncPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.store.logger.Warn("sync pull decode failed", "error", fmt.Errorf("invalid payload: %w", err))
		return 0
	}

	s.store.Merge(ctx, payload.Phones)
	return len(payload.Phones)
}
