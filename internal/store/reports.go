package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safephone/scamscan/internal/model"
)

// Storage keys. keyPhonesLegacy is the pre-map flat list kept for
// transparent migration.
const (
	keyEmails       = "reported_emails"
	keyPhonesLegacy = "reported_phones"
	keyPhones       = "reported_phones_v2"
	keyDeviceID     = "device_id"
)

// Store is the community report store: a locally-mutable mapping of
// reported phone numbers (with counts) and reported email addresses.
//
// Every read-modify-write runs under a single mutex, so two concurrent
// reports of the same number within one process never lose an increment.
// Across processes the KV write is last-writer-wins, a benign race for a
// low-contention single-device store.
//
// Storage failures are logged and swallowed: reads degrade to empty data
// and writes are dropped. Nothing here ever fails a classifier call.
type Store struct {
	kv     KV
	logger *slog.Logger
	mu     sync.Mutex

	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for swallowed storage errors.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// New creates a report store on top of the given KV.
func New(kv KV, opts ...StoreOption) *Store {
	s := &Store{
		kv:     kv,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportPhone records a community report for the raw number. The first
// report creates the record with count 1; every subsequent report
// increments the count and advances the timestamp. Returns the updated
// record; the zero record when the number normalizes to empty.
func (s *Store) ReportPhone(ctx context.Context, rawNumber string) model.ReportedPhone {
	number := model.NormalizePhone(rawNumber)
	if number == "" {
		return model.ReportedPhone{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	phones := s.loadPhoneMap(ctx)
	rec, ok := phones[number]
	if ok {
		rec.Count++
	} else {
		rec = model.ReportedPhone{Number: number, Count: 1}
	}
	rec.UpdatedAt = s.now().UnixMilli()
	phones[number] = rec

	s.savePhoneMap(ctx, phones)
	return rec
}

// ReportEmail records a community report for the raw address. Inserting an
// already-reported address is a no-op.
func (s *Store) ReportEmail(ctx context.Context, rawEmail string) {
	email := model.NormalizeEmail(rawEmail)
	if email == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emails := s.loadEmailList(ctx)
	for _, e := range emails {
		if e == email {
			return
		}
	}
	emails = append(emails, email)
	s.saveJSON(ctx, keyEmails, emails)
}

// LookupPhone returns the report record for the raw number, if any.
func (s *Store) LookupPhone(ctx context.Context, rawNumber string) (model.ReportedPhone, bool) {
	number := model.NormalizePhone(rawNumber)
	if number == "" {
		return model.ReportedPhone{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.loadPhoneMap(ctx)[number]
	return rec, ok
}

// IsEmailReported reports whether the raw address was reported.
func (s *Store) IsEmailReported(ctx context.Context, rawEmail string) bool {
	email := model.NormalizeEmail(rawEmail)
	if email == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.loadEmailList(ctx) {
		if e == email {
			return true
		}
	}
	return false
}

// ReportedPhones returns every phone record, ordered by number for stable
// output.
func (s *Store) ReportedPhones(ctx context.Context) []model.ReportedPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	phones := s.loadPhoneMap(ctx)
	out := make([]model.ReportedPhone, 0, len(phones))
	for _, rec := range phones {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Merge folds remote records into the local map. A remote record wins only
// when its UpdatedAt is strictly greater than the local one's; counts are
// clamped to at least 1. Returns the number of records that changed.
func (s *Store) Merge(ctx context.Context, incoming []model.ReportedPhone) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	phones := s.loadPhoneMap(ctx)
	changed := 0
	for _, r := range incoming {
		number := model.NormalizePhone(r.Number)
		if number == "" {
			continue
		}
		local, ok := phones[number]
		if ok && r.UpdatedAt <= local.UpdatedAt {
			continue
		}
		count := r.Count
		if count < 1 {
			count = 1
		}
		updatedAt := r.UpdatedAt
		if updatedAt == 0 {
			updatedAt = s.now().UnixMilli()
		}
		phones[number] = model.ReportedPhone{Number: number, Count: count, UpdatedAt: updatedAt}
		changed++
	}

	if changed > 0 {
		s.savePhoneMap(ctx, phones)
	}
	return changed
}

// DeviceID returns the persistent anonymous device identifier, generating
// and storing a fresh UUID on first use. Sync pushes send it so the
// server can de-duplicate repeated pushes without identifying the user.
func (s *Store) DeviceID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok, err := s.kv.Get(ctx, keyDeviceID); err == nil && ok && id != "" {
		return id
	}

	id := uuid.NewString()
	if err := s.kv.Set(ctx, keyDeviceID, id); err != nil {
		s.logger.Warn("failed to persist device id", "error", err)
	}
	return id
}

// loadPhoneMap reads the v2 phone map, transparently upgrading the legacy
// flat list on first read. Callers must hold the mutex.
//
// The migration is an upgrade-on-read: when the v2 key is absent, any
// legacy list entries become count=1 records stamped now, and the rewritten
// form is persisted immediately.
func (s *Store) loadPhoneMap(ctx context.Context) map[string]model.ReportedPhone {
	raw, ok, err := s.kv.Get(ctx, keyPhones)
	if err != nil {
		s.logger.Warn("failed to read phone reports", "error", err)
		return make(map[string]model.ReportedPhone)
	}
	if ok {
		var phones map[string]model.ReportedPhone
		if err := json.Unmarshal([]byte(raw), &phones); err == nil && phones != nil {
			return phones
		}
		s.logger.Warn("corrupt phone report map, starting empty")
		return make(map[string]model.ReportedPhone)
	}

	// Migrate the legacy flat list, if any.
	phones := make(map[string]model.ReportedPhone)
	legacyRaw, ok, err := s.kv.Get(ctx, keyPhonesLegacy)
	if err != nil || !ok {
		return phones
	}

	var legacy []string
	if err := json.Unmarshal([]byte(legacyRaw), &legacy); err != nil {
		return phones
	}

	nowMillis := s.now().UnixMilli()
	for _, p := range legacy {
		if number := model.NormalizePhone(p); number != "" {
			phones[number] = model.ReportedPhone{Number: number, Count: 1, UpdatedAt: nowMillis}
		}
	}
	s.savePhoneMap(ctx, phones)
	return phones
}

// savePhoneMap persists the phone map. Callers must hold the mutex.
func (s *Store) savePhoneMap(ctx context.Context, phones map[string]model.ReportedPhone) {
	s.saveJSON(ctx, keyPhones, phones)
}

// loadEmailList reads the reported email set. Callers must hold the mutex.
func (s *Store) loadEmailList(ctx context.Context) []string {
	raw, ok, err := s.kv.Get(ctx, keyEmails)
	if err != nil {
		s.logger.Warn("failed to read email reports", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var emails []string
	if err := json.Unmarshal([]byte(raw), &emails); err != nil {
		s.logger.Warn("corrupt email report list, starting empty")
		return nil
	}
	return emails
}

// saveJSON marshals and stores a value, logging and dropping failures.
func (s *Store) saveJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode reports", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn("failed to persist reports", "key", key, "error", err)
	}
}
