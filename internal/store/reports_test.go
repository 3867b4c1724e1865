package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/safephone/scamscan/internal/model"
)

// testStore builds a store over a fresh MemoryKV with a controllable
// clock.
func testStore(t *testing.T) (*Store, *MemoryKV, *time.Time) {
	t.Helper()

	kv := NewMemoryKV()
	now := time.UnixMilli(1700000000000)
	s := New(kv, WithClock(func() time.Time { return now }))
	return s, kv, &now
}

// TestReportPhoneCounts verifies create-then-increment semantics.
func TestReportPhoneCounts(t *testing.T) {
	t.Parallel()

	s, _, now := testStore(t)
	ctx := context.Background()

	first := s.ReportPhone(ctx, "(809) 555-0142")
	if first.Count != 1 {
		t.Fatalf("first report count = %d, want 1", first.Count)
	}

	*now = now.Add(time.Minute)
	second := s.ReportPhone(ctx, "809-555-0142")
	if second.Count != 2 {
		t.Fatalf("second report count = %d, want 2", second.Count)
	}
	if second.UpdatedAt <= first.UpdatedAt {
		t.Errorf("UpdatedAt did not advance: %d -> %d", first.UpdatedAt, second.UpdatedAt)
	}

	rec, ok := s.LookupPhone(ctx, "8095550142")
	if !ok {
		t.Fatal("lookup after report failed")
	}
	if rec.Count != 2 {
		t.Errorf("lookup count = %d, want 2", rec.Count)
	}
}

// TestPhoneNormalizationIdempotent verifies different spellings of a
// number collapse to one record and normalization is a fixed point.
func TestPhoneNormalizationIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"(809) 555-0142", "809-555-0142", "809 555 0142", "+18095550142"}
	for _, raw := range inputs {
		once := model.NormalizePhone(raw)
		twice := model.NormalizePhone(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: %q != %q", raw, once, twice)
		}
	}

	s, _, _ := testStore(t)
	ctx := context.Background()
	for _, raw := range inputs {
		s.ReportPhone(ctx, raw)
	}

	phones := s.ReportedPhones(ctx)
	if len(phones) != 1 {
		t.Fatalf("expected one record for all spellings, got %v", phones)
	}
	if phones[0].Count != len(inputs) {
		t.Errorf("count = %d, want %d", phones[0].Count, len(inputs))
	}
}

// TestReportEmail verifies set semantics.
func TestReportEmail(t *testing.T) {
	t.Parallel()

	s, kv, _ := testStore(t)
	ctx := context.Background()

	s.ReportEmail(ctx, " Estafa@Banco-Premios.COM ")
	s.ReportEmail(ctx, "estafa@banco-premios.com") // duplicate

	if !s.IsEmailReported(ctx, "ESTAFA@banco-premios.com") {
		t.Error("reported email not found")
	}
	if s.IsEmailReported(ctx, "otro@banco-premios.com") {
		t.Error("unreported email found")
	}

	// The duplicate report must not duplicate the stored entry.
	raw, ok, err := kv.Get(ctx, keyEmails)
	if err != nil || !ok {
		t.Fatalf("email list not persisted: ok=%v err=%v", ok, err)
	}
	var emails []string
	if err := json.Unmarshal([]byte(raw), &emails); err != nil {
		t.Fatalf("persisted email list invalid: %v", err)
	}
	if len(emails) != 1 {
		t.Errorf("persisted %d entries, want 1: %v", len(emails), emails)
	}
}

// TestLegacyPhoneMigration verifies the flat-list upgrade happens on
// first read and the upgraded form is persisted.
func TestLegacyPhoneMigration(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	ctx := context.Background()

	legacy, _ := json.Marshal([]string{"809-555-0100", "829 555 0101", ""})
	if err := kv.Set(ctx, keyPhonesLegacy, string(legacy)); err != nil {
		t.Fatal(err)
	}

	now := time.UnixMilli(1700000000000)
	s := New(kv, WithClock(func() time.Time { return now }))

	rec, ok := s.LookupPhone(ctx, "8095550100")
	if !ok {
		t.Fatal("legacy number missing after migration")
	}
	if rec.Count != 1 {
		t.Errorf("migrated count = %d, want 1", rec.Count)
	}
	if rec.UpdatedAt != now.UnixMilli() {
		t.Errorf("migrated UpdatedAt = %d, want %d", rec.UpdatedAt, now.UnixMilli())
	}

	// The upgraded map must be persisted under the v2 key.
	raw, ok, err := kv.Get(ctx, keyPhones)
	if err != nil || !ok {
		t.Fatalf("v2 key not persisted after migration: ok=%v err=%v", ok, err)
	}
	var persisted map[string]model.ReportedPhone
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted v2 map invalid: %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("persisted %d records, want 2 (empty entry dropped)", len(persisted))
	}
}

// TestMergeByTimestamp verifies remote records win only on strictly
// greater timestamps and counts never drop below 1.
func TestMergeByTimestamp(t *testing.T) {
	t.Parallel()

	s, _, now := testStore(t)
	ctx := context.Background()

	local := s.ReportPhone(ctx, "8095550142")

	// Older remote record: ignored.
	s.Merge(ctx, []model.ReportedPhone{
		{Number: "8095550142", Count: 99, UpdatedAt: local.UpdatedAt - 1},
	})
	if rec, _ := s.LookupPhone(ctx, "8095550142"); rec.Count != 1 {
		t.Errorf("older remote overwrote local: %+v", rec)
	}

	// Equal timestamp: local still wins (strictly greater required).
	s.Merge(ctx, []model.ReportedPhone{
		{Number: "8095550142", Count: 99, UpdatedAt: local.UpdatedAt},
	})
	if rec, _ := s.LookupPhone(ctx, "8095550142"); rec.Count != 1 {
		t.Errorf("equal-timestamp remote overwrote local: %+v", rec)
	}

	// Newer remote record: wins.
	changed := s.Merge(ctx, []model.ReportedPhone{
		{Number: "8095550142", Count: 7, UpdatedAt: local.UpdatedAt + 5},
		{Number: "8295550107", Count: 0, UpdatedAt: now.UnixMilli() + 1},
	})
	if changed != 2 {
		t.Errorf("changed = %d, want 2", changed)
	}
	if rec, _ := s.LookupPhone(ctx, "8095550142"); rec.Count != 7 {
		t.Errorf("newer remote did not win: %+v", rec)
	}
	if rec, _ := s.LookupPhone(ctx, "8295550107"); rec.Count != 1 {
		t.Errorf("zero count not clamped to 1: %+v", rec)
	}
}

// TestDeviceIDStable verifies the anonymous device ID persists.
func TestDeviceIDStable(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	ctx := context.Background()

	first := New(kv).DeviceID(ctx)
	if first == "" {
		t.Fatal("empty device id")
	}
	second := New(kv).DeviceID(ctx)
	if first != second {
		t.Errorf("device id changed across store instances: %q vs %q", first, second)
	}
}

// failingKV errors on every operation to exercise the degrade-to-empty
// posture.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, context.DeadlineExceeded
}

func (failingKV) Set(context.Context, string, string) error {
	return context.DeadlineExceeded
}

// TestStorageFailuresDegrade verifies storage failures never error out of
// the store API.
func TestStorageFailuresDegrade(t *testing.T) {
	t.Parallel()

	s := New(failingKV{})
	ctx := context.Background()

	if rec := s.ReportPhone(ctx, "8095550142"); rec.Count != 1 {
		t.Errorf("report on failing storage should still return the record, got %+v", rec)
	}
	if _, ok := s.LookupPhone(ctx, "8095550142"); ok {
		t.Error("lookup on failing storage should find nothing")
	}
	if s.IsEmailReported(ctx, "a@b.com") {
		t.Error("email lookup on failing storage should find nothing")
	}
	s.ReportEmail(ctx, "a@b.com") // must not panic
}
