package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/store"
)

func testServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	return New(st), st
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPullReturnsStoredPhones(t *testing.T) {
	t.Parallel()

	srv, st := testServer(t)
	st.ReportPhone(context.Background(), "809-555-0142")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/phones", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload model.SyncPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Phones) != 1 || payload.Phones[0].Number != "+18095550142" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestPushMergesIntoStore(t *testing.T) {
	t.Parallel()

	srv, st := testServer(t)

	body, _ := json.Marshal(model.SyncPayload{
		Phones: []model.ReportedPhone{
			{Number: "8095550142", Count: 3, UpdatedAt: 1700000000000},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/phones", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", "test-device")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	rec2, ok := st.LookupPhone(context.Background(), "8095550142")
	if !ok || rec2.Count != 3 {
		t.Errorf("merged record = %+v, ok=%v", rec2, ok)
	}
}

func TestPushRejectsBadPayload(t *testing.T) {
	t.Parallel()

	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/phones", bytes.NewReader([]byte("{not json")))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestSyncRoundTrip runs a client store against the server, verifying
// both sides converge on the same map.
func TestSyncRoundTrip(t *testing.T) {
	t.Parallel()

	srv, serverStore := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx := context.Background()
	serverStore.ReportPhone(ctx, "809-555-0100")

	clientStore := store.New(store.NewMemoryKV())
	clientStore.ReportPhone(ctx, "829-555-0101")

	result := store.NewSyncer(clientStore).Sync(ctx, ts.URL+"/v1/phones")
	if result.Pushed != 1 {
		t.Errorf("Pushed = %d, want 1", result.Pushed)
	}
	if result.Pulled != 2 {
		t.Errorf("Pulled = %d, want 2", result.Pulled)
	}

	// The client learned the server's record and vice versa.
	if _, ok := clientStore.LookupPhone(ctx, "809-555-0100"); !ok {
		t.Error("client missing server record after sync")
	}
	if _, ok := serverStore.LookupPhone(ctx, "829-555-0101"); !ok {
		t.Error("server missing client record after push")
	}
}
