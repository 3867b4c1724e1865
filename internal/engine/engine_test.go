package engine

import (
	"context"
	"testing"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
	"github.com/safephone/scamscan/internal/store"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(registry.New(), store.New(store.NewMemoryKV()))
}

func TestEngineCheckURL(t *testing.T) {
	t.Parallel()

	e := testEngine(t)

	if got := e.CheckURL("https://www.popularenlinea.com"); got.Risk != model.RiskSafe {
		t.Errorf("official bank URL risk = %v, want Safe", got.Risk)
	}
	if got := e.CheckURL("http://banco-popular-premio.com/verificar"); got.Risk != model.RiskDanger {
		t.Errorf("phishing URL risk = %v, want Danger", got.Risk)
	}
}

func TestEngineCheckURLsPreservesOrder(t *testing.T) {
	t.Parallel()

	e := testEngine(t)
	inputs := []string{
		"https://www.banreservas.com",
		"http://banreservas-premios.net/gana",
		"https://example.com",
	}

	verdicts, err := e.CheckURLs(context.Background(), inputs)
	if err != nil {
		t.Fatal(err)
	}
	if len(verdicts) != len(inputs) {
		t.Fatalf("got %d verdicts, want %d", len(verdicts), len(inputs))
	}
	for i, v := range verdicts {
		if v.Input != inputs[i] {
			t.Errorf("verdict %d is for %q, want %q", i, v.Input, inputs[i])
		}
	}
	if verdicts[0].Risk != model.RiskSafe {
		t.Errorf("verdict 0 risk = %v, want Safe", verdicts[0].Risk)
	}
	if verdicts[1].Risk != model.RiskDanger {
		t.Errorf("verdict 1 risk = %v, want Danger", verdicts[1].Risk)
	}
}

func TestEngineCheckURLsCancelled(t *testing.T) {
	t.Parallel()

	e := testEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.CheckURLs(ctx, []string{"https://example.com"}); err == nil {
		t.Error("expected context error for cancelled batch")
	}
}

func TestEngineCheckEmailSeesReports(t *testing.T) {
	t.Parallel()

	e := testEngine(t)
	ctx := context.Background()

	address := "promo@sorteos-rd.net"
	if got := e.CheckEmail(ctx, address); got.Risk == model.RiskDanger && got.IsReported {
		t.Fatalf("address reported before any report: %+v", got)
	}

	e.Store().ReportEmail(ctx, address)

	got := e.CheckEmail(ctx, address)
	if !got.IsReported || got.Risk != model.RiskDanger {
		t.Errorf("reported address verdict = %+v, want reported Danger", got)
	}
}

func TestEngineCheckApps(t *testing.T) {
	t.Parallel()

	e := testEngine(t)
	apps := []model.AppRecord{
		{PackageName: "com.whatsapp", Name: "WhatsApp", Developer: "WhatsApp LLC", IsFromStore: true},
		{
			PackageName: "com.free.flashlight",
			Name:        "Linterna Gratis",
			Developer:   "unknown dev",
			IsFromStore: false,
			Permissions: []string{"android.permission.READ_SMS", "android.permission.SEND_SMS"},
		},
	}

	verdicts, summary := e.CheckApps(apps)
	if len(verdicts) != 2 {
		t.Fatalf("got %d verdicts, want 2", len(verdicts))
	}
	if summary.Total != 2 {
		t.Errorf("summary total = %d, want 2", summary.Total)
	}
	if summary.Danger != 1 {
		t.Errorf("summary danger = %d, want 1", summary.Danger)
	}
}

func TestEngineCheckPhone(t *testing.T) {
	t.Parallel()

	e := testEngine(t)
	ctx := context.Background()

	e.Store().ReportPhone(ctx, "809-555-0142")

	got := e.CheckPhone(ctx, "(809) 555-0142")
	if got.Risk != model.RiskDanger || !got.Reported {
		t.Errorf("reported number verdict = %+v, want reported Danger", got)
	}
	if got := e.CheckPhone(ctx, "829-555-9999"); got.Risk != model.RiskSafe {
		t.Errorf("unknown number risk = %v, want Safe", got.Risk)
	}
}

func TestEngineCheckWifi(t *testing.T) {
	t.Parallel()

	e := testEngine(t)

	open := e.CheckWifi(model.WifiStatus{IsConnected: true, SSID: "CAFE WIFI", Encryption: "OPEN"})
	if open.Risk != model.RiskDanger {
		t.Errorf("open network risk = %v, want Danger", open.Risk)
	}
	if got := e.CheckWifiUnverified(); got.Risk != model.RiskWarning {
		t.Errorf("unverified wifi risk = %v, want Warning", got.Risk)
	}
}

func TestEngineCheckAppsUnverified(t *testing.T) {
	t.Parallel()

	e := testEngine(t)

	v := e.CheckAppsUnverified()
	if v.Risk != model.RiskWarning {
		t.Errorf("unverified apps risk = %v, want Warning", v.Risk)
	}
	if v.WarningMessage == "" {
		t.Error("unverified apps verdict should carry a warning message")
	}
}
