package classifier

import (
	"strings"
	"testing"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
)

// TestURLClassifierOfficialDomains verifies every registry domain scores
// safe with no typosquat flag.
func TestURLClassifierOfficialDomains(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	c := NewURLClassifier(reg)

	for _, domain := range reg.OfficialDomains() {
		v := c.Classify(domain)
		if v.Risk != model.RiskSafe {
			t.Errorf("Classify(%q).Risk = %v, want safe", domain, v.Risk)
		}
		if v.IsTyposquat {
			t.Errorf("Classify(%q).IsTyposquat = true, want false", domain)
		}
	}
}

// TestURLClassifierVerdicts exercises the scoring table on representative
// inputs.
func TestURLClassifierVerdicts(t *testing.T) {
	t.Parallel()

	c := NewURLClassifier(registry.New())

	tests := []struct {
		name          string
		input         string
		wantRisk      model.RiskLevel
		wantHTTPS     bool
		wantTyposquat bool
	}{
		{
			// Schemeless brand impersonation: 0 + 5 + 0 = 5.
			name:          "schemeless impersonation",
			input:         "bancopopular-seguro.com",
			wantRisk:      model.RiskDanger,
			wantHTTPS:     true,
			wantTyposquat: true,
		},
		{
			name:          "official bank over https",
			input:         "https://www.banreservas.com",
			wantRisk:      model.RiskSafe,
			wantHTTPS:     true,
			wantTyposquat: false,
		},
		{
			name:          "official subdomain",
			input:         "clientes.bpd.com.do",
			wantRisk:      model.RiskSafe,
			wantHTTPS:     true,
			wantTyposquat: false,
		},
		{
			// Plain http only: 2 + 0 + 0 = 2.
			name:          "http without indicators",
			input:         "http://example.com",
			wantRisk:      model.RiskWarning,
			wantHTTPS:     false,
			wantTyposquat: false,
		},
		{
			name:          "clean https url",
			input:         "https://example.com/page",
			wantRisk:      model.RiskSafe,
			wantHTTPS:     true,
			wantTyposquat: false,
		},
		{
			// Typo one edit away from banreservas: pattern banresevas.
			name:          "typo domain",
			input:         "https://banresevas.com",
			wantRisk:      model.RiskDanger,
			wantHTTPS:     true,
			wantTyposquat: true,
		},
		{
			// Three prize keywords without impersonation: 0 + 0 + 3 = 3.
			name:          "prize keywords",
			input:         "https://example.com/premio-ganaste-gratis",
			wantRisk:      model.RiskWarning,
			wantHTTPS:     true,
			wantTyposquat: false,
		},
		{
			// http plus a suspicious tld pattern: 2 + 5 = 7.
			name:          "http throwaway tld",
			input:         "http://promo-banco.tk",
			wantRisk:      model.RiskDanger,
			wantHTTPS:     false,
			wantTyposquat: true,
		},
		{
			name:          "legit telecom site not flagged",
			input:         "https://claro.com.do",
			wantRisk:      model.RiskSafe,
			wantHTTPS:     true,
			wantTyposquat: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := c.Classify(tt.input)
			if v.Risk != tt.wantRisk {
				t.Errorf("Risk = %v, want %v (verdict %+v)", v.Risk, tt.wantRisk, v)
			}
			if v.UsesHTTPS != tt.wantHTTPS {
				t.Errorf("UsesHTTPS = %v, want %v", v.UsesHTTPS, tt.wantHTTPS)
			}
			if v.IsTyposquat != tt.wantTyposquat {
				t.Errorf("IsTyposquat = %v, want %v", v.IsTyposquat, tt.wantTyposquat)
			}
		})
	}
}

// TestURLClassifierEmptyInput verifies the documented empty-input verdict.
func TestURLClassifierEmptyInput(t *testing.T) {
	t.Parallel()

	c := NewURLClassifier(registry.New())

	for _, input := range []string{"", "   ", "\t\n"} {
		v := c.Classify(input)
		if v.Risk != model.RiskSafe {
			t.Errorf("Classify(%q).Risk = %v, want safe", input, v.Risk)
		}
		if v.UsesHTTPS {
			t.Errorf("Classify(%q).UsesHTTPS = true, want false", input)
		}
		if v.WarningText != "" {
			t.Errorf("Classify(%q).WarningText = %q, want empty", input, v.WarningText)
		}
	}
}

// TestURLClassifierWarningOrder verifies warning lines appear in the
// documented order: HTTPS, typosquat, keywords.
func TestURLClassifierWarningOrder(t *testing.T) {
	t.Parallel()

	c := NewURLClassifier(registry.New())

	v := c.Classify("http://banreservas-seguro.com/premio")
	lines := strings.Split(v.WarningText, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 warning lines, got %d: %q", len(lines), v.WarningText)
	}
	if lines[0] != warnNoHTTPS {
		t.Errorf("first line = %q, want HTTPS warning", lines[0])
	}
	if lines[1] != warnTyposquat || lines[2] != warnTyposquatSteal {
		t.Errorf("typosquat warnings out of order: %q", v.WarningText)
	}
	if lines[3] != warnKeywords {
		t.Errorf("last line = %q, want keyword warning", lines[3])
	}
}

// TestURLClassifierDeterminism confirms identical inputs yield identical
// verdicts.
func TestURLClassifierDeterminism(t *testing.T) {
	t.Parallel()

	c := NewURLClassifier(registry.New())

	input := "http://bancopopular-rd.xyz/verificar-cuenta"
	first := c.Classify(input)
	for i := 0; i < 5; i++ {
		if got := c.Classify(input); got.Risk != first.Risk || got.WarningText != first.WarningText {
			t.Fatalf("verdict changed between calls: %+v vs %+v", first, got)
		}
	}
}
