package registry

import "testing"

// TestIsOfficialDomain covers exact matches, subdomains, and lookalikes.
func TestIsOfficialDomain(t *testing.T) {
	t.Parallel()

	r := New()

	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{name: "exact match", domain: "banreservas.com", want: true},
		{name: "exact match com.do", domain: "apap.com.do", want: true},
		{name: "subdomain", domain: "x.banreservas.com", want: true},
		{name: "deep subdomain", domain: "mail.clientes.bpd.com.do", want: true},
		{name: "prefix lookalike", domain: "evilbanreservas.com", want: false},
		{name: "suffix lookalike", domain: "banreservas.com.evil.net", want: false},
		{name: "unrelated", domain: "example.com", want: false},
		{name: "empty", domain: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.IsOfficialDomain(tt.domain); got != tt.want {
				t.Errorf("IsOfficialDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

// TestIsRecognizedDomain checks that telecom and government domains are
// recognized for pattern exemption without counting as bank domains.
func TestIsRecognizedDomain(t *testing.T) {
	t.Parallel()

	r := New()

	if !r.IsRecognizedDomain("claro.com.do") {
		t.Error("claro.com.do should be recognized")
	}
	if !r.IsRecognizedDomain("promo.claro.com.do") {
		t.Error("subdomain of claro.com.do should be recognized")
	}
	if r.IsOfficialDomain("claro.com.do") {
		t.Error("claro.com.do is not a bank domain")
	}
	if r.IsRecognizedDomain("claro-promo.xyz") {
		t.Error("claro-promo.xyz should not be recognized")
	}
}

// TestIsOfficialSender verifies exact sender matching with normalization.
func TestIsOfficialSender(t *testing.T) {
	t.Parallel()

	r := New()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "exact sender", email: "contacto@banreservas.com", want: true},
		{name: "case insensitive", email: "Contacto@Banreservas.COM", want: true},
		{name: "surrounding whitespace", email: "  vozdelcliente@bpd.com.do ", want: true},
		{name: "same domain different mailbox", email: "hacker@banreservas.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.IsOfficialSender(tt.email); got != tt.want {
				t.Errorf("IsOfficialSender(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

// TestOfficialContact verifies contact lookup goes through phone
// normalization.
func TestOfficialContact(t *testing.T) {
	t.Parallel()

	r := New()

	c, ok := r.OfficialContact("+18099602121")
	if !ok {
		t.Fatal("expected Banreservas contact to be found")
	}
	if c.Name != "Banreservas" {
		t.Errorf("contact name = %q, want Banreservas", c.Name)
	}

	if _, ok := r.OfficialContact("+18095550000"); ok {
		t.Error("unknown number should not match an official contact")
	}
}

// TestRegistryOptions verifies user-supplied entries are merged at
// construction.
func TestRegistryOptions(t *testing.T) {
	t.Parallel()

	r := New(
		WithExtraDomains([]string{"MiBanco.example"}),
		WithExtraSenders([]string{"Alertas@MiBanco.example"}),
		WithExtraContacts([]Contact{{Name: "Mi Banco", Phone: "809-555-0100"}}),
	)

	if !r.IsOfficialDomain("mibanco.example") {
		t.Error("extra domain should be official")
	}
	if !r.IsOfficialDomain("login.mibanco.example") {
		t.Error("subdomain of extra domain should be official")
	}
	if !r.IsOfficialSender("alertas@mibanco.example") {
		t.Error("extra sender should be official")
	}
	if _, ok := r.OfficialContact("+18095550100"); !ok {
		t.Error("extra contact should be found")
	}
}

// TestSafeBankingSites ensures the curated list is copied, not aliased.
func TestSafeBankingSites(t *testing.T) {
	t.Parallel()

	sites := SafeBankingSites()
	if len(sites) == 0 {
		t.Fatal("expected non-empty safe banking site list")
	}

	sites[0].Name = "mutated"
	if SafeBankingSites()[0].Name == "mutated" {
		t.Error("SafeBankingSites must return a copy")
	}
}
