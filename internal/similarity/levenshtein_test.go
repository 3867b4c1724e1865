package similarity

import "testing"

// TestDistance verifies the edit-distance contract on representative pairs.
func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "banreservas.com", b: "banreservas.com", want: 0},
		{name: "empty against empty", a: "", b: "", want: 0},
		{name: "empty against non-empty", a: "", b: "abc", want: 3},
		{name: "non-empty against empty", a: "abc", b: "", want: 3},
		{name: "single substitution", a: "kitten", b: "sitten", want: 1},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "bank typo deletion", a: "banreservas.com", b: "banresevas.com", want: 1},
		{name: "digit substitution", a: "bancopopular", b: "bancop0pular", want: 1},
		{name: "unicode treated as one rune", a: "café", b: "cafe", want: 1},
		{name: "completely different", a: "abc", b: "xyz", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Symmetry must hold for every pair.
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// TestDistanceTriangleInequality spot-checks the metric property on a few
// triples.
func TestDistanceTriangleInequality(t *testing.T) {
	t.Parallel()

	triples := [][3]string{
		{"banreservas.com", "banresevas.com", "bancopopular.com"},
		{"", "a", "ab"},
		{"apap.com.do", "apap.com", "acap.com.do"},
	}

	for _, tr := range triples {
		ab := Distance(tr[0], tr[1])
		bc := Distance(tr[1], tr[2])
		ac := Distance(tr[0], tr[2])
		if ac > ab+bc {
			t.Errorf("triangle inequality violated for %v: d(a,c)=%d > d(a,b)+d(b,c)=%d", tr, ac, ab+bc)
		}
	}
}
