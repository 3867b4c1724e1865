package classifier

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
)

// URL scoring weights and thresholds. A missing HTTPS scheme is a mild
// signal, a brand impersonation match is decisive on its own, and each
// suspicious keyword adds one point.
const (
	urlScoreNoHTTPS    = 2
	urlScoreTyposquat  = 5
	urlDangerThreshold = 4
	urlWarnThreshold   = 2
)

// impersonationPatterns is the fixed library of brand-impersonation
// patterns tuned to scams seen in the Dominican Republic. Hostnames that
// belong to a recognized entity (bank, telecom, government) are exempted
// before these run, so the patterns themselves stay simple.
var impersonationPatterns = []*regexp.Regexp{
	// Banco Popular variations (the most imitated brand locally)
	regexp.MustCompile(`(?i)bancopopular`),
	regexp.MustCompile(`(?i)banco-popular`),
	regexp.MustCompile(`(?i)bancop0pular`),
	regexp.MustCompile(`(?i)bancopupular`),
	regexp.MustCompile(`(?i)bancopoppular`),
	regexp.MustCompile(`(?i)popularenlinea`),
	regexp.MustCompile(`(?i)popular-seguro`),
	regexp.MustCompile(`(?i)popularseguro`),
	regexp.MustCompile(`(?i)popular-rd`),
	regexp.MustCompile(`(?i)bfrpopular`),

	// Banreservas variations
	regexp.MustCompile(`(?i)banreservas`),
	regexp.MustCompile(`(?i)ban-reservas`),
	regexp.MustCompile(`(?i)banresevas`),
	regexp.MustCompile(`(?i)banreservas-seguro`),
	regexp.MustCompile(`(?i)reservasbank`),
	regexp.MustCompile(`(?i)banreserva[^s]`),

	// BHD Leon variations
	regexp.MustCompile(`(?i)bhdleon`),
	regexp.MustCompile(`(?i)bhd-leon`),
	regexp.MustCompile(`(?i)bhdl30n`),
	regexp.MustCompile(`(?i)bhdloen`),
	regexp.MustCompile(`(?i)leonbhd`),

	// Scotiabank RD
	regexp.MustCompile(`(?i)scotiabank`),
	regexp.MustCompile(`(?i)scotia-rd`),

	// APAP
	regexp.MustCompile(`(?i)apap`),
	regexp.MustCompile(`(?i)asociacionpopular`),

	// Telecom promos ("you won free data" scams)
	regexp.MustCompile(`(?i)claro.*promo`),
	regexp.MustCompile(`(?i)altice.*gratis`),
	regexp.MustCompile(`(?i)viva.*premio`),

	// Government impersonation (tax and social-security scams)
	regexp.MustCompile(`(?i)dgii`),
	regexp.MustCompile(`(?i)tss`),
	regexp.MustCompile(`(?i)impuestos-rd`),

	// Generic local scam phrasing
	regexp.MustCompile(`(?i)seguridad-banco`),
	regexp.MustCompile(`(?i)verificar-cuenta`),
	regexp.MustCompile(`(?i)actualizar-datos`),
	regexp.MustCompile(`(?i)confirmar-identidad`),
	regexp.MustCompile(`(?i)premio-ganador`),
	regexp.MustCompile(`(?i)loteria-gratis`),
	regexp.MustCompile(`(?i)bono-gobierno`),
	regexp.MustCompile(`(?i)tarjeta-solidaridad`),
	regexp.MustCompile(`(?i)superate-bono`),
	regexp.MustCompile(`(?i)fase-rd`),

	// WhatsApp bait
	regexp.MustCompile(`(?i)whatsapp.*premio`),
	regexp.MustCompile(`(?i)wa\.me.*banco`),

	// Throwaway TLDs favored by phishing kits
	regexp.MustCompile(`(?i)\.(tk|ml|ga|cf|gq|xyz|top|work|click)$`),
}

// suspiciousURLKeywords are scam phrases matched against the full URL,
// not just the hostname. Each hit adds one point to the score.
var suspiciousURLKeywords = []string{
	// Urgency
	"login-seguro",
	"cuenta-bloqueada",
	"verificacion-urgente",
	"confirmar-ahora",
	"urgente",
	"inmediato",
	"ultima-oportunidad",

	// Fake prizes
	"premio",
	"ganaste",
	"ganador",
	"loteria",
	"sorteo",
	"gratis",
	"regalo",

	// Threats
	"bloqueo",
	"suspendida",
	"cancelar-cuenta",
	"desactivar",
	"vencido",

	// Government subsidy scams
	"bono-gobierno",
	"subsidio",
	"tarjeta-solidaridad",
	"superate",
	"fase",
	"ayuda-social",

	// Telecom bait
	"recarga-gratis",
	"datos-gratis",
	"megas-regalo",

	// Bank-specific bait
	"actualizar-token",
	"renovar-clave",
	"desbloquear-tarjeta",
}

// URL warning lines, emitted in a fixed order.
const (
	warnNoHTTPS        = "This page is NOT secure (no HTTPS)"
	warnTyposquat      = "This domain imitates an official bank"
	warnTyposquatSteal = "Possible attempt to STEAL your data"
	warnKeywords       = "Contains wording commonly used in scams"

	reasonImpersonation = "suspicious domain resembling an official entity"
)

// URLClassifier scores URLs for phishing indicators.
type URLClassifier struct {
	registry *registry.Registry
}

// NewURLClassifier creates a URL classifier backed by the given registry.
func NewURLClassifier(reg *registry.Registry) *URLClassifier {
	return &URLClassifier{registry: reg}
}

// Classify analyzes a raw URL string, possibly missing a scheme, and
// returns a fresh verdict. It is a pure function of its input: identical
// inputs always produce identical verdicts.
func (c *URLClassifier) Classify(rawURL string) model.URLVerdict {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return model.URLVerdict{Risk: model.RiskSafe}
	}

	domain := extractHostname(trimmed)
	usesHTTPS := urlUsesHTTPS(trimmed)
	isTyposquat, matchedReason := c.checkImpersonation(domain)
	keywords := findSuspiciousKeywords(trimmed)

	score := 0
	if !usesHTTPS {
		score += urlScoreNoHTTPS
	}
	if isTyposquat {
		score += urlScoreTyposquat
	}
	score += len(keywords)

	risk := model.RiskSafe
	switch {
	case score >= urlDangerThreshold:
		risk = model.RiskDanger
	case score >= urlWarnThreshold:
		risk = model.RiskWarning
	}

	v := model.URLVerdict{
		Input:              rawURL,
		Domain:             domain,
		UsesHTTPS:          usesHTTPS,
		IsTyposquat:        isTyposquat,
		MatchedReason:      matchedReason,
		SuspiciousKeywords: keywords,
		Risk:               risk,
	}
	if risk != model.RiskSafe {
		v.WarningText = buildURLWarning(v)
	}
	return v
}

// extractHostname pulls the lowercased hostname out of a URL, assuming
// https:// when no scheme is present. Internationalized hostnames are
// folded to their punycode form so homograph domains compare against the
// same rule tables as their ASCII lookalikes. On parse failure the whole
// trimmed, lowercased input is treated as the domain.
func extractHostname(raw string) string {
	full := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		full = "https://" + raw
	}

	u, err := url.Parse(full)
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(strings.TrimSpace(raw))
	}

	host := strings.ToLower(u.Hostname())
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return host
}

// urlUsesHTTPS reports whether the input should be scored as HTTPS.
// A bare domain typed without any scheme is not penalized; only an
// explicit non-HTTPS scheme is.
func urlUsesHTTPS(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(lower, "https://") ||
		(!strings.HasPrefix(lower, "http://") && !strings.Contains(lower, "://"))
}

// checkImpersonation tests the hostname against the impersonation pattern
// library. Recognized entities are exempt.
func (c *URLClassifier) checkImpersonation(domain string) (bool, string) {
	if c.registry.IsRecognizedDomain(domain) {
		return false, ""
	}
	for _, pattern := range impersonationPatterns {
		if pattern.MatchString(domain) {
			return true, reasonImpersonation
		}
	}
	return false, ""
}

// findSuspiciousKeywords returns every scam keyword contained in the full
// URL. Input is NFC-folded first so accented bait words still match.
func findSuspiciousKeywords(rawURL string) []string {
	lower := strings.ToLower(norm.NFC.String(rawURL))
	var found []string
	for _, kw := range suspiciousURLKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// buildURLWarning joins the applicable warning lines in display order.
func buildURLWarning(v model.URLVerdict) string {
	var lines []string
	if !v.UsesHTTPS {
		lines = append(lines, warnNoHTTPS)
	}
	if v.IsTyposquat {
		lines = append(lines, warnTyposquat, warnTyposquatSteal)
	}
	if len(v.SuspiciousKeywords) > 0 {
		lines = append(lines, warnKeywords)
	}
	return strings.Join(lines, "\n")
}
