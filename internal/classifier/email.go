package classifier

import (
	"context"
	"strings"

	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/registry"
	"github.com/safephone/scamscan/internal/similarity"
)

// maxTyposquatDistance is the edit-distance threshold under which a
// non-official domain is considered a lookalike of an official one.
const maxTyposquatDistance = 2

// suspiciousDomainTokens are substrings that mark a sender domain as
// suspicious when it is not official. Scam domains lean on support,
// verification, and prize language.
var suspiciousDomainTokens = []string{
	"seguro", "soporte", "verify", "update", "alerta", "pago", "premio",
}

// genericSuffixes are bare public suffixes. A domain whose root reduces to
// one of these carries no brand, so a small edit distance to an official
// domain is coincidence, not typosquatting.
var genericSuffixes = []string{"com", "com.do", "net.do", "gob.do", "do"}

// Email verdict reasons.
const (
	reasonInvalidFormat    = "invalid format"
	reasonOfficialSender   = "registered official sender"
	reasonReportedPhishing = "reported by users as phishing"
	reasonSuspiciousTokens = "unofficial domain with suspicious wording"
	reasonContainsBrand    = "domain contains an official bank name but is not an official domain"
	reasonLookalike        = "domain resembles an official one (possible typosquatting)"
	reasonNotOfficial      = "domain is not in the official list"
)

// ReportSource is the read capability the email and phone classifiers need
// from the community report store. Implementations must treat storage
// failures as "no data"; lookups never error.
type ReportSource interface {
	// IsEmailReported reports whether the normalized address was reported.
	IsEmailReported(ctx context.Context, email string) bool

	// LookupPhone returns the report record for a normalized number.
	LookupPhone(ctx context.Context, number string) (model.ReportedPhone, bool)
}

// EmailClassifier verifies sender addresses against the official registry,
// the community report store, and typosquatting heuristics.
type EmailClassifier struct {
	registry *registry.Registry
	reports  ReportSource
}

// NewEmailClassifier creates an email classifier. The report source may be
// nil, in which case community reports are skipped.
func NewEmailClassifier(reg *registry.Registry, reports ReportSource) *EmailClassifier {
	return &EmailClassifier{registry: reg, reports: reports}
}

// Classify verifies a raw sender address. The checks run in strict
// priority order: exact official sender, community report, official
// domain, suspicious tokens, typosquatting, and finally a generic
// not-in-list verdict. The result is deterministic for a fixed report
// store snapshot.
func (c *EmailClassifier) Classify(ctx context.Context, rawEmail string) model.EmailVerdict {
	domain := extractEmailDomain(rawEmail)
	if domain == "" {
		return model.EmailVerdict{
			Reason: reasonInvalidFormat,
			Risk:   model.RiskWarning,
		}
	}

	// Exact official sender match wins over everything, including reports.
	if c.registry.IsOfficialSender(rawEmail) {
		return model.EmailVerdict{
			Domain:     domain,
			IsOfficial: true,
			Reason:     reasonOfficialSender,
			Risk:       model.RiskSafe,
		}
	}

	if c.reports != nil && c.reports.IsEmailReported(ctx, rawEmail) {
		return model.EmailVerdict{
			Domain:     domain,
			IsReported: true,
			Reason:     reasonReportedPhishing,
			Risk:       model.RiskDanger,
		}
	}

	if c.registry.IsOfficialDomain(domain) {
		return model.EmailVerdict{
			Domain:     domain,
			IsOfficial: true,
			Reason:     "official domain",
			Risk:       model.RiskSafe,
		}
	}

	for _, token := range suspiciousDomainTokens {
		if strings.Contains(domain, token) {
			return model.EmailVerdict{
				Domain: domain,
				Reason: reasonSuspiciousTokens,
				Risk:   model.RiskWarning,
			}
		}
	}

	if verdict, ok := c.checkTyposquatting(domain); ok {
		return verdict
	}

	return model.EmailVerdict{
		Domain: domain,
		Reason: reasonNotOfficial,
		Risk:   model.RiskWarning,
	}
}

// checkTyposquatting flags domains that embed an official domain without
// being a valid subdomain of it (prefix/suffix trickery), then falls back
// to edit distance against every official domain. Domains whose root is a
// bare generic suffix are excused from the distance check.
func (c *EmailClassifier) checkTyposquatting(domain string) (model.EmailVerdict, bool) {
	minDistance := -1
	for _, official := range c.registry.OfficialDomains() {
		if strings.Contains(domain, official) && !registry.IsSubdomainOf(domain, official) {
			return model.EmailVerdict{
				Domain:      domain,
				IsTyposquat: true,
				Reason:      reasonContainsBrand,
				Risk:        model.RiskWarning,
			}, true
		}
		if d := similarity.Distance(domain, official); minDistance < 0 || d < minDistance {
			minDistance = d
		}
	}

	if minDistance >= 0 && minDistance <= maxTyposquatDistance && !hasGenericRoot(domain) {
		return model.EmailVerdict{
			Domain:      domain,
			IsTyposquat: true,
			Reason:      reasonLookalike,
			Risk:        model.RiskWarning,
		}, true
	}

	return model.EmailVerdict{}, false
}

// extractEmailDomain returns the lowercased domain after the last '@', or
// empty when the input is not a plausible address.
func extractEmailDomain(rawEmail string) string {
	addr := model.NormalizeEmail(rawEmail)
	idx := strings.LastIndex(addr, "@")
	if idx < 0 || idx == len(addr)-1 {
		return ""
	}
	return addr[idx+1:]
}

// hasGenericRoot reports whether every root candidate of the domain (last
// two labels, and last three for suffixes like .com.do) is a bare public
// suffix.
func hasGenericRoot(domain string) bool {
	roots := rootCandidates(domain)
	for _, root := range roots {
		generic := false
		for _, suffix := range genericSuffixes {
			if root == suffix {
				generic = true
				break
			}
		}
		if !generic {
			return false
		}
	}
	return len(roots) > 0
}

// rootCandidates returns the trailing two-label root of the domain plus
// the three-label root when present, covering .com.do style suffixes.
func rootCandidates(domain string) []string {
	parts := make([]string, 0, 8)
	for _, p := range strings.Split(domain, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return []string{domain}
	}

	roots := []string{strings.Join(parts[len(parts)-2:], ".")}
	if len(parts) >= 3 {
		roots = append(roots, strings.Join(parts[len(parts)-3:], "."))
	}
	return roots
}
