package classifier

import (
	"fmt"
	"strings"

	"github.com/safephone/scamscan/internal/model"
)

// App scoring weights and thresholds.
const (
	appScoreOffStore      = 2
	appScoreUnverifiedDev = 1
	appDangerThreshold    = 4
	appWarnThreshold      = 2
)

// dangerousPermissions is the fixed list of permission grants considered
// high-risk in the local scam context: SMS interception for OTP theft,
// accessibility binding for overlay attacks, and contact harvesting.
// Entries are matched by their bare name so both "READ_SMS" and
// "android.permission.READ_SMS" count.
var dangerousPermissions = []string{
	"READ_SMS",
	"SEND_SMS",
	"RECEIVE_SMS",
	"READ_CALL_LOG",
	"BIND_ACCESSIBILITY_SERVICE",
	"SYSTEM_ALERT_WINDOW",
	"READ_CONTACTS",
	"WRITE_CONTACTS",
	"RECORD_AUDIO",
	"CAMERA",
}

// knownSafeDevelopers lists publishers trusted not to ship scam apps:
// global vendors plus the local banks. Matching is case-insensitive
// substring, so "WhatsApp LLC" matches "WhatsApp".
var knownSafeDevelopers = []string{
	"Google",
	"Google LLC",
	"Meta Platforms",
	"WhatsApp",
	"Facebook",
	"Microsoft",
	"Samsung",
	"Amazon",
	"Apple",
	"Adobe",
	"Netflix",
	"Spotify",
	"TikTok",
	"ByteDance",
	"HUAWEI",
	"Xiaomi",
	"OnePlus",
	"LG",
	"Sony",
	"NVIDIA",
	"Intel",
	"Oracle",
	"Cisco",
	"Zoom",
	"Slack",
	"Banco Popular Dominicano",
	"Banreservas",
	"Banco BHD Leon",
	"Scotiabank",
	"APAP",
	"Banco Caribe",
	"Banco Santa Cruz",
	"BLH",
	"BDI",
	"La Nacional",
	"ACAP",
	"Banesco",
}

// App warning lines.
const (
	warnOffStore      = "Installed outside the official app store"
	warnUnverifiedDev = "Unverified developer"

	warnAppsUnavailable = "Could not verify the installed apps"
)

// AppClassifier scores installed applications by permission sensitivity,
// install source, and developer trust.
type AppClassifier struct{}

// NewAppClassifier creates an app classifier.
func NewAppClassifier() *AppClassifier {
	return &AppClassifier{}
}

// Classify computes the risk verdict for one installed application.
// System apps with no dangerous permissions short-circuit to safe
// regardless of install source.
func (c *AppClassifier) Classify(app model.AppRecord) model.AppVerdict {
	dangerous := dangerousSubset(app.Permissions)

	v := model.AppVerdict{
		App:                  app,
		DangerousPermissions: dangerous,
	}

	if app.SystemApp && len(dangerous) == 0 {
		v.Risk = model.RiskSafe
		return v
	}

	score := 0
	if !app.IsFromStore {
		score += appScoreOffStore
	}
	score += len(dangerous)

	// An unrecognized developer only adds risk when combined with an
	// off-store install or dangerous permissions. A store app with a
	// merely-unknown publisher and clean permissions is not penalized.
	unverifiedDev := !isKnownDeveloper(app.Developer)
	if unverifiedDev && (!app.IsFromStore || len(dangerous) > 0) {
		score += appScoreUnverifiedDev
	}

	switch {
	case score >= appDangerThreshold:
		v.Risk = model.RiskDanger
	case score >= appWarnThreshold:
		v.Risk = model.RiskWarning
	default:
		v.Risk = model.RiskSafe
	}

	if v.Risk != model.RiskSafe {
		v.WarningMessage = buildAppWarning(app, dangerous, unverifiedDev)
	}
	return v
}

// Unverified returns the verdict used when the installed-app list cannot
// be read at all: an inconclusive warning, never an error.
func (c *AppClassifier) Unverified() model.AppVerdict {
	return model.AppVerdict{
		Risk:           model.RiskWarning,
		WarningMessage: warnAppsUnavailable,
	}
}

// ClassifyAll classifies a batch of app records, preserving input order.
func (c *AppClassifier) ClassifyAll(apps []model.AppRecord) []model.AppVerdict {
	verdicts := make([]model.AppVerdict, 0, len(apps))
	for _, app := range apps {
		verdicts = append(verdicts, c.Classify(app))
	}
	return verdicts
}

// dangerousSubset intersects granted permissions with the sensitive list.
// Permission names are compared by their final path component, uppercased.
func dangerousSubset(granted []string) []string {
	var out []string
	seen := make(map[string]bool, len(granted))
	for _, p := range granted {
		name := permissionName(p)
		if seen[name] {
			continue
		}
		for _, d := range dangerousPermissions {
			if name == d {
				out = append(out, name)
				seen[name] = true
				break
			}
		}
	}
	return out
}

// permissionName strips any "android.permission." style prefix.
func permissionName(p string) string {
	name := strings.ToUpper(strings.TrimSpace(p))
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// isKnownDeveloper fuzzy-matches the developer name against the trusted
// publisher list (case-insensitive substring).
func isKnownDeveloper(developer string) bool {
	if developer == "" {
		return false
	}
	lower := strings.ToLower(developer)
	for _, known := range knownSafeDevelopers {
		if strings.Contains(lower, strings.ToLower(known)) {
			return true
		}
	}
	return false
}

// buildAppWarning joins the applicable warning lines in display order:
// install source, dangerous permission count, developer trust.
func buildAppWarning(app model.AppRecord, dangerous []string, unverifiedDev bool) string {
	var lines []string
	if !app.IsFromStore {
		lines = append(lines, warnOffStore)
	}
	if len(dangerous) > 0 {
		lines = append(lines, fmt.Sprintf("Requests %d dangerous permissions", len(dangerous)))
	}
	if unverifiedDev && (!app.IsFromStore || len(dangerous) > 0) {
		lines = append(lines, warnUnverifiedDev)
	}
	return strings.Join(lines, "\n")
}
