package model

import "strings"

// AppRecord describes an installed application as reported by the platform
// app enumeration source. The classifier derives risk from these fields;
// derived values live on AppVerdict so they are recomputed whenever the
// inputs change.
type AppRecord struct {
	// ID uniquely identifies the record, usually the package name.
	ID string `json:"id"`

	// Name is the human-readable application name.
	Name string `json:"name"`

	// PackageName is the platform package identifier.
	PackageName string `json:"packageName"`

	// Developer is the publisher name as reported by the store or guessed
	// from the package name when unavailable.
	Developer string `json:"developer"`

	// IsFromStore is true when the app was installed through the official
	// app store.
	IsFromStore bool `json:"isFromPlayStore"`

	// Permissions is the set of granted permissions.
	Permissions []string `json:"permissions"`

	// SystemApp marks preinstalled system applications.
	SystemApp bool `json:"systemApp,omitempty"`

	// FirstInstallTime and LastUpdateTime are Unix millisecond timestamps
	// when the enumeration source provides them.
	FirstInstallTime int64 `json:"firstInstallTime,omitempty"`
	LastUpdateTime   int64 `json:"lastUpdateTime,omitempty"`

	// InstallerPackage is the package that installed this app, if known.
	InstallerPackage string `json:"installerPackage,omitempty"`
}

// AppVerdict is the computed risk assessment for an installed application.
type AppVerdict struct {
	App AppRecord `json:"app"`

	// DangerousPermissions is the subset of granted permissions considered
	// high-risk in the scam context.
	DangerousPermissions []string `json:"dangerousPermissions,omitempty"`

	// Risk is the overall severity derived from the score.
	Risk RiskLevel `json:"risk"`

	// WarningMessage contains the newline-joined warnings, empty when safe.
	WarningMessage string `json:"warningMessage,omitempty"`
}

// GuessDeveloper derives a publisher name from a reverse-DNS package
// identifier for records where the enumeration source left the developer
// blank. The second label is usually the vendor, so "com.whatsapp" yields
// "whatsapp". Returns "" when the package name has no usable label.
func GuessDeveloper(packageName string) string {
	parts := strings.Split(strings.TrimSpace(packageName), ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// AppScanSummary aggregates a batch app scan by risk level.
type AppScanSummary struct {
	Total   int `json:"total"`
	Safe    int `json:"safe"`
	Warning int `json:"warning"`
	Danger  int `json:"danger"`
}

// SummarizeApps counts verdicts per risk level.
func SummarizeApps(verdicts []AppVerdict) AppScanSummary {
	summary := AppScanSummary{Total: len(verdicts)}
	for _, v := range verdicts {
		switch v.Risk {
		case RiskSafe:
			summary.Safe++
		case RiskWarning:
			summary.Warning++
		case RiskDanger:
			summary.Danger++
		}
	}
	return summary
}

// FilterAppsByRisk returns the verdicts matching the given risk level,
// preserving input order.
func FilterAppsByRisk(verdicts []AppVerdict, risk RiskLevel) []AppVerdict {
	filtered := make([]AppVerdict, 0, len(verdicts))
	for _, v := range verdicts {
		if v.Risk == risk {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
