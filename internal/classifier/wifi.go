package classifier

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/safephone/scamscan/internal/model"
)

// publicSSIDHints are substrings that suggest a public or captive-portal
// network. Matching is case-insensitive on the NFC-folded SSID so accented
// names like "Café_Libre" still hit.
var publicSSIDHints = []string{
	"guest", "gratis", "free", "public", "wifi", "café", "plaza", "mall", "hotspot", "airport",
}

// WiFi warning lines.
const (
	warnOpenNetwork = "Open network: traffic can be intercepted. Avoid banking and shopping; use mobile data or a VPN."
	warnWeakCipher  = "Weak encryption (WEP/TKIP). Avoid sensitive data."
	warnBasicCipher = "Unknown or basic encryption. Be careful with sensitive data."
	warnPublicSSID  = "Looks like a public or captive-portal network. Do not enter sensitive data."

	warnWifiUnavailable = "Could not verify the WiFi connection"
)

// WifiClassifier scores WiFi connections by encryption strength and SSID
// heuristics.
type WifiClassifier struct{}

// NewWifiClassifier creates a WiFi classifier.
func NewWifiClassifier() *WifiClassifier {
	return &WifiClassifier{}
}

// Classify computes the risk verdict for a connection state. The raw
// encryption string is parsed here so legacy capability strings carrying
// "TKIP" are still treated as weak.
func (c *WifiClassifier) Classify(status model.WifiStatus) model.WifiVerdict {
	enc := model.ParseEncryption(status.Encryption)
	rawUpper := strings.ToUpper(status.Encryption)

	v := model.WifiVerdict{
		SSID:        status.SSID,
		IsConnected: status.IsConnected,
		Encryption:  enc,
	}

	// Nothing to warn about when not connected.
	if !status.IsConnected {
		v.Risk = model.RiskSafe
		return v
	}

	weakLegacy := enc == model.EncryptionWEP || strings.Contains(rawUpper, "TKIP")

	switch {
	case enc == model.EncryptionOpen || weakLegacy:
		v.Risk = model.RiskDanger
	case enc == model.EncryptionWPA || enc == model.EncryptionUnknown:
		v.Risk = model.RiskWarning
	default: // WPA2 / WPA3
		v.Risk = model.RiskSafe
	}

	if enc == model.EncryptionOpen {
		v.Warnings = append(v.Warnings, warnOpenNetwork)
	}
	if weakLegacy {
		v.Warnings = append(v.Warnings, warnWeakCipher)
	}
	if enc == model.EncryptionWPA || enc == model.EncryptionUnknown {
		v.Warnings = append(v.Warnings, warnBasicCipher)
	}

	if enc == model.EncryptionOpen && hasPublicSSIDHint(status.SSID) {
		v.Warnings = append(v.Warnings, warnPublicSSID)
	}

	return v
}

// Unverified returns the verdict used when the platform WiFi source is
// unavailable or unauthorized: an inconclusive warning, never an error.
func (c *WifiClassifier) Unverified() model.WifiVerdict {
	return model.WifiVerdict{
		Encryption: model.EncryptionUnknown,
		Risk:       model.RiskWarning,
		Warnings:   []string{warnWifiUnavailable},
	}
}

// hasPublicSSIDHint reports whether the SSID contains any public-network
// hint word.
func hasPublicSSIDHint(ssid string) bool {
	lower := strings.ToLower(norm.NFC.String(ssid))
	for _, hint := range publicSSIDHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
