package model

import "strings"

// EncryptionType classifies the cipher suite of a WiFi network.
type EncryptionType string

// Known encryption types, strongest first.
const (
	EncryptionWPA3    EncryptionType = "WPA3"
	EncryptionWPA2    EncryptionType = "WPA2"
	EncryptionWPA     EncryptionType = "WPA"
	EncryptionWEP     EncryptionType = "WEP"
	EncryptionOpen    EncryptionType = "OPEN"
	EncryptionUnknown EncryptionType = "UNKNOWN"
)

// ParseEncryption maps a raw capability string from the platform WiFi
// source to an EncryptionType. Matching is substring-based because native
// layers report strings like "[WPA2-PSK-CCMP][ESS]".
func ParseEncryption(raw string) EncryptionType {
	e := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(e, "WPA3"):
		return EncryptionWPA3
	case strings.Contains(e, "WPA2"):
		return EncryptionWPA2
	case strings.Contains(e, "WPA"):
		return EncryptionWPA
	case strings.Contains(e, "WEP"):
		return EncryptionWEP
	case strings.Contains(e, "OPEN"), e == "NONE":
		return EncryptionOpen
	default:
		return EncryptionUnknown
	}
}

// Label returns a display label for the encryption type.
func (e EncryptionType) Label() string {
	switch e {
	case EncryptionWPA3:
		return "WPA3 (very secure)"
	case EncryptionWPA2:
		return "WPA2 (secure)"
	case EncryptionWPA:
		return "WPA (basic)"
	case EncryptionWEP:
		return "WEP (insecure)"
	case EncryptionOpen:
		return "Open (no password)"
	default:
		return "Unknown"
	}
}

// WifiStatus is the raw connection state handed to the classifier by the
// platform WiFi source.
type WifiStatus struct {
	SSID        string `json:"ssid"`
	IsConnected bool   `json:"isConnected"`

	// Encryption is the raw capability string; the classifier parses it
	// with ParseEncryption so legacy ciphers like TKIP are still detected.
	Encryption string `json:"encryptionType"`
}

// WifiVerdict is the computed risk assessment for a WiFi connection.
type WifiVerdict struct {
	SSID        string         `json:"ssid"`
	IsConnected bool           `json:"isConnected"`
	Encryption  EncryptionType `json:"encryptionType"`

	// Risk is derived from encryption strength alone.
	Risk RiskLevel `json:"risk"`

	// Warnings is the ordered list of human-readable warnings.
	Warnings []string `json:"warnings,omitempty"`
}
