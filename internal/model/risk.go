package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RiskLevel represents the severity of a classifier verdict.
//
// Design decision: We use iota-based constants rather than string constants
// so severity comparison is a plain integer comparison (Safe < Warning <
// Danger). The String() method and JSON marshaling provide the wire form.
type RiskLevel int

const (
	// RiskSafe indicates no heuristic fired; the input looks legitimate.
	RiskSafe RiskLevel = iota

	// RiskWarning indicates an inconclusive or moderately suspicious result.
	// Unavailable data sources also degrade to this level rather than
	// surfacing an error.
	RiskWarning

	// RiskDanger indicates strong scam or phishing indicators.
	RiskDanger
)

// String returns the lowercase wire representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskSafe:
		return "safe"
	case RiskWarning:
		return "warning"
	case RiskDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// ParseRiskLevel converts a string into a RiskLevel.
// Matching is case-insensitive. Unknown values return an error.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "safe":
		return RiskSafe, nil
	case "warning":
		return RiskWarning, nil
	case "danger":
		return RiskDanger, nil
	default:
		return RiskSafe, fmt.Errorf("unknown risk level: %q", s)
	}
}

// MarshalJSON encodes the risk level as its string form.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the risk level from its string form.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = level
	return nil
}

// MaxRisk returns the more severe of two risk levels.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if a > b {
		return a
	}
	return b
}
