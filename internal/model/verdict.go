package model

// URLVerdict is the result of analyzing a single URL for phishing
// indicators. A fresh value is produced per call; verdicts are never
// mutated after creation.
type URLVerdict struct {
	// Input is the original string handed to the classifier.
	Input string `json:"input"`

	// Domain is the lowercased hostname extracted from the input.
	// On parse failure this falls back to the whole trimmed input.
	Domain string `json:"domain"`

	// UsesHTTPS is true when the input explicitly uses https:// or has no
	// scheme at all. Only an explicit http:// prefix sets it to false; a
	// bare domain typed by the user is not penalized.
	UsesHTTPS bool `json:"usesHttps"`

	// IsTyposquat is true when the hostname matches a known impersonation
	// pattern and is not an official domain.
	IsTyposquat bool `json:"isTyposquat"`

	// MatchedReason describes the impersonation match, if any.
	MatchedReason string `json:"matchedReason,omitempty"`

	// SuspiciousKeywords lists the scam keywords found in the full URL.
	SuspiciousKeywords []string `json:"suspiciousKeywords,omitempty"`

	// Risk is the overall severity derived from the score.
	Risk RiskLevel `json:"risk"`

	// WarningText contains the newline-joined human-readable warnings.
	// Empty when the verdict is safe.
	WarningText string `json:"warningText,omitempty"`
}

// EmailVerdict is the result of verifying a sender email address against
// the official registry, the community report store, and typosquatting
// heuristics.
type EmailVerdict struct {
	// Domain is the lowercased domain extracted after the last '@'.
	Domain string `json:"domain"`

	// IsOfficial is true when the sender or its domain is in the official
	// registry.
	IsOfficial bool `json:"isOfficial"`

	// IsReported is true when the exact address was reported by users.
	IsReported bool `json:"isReported"`

	// IsTyposquat is true when the domain resembles an official domain
	// without being one.
	IsTyposquat bool `json:"isTyposquat"`

	// Reason is a human-readable explanation of the verdict.
	Reason string `json:"reason"`

	// Risk is Danger if reported, Safe if official, Warning otherwise.
	Risk RiskLevel `json:"risk"`
}

// PhoneVerdict is the result of looking up a phone number in the community
// report store. There is no scoring; classification is binary on store
// presence, with official bank contacts recognized explicitly.
type PhoneVerdict struct {
	// Number is the normalized phone number that was looked up.
	Number string `json:"number"`

	// Reported is true when the number exists in the report store.
	Reported bool `json:"reported"`

	// Count is the number of community reports, zero when not reported.
	Count int `json:"count,omitempty"`

	// OfficialContact names the bank when the number is a registered
	// official contact line.
	OfficialContact string `json:"officialContact,omitempty"`

	// Risk is Danger when reported, Safe otherwise.
	Risk RiskLevel `json:"risk"`
}
