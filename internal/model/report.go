package model

// ReportedPhone is a community-reported phone number.
//
// Records are keyed by the normalized number (digits and a leading '+'
// only), created on the first report with Count=1, and mutated on every
// subsequent report: Count increments monotonically and never decreases,
// and UpdatedAt advances. Records are never deleted.
type ReportedPhone struct {
	// Number is the normalized phone number.
	Number string `json:"number"`

	// Count is the number of community reports, always >= 1.
	Count int `json:"count"`

	// UpdatedAt is the Unix millisecond timestamp of the latest report.
	// Remote merges use it for last-write-wins conflict resolution.
	UpdatedAt int64 `json:"updatedAt"`
}

// SyncPayload is the wire shape exchanged with the community sync
// endpoint: POST pushes it, GET returns it.
type SyncPayload struct {
	Phones []ReportedPhone `json:"phones"`
}

// SyncResult reports how many records moved in each direction during a
// best-effort sync. Either leg may be zero when it failed or was skipped.
type SyncResult struct {
	Pulled int `json:"pulled"`
	Pushed int `json:"pushed"`
}
