// Package model defines the core data types shared across the ScamScan
// engine: the tri-state risk level, classifier verdicts, and the records
// persisted by the community report store.
package model
