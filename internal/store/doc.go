// Package store implements the community report store: durable local
// storage for user-reported phone numbers and email addresses, with a
// transparent legacy-format migration and an optional best-effort sync
// against a remote endpoint.
//
// Persistence goes through the KV capability interface so the engine can
// run against SQLite in production and an in-memory fake in tests. Every
// storage failure degrades to "no data": lookups return empty results and
// writes are logged and dropped, never surfaced as engine errors.
package store
