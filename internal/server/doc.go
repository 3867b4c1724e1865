// Package server implements the community sync endpoint.
//
// Devices push their local phone report maps and pull the merged
// community map from the same URL. The server is a thin HTTP layer over
// the same store.Merge logic the clients use, so both sides resolve
// conflicts identically.
package server
