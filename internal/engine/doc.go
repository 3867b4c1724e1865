// Package engine wires the registry, the community report store, and the
// individual classifiers into a single entry point for callers.
//
// The engine is the only type commands and the sync server construct
// directly; everything below it (classifiers, store, registry) stays
// swappable for tests.
package engine
