// Package main provides the entry point for the scamscan CLI.
//
// scamscan checks URLs, email senders, installed apps, WiFi networks,
// and phone numbers against local scam heuristics, a registry of
// official Dominican financial entities, and a community report store.
//
// Usage:
//
//	scamscan url https://banco-premios.com
//	scamscan phone 809-555-0142
//	scamscan report phone 809-555-0142
//
// See --help for all available options.
package main

// main is the entry point for scamscan.
func main() {
	Execute()
}
