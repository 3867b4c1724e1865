// Package classifier implements the offline threat heuristics: pure,
// deterministic classifiers that assign a tri-state risk level to URLs,
// email senders, installed applications, WiFi networks, and phone numbers
// using static rule tables and edit-distance math. No classifier performs
// network I/O; the only state consulted is the community report store
// snapshot injected through the ReportSource capability.
package classifier
