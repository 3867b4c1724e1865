// Package config holds runtime configuration for the scamscan CLI and
// sync server.
//
// Configuration comes from three layers: compiled-in defaults, the
// optional .scamscan YAML file (found in the working directory or the
// user's home), and CLI flags. Flags win over the file, the file wins
// over defaults.
package config
