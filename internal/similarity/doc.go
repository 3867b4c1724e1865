// Package similarity provides the string edit-distance primitive used for
// typosquatting detection.
package similarity
