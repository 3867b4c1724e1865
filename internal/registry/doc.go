// Package registry holds the static allowlists of officially recognized
// banking entities in the Dominican Republic: domains, exact sender email
// addresses, and customer-service phone numbers. The compiled-in tables are
// immutable; extra entries may only be supplied at construction time.
package registry
