// Package queries contains the read side of the mailroom: listings and detail views
// read straight from PostgreSQL with raw SQL, bypassing the aggregates. Every query
// carries the acting identity.Actor and applies services.AccessPolicy before it returns
// anything.
package queries
