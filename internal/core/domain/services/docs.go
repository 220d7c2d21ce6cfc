// Package services provides domain services that apply business rules spanning
// more than one aggregate of the mailroom system.
//
// The package includes:
//   - AccessPolicy: role gates, store visibility and listing scopes for packages and stores
//
// Domain services are pure: they read aggregates and the acting identity.Actor
// and never touch persistence.
package services
