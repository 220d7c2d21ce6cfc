// Package parcel provides the Package aggregate (a parcel received at the mall's front
// desk) and the lifecycle state machine that governs it.
//
// The package includes:
//   - Package: the aggregate root holding intake data, status and collection evidence
//   - Status: the lifecycle state machine (pending, collected, returned, deleted)
//   - Evidence: the proof of pickup (collector name, CPF, photo and signature references)
//   - PostalType and VolumeType: the intake classifications
//
// Key business rules:
//   - Packages are created in the pending status
//   - collected, returned and deleted are terminal; only collected and returned may still be deleted
//   - A collected package always carries complete evidence; pending and returned packages never do
//   - Deleting is a soft marker: the record and any evidence it had are kept for audit
//
// The Go package is named parcel because "package" is a reserved word.
package parcel
