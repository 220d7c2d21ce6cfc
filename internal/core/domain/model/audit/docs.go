// Package audit models the append-only trail of package events.
//
// An Entry is immutable once constructed: it exposes accessors only, and the
// repository port offers Append and ListByPackage but nothing that edits or
// removes a row.
package audit
