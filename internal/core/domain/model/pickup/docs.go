// Package pickup implements the front desk pickup confirmation wizard.
//
// The wizard moves through three states: identity, photo and signature. Each state
// carries the validated data of the steps before it, so a signature state without a
// photo cannot be represented. Raw input lives in a draft that survives back
// navigation and failed submissions, and is discarded only after a successful
// collect or an explicit cancel.
package pickup
