// Package tui is the front desk terminal for confirming a pickup.
//
// The model drives a pickup.Wizard through its three steps: the collector's name and
// CPF, a photo taken from the configured camera, and a signature drawn on a grid with
// the arrow keys. Submitting sends the evidence through a pickup.Collector, normally
// the mailroom API client. A failed submission keeps every input so the operator can
// fix it and try again.
package tui
