// Package mall models the physical side of the operator: shopping centers and the
// stores inside them. A package is always addressed to exactly one store.
package mall
