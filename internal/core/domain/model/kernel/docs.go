// Package kernel provides the value objects shared by every aggregate of the mailroom:
//   - UUID: identifier with validation and comparison
//   - CPF: the eleven-digit collector identifier captured at pickup
//   - RequiredText: the trimmed, length-bounded text of names and codes
package kernel
