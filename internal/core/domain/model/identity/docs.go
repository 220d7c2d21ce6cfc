// Package identity models who acts on the mailroom: users, their closed set of roles,
// the capability table that says what each role may do, and the Actor token that is
// handed to every command and query in place of ambient session state.
//
// Key business rules:
//   - Exactly four roles exist: super_admin, admin, portaria (reception) and loja (store)
//   - A loja user is always scoped to exactly one store; other roles never carry a store
//   - Capabilities are granted only through the role table, never by comparing role names
package identity
