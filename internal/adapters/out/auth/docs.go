// Package auth implements the credential ports: bcrypt password hashing and HS256 bearer
// tokens whose jti is the id of a persisted session.
package auth
