package domain

import "github.com/google/uuid"

// Scope restricts which records a caller can see.
// Non-master callers are limited to their own substation (Gardu).
type Scope struct {
	UserID uuid.UUID
	Gardu  string
	Master bool
}

// Allows reports whether a record belonging to gardu is visible in this scope.
func (s Scope) Allows(gardu string) bool {
	return s.Master || s.Gardu == gardu
}

// Key identifies the scope owner for per-user state.
func (s Scope) Key() string {
	return s.UserID.String()
}
