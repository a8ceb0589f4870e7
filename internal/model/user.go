package model

import "time"

// Handle uniquely identifies a registered user across the system
type Handle string

// User represents a registered identity
// The secret is kept in clear text; this service is a reference
// implementation, not an identity provider
type User struct {
	Handle    Handle
	Secret    string
	CreatedAt time.Time
}
