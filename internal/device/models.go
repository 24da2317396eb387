// Package device provides per-installation identity management.
//
// Every installation of the Pregador web client is identified by a short
// identifier issued once on first contact and never regenerated. Activation
// keys are bound to this identifier, so a key minted for one installation
// cannot be redeemed on another.
package device

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrIdentityNotFound = errors.New("device identity not found")
	ErrIdentityExists   = errors.New("device identity already exists")
)

// IDLength is the length of a device identifier.
const IDLength = 6

// idAlphabet is the character set for generated identifiers.
// Matches identifiers issued by earlier client releases (uppercase alphanumeric).
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Identity represents one installation of the client.
type Identity struct {
	ID         string
	CreatedAt  time.Time
	LastSeenAt time.Time
}
