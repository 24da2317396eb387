// Package feedback keeps the user feedback inbox read by the admin console.
package feedback

import "errors"

// ErrMessageNotFound is returned when a feedback message does not exist.
var ErrMessageNotFound = errors.New("feedback message not found")

// Message types.
const (
	TypeSuggestion = "suggestion"
	TypeComplaint  = "complaint"
	TypeOther      = "other"
)

// ValidType reports whether t is a known feedback type.
func ValidType(t string) bool {
	return t == TypeSuggestion || t == TypeComplaint || t == TypeOther
}

// Message is one user feedback entry. Date is Unix milliseconds.
type Message struct {
	ID      string `json:"id"`
	Date    int64  `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Contact string `json:"contact,omitempty"`
	Read    bool   `json:"read"`
}
