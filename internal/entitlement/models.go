// Package entitlement persists and evaluates the trial/premium window for
// each installation.
//
// Timestamps are Unix milliseconds to stay shape-compatible with records
// written by earlier client releases, where PremiumEndsAt == 0 means lifetime.
package entitlement

import "errors"

// ErrRecordNotFound is returned when no record exists for a device.
// A corrupt stored record is reported the same way: the store reinitializes
// rather than failing the read.
var ErrRecordNotFound = errors.New("entitlement record not found")

// TrialDurationMillis is the length of the one-time trial window.
const TrialDurationMillis = 20 * 60 * 1000

// UnlimitedDaysSentinel is returned by DaysRemaining for lifetime plans.
const UnlimitedDaysSentinel = 999

const (
	dayMillis    = 24 * 60 * 60 * 1000
	minuteMillis = 60 * 1000
)

// Record is the persisted entitlement state for one installation.
type Record struct {
	DeviceID string `json:"-"`

	IsPremium     bool   `json:"isPremium"`
	TrialEndsAt   int64  `json:"trialEndsAt"`
	PremiumEndsAt int64  `json:"premiumEndsAt"`
	IsTrialActive bool   `json:"isTrialActive"`
	PlanName      string `json:"planName,omitempty"`
}

// State is the effective entitlement derived from a Record at a point in time.
// Premium and TrialActive are computed, never read back from storage.
type State struct {
	Premium       bool
	TrialActive   bool
	TrialEndsAt   int64
	PremiumEndsAt int64
	PlanName      string
}

// Allowed reports whether the installation may use gated features.
func (s State) Allowed() bool {
	return s.Premium || s.TrialActive
}

// effectiveState computes the derived fields for a record at nowMillis.
func effectiveState(rec *Record, nowMillis int64) State {
	premium := rec.IsPremium && (rec.PremiumEndsAt == 0 || rec.PremiumEndsAt > nowMillis)
	trial := !premium && nowMillis < rec.TrialEndsAt

	return State{
		Premium:       premium,
		TrialActive:   trial,
		TrialEndsAt:   rec.TrialEndsAt,
		PremiumEndsAt: rec.PremiumEndsAt,
		PlanName:      rec.PlanName,
	}
}
