// Package models contains API request/response models for the Pregador API.
package models

// Health represents a health check response.
type Health struct {
	Status  string                 `json:"status"`
	Time    int64                  `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Health status values.
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// DeviceResponse describes an installation identity.
type DeviceResponse struct {
	DeviceID  string `json:"deviceId"`
	CreatedAt int64  `json:"createdAt"`
	Created   bool   `json:"created"`
}

// SubscriptionStatus is the entitlement readout the client renders.
type SubscriptionStatus struct {
	IsPremium             bool   `json:"isPremium"`
	IsTrialActive         bool   `json:"isTrialActive"`
	TrialEndsAt           int64  `json:"trialEndsAt"`
	PremiumEndsAt         int64  `json:"premiumEndsAt"`
	PlanName              string `json:"planName,omitempty"`
	CanAccess             bool   `json:"canAccess"`
	DaysRemaining         int    `json:"daysRemaining,omitempty"`
	TrialMinutesRemaining int    `json:"trialMinutesRemaining,omitempty"`
}

// ActivationRequest carries an access code attempt.
type ActivationRequest struct {
	Code        string `json:"code"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// ActivationResponse reports whether the code unlocked the device.
type ActivationResponse struct {
	Activated bool                `json:"activated"`
	Status    *SubscriptionStatus `json:"status,omitempty"`
}

// NavigationRequest asks to move the session to a screen.
type NavigationRequest struct {
	Screen string `json:"screen"`
}

// NavigationResponse reports where the session landed.
type NavigationResponse struct {
	Screen     string `json:"screen"`
	Redirected bool   `json:"redirected"`
}

// SermonGenerationRequest mirrors the generator form.
type SermonGenerationRequest struct {
	Topic     string `json:"topic"`
	Reference string `json:"reference,omitempty"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
}

// ThemeSuggestionRequest asks for preaching theme ideas.
type ThemeSuggestionRequest struct {
	Category string `json:"category"`
}

// DevotionalRequest asks for a daily reading guide.
type DevotionalRequest struct {
	Reference string `json:"reference,omitempty"`
}

// ServiceProgramRequest mirrors the liturgy planner form.
type ServiceProgramRequest struct {
	ServiceType    string `json:"serviceType"`
	Theme          string `json:"theme"`
	Duration       string `json:"duration"`
	CustomSegments string `json:"customSegments,omitempty"`
}

// PassageRequest asks for a Bible passage.
type PassageRequest struct {
	Reference string `json:"reference"`
}

// DictionaryRequest asks for a term definition.
type DictionaryRequest struct {
	Query string `json:"query"`
}

// TextResponse wraps a plain text generation result.
type TextResponse struct {
	Text string `json:"text"`
}

// FeedbackRequest carries a user feedback message.
type FeedbackRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Contact string `json:"contact,omitempty"`
}

// AdminLoginRequest carries the console secret.
type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

// AdminLoginResponse carries the session token.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// KeyGenerationRequest asks the console to mint an access key.
type KeyGenerationRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	DeviceID    string `json:"deviceId"`
	Days        int    `json:"days"`
}

// KeyGenerationResponse carries the minted key and its ledger entry.
type KeyGenerationResponse struct {
	Key      string      `json:"key"`
	PlanName string      `json:"planName"`
	Price    int         `json:"price"`
	Sale     interface{} `json:"sale,omitempty"`
}

// AdminActivationRequest grants premium to a device from the console.
type AdminActivationRequest struct {
	DeviceID string `json:"deviceId"`
	Days     int    `json:"days"`
	Lifetime bool   `json:"lifetime,omitempty"`
}

// SaleExpiryResponse decorates a ledger row with its remaining life.
type SaleExpiryResponse struct {
	Sale   interface{} `json:"sale"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}
