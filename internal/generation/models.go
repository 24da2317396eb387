// Package generation produces sermon outlines, devotionals, and service
// programs through a pluggable content provider.
package generation

// Audience values accepted for a sermon request.
const (
	AudienceGeneral      = "Geral"
	AudienceYouth        = "Jovens"
	AudienceLeadership   = "Liderança"
	AudienceChildren     = "Crianças"
	AudienceCouples      = "Casais"
	AudienceEvangelistic = "Evangelístico"
)

// Tone values accepted for a sermon request.
const (
	ToneExpository = "Expositivo"
	ToneThematic   = "Temático"
	ToneTextual    = "Textual"
	ToneDevotional = "Devocional"
)

// ValidAudience reports whether a is a known audience.
func ValidAudience(a string) bool {
	switch a {
	case AudienceGeneral, AudienceYouth, AudienceLeadership, AudienceChildren, AudienceCouples, AudienceEvangelistic:
		return true
	}
	return false
}

// ValidTone reports whether t is a known preaching tone.
func ValidTone(t string) bool {
	switch t {
	case ToneExpository, ToneThematic, ToneTextual, ToneDevotional:
		return true
	}
	return false
}

// SermonRequest describes the sermon the user asked for. Reference is
// optional; when present it anchors the outline to that passage.
type SermonRequest struct {
	Topic     string `json:"topic"`
	Reference string `json:"reference,omitempty"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
}

// SermonPoint is one point of the sermon development.
type SermonPoint struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	ScriptureReference string `json:"scriptureReference,omitempty"`
}

// Sermon is a generated preaching outline.
type Sermon struct {
	ID                string        `json:"id,omitempty"`
	Title             string        `json:"title"`
	Theme             string        `json:"theme,omitempty"`
	KeyVerse          string        `json:"keyVerse"`
	KeyVerseReference string        `json:"keyVerseReference"`
	Introduction      string        `json:"introduction"`
	Points            []SermonPoint `json:"points"`
	Conclusion        string        `json:"conclusion"`
	CreatedAt         int64         `json:"createdAt,omitempty"`
}

// SuggestedTheme is one preaching theme idea.
type SuggestedTheme struct {
	Title     string `json:"title"`
	Reference string `json:"reference"`
	Context   string `json:"context"`
}

// Devotional is a generated daily reading guide. Date is a human-readable
// local date, filled in at generation time.
type Devotional struct {
	Date        string `json:"date"`
	ReadingPlan string `json:"readingPlan"`
	KeyVerse    string `json:"keyVerse"`
	Meditation  string `json:"meditation"`
	Prayer      string `json:"prayer"`
	ActionStep  string `json:"actionStep"`
}

// ProgramRequest describes the service program the user asked for.
type ProgramRequest struct {
	ServiceType    string `json:"serviceType"`
	Theme          string `json:"theme"`
	Duration       string `json:"duration"`
	CustomSegments string `json:"customSegments,omitempty"`
}

// ServiceItem is one slot of a service program.
type ServiceItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Responsible string `json:"responsible,omitempty"`
}

// ServiceProgram is a generated church service liturgy.
type ServiceProgram struct {
	Title string        `json:"title"`
	Theme string        `json:"theme"`
	Date  string        `json:"date,omitempty"`
	Items []ServiceItem `json:"items"`
}
