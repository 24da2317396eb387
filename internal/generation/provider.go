package generation

import "context"

// Provider is the content backend. The production implementation talks to
// the Gemini API; tests use a stub.
type Provider interface {
	// GenerateSermon produces a full preaching outline.
	GenerateSermon(ctx context.Context, req SermonRequest) (*Sermon, error)

	// SuggestThemes produces preaching theme ideas for a category or feeling.
	SuggestThemes(ctx context.Context, category string) ([]SuggestedTheme, error)

	// GenerateDevotional produces a daily reading guide. reference is
	// optional; when empty the provider picks a varied chapter.
	GenerateDevotional(ctx context.Context, reference string) (*Devotional, error)

	// GenerateServiceProgram produces a service liturgy.
	GenerateServiceProgram(ctx context.Context, req ProgramRequest) (*ServiceProgram, error)

	// GetPassage retrieves the text of a Bible reference.
	GetPassage(ctx context.Context, reference string) (string, error)

	// LookupTerm explains a biblical or theological term.
	LookupTerm(ctx context.Context, query string) (string, error)
}
