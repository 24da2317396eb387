package apptheme

import "context"

// Repository defines the interface for theme persistence. There is a single
// global theme; Get never fails with a not-found condition, it falls back to
// the default.
type Repository interface {
	// Get retrieves the current theme, or the default when none was stored.
	Get(ctx context.Context) (Theme, error)

	// Set overwrites the stored theme.
	Set(ctx context.Context, theme Theme) error
}
