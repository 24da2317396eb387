// Package apptheme holds the admin-controlled visual theme served to clients.
package apptheme

// Theme is the global appearance configuration. FontSizeScale multiplies the
// base font size; 1 means unchanged.
type Theme struct {
	PrimaryColor  string  `json:"primaryColor"`
	FontFamily    string  `json:"fontFamily"`
	FontSizeScale float64 `json:"fontSizeScale"`
}

// DefaultTheme is what clients see until an admin customizes the look.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:  "#1e3a8a",
		FontFamily:    "Inter",
		FontSizeScale: 1,
	}
}
