// Package access decides which screens a device may enter and keeps each
// device's navigation session so expiry can push it back to the paywall.
package access

// Screen identifies one screen of the client application.
type Screen string

// All screens the client can navigate to.
const (
	ScreenHome           Screen = "HOME"
	ScreenGenerator      Screen = "GENERATOR"
	ScreenIdeas          Screen = "IDEAS"
	ScreenTools          Screen = "TOOLS"
	ScreenBible          Screen = "BIBLE"
	ScreenDictionary     Screen = "DICTIONARY"
	ScreenResult         Screen = "RESULT"
	ScreenDevotional     Screen = "DEVOTIONAL"
	ScreenServiceProgram Screen = "SERVICE_PROGRAM"
	ScreenHistory        Screen = "HISTORY"
	ScreenSavedDetail    Screen = "SAVED_DETAIL"
	ScreenHelp           Screen = "HELP"
	ScreenPaywall        Screen = "PAYWALL"
	ScreenAdmin          Screen = "ADMIN"
)

// openScreens are reachable regardless of entitlement.
var openScreens = map[Screen]bool{
	ScreenHome:    true,
	ScreenHelp:    true,
	ScreenPaywall: true,
}

// gatedScreens require an active trial or subscription.
var gatedScreens = map[Screen]bool{
	ScreenGenerator:      true,
	ScreenIdeas:          true,
	ScreenTools:          true,
	ScreenBible:          true,
	ScreenDictionary:     true,
	ScreenResult:         true,
	ScreenDevotional:     true,
	ScreenServiceProgram: true,
	ScreenHistory:        true,
	ScreenSavedDetail:    true,
}

// Known reports whether s names a real screen.
func Known(s Screen) bool {
	return openScreens[s] || gatedScreens[s] || s == ScreenAdmin
}

// Open reports whether s is reachable without entitlement.
func Open(s Screen) bool {
	return openScreens[s]
}

// Gated reports whether s requires an active trial or subscription.
func Gated(s Screen) bool {
	return gatedScreens[s]
}

// Administrative reports whether s is the admin console.
func Administrative(s Screen) bool {
	return s == ScreenAdmin
}

// ParentOf returns where back navigation from s lands. Screens with no
// dedicated parent fall back to home.
func ParentOf(s Screen) Screen {
	switch s {
	case ScreenResult:
		return ScreenGenerator
	case ScreenSavedDetail:
		return ScreenHistory
	case ScreenPaywall:
		return ScreenHome
	default:
		return ScreenHome
	}
}
