package access_test

import (
	"testing"

	"github.com/paptec/pregador/internal/access"
	"github.com/paptec/pregador/internal/entitlement"
)

func TestCanEnter_OpenScreens(t *testing.T) {
	expired := entitlement.State{}

	for _, screen := range []access.Screen{access.ScreenHome, access.ScreenHelp, access.ScreenPaywall} {
		decision := access.CanEnter(expired, screen)
		if !decision.Allowed {
			t.Errorf("screen %s: expected open access without entitlement", screen)
		}
	}
}

func TestCanEnter_GatedScreens(t *testing.T) {
	gated := []access.Screen{
		access.ScreenGenerator,
		access.ScreenIdeas,
		access.ScreenTools,
		access.ScreenBible,
		access.ScreenDictionary,
		access.ScreenResult,
		access.ScreenDevotional,
		access.ScreenServiceProgram,
		access.ScreenHistory,
		access.ScreenSavedDetail,
	}

	premium := entitlement.State{Premium: true}
	trial := entitlement.State{TrialActive: true}
	expired := entitlement.State{}

	for _, screen := range gated {
		if d := access.CanEnter(premium, screen); !d.Allowed {
			t.Errorf("screen %s: premium should enter", screen)
		}
		if d := access.CanEnter(trial, screen); !d.Allowed {
			t.Errorf("screen %s: active trial should enter", screen)
		}
		d := access.CanEnter(expired, screen)
		if d.Allowed {
			t.Errorf("screen %s: expired device should be blocked", screen)
		}
		if d.RedirectTo != access.ScreenPaywall {
			t.Errorf("screen %s: expected paywall redirect, got %s", screen, d.RedirectTo)
		}
	}
}

func TestCanEnter_AdminScreen(t *testing.T) {
	d := access.CanEnter(entitlement.State{}, access.ScreenAdmin)
	if !d.Allowed {
		t.Error("admin console should not be entitlement gated")
	}
}

func TestParentOf(t *testing.T) {
	cases := []struct {
		screen access.Screen
		parent access.Screen
	}{
		{access.ScreenResult, access.ScreenGenerator},
		{access.ScreenSavedDetail, access.ScreenHistory},
		{access.ScreenPaywall, access.ScreenHome},
		{access.ScreenGenerator, access.ScreenHome},
		{access.ScreenBible, access.ScreenHome},
		{access.ScreenHome, access.ScreenHome},
	}

	for _, tc := range cases {
		if got := access.ParentOf(tc.screen); got != tc.parent {
			t.Errorf("ParentOf(%s): expected %s, got %s", tc.screen, tc.parent, got)
		}
	}
}
