package access_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/access"
	"github.com/paptec/pregador/internal/entitlement"
)

// fakeEntitlements serves per-device states and can be flipped mid-test.
type fakeEntitlements struct {
	mu     sync.Mutex
	states map[string]entitlement.State
}

func newFakeEntitlements() *fakeEntitlements {
	return &fakeEntitlements{states: make(map[string]entitlement.State)}
}

func (f *fakeEntitlements) set(deviceID string, state entitlement.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[deviceID] = state
}

func (f *fakeEntitlements) GetState(_ context.Context, deviceID string) (entitlement.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[deviceID], nil
}

func newAccess(ent access.Entitlements) *access.Service {
	return access.NewService(access.ServiceConfig{
		Entitlements: ent,
		Logger:       zerolog.Nop(),
	})
}

func TestService_Navigate_AllowedAndRedirected(t *testing.T) {
	ent := newFakeEntitlements()
	ent.set("AAAAAA", entitlement.State{TrialActive: true})
	ent.set("BBBBBB", entitlement.State{})

	svc := newAccess(ent)
	ctx := context.Background()

	landed, decision, err := svc.Navigate(ctx, "AAAAAA", access.ScreenGenerator)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if !decision.Allowed || landed != access.ScreenGenerator {
		t.Errorf("trial device: expected to land on GENERATOR, got %s", landed)
	}

	landed, decision, err = svc.Navigate(ctx, "BBBBBB", access.ScreenGenerator)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if decision.Allowed || landed != access.ScreenPaywall {
		t.Errorf("expired device: expected paywall, got %s", landed)
	}
	if svc.Current("BBBBBB") != access.ScreenPaywall {
		t.Error("session should record the paywall landing")
	}
}

func TestService_Navigate_UnknownScreen(t *testing.T) {
	svc := newAccess(newFakeEntitlements())

	_, _, err := svc.Navigate(context.Background(), "AAAAAA", access.Screen("SETTINGS"))
	if !errors.Is(err, access.ErrUnknownScreen) {
		t.Errorf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestService_Back_FollowsParents(t *testing.T) {
	ent := newFakeEntitlements()
	ent.set("AAAAAA", entitlement.State{Premium: true})

	svc := newAccess(ent)
	ctx := context.Background()

	if _, _, err := svc.Navigate(ctx, "AAAAAA", access.ScreenResult); err != nil {
		t.Fatal(err)
	}

	landed, err := svc.Back(ctx, "AAAAAA")
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if landed != access.ScreenGenerator {
		t.Errorf("expected RESULT to back into GENERATOR, got %s", landed)
	}

	landed, err = svc.Back(ctx, "AAAAAA")
	if err != nil {
		t.Fatal(err)
	}
	if landed != access.ScreenHome {
		t.Errorf("expected GENERATOR to back into HOME, got %s", landed)
	}
}

func TestService_Back_ExpiredOnPaywallLandsHome(t *testing.T) {
	ent := newFakeEntitlements()
	ent.set("AAAAAA", entitlement.State{})

	svc := newAccess(ent)
	ctx := context.Background()

	if _, _, err := svc.Navigate(ctx, "AAAAAA", access.ScreenPaywall); err != nil {
		t.Fatal(err)
	}

	landed, err := svc.Back(ctx, "AAAAAA")
	if err != nil {
		t.Fatal(err)
	}
	if landed != access.ScreenHome {
		t.Errorf("expected HOME, got %s", landed)
	}
}

func TestService_CheckCurrent_ForcesPaywallOnExpiry(t *testing.T) {
	ent := newFakeEntitlements()
	ent.set("AAAAAA", entitlement.State{TrialActive: true})

	svc := newAccess(ent)
	ctx := context.Background()

	if _, _, err := svc.Navigate(ctx, "AAAAAA", access.ScreenBible); err != nil {
		t.Fatal(err)
	}

	// Still entitled: nothing moves.
	landed, err := svc.CheckCurrent(ctx, "AAAAAA")
	if err != nil {
		t.Fatal(err)
	}
	if landed != access.ScreenBible {
		t.Errorf("expected to stay on BIBLE, got %s", landed)
	}

	ent.set("AAAAAA", entitlement.State{})

	landed, err = svc.CheckCurrent(ctx, "AAAAAA")
	if err != nil {
		t.Fatal(err)
	}
	if landed != access.ScreenPaywall {
		t.Errorf("expected forced paywall, got %s", landed)
	}
}

func TestWatcher_Sweep(t *testing.T) {
	ent := newFakeEntitlements()
	ent.set("AAAAAA", entitlement.State{TrialActive: true})
	ent.set("BBBBBB", entitlement.State{TrialActive: true})

	svc := newAccess(ent)
	ctx := context.Background()

	if _, _, err := svc.Navigate(ctx, "AAAAAA", access.ScreenGenerator); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Navigate(ctx, "BBBBBB", access.ScreenHelp); err != nil {
		t.Fatal(err)
	}

	watcher := access.NewWatcher(access.WatcherConfig{
		Access: svc,
		Logger: zerolog.Nop(),
	})

	ent.set("AAAAAA", entitlement.State{})
	ent.set("BBBBBB", entitlement.State{})
	watcher.Sweep(ctx)

	if svc.Current("AAAAAA") != access.ScreenPaywall {
		t.Error("gated session should be forced to paywall")
	}
	if svc.Current("BBBBBB") != access.ScreenHelp {
		t.Error("open screen session should be untouched")
	}
}
