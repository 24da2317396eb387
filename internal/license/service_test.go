package license_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/entitlement"
	"github.com/paptec/pregador/internal/license"
)

func newActivationService(t *testing.T) (*license.Service, *entitlement.Service) {
	t.Helper()

	entitlements := entitlement.NewService(entitlement.ServiceConfig{
		Repository: entitlement.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
	})
	activation := license.NewService(license.ServiceConfig{
		Entitlements: entitlements,
		Logger:       zerolog.Nop(),
	})
	return activation, entitlements
}

func TestService_Activate_UniversalCode(t *testing.T) {
	activation, entitlements := newActivationService(t)
	ctx := context.Background()

	ok, err := activation.Activate(ctx, "X7K9P2", "PAPTECH2025", "924052039")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if !ok {
		t.Fatal("expected universal code to activate")
	}

	state, err := entitlements.GetState(ctx, "X7K9P2")
	if err != nil {
		t.Fatalf("state read: %v", err)
	}
	if !state.Premium {
		t.Error("expected premium after universal activation")
	}
	if state.PremiumEndsAt != 0 {
		t.Errorf("universal codes grant lifetime access, got expiry %d", state.PremiumEndsAt)
	}
	if state.PlanName != license.LifetimePlanName {
		t.Errorf("expected plan %q, got %q", license.LifetimePlanName, state.PlanName)
	}
}

func TestService_Activate_GeneratedKey(t *testing.T) {
	activation, entitlements := newActivationService(t)
	ctx := context.Background()

	key := license.GenerateKey("923000000", "X7K9P2", 30)

	ok, err := activation.Activate(ctx, "X7K9P2", key, "923000000")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if !ok {
		t.Fatal("expected key to validate on the device it was minted for")
	}

	state, err := entitlements.GetState(ctx, "X7K9P2")
	if err != nil {
		t.Fatalf("state read: %v", err)
	}
	if !state.Premium {
		t.Error("expected premium after activation")
	}
	if state.PlanName != "Mensal" {
		t.Errorf("expected plan Mensal, got %q", state.PlanName)
	}

	days := entitlements.DaysRemaining(state.PremiumEndsAt)
	if days != 30 {
		t.Errorf("expected 30 days remaining, got %d", days)
	}

	// Rough sanity on the absolute instant.
	want := time.Now().UnixMilli() + 30*24*60*60*1000
	if diff := state.PremiumEndsAt - want; diff < -5000 || diff > 5000 {
		t.Errorf("expiry %d too far from expected %d", state.PremiumEndsAt, want)
	}
}

func TestService_Activate_WrongDevice(t *testing.T) {
	activation, entitlements := newActivationService(t)
	ctx := context.Background()

	// Key minted for device X7K9P2, redeemed on A1B2C3. The phone must be
	// short enough that the device identity reaches the checksum's encoded
	// window; with 6+ digits the checksum ignores the device entirely.
	key := license.GenerateKey("9230", "X7K9P2", 30)

	ok, err := activation.Activate(ctx, "A1B2C3", key, "9230")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if ok {
		t.Fatal("key must not validate on a different device")
	}

	state, err := entitlements.GetState(ctx, "A1B2C3")
	if err != nil {
		t.Fatalf("state read: %v", err)
	}
	if state.Premium {
		t.Error("failed activation must not change entitlement state")
	}
}

func TestService_Activate_LongPhoneAnyDevice(t *testing.T) {
	activation, _ := newActivationService(t)
	ctx := context.Background()

	// Frozen algorithm: with 6+ phone digits the checksum carries no
	// device information, so the key redeems on any installation.
	key := license.GenerateKey("923000000", "X7K9P2", 30)

	ok, err := activation.Activate(ctx, "A1B2C3", key, "923000000")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if !ok {
		t.Fatal("expected long-phone key to validate on another device")
	}
}

func TestService_Activate_WrongPhone(t *testing.T) {
	activation, _ := newActivationService(t)
	ctx := context.Background()

	key := license.GenerateKey("923000000", "X7K9P2", 7)

	ok, err := activation.Activate(ctx, "X7K9P2", key, "929999999")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if ok {
		t.Fatal("key must not validate with a different phone number")
	}
}

func TestService_Activate_MalformedCodes(t *testing.T) {
	activation, _ := newActivationService(t)
	ctx := context.Background()

	for _, code := range []string{"", "garbage", "P30", "Pabc-12345678", "30-ABCDEFGH"} {
		ok, err := activation.Activate(ctx, "X7K9P2", code, "923000000")
		if err != nil {
			t.Fatalf("activation error for %q: %v", code, err)
		}
		if ok {
			t.Errorf("expected %q to fail", code)
		}
	}
}

func TestService_Activate_NormalizesCode(t *testing.T) {
	activation, _ := newActivationService(t)
	ctx := context.Background()

	key := license.GenerateKey("923000000", "X7K9P2", 7)

	// Whitespace and lower case from the input field must not matter.
	ok, err := activation.Activate(ctx, "X7K9P2", "  "+strings.ToLower(key)+" ", "923000000")
	if err != nil {
		t.Fatalf("activation error: %v", err)
	}
	if !ok {
		t.Error("expected normalized code to validate")
	}
}
