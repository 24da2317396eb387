package apptheme_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/apptheme"
)

func newThemeService() *apptheme.Service {
	return apptheme.NewService(apptheme.ServiceConfig{
		Repository: apptheme.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
	})
}

func TestService_Get_Default(t *testing.T) {
	svc := newThemeService()

	theme, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if theme.PrimaryColor != "#1e3a8a" {
		t.Errorf("expected default color #1e3a8a, got %q", theme.PrimaryColor)
	}
	if theme.FontFamily != "Inter" {
		t.Errorf("expected default font Inter, got %q", theme.FontFamily)
	}
	if theme.FontSizeScale != 1 {
		t.Errorf("expected default scale 1, got %v", theme.FontSizeScale)
	}
}

func TestService_Update_RoundTrip(t *testing.T) {
	svc := newThemeService()
	ctx := context.Background()

	want := apptheme.Theme{PrimaryColor: "#b91c1c", FontFamily: "Lora", FontSizeScale: 1.25}
	if _, err := svc.Update(ctx, want); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestService_Update_Validation(t *testing.T) {
	svc := newThemeService()
	ctx := context.Background()

	cases := []apptheme.Theme{
		{PrimaryColor: "blue", FontFamily: "Inter", FontSizeScale: 1},
		{PrimaryColor: "#12345", FontFamily: "Inter", FontSizeScale: 1},
		{PrimaryColor: "#1e3a8a", FontFamily: "  ", FontSizeScale: 1},
		{PrimaryColor: "#1e3a8a", FontFamily: "Inter", FontSizeScale: 0.1},
		{PrimaryColor: "#1e3a8a", FontFamily: "Inter", FontSizeScale: 3},
	}

	for _, tc := range cases {
		if _, err := svc.Update(ctx, tc); !errors.Is(err, apptheme.ErrInvalidTheme) {
			t.Errorf("theme %+v: expected ErrInvalidTheme, got %v", tc, err)
		}
	}
}

func TestService_Reset(t *testing.T) {
	svc := newThemeService()
	ctx := context.Background()

	if _, err := svc.Update(ctx, apptheme.Theme{PrimaryColor: "#b91c1c", FontFamily: "Lora", FontSizeScale: 1.5}); err != nil {
		t.Fatal(err)
	}

	theme, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if theme != apptheme.DefaultTheme() {
		t.Errorf("expected default theme, got %+v", theme)
	}
}
