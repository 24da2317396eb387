package sales_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/sales"
)

func newLedger(now func() time.Time) *sales.Service {
	return sales.NewService(sales.ServiceConfig{
		Repository: sales.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
		Now:        now,
	})
}

func TestService_Record_PlanTable(t *testing.T) {
	ledger := newLedger(nil)
	ctx := context.Background()

	cases := []struct {
		days     int
		price    int
		planName string
	}{
		{7, 1500, "Semanal"},
		{30, 5000, "Mensal"},
		{15, 0, "Personalizado"},
	}

	for _, tc := range cases {
		sale, err := ledger.Record(ctx, "923000000", "X7K9P2", tc.days, "P7-AAAAAAAA")
		if err != nil {
			t.Fatalf("record %d days: %v", tc.days, err)
		}
		if sale.Price != tc.price {
			t.Errorf("days=%d: expected price %d, got %d", tc.days, tc.price, sale.Price)
		}
		if sale.PlanName != tc.planName {
			t.Errorf("days=%d: expected plan %q, got %q", tc.days, tc.planName, sale.PlanName)
		}
		if sale.DurationDays != tc.days {
			t.Errorf("days=%d: duration not persisted, got %d", tc.days, sale.DurationDays)
		}
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	current := time.Now()
	ledger := newLedger(func() time.Time { return current })
	ctx := context.Background()

	if _, err := ledger.Record(ctx, "923000001", "AAAAAA", 7, "k1"); err != nil {
		t.Fatal(err)
	}
	current = current.Add(time.Second)
	if _, err := ledger.Record(ctx, "923000002", "BBBBBB", 30, "k2"); err != nil {
		t.Fatal(err)
	}

	all, err := ledger.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(all))
	}
	if all[0].PhoneNumber != "923000002" {
		t.Errorf("expected newest sale first, got %q", all[0].PhoneNumber)
	}
}

func TestService_Stats(t *testing.T) {
	ledger := newLedger(nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := ledger.Record(ctx, "923000000", "X7K9P2", 7, "k"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ledger.Record(ctx, "923000000", "X7K9P2", 30, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.Record(ctx, "923000000", "X7K9P2", 90, "k"); err != nil {
		t.Fatal(err)
	}

	stats, err := ledger.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalKeys != 5 {
		t.Errorf("expected 5 keys, got %d", stats.TotalKeys)
	}
	if want := 3*1500 + 5000; stats.TotalRevenue != want {
		t.Errorf("expected revenue %d, got %d", want, stats.TotalRevenue)
	}
	if stats.ByPlan["Semanal"] != 3 || stats.ByPlan["Mensal"] != 1 {
		t.Errorf("unexpected plan counts: %v", stats.ByPlan)
	}
	if len(stats.RecentSales) != 5 {
		t.Errorf("expected 5 recent sales, got %d", len(stats.RecentSales))
	}
}

func TestExpirationStatus(t *testing.T) {
	now := time.Now()

	// Active sale, far from expiry.
	fresh := &sales.Sale{
		Date:         now.Add(-24 * time.Hour).UnixMilli(),
		DurationDays: 30,
		PlanName:     "Mensal",
	}
	status := sales.ExpirationStatus(fresh, now)
	if !status.Active {
		t.Error("expected fresh sale to be active")
	}
	if strings.Contains(status.Label, "Acabando") {
		t.Errorf("fresh sale should not be ending soon: %q", status.Label)
	}

	// Ending soon (2 days left).
	endingSoon := &sales.Sale{
		Date:         now.Add(-28 * 24 * time.Hour).UnixMilli(),
		DurationDays: 30,
		PlanName:     "Mensal",
	}
	status = sales.ExpirationStatus(endingSoon, now)
	if !status.Active {
		t.Error("expected sale with 2 days left to be active")
	}
	if !strings.Contains(status.Label, "Acabando") {
		t.Errorf("expected ending-soon marker, got %q", status.Label)
	}

	// Expired.
	expired := &sales.Sale{
		Date:         now.Add(-31 * 24 * time.Hour).UnixMilli(),
		DurationDays: 30,
		PlanName:     "Mensal",
	}
	status = sales.ExpirationStatus(expired, now)
	if status.Active {
		t.Error("expected expired sale to be inactive")
	}
	if status.Label != "Expirado" {
		t.Errorf("expected label Expirado, got %q", status.Label)
	}
}

func TestExpirationStatus_LegacyFallback(t *testing.T) {
	now := time.Now()

	// Legacy weekly row without a duration: heuristic says 7 days, so a
	// 10-day-old sale is expired.
	weekly := &sales.Sale{
		Date:     now.Add(-10 * 24 * time.Hour).UnixMilli(),
		PlanName: "Semanal",
	}
	if sales.ExpirationStatus(weekly, now).Active {
		t.Error("legacy weekly sale past 7 days must be expired")
	}

	// Legacy non-weekly row falls back to 30 days and is still active.
	monthly := &sales.Sale{
		Date:     now.Add(-10 * 24 * time.Hour).UnixMilli(),
		PlanName: "Mensal",
	}
	if !sales.ExpirationStatus(monthly, now).Active {
		t.Error("legacy monthly sale at 10 days must still be active")
	}
}
