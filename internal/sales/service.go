package sales

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// recentSalesCount is how many recent sales the stats readout carries.
const recentSalesCount = 5

// ServiceConfig holds configuration for the sale ledger service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service provides sale ledger operations.
type Service struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new sale ledger service.
func NewService(cfg ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		now:    now,
	}
}

// Record appends a sale for a freshly minted key. The key is recorded as
// given, without validation; the codec and the ledger are independent.
func (s *Service) Record(ctx context.Context, phoneNumber, deviceID string, days int, key string) (*Sale, error) {
	price, planName := priceForDays(days)
	now := s.now()

	sale := &Sale{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		PhoneNumber:  phoneNumber,
		DeviceID:     deviceID,
		PlanName:     planName,
		Price:        price,
		Date:         now.UnixMilli(),
		Key:          key,
		DurationDays: days,
	}

	if err := s.repo.Insert(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sale_id", sale.ID).
		Str("plan", planName).
		Int("price", price).
		Msg("sale recorded")
	return sale, nil
}

// List returns the ledger, newest first.
func (s *Service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

// Stats aggregates the ledger for the admin console.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalKeys: len(all),
		ByPlan: map[string]int{
			"Semanal":   0,
			"Quinzenal": 0,
			"Mensal":    0,
		},
	}

	for _, sale := range all {
		stats.TotalRevenue += sale.Price
		if _, tracked := stats.ByPlan[sale.PlanName]; tracked {
			stats.ByPlan[sale.PlanName]++
		}
	}

	recent := recentSalesCount
	if recent > len(all) {
		recent = len(all)
	}
	stats.RecentSales = all[:recent]

	return stats, nil
}

// ExpirationStatus derives how much life an issued key has left at `now`.
//
// Rows written before DurationDays existed fall back to a plan-name heuristic:
// a plan containing "Semanal" ran 7 days, everything else 30. The heuristic is
// kept only for those legacy rows; new rows always carry the duration.
func ExpirationStatus(sale *Sale, now time.Time) ExpiryStatus {
	days := sale.DurationDays
	if days == 0 {
		if strings.Contains(sale.PlanName, "Semanal") {
			days = WeeklyDays
		} else {
			days = MonthlyDays
		}
	}

	expiresAt := sale.Date + int64(days)*dayMillis
	diff := expiresAt - now.UnixMilli()

	if diff <= 0 {
		return ExpiryStatus{Label: "Expirado", Active: false}
	}

	daysLeft := diff / dayMillis
	hoursLeft := (diff % dayMillis) / (60 * 60 * 1000)

	label := fmt.Sprintf("%dd %dh", daysLeft, hoursLeft)
	if daysLeft <= EndingSoonDays {
		label += " (Acabando)"
	}

	return ExpiryStatus{Label: label, Active: true}
}

// priceForDays maps a plan length onto the fixed plan table.
func priceForDays(days int) (price int, planName string) {
	switch days {
	case WeeklyDays:
		return WeeklyPrice, "Semanal"
	case MonthlyDays:
		return MonthlyPrice, "Mensal"
	default:
		return 0, CustomPlanName
	}
}
