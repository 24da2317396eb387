// Package sales keeps the append-only ledger of issued activation keys.
//
// The ledger is deliberately decoupled from the key codec: recording a sale
// does not validate the key, and redeeming a key leaves no trace here. The
// administrative console is the only writer.
package sales

import "errors"

// ErrSaleNotFound is returned when a sale record does not exist.
var ErrSaleNotFound = errors.New("sale record not found")

// Plan price table. Anything outside the table is a custom plan at price 0.
const (
	WeeklyDays   = 7
	WeeklyPrice  = 1500
	MonthlyDays  = 30
	MonthlyPrice = 5000

	CustomPlanName = "Personalizado"
)

const dayMillis = 24 * 60 * 60 * 1000

// EndingSoonDays is the threshold for the "ending soon" marker on expiry labels.
const EndingSoonDays = 3

// Sale is one issued-key record. Date is Unix milliseconds.
// DurationDays is 0 on rows written before the field existed.
type Sale struct {
	ID           string `json:"id"`
	PhoneNumber  string `json:"phoneNumber"`
	DeviceID     string `json:"deviceId,omitempty"`
	PlanName     string `json:"planName"`
	Price        int    `json:"price"`
	Date         int64  `json:"date"`
	Key          string `json:"key"`
	DurationDays int    `json:"durationDays,omitempty"`
}

// Stats is the aggregation the admin console shows.
type Stats struct {
	TotalRevenue int            `json:"totalRevenue"`
	TotalKeys    int            `json:"totalKeys"`
	ByPlan       map[string]int `json:"byPlan"`
	RecentSales  []*Sale        `json:"recentSales"`
}

// ExpiryStatus describes how much life an issued key has left.
type ExpiryStatus struct {
	Label  string
	Active bool
}
