// Package pricing computes data-recovery price estimates from static tables.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// Currency is the Georgian lari sign used on every estimate
const Currency = "₾"

var (
	// ErrIncompleteSelection means at least one selector is unset. Callers are
	// expected to check Selection.Complete and block the computation instead.
	ErrIncompleteSelection = errors.New("device type, problem type and urgency are all required")
	// ErrUnknownOption means a selector holds a value that has no table entry
	ErrUnknownOption = errors.New("unknown pricing option")
)

var basePrices = map[string]float64{
	"hdd":  100,
	"ssd":  150,
	"raid": 300,
	"usb":  80,
	"sd":   60,
}

var problemMultipliers = map[string]float64{
	"logical":  1.0,
	"physical": 1.5,
	"water":    2.0,
	"fire":     2.5,
}

var urgencyMultipliers = map[string]float64{
	"standard":  1.0,
	"urgent":    1.5,
	"emergency": 2.0,
}

var timeframes = map[string]Timeframe{
	"standard":  {Ka: "სტანდარტული (5-7 დღე)", En: "Standard (5-7 days)"},
	"urgent":    {Ka: "ეჩქარებული (2-3 დღე)", En: "Urgent (2-3 days)"},
	"emergency": {Ka: "გადაუდებელი (24 საათი)", En: "Emergency (24 hours)"},
}

// Selection is the three-way choice made in the price calculator
type Selection struct {
	DeviceType  string `json:"device_type"`
	ProblemType string `json:"problem_type"`
	Urgency     string `json:"urgency"`
}

// Complete reports whether all three selectors are set
func (s Selection) Complete() bool {
	return s.DeviceType != "" && s.ProblemType != "" && s.Urgency != ""
}

// Timeframe is the bilingual turnaround label for an urgency level
type Timeframe struct {
	Ka string `json:"ka"`
	En string `json:"en"`
}

// Breakdown shows how the price was composed
type Breakdown struct {
	BasePrice         float64 `json:"base_price"`
	ProblemMultiplier float64 `json:"problem_multiplier"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	DeviceType        string  `json:"device_type"`
	ProblemType       string  `json:"problem_type"`
	Urgency           string  `json:"urgency"`
}

// Estimate is a computed quote
type Estimate struct {
	Price     int       `json:"estimated_price"`
	Currency  string    `json:"currency"`
	Breakdown Breakdown `json:"breakdown"`
	Timeframe Timeframe `json:"timeframe"`
}

// Calculate prices a selection: round_half_up(base * problem * urgency).
// It is pure; the same selection always yields the same estimate.
func Calculate(sel Selection) (*Estimate, error) {
	if !sel.Complete() {
		return nil, ErrIncompleteSelection
	}

	base, ok := basePrices[sel.DeviceType]
	if !ok {
		return nil, fmt.Errorf("%w: device type %q", ErrUnknownOption, sel.DeviceType)
	}
	problem, ok := problemMultipliers[sel.ProblemType]
	if !ok {
		return nil, fmt.Errorf("%w: problem type %q", ErrUnknownOption, sel.ProblemType)
	}
	urgency, ok := urgencyMultipliers[sel.Urgency]
	if !ok {
		return nil, fmt.Errorf("%w: urgency %q", ErrUnknownOption, sel.Urgency)
	}

	return &Estimate{
		Price:    roundHalfUp(base * problem * urgency),
		Currency: Currency,
		Breakdown: Breakdown{
			BasePrice:         base,
			ProblemMultiplier: problem,
			UrgencyMultiplier: urgency,
			DeviceType:        sel.DeviceType,
			ProblemType:       sel.ProblemType,
			Urgency:           sel.Urgency,
		},
		Timeframe: timeframes[sel.Urgency],
	}, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Info is the full pricing table set
type Info struct {
	BasePrices         map[string]float64   `json:"base_prices"`
	ProblemMultipliers map[string]float64   `json:"problem_multipliers"`
	UrgencyMultipliers map[string]float64   `json:"urgency_multipliers"`
	Timeframes         map[string]Timeframe `json:"timeframes"`
	Currency           string               `json:"currency"`
}

// PricingInfo returns a copy of the pricing tables
func PricingInfo() Info {
	return Info{
		BasePrices:         copyTable(basePrices),
		ProblemMultipliers: copyTable(problemMultipliers),
		UrgencyMultipliers: copyTable(urgencyMultipliers),
		Timeframes:         copyTable(timeframes),
		Currency:           Currency,
	}
}

func copyTable[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
