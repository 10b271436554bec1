package pricing_test

import (
	"testing"
	"time"

	"courtly/internal/coaches"
	"courtly/internal/courts"
	"courtly/internal/equipment"
	"courtly/internal/pricing"

	"github.com/stretchr/testify/require"
)

func indoorCourt(rate float64) courts.Court {
	return courts.Court{Name: "Court 1", CourtType: courts.CourtTypeIndoor, BaseHourlyRate: rate, IsActive: true}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func weekendRule(priority int) pricing.PricingRule {
	return pricing.PricingRule{
		Name: "Weekend Rate", RuleType: pricing.RuleTypeWeekend,
		Multiplier: 1.25, IsActive: true, Priority: priority,
	}
}

func peakRule(priority int) pricing.PricingRule {
	return pricing.PricingRule{
		Name: "Peak Hours", RuleType: pricing.RuleTypePeakHours,
		Multiplier: 1.3, StartHour: intPtr(18), EndHour: intPtr(21),
		IsActive: true, Priority: priority,
	}
}

func TestCalculateBaseOnly(t *testing.T) {
	breakdown, err := pricing.Calculate(indoorCourt(60), date("2026-09-02"), "10:00", "12:00", nil, nil, nil)
	require.NoError(t, err)

	require.Equal(t, 120.0, breakdown.BaseCourtPrice)
	require.Equal(t, 120.0, breakdown.Subtotal)
	require.Equal(t, 120.0, breakdown.Total)
	require.Empty(t, breakdown.AppliedRules)
}

func TestCalculateRulesCompoundInPriorityOrder(t *testing.T) {
	// Saturday, 19:00 hits both weekend and peak. Weekend applies first
	// (priority 1), peak compounds on its output.
	rules := []pricing.PricingRule{peakRule(2), weekendRule(1)}

	breakdown, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "19:00", "20:00", rules, nil, nil)
	require.NoError(t, err)

	require.Equal(t, 60.0, breakdown.BaseCourtPrice)
	require.Len(t, breakdown.AppliedRules, 2)
	require.Equal(t, "Weekend Rate", breakdown.AppliedRules[0].Name)
	require.InDelta(t, 15.0, breakdown.AppliedRules[0].Effect, 1e-9)
	require.Equal(t, "Peak Hours", breakdown.AppliedRules[1].Name)
	require.InDelta(t, 22.5, breakdown.AppliedRules[1].Effect, 1e-9)
	require.InDelta(t, 97.5, breakdown.Subtotal, 1e-9)
	require.InDelta(t, 97.5, breakdown.Total, 1e-9)
}

func TestCalculateInvariantUnderInputOrder(t *testing.T) {
	forward := []pricing.PricingRule{weekendRule(1), peakRule(2)}
	reversed := []pricing.PricingRule{peakRule(2), weekendRule(1)}

	a, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "19:00", "20:00", forward, nil, nil)
	require.NoError(t, err)
	b, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "19:00", "20:00", reversed, nil, nil)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestCalculateSensitiveToPriorityWithFlatFee(t *testing.T) {
	// A flat fee before a multiplier is itself multiplied; after, it is not.
	flat := pricing.PricingRule{
		Name: "Indoor Premium", RuleType: pricing.RuleTypeCourtType,
		Multiplier: 1, FlatFee: 10, AppliesToCourtType: strPtr("indoor"),
		IsActive: true, Priority: 1,
	}
	weekend := weekendRule(2)

	feeFirst, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "10:00", "11:00",
		[]pricing.PricingRule{flat, weekend}, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 87.5, feeFirst.Subtotal, 1e-9) // (60+10)*1.25

	flat.Priority = 3
	feeLast, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "10:00", "11:00",
		[]pricing.PricingRule{flat, weekend}, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 85.0, feeLast.Subtotal, 1e-9) // 60*1.25+10
}

func TestCalculateRuleApplicability(t *testing.T) {
	outdoor := courts.Court{Name: "Court 3", CourtType: courts.CourtTypeOutdoor, BaseHourlyRate: 40, IsActive: true}
	rules := []pricing.PricingRule{
		{Name: "Base", RuleType: pricing.RuleTypeBase, Multiplier: 2, IsActive: true, Priority: 0},
		{Name: "Indoor Premium", RuleType: pricing.RuleTypeCourtType, Multiplier: 1.5, AppliesToCourtType: strPtr("indoor"), IsActive: true, Priority: 1},
		{Name: "Inactive Weekend", RuleType: pricing.RuleTypeWeekend, Multiplier: 3, IsActive: false, Priority: 2},
		peakRule(3),
	}

	// Wednesday 10:00 on an outdoor court: nothing applies. Base rules
	// never apply as adjustments and inactive rules are filtered out.
	breakdown, err := pricing.Calculate(outdoor, date("2026-09-02"), "10:00", "11:00", rules, nil, nil)
	require.NoError(t, err)
	require.Empty(t, breakdown.AppliedRules)
	require.Equal(t, 40.0, breakdown.Subtotal)
}

func TestCalculatePeakBoundaries(t *testing.T) {
	rules := []pricing.PricingRule{peakRule(1)}
	court := indoorCourt(60)
	weekday := date("2026-09-02")

	at17, err := pricing.Calculate(court, weekday, "17:00", "18:00", rules, nil, nil)
	require.NoError(t, err)
	require.Empty(t, at17.AppliedRules)

	at18, err := pricing.Calculate(court, weekday, "18:00", "19:00", rules, nil, nil)
	require.NoError(t, err)
	require.Len(t, at18.AppliedRules, 1)

	at20, err := pricing.Calculate(court, weekday, "20:00", "21:00", rules, nil, nil)
	require.NoError(t, err)
	require.Len(t, at20.AppliedRules, 1)

	at21, err := pricing.Calculate(court, weekday, "21:00", "22:00", rules, nil, nil)
	require.NoError(t, err)
	require.Empty(t, at21.AppliedRules)
}

func TestCalculateEquipmentAndCoach(t *testing.T) {
	racket := equipment.Equipment{Name: "Racket", EquipmentType: equipment.EquipmentTypeRacket, TotalQuantity: 10, HourlyRate: 5, IsActive: true}
	coach := &coaches.Coach{Name: "Coach Sarah", HourlyRate: 35, IsActive: true}

	// Two hours, two rackets: equipment 5*2*2=20, coach 35*2=70.
	breakdown, err := pricing.Calculate(indoorCourt(60), date("2026-09-02"), "10:00", "12:00",
		nil, []pricing.EquipmentLine{{Equipment: racket, Quantity: 2}}, coach)
	require.NoError(t, err)

	require.Equal(t, 20.0, breakdown.EquipmentTotal)
	require.Equal(t, 70.0, breakdown.CoachFee)
	require.Equal(t, 120.0, breakdown.Subtotal)
	require.Equal(t, 210.0, breakdown.Total)
}

func TestCalculateRulesIgnoreEquipmentAndCoach(t *testing.T) {
	racket := equipment.Equipment{Name: "Racket", HourlyRate: 5, TotalQuantity: 10}
	coach := &coaches.Coach{Name: "Coach", HourlyRate: 35, IsActive: true}
	rules := []pricing.PricingRule{weekendRule(1)}

	breakdown, err := pricing.Calculate(indoorCourt(60), date("2026-09-05"), "10:00", "11:00",
		rules, []pricing.EquipmentLine{{Equipment: racket, Quantity: 1}}, coach)
	require.NoError(t, err)

	require.InDelta(t, 75.0, breakdown.Subtotal, 1e-9)
	require.Equal(t, 5.0, breakdown.EquipmentTotal)
	require.Equal(t, 35.0, breakdown.CoachFee)
	require.InDelta(t, 115.0, breakdown.Total, 1e-9)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	court := indoorCourt(60)

	_, err := pricing.Calculate(court, date("2026-09-02"), "12:00", "10:00", nil, nil, nil)
	require.ErrorIs(t, err, pricing.ErrNonPositiveDuration)

	_, err = pricing.Calculate(court, date("2026-09-02"), "10:00", "10:00", nil, nil, nil)
	require.ErrorIs(t, err, pricing.ErrNonPositiveDuration)

	_, err = pricing.Calculate(court, date("2026-09-02"), "bogus", "11:00", nil, nil, nil)
	require.ErrorIs(t, err, pricing.ErrMalformedTime)

	_, err = pricing.Calculate(court, date("2026-09-02"), "10:00", "25:00", nil, nil, nil)
	require.ErrorIs(t, err, pricing.ErrMalformedTime)
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "$97.50", pricing.FormatPrice(97.5))
	require.Equal(t, "$0.00", pricing.FormatPrice(0))
	require.Equal(t, "$1234.00", pricing.FormatPrice(1234))
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "6:00 AM", pricing.FormatTime("06:00"))
	require.Equal(t, "12:00 PM", pricing.FormatTime("12:00"))
	require.Equal(t, "12:30 AM", pricing.FormatTime("00:30"))
	require.Equal(t, "7:00 PM", pricing.FormatTime("19:00"))
}
