package entities

import (
	"testing"
	"time"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

func TestCalculateEstimatedDelivery_StandardSkipsWeekend(t *testing.T) {
	// Monday + 5 lands on Saturday, which moves 2 days to the next Monday.
	got := CalculateEstimatedDelivery(DeliveryMethodStandard, monday)
	want := monday.AddDate(0, 0, 7)
	if !got.Equal(want) {
		t.Fatalf("standard from Monday = %s, want %s", got, want)
	}
	if got.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", got.Weekday())
	}
}

func TestCalculateEstimatedDelivery_ExpressNoWeekendHit(t *testing.T) {
	got := CalculateEstimatedDelivery(DeliveryMethodExpress, monday)
	want := monday.AddDate(0, 0, 2)
	if !got.Equal(want) || got.Weekday() != time.Wednesday {
		t.Fatalf("express from Monday = %s, want Wednesday %s", got, want)
	}
}

func TestCalculateEstimatedDelivery_SundayMovesOneDay(t *testing.T) {
	// Friday + 2 lands on Sunday, which moves a single day to Monday.
	friday := monday.AddDate(0, 0, 4)
	got := CalculateEstimatedDelivery(DeliveryMethodExpress, friday)
	want := friday.AddDate(0, 0, 3)
	if !got.Equal(want) || got.Weekday() != time.Monday {
		t.Fatalf("express from Friday = %s, want Monday %s", got, want)
	}
}

func TestCalculateEstimatedDelivery_EconomyOffset(t *testing.T) {
	// Monday + 10 lands on Thursday, no adjustment.
	got := CalculateEstimatedDelivery(DeliveryMethodEconomy, monday)
	want := monday.AddDate(0, 0, 10)
	if !got.Equal(want) || got.Weekday() != time.Thursday {
		t.Fatalf("economy from Monday = %s, want %s", got, want)
	}
}

func TestCalculateEstimatedDelivery_SinglePassAdjustment(t *testing.T) {
	// The weekend adjustment is evaluated once on the offset result: Saturday
	// always moves exactly 2 days, never 1 day followed by a re-check.
	thursday := monday.AddDate(0, 0, 3)
	got := CalculateEstimatedDelivery(DeliveryMethodExpress, thursday)
	if got.Weekday() != time.Monday {
		t.Fatalf("Saturday result must move 2 days to Monday, got %s", got.Weekday())
	}
	if want := thursday.AddDate(0, 0, 4); !got.Equal(want) {
		t.Fatalf("express from Thursday = %s, want %s", got, want)
	}
}

func TestCalculateEstimatedDelivery_UnknownMethodFallsBack(t *testing.T) {
	got := CalculateEstimatedDelivery("drone", monday)
	want := CalculateEstimatedDelivery(DeliveryMethodStandard, monday)
	if !got.Equal(want) {
		t.Fatalf("unknown method = %s, want standard %s", got, want)
	}
}
