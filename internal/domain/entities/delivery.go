package entities

import "time"

// DeliveryMethod selects the carrier service level used to estimate the
// delivery date.

type DeliveryMethod string

const (
	DeliveryMethodStandard DeliveryMethod = "standard"
	DeliveryMethodExpress  DeliveryMethod = "express"
	DeliveryMethodEconomy  DeliveryMethod = "economy"
)

// DefaultDeliveryMethod is applied when the shipping payload does not choose
// one.
const DefaultDeliveryMethod = DeliveryMethodStandard

// deliveryOffsetDays maps each method to a calendar-day offset. Unknown
// methods fall back to the standard offset.
var deliveryOffsetDays = map[DeliveryMethod]int{
	DeliveryMethodStandard: 5,
	DeliveryMethodExpress:  2,
	DeliveryMethodEconomy:  10,
}

// CalculateEstimatedDelivery returns from + the method's calendar-day offset,
// pushed off the weekend: a Sunday result moves 1 day, a Saturday result
// moves 2 days. The adjustment is applied once and not re-evaluated.
func CalculateEstimatedDelivery(method DeliveryMethod, from time.Time) time.Time {
	offset, ok := deliveryOffsetDays[method]
	if !ok {
		offset = deliveryOffsetDays[DeliveryMethodStandard]
	}

	estimated := from.AddDate(0, 0, offset)
	switch estimated.Weekday() {
	case time.Sunday:
		estimated = estimated.AddDate(0, 0, 1)
	case time.Saturday:
		estimated = estimated.AddDate(0, 0, 2)
	}
	return estimated
}

// EstimateDeliveryFromNow is the wall-clock variant used by the shipped
// transition.
func EstimateDeliveryFromNow(method DeliveryMethod) time.Time {
	return CalculateEstimatedDelivery(method, time.Now().UTC())
}
