// Package recommend implements the rule-based recommendation engine: a
// stateless, stable filter over the car collection.  There is no scoring
// or ranking; cars keep their original relative order and an empty result
// is a valid answer.
package recommend

import (
	"errors"

	"github.com/carmate/carmate/internal/model"
)

// Usage is the buyer's primary usage category.  It is a closed enum; the
// empty string and UsageAny both mean "no usage filter".
type Usage string

const (
	UsageAny    Usage = "any"
	UsageDaily  Usage = "daily"
	UsageFamily Usage = "family"
	UsageLuxury Usage = "luxury"
)

// luxuryPriceFloor is the sale price a car must exceed to count as a
// luxury recommendation, in currency subunits.
const luxuryPriceFloor = 2000000

// Category allow-lists matched against a car's body type or fuel type.
// "Electric" appears under daily because electric cars are pitched as
// commuter vehicles regardless of body type.
var (
	dailyKinds  = []string{"Hatchback", "Sedan", "Electric"}
	familyKinds = []string{"SUV", "MUV"}
)

// ErrInvalidUsage is returned by ParseUsage for values outside the closed
// set.  Handlers should translate this into an HTTP 400.
var ErrInvalidUsage = errors.New("invalid usage category")

// ParseUsage validates a raw usage string.  The empty string is accepted
// and treated as UsageAny so that clients may omit the field entirely.
func ParseUsage(s string) (Usage, error) {
	switch Usage(s) {
	case "", UsageAny:
		return UsageAny, nil
	case UsageDaily, UsageFamily, UsageLuxury:
		return Usage(s), nil
	}
	return "", ErrInvalidUsage
}

// Criteria is the buyer's search input.  A nil Budget means no price
// ceiling, which is how a JSON null or absent budget field decodes.
type Criteria struct {
	Budget *float64
	Usage  Usage
}

// Recommend filters cars down to the ones matching the criteria:
//
//  1. only cars flagged for sale are considered;
//  2. with a budget, only cars whose sale price is within it;
//  3. with a usage other than "any", only cars matching that category's
//     rule (luxury is a price floor, daily and family are allow-lists
//     over body type and fuel type).
//
// The filter is stable and idempotent; the result is always a subset of
// the for-sale cars.
func Recommend(cars []model.Car, crit Criteria) []model.Car {
	out := []model.Car{}
	for _, car := range cars {
		if !car.ForSale {
			continue
		}
		if crit.Budget != nil && car.Price > *crit.Budget {
			continue
		}
		switch crit.Usage {
		case UsageLuxury:
			if car.Price <= luxuryPriceFloor {
				continue
			}
		case UsageDaily:
			if !matchesKind(car, dailyKinds) {
				continue
			}
		case UsageFamily:
			if !matchesKind(car, familyKinds) {
				continue
			}
		}
		out = append(out, car)
	}
	return out
}

// matchesKind reports whether the car's body type or fuel type appears in
// the allow-list.
func matchesKind(car model.Car, kinds []string) bool {
	for _, k := range kinds {
		if car.Type == k || car.Fuel == k {
			return true
		}
	}
	return false
}
