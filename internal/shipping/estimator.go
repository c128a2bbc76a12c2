package shipping

import "strings"

// Shipping quoting is a pure function over static zone tables; all amounts
// are integer minor currency units.

type zone struct {
	name        string
	rateCents   int
	description string
}

var (
	zoneLocal    = zone{name: "Local", rateCents: 500, description: "Same state shipping"}
	zoneRegional = zone{name: "Regional", rateCents: 1000, description: "Neighboring states"}
	zoneNational = zone{name: "National", rateCents: 1500, description: "Rest of US"}
)

var zonesByState = buildZoneIndex()

func buildZoneIndex() map[string]zone {
	index := map[string]zone{}
	add := func(z zone, states ...string) {
		for _, s := range states {
			index[s] = z
		}
	}
	add(zoneLocal, "CA", "NV", "AZ")
	add(zoneRegional, "OR", "WA", "ID", "UT", "NM", "TX", "CO", "WY", "MT")
	add(zoneNational,
		"AL", "AK", "AR", "CT", "DE", "FL", "GA", "HI", "IL", "IN", "IA", "KS", "KY",
		"LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "NE", "NH", "NJ", "NY", "NC",
		"ND", "OH", "OK", "PA", "RI", "SC", "SD", "TN", "VT", "VA", "WV", "WI",
	)
	return index
}

// Weight multiplier in tenths, so the cost stays in exact integer cents:
// up to 1 lb x1.0, up to 3 lbs x1.5, heavier x2.0.
const (
	lightLimitOz  = 16
	mediumLimitOz = 48

	multLightTenths  = 10
	multMediumTenths = 15
	multHeavyTenths  = 20
)

// Quote is a shipping estimate for one basket/destination pair. A zero
// quote with an empty Zone means the destination is unknown.
type Quote struct {
	CostCents   int
	Zone        string
	Description string
	WeightOz    int
}

// Estimate quotes shipping for the given basket weight and destination
// state code. Unknown or malformed states yield the zero quote.
func Estimate(weightOz int, state string) Quote {
	code := strings.ToUpper(strings.TrimSpace(state))
	if len(code) != 2 {
		return Quote{WeightOz: weightOz}
	}

	z, ok := zonesByState[code]
	if !ok {
		return Quote{WeightOz: weightOz}
	}

	mult := multLightTenths
	switch {
	case weightOz > mediumLimitOz:
		mult = multHeavyTenths
	case weightOz > lightLimitOz:
		mult = multMediumTenths
	}

	return Quote{
		CostCents:   z.rateCents * mult / 10,
		Zone:        z.name,
		Description: z.description,
		WeightOz:    weightOz,
	}
}
