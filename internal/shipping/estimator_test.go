package shipping

import "testing"

func TestEstimateZones(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		weightOz  int
		state     string
		wantCents int
		wantZone  string
	}{
		{name: "local light", weightOz: 10, state: "CA", wantCents: 500, wantZone: "Local"},
		{name: "local lowercase state", weightOz: 10, state: "nv", wantCents: 500, wantZone: "Local"},
		{name: "regional light", weightOz: 12, state: "TX", wantCents: 1000, wantZone: "Regional"},
		{name: "national light", weightOz: 8, state: "NY", wantCents: 1500, wantZone: "National"},
		{name: "local medium weight", weightOz: 30, state: "CA", wantCents: 750, wantZone: "Local"},
		{name: "national heavy weight", weightOz: 60, state: "FL", wantCents: 3000, wantZone: "National"},
		{name: "boundary one pound stays light", weightOz: 16, state: "CA", wantCents: 500, wantZone: "Local"},
		{name: "boundary three pounds stays medium", weightOz: 48, state: "CA", wantCents: 750, wantZone: "Local"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Estimate(tc.weightOz, tc.state)
			if got.CostCents != tc.wantCents {
				t.Fatalf("cost = %d, want %d", got.CostCents, tc.wantCents)
			}
			if got.Zone != tc.wantZone {
				t.Fatalf("zone = %q, want %q", got.Zone, tc.wantZone)
			}
		})
	}
}

func TestEstimateUnknownDestination(t *testing.T) {
	t.Parallel()

	for _, state := range []string{"", "ZZ", "California", "C"} {
		got := Estimate(20, state)
		if got.CostCents != 0 || got.Zone != "" {
			t.Fatalf("state %q: expected zero quote, got %+v", state, got)
		}
		if got.WeightOz != 20 {
			t.Fatalf("weight must be carried through, got %d", got.WeightOz)
		}
	}
}
