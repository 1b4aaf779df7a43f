package latency

import "testing"

func TestDegreeDistancePlanar(t *testing.T) {
	a := Exchange{ID: "a", Latitude: 3, Longitude: 0}
	b := Exchange{ID: "b", Latitude: 0, Longitude: 4}

	// Planar metric, not great-circle: 3-4-5 triangle in degree-space.
	if d := DegreeDistance(a, b); d != 5 {
		t.Errorf("DegreeDistance = %f, want 5", d)
	}
}

func TestSelectPairsIdenticalCoordinates(t *testing.T) {
	pairs := SelectPairs([]Exchange{singaporeExchange}, []CloudRegion{singaporeRegion})

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].From.SiteID() != singaporeExchange.ID || pairs[0].To.SiteID() != singaporeRegion.ID {
		t.Errorf("unexpected pair %s -> %s", pairs[0].From.SiteID(), pairs[0].To.SiteID())
	}
}

func TestSelectPairsFarApart(t *testing.T) {
	exchanges := []Exchange{
		{ID: "x1", Latitude: 0, Longitude: 0},
		{ID: "x2", Latitude: 40, Longitude: 100},
	}
	regions := []CloudRegion{
		{ID: "r1", Latitude: -50, Longitude: -150},
	}

	if pairs := SelectPairs(exchanges, regions); len(pairs) != 0 {
		t.Errorf("got %d pairs for far-apart sites, want 0", len(pairs))
	}
}

func TestSelectPairsThresholds(t *testing.T) {
	// 25 degrees apart on one axis: beyond the exchange-region
	// threshold (20) but inside the exchange-exchange one (30).
	exchanges := []Exchange{
		{ID: "x1", Latitude: 0, Longitude: 0},
		{ID: "x2", Latitude: 0, Longitude: 25},
	}
	regions := []CloudRegion{
		{ID: "r1", Latitude: 0, Longitude: 25},
	}

	pairs := SelectPairs(exchanges, regions)

	var exRegion, exEx int
	for _, p := range pairs {
		switch p.To.(type) {
		case CloudRegion:
			exRegion++
		case Exchange:
			exEx++
		}
	}

	// x2-r1 are colocated; x1-r1 is too far.
	if exRegion != 1 {
		t.Errorf("got %d exchange-region pairs, want 1", exRegion)
	}
	if exEx != 1 {
		t.Errorf("got %d exchange-exchange pairs, want 1", exEx)
	}
}

func TestSelectPairsNoSelfOrDuplicatePairs(t *testing.T) {
	pairs := SelectPairs(Exchanges(), CloudRegions())

	seen := make(map[string]bool)
	for _, p := range pairs {
		from, to := p.From.SiteID(), p.To.SiteID()
		if from == to {
			t.Fatalf("self-pair produced: %s", from)
		}

		key := from + "|" + to
		if _, isExchange := p.To.(Exchange); isExchange {
			// Exchange-exchange pairs are unordered.
			if to < from {
				key = to + "|" + from
			}
		}
		if seen[key] {
			t.Fatalf("duplicate pair produced: %s", key)
		}
		seen[key] = true
	}
}

func TestSelectPairsNeverRegionToRegion(t *testing.T) {
	pairs := SelectPairs(Exchanges(), CloudRegions())
	for _, p := range pairs {
		if _, ok := p.From.(CloudRegion); ok {
			t.Fatalf("region-anchored pair produced: %s -> %s", p.From.SiteID(), p.To.SiteID())
		}
	}
}
