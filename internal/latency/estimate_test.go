package latency

import (
	"math"
	"testing"
)

var (
	singaporeExchange = Exchange{ID: "test-sg", Name: "Test", Latitude: 1.3521, Longitude: 103.8198, CloudProvider: ProviderAWS, Region: "ap-southeast-1", Country: "Singapore"}
	singaporeRegion   = CloudRegion{ID: "test-region-sg", Provider: ProviderAWS, Name: "Singapore", Code: "ap-southeast-1", Latitude: 1.3521, Longitude: 103.8198, Country: "Singapore"}
	virginiaRegion    = CloudRegion{ID: "test-region-us", Provider: ProviderAWS, Name: "N. Virginia", Code: "us-east-1", Latitude: 38.9072, Longitude: -77.0369, Country: "USA"}
)

func TestHaversineSymmetry(t *testing.T) {
	tests := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{1.3521, 103.8198, 38.9072, -77.0369},
		{51.5074, -0.1278, 35.6762, 139.6503},
		{-33.8688, 151.2093, 52.52, 13.405},
	}

	for _, tt := range tests {
		ab := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
		ba := HaversineKm(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("HaversineKm not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestHaversineIdenticalCoordinates(t *testing.T) {
	if d := HaversineKm(1.3521, 103.8198, 1.3521, 103.8198); d != 0 {
		t.Errorf("expected zero distance for identical coordinates, got %f", d)
	}
}

func TestHaversineAntipodal(t *testing.T) {
	// (40, 0) and (-40, 180) are antipodes; distance should be close to
	// half the Earth's circumference.
	d := HaversineKm(40, 0, -40, 180)
	if d < 19000 || d > 20100 {
		t.Errorf("antipodal distance = %f km, want ~20000", d)
	}
}

func TestEstimateFloor(t *testing.T) {
	e := NewEstimator(DefaultJitter)

	coords := []Site{singaporeExchange, singaporeRegion, virginiaRegion}
	for i := 0; i < 200; i++ {
		for _, from := range coords {
			for _, to := range coords {
				if ms := e.Estimate(from, to); ms < MinLatencyMs {
					t.Fatalf("Estimate(%s, %s) = %d, below floor %d", from.SiteID(), to.SiteID(), ms, MinLatencyMs)
				}
			}
		}
	}
}

func TestEstimateIdenticalCoordinates(t *testing.T) {
	e := NewEstimator(DefaultJitter)

	// Zero distance means a 10ms base; with 20% jitter every draw must
	// land in [8, 12] (floored at 5).
	for i := 0; i < 500; i++ {
		ms := e.Estimate(singaporeExchange, singaporeRegion)
		if ms < MinLatencyMs || ms > 12 {
			t.Fatalf("identical-coordinate estimate = %d, want within [5, 12]", ms)
		}
	}
}

func TestEstimateVariesAcrossCalls(t *testing.T) {
	e := NewEstimator(DefaultJitter)

	first := e.Estimate(singaporeExchange, virginiaRegion)
	varies := false
	for i := 0; i < 100; i++ {
		if e.Estimate(singaporeExchange, virginiaRegion) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("expected repeated estimates for the same pair to vary")
	}
}

func TestBaseLatencyAntipodal(t *testing.T) {
	e := NewEstimator(DefaultJitter)

	from := Exchange{ID: "a", Latitude: 40, Longitude: 0}
	to := Exchange{ID: "b", Latitude: -40, Longitude: 180}

	base := e.BaseLatency(from, to)
	if base < 105 || base > 112 {
		t.Errorf("antipodal base latency = %f, want roughly 105-110", base)
	}
}

func TestEstimateDataProvenance(t *testing.T) {
	e := NewEstimator(DefaultJitter)

	data := e.EstimateData(singaporeExchange, virginiaRegion)
	if data.Source != SourceCalculated {
		t.Errorf("estimator data source = %q, want %q", data.Source, SourceCalculated)
	}
	if data.From != singaporeExchange.ID || data.To != virginiaRegion.ID {
		t.Errorf("unexpected endpoints %s -> %s", data.From, data.To)
	}
	if data.Timestamp == 0 {
		t.Error("expected a non-zero timestamp")
	}
}
