package latency

import (
	"math"
	"math/rand"
	"time"
)

const (
	earthRadiusKm = 6371

	// DefaultJitter is the jitter fraction for simulated connections and
	// history base values.
	DefaultJitter = 0.20
	// LiveJitter is the tighter fraction used for single-point live
	// estimates served over the API.
	LiveJitter = 0.15

	// MinLatencyMs is the floor applied to every estimate.
	MinLatencyMs = 5
)

// HaversineKm returns the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Estimator derives latency estimates from geographic distance.
// Every call draws fresh jitter, so repeated estimates for the same pair
// vary the way a real path would. Safe for concurrent use; jitter comes
// from the package-level random source.
type Estimator struct {
	jitter float64
}

// NewEstimator creates an Estimator with the given jitter fraction.
// Non-positive values fall back to DefaultJitter.
func NewEstimator(jitter float64) *Estimator {
	if jitter <= 0 {
		jitter = DefaultJitter
	}
	return &Estimator{jitter: jitter}
}

// BaseLatency returns the deterministic estimate before jitter:
// roughly 5ms per 1000km on top of a 10ms base.
func (e *Estimator) BaseLatency(from, to Site) float64 {
	distance := HaversineKm(from.Lat(), from.Lon(), to.Lat(), to.Lon())
	return 10 + (distance/1000)*5
}

// Estimate returns a jittered latency estimate in milliseconds,
// never below MinLatencyMs.
func (e *Estimator) Estimate(from, to Site) int {
	base := e.BaseLatency(from, to)
	variation := base * e.jitter * (rand.Float64()*2 - 1)

	ms := int(math.Round(base + variation))
	if ms < MinLatencyMs {
		ms = MinLatencyMs
	}
	return ms
}

// EstimateData wraps Estimate in a timestamped Data record.
func (e *Estimator) EstimateData(from, to Site) Data {
	return Data{
		From:      from.SiteID(),
		To:        to.SiteID(),
		Latency:   e.Estimate(from, to),
		Timestamp: time.Now().UnixMilli(),
		Source:    SourceCalculated,
	}
}
