package latency

import "math"

// Proximity thresholds in planar degree-space. These are deliberate
// rough proxies for "same or nearby continent", not great-circle
// distances; the planar metric is part of the topology contract and
// produces different connectivity near the poles and the date line
// than a geodesic would.
const (
	exchangeRegionDegrees   = 20
	exchangeExchangeDegrees = 30
)

// DegreeDistance is the planar Euclidean distance between two sites in
// (latitude, longitude) degree-space.
func DegreeDistance(a, b Site) float64 {
	dLat := a.Lat() - b.Lat()
	dLon := a.Lon() - b.Lon()
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// SelectPairs decides which site pairs are visualized: every
// exchange-region pair within exchangeRegionDegrees, and every unordered
// exchange-exchange pair within exchangeExchangeDegrees. Region-region
// pairs are never generated; only exchange-anchored connections are
// shown. No self-pairs or duplicate unordered pairs are produced.
func SelectPairs(exchanges []Exchange, regions []CloudRegion) []Pair {
	var pairs []Pair

	for _, ex := range exchanges {
		for _, rg := range regions {
			if DegreeDistance(ex, rg) < exchangeRegionDegrees {
				pairs = append(pairs, Pair{From: ex, To: rg})
			}
		}
	}

	for i := 0; i < len(exchanges); i++ {
		for j := i + 1; j < len(exchanges); j++ {
			if DegreeDistance(exchanges[i], exchanges[j]) < exchangeExchangeDegrees {
				pairs = append(pairs, Pair{From: exchanges[i], To: exchanges[j]})
			}
		}
	}

	return pairs
}
