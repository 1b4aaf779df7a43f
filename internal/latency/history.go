package latency

import (
	"math"
	"math/rand"
	"time"
)

// HistoryPoints is the fixed cardinality of every synthetic series.
// Only the spacing between points varies with the requested window.
const HistoryPoints = 100

// SynthesizeHistory produces a synthetic latency time series of exactly
// HistoryPoints samples spanning the given window and ending at now.
// Each sample is the base latency plus an hourly sine term (simulating
// diurnal congestion) and uniform noise in [-10, +10], floored at
// MinLatencyMs. Nothing is persisted; every call regenerates the series.
func SynthesizeHistory(baseLatency float64, hours float64, now time.Time) []HistoricalPoint {
	interval := hours * 60 * 60 * 1000 / HistoryPoints
	nowMs := now.UnixMilli()

	points := make([]HistoricalPoint, 0, HistoryPoints)
	for i := 0; i < HistoryPoints; i++ {
		ts := nowMs - int64(float64(HistoryPoints-i)*interval)

		timeVariation := math.Sin(float64(ts)/(1000*60*60)) * 10
		randomVariation := (rand.Float64() - 0.5) * 20

		ms := int(math.Round(baseLatency + timeVariation + randomVariation))
		if ms < MinLatencyMs {
			ms = MinLatencyMs
		}

		points = append(points, HistoricalPoint{Timestamp: ts, Latency: ms})
	}

	return points
}
