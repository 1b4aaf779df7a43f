package latency

import "math"

// Range buckets a latency value for color-coding in the UI.
type Range string

const (
	RangeLow    Range = "low"    // < 50ms
	RangeMedium Range = "medium" // 50-100ms
	RangeHigh   Range = "high"   // >= 100ms
)

// RangeOf classifies a latency value.
func RangeOf(latencyMs int) Range {
	switch {
	case latencyMs < 50:
		return RangeLow
	case latencyMs < 100:
		return RangeMedium
	default:
		return RangeHigh
	}
}

// ColorOf returns the hex color the presentation layer uses for a
// latency value.
func ColorOf(latencyMs int) string {
	switch RangeOf(latencyMs) {
	case RangeLow:
		return "#10b981"
	case RangeMedium:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// Metrics summarizes a resolved connection set.
type Metrics struct {
	ActiveConnections int `json:"activeConnections"`
	AverageLatency    int `json:"avgLatency"`
	LowCount          int `json:"lowLatencyCount"`
	MediumCount       int `json:"mediumLatencyCount"`
	HighCount         int `json:"highLatencyCount"`
}

// ComputeMetrics reduces a connection set into aggregate statistics.
func ComputeMetrics(conns []Connection) Metrics {
	m := Metrics{ActiveConnections: len(conns)}
	if len(conns) == 0 {
		return m
	}

	sum := 0
	for _, c := range conns {
		sum += c.Latency
		switch RangeOf(c.Latency) {
		case RangeLow:
			m.LowCount++
		case RangeMedium:
			m.MediumCount++
		default:
			m.HighCount++
		}
	}
	m.AverageLatency = int(math.Round(float64(sum) / float64(len(conns))))
	return m
}

// HistorySummary holds the reduced view of a synthetic series.
type HistorySummary struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"avg"`
}

// SummarizeHistory reduces a series to min/max/average latency.
func SummarizeHistory(points []HistoricalPoint) HistorySummary {
	if len(points) == 0 {
		return HistorySummary{}
	}

	s := HistorySummary{Min: points[0].Latency, Max: points[0].Latency}
	sum := 0
	for _, p := range points {
		sum += p.Latency
		if p.Latency < s.Min {
			s.Min = p.Latency
		}
		if p.Latency > s.Max {
			s.Max = p.Latency
		}
	}
	s.Average = int(math.Round(float64(sum) / float64(len(points))))
	return s
}
