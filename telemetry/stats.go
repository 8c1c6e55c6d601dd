package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Ground speed distribution, sampled every tick the actor was grounded.
	GspMean float64 `csv:"gsp_mean"`
	GspStd  float64 `csv:"gsp_std"`
	GspP10  float64 `csv:"gsp_p10"`
	GspP50  float64 `csv:"gsp_p50"`
	GspP90  float64 `csv:"gsp_p90"`

	// Airborne fraction: ticks spent midair over total ticks in the window.
	AirborneTicks int     `csv:"airborne_ticks"`
	GroundedTicks int     `csv:"grounded_ticks"`
	AirborneFrac  float64 `csv:"airborne_frac"`

	// Discrete events during the window.
	Jumps      int `csv:"jumps"`
	Rolls      int `csv:"rolls"`
	Landings   int `csv:"landings"`
	WallHits   int `csv:"wall_hits"`
	LedgeTicks int `csv:"ledge_ticks"`

	// Net horizontal distance covered, in pixels.
	DistanceX float64 `csv:"distance_x"`
}

// Percentile calculates the p-th percentile of an unsorted slice,
// interpolating linearly between the two nearest ranks.
// p should be in [0, 1]. Returns 0 if the slice is empty.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	pos := p * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// ComputeSpeedStats calculates mean, standard deviation, and percentiles
// from a window's ground-speed samples.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.MeanStdDev(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("gsp_mean", s.GspMean),
		slog.Float64("gsp_std", s.GspStd),
		slog.Float64("gsp_p10", s.GspP10),
		slog.Float64("gsp_p50", s.GspP50),
		slog.Float64("gsp_p90", s.GspP90),
		slog.Int("airborne_ticks", s.AirborneTicks),
		slog.Int("grounded_ticks", s.GroundedTicks),
		slog.Float64("airborne_frac", s.AirborneFrac),
		slog.Int("jumps", s.Jumps),
		slog.Int("rolls", s.Rolls),
		slog.Int("landings", s.Landings),
		slog.Int("wall_hits", s.WallHits),
		slog.Int("ledge_ticks", s.LedgeTicks),
		slog.Float64("distance_x", s.DistanceX),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"gsp_mean", s.GspMean,
		"gsp_std", s.GspStd,
		"gsp_p10", s.GspP10,
		"gsp_p50", s.GspP50,
		"gsp_p90", s.GspP90,
		"airborne_frac", s.AirborneFrac,
		"jumps", s.Jumps,
		"rolls", s.Rolls,
		"landings", s.Landings,
		"wall_hits", s.WallHits,
		"ledge_ticks", s.LedgeTicks,
		"distance_x", s.DistanceX,
	)
}
