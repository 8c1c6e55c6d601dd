package telemetry

// Collector accumulates per-tick actor samples within a time window and
// produces a WindowStats when the window closes.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32
	startX          float32
	lastX           float32
	haveStartX      bool

	gspSamples []float64

	airborneTicks int
	groundedTicks int
	jumps         int
	rolls         int
	landings      int
	wallHits      int
	ledgeTicks    int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick (used for tick-to-time conversion).
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick folds one tick's actor state into the current window.
func (c *Collector) RecordTick(x float32, gsp float32, midair bool, onLedge bool) {
	if !c.haveStartX {
		c.startX = x
		c.haveStartX = true
	}
	c.lastX = x

	if midair {
		c.airborneTicks++
	} else {
		c.groundedTicks++
		c.gspSamples = append(c.gspSamples, float64(gsp))
	}
	if onLedge {
		c.ledgeTicks++
	}
}

// RecordJump records a jump takeoff.
func (c *Collector) RecordJump() { c.jumps++ }

// RecordRoll records a roll entry.
func (c *Collector) RecordRoll() { c.rolls++ }

// RecordLanding records a ground-reacquisition event.
func (c *Collector) RecordLanding() { c.landings++ }

// RecordWallHit records a wall/ceiling collision response.
func (c *Collector) RecordWallHit() { c.wallHits++ }

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32) WindowStats {
	mean, std, p10, p50, p90 := ComputeSpeedStats(c.gspSamples)

	total := c.airborneTicks + c.groundedTicks
	var airborneFrac float64
	if total > 0 {
		airborneFrac = float64(c.airborneTicks) / float64(total)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		GspMean: mean,
		GspStd:  std,
		GspP10:  p10,
		GspP50:  p50,
		GspP90:  p90,

		AirborneTicks: c.airborneTicks,
		GroundedTicks: c.groundedTicks,
		AirborneFrac:  airborneFrac,

		Jumps:      c.jumps,
		Rolls:      c.rolls,
		Landings:   c.landings,
		WallHits:   c.wallHits,
		LedgeTicks: c.ledgeTicks,

		DistanceX: float64(c.lastX - c.startX),
	}

	c.windowStartTick = currentTick
	c.startX = c.lastX
	c.gspSamples = c.gspSamples[:0]
	c.airborneTicks = 0
	c.groundedTicks = 0
	c.jumps = 0
	c.rolls = 0
	c.landings = 0
	c.wallHits = 0
	c.ledgeTicks = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
