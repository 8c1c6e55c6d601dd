package actor

import "math"

// fastSqrt is the classic Quake III inverse-square-root trick followed
// by one Newton-Raphson correction step, the same approximation the
// teacher's sensor code uses on its hot path (systems/sensors.go).
func fastSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	inv := fastInvSqrt(x)
	return x * inv
}

func fastInvSqrt(x float32) float32 {
	const threeHalfs = 1.5
	x2 := x * 0.5
	i := math.Float32bits(x)
	i = 0x5f3759df - (i >> 1)
	y := math.Float32frombits(i)
	y = y * (threeHalfs - (x2 * y * y))
	return y
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func signf(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
