package actor

import "github.com/krumaska/opensurge/sensor"

// Bank holds the seven-sensor geometry for all three pose families,
// precomputed once per actor per §4.1 (rebuilding sensors every frame
// would be wasteful; pose selection is a pure function of state, so the
// three sets are fixed for the actor's lifetime).
type Bank struct {
	sets [3][7]sensor.Sensor
}

func idx(l sensor.Label) int { return int(l) }

// NewBank builds the sensor geometry table from §3, verbatim.
func NewBank() *Bank {
	b := &Bank{}

	normal := [7]sensor.Sensor{
		sensor.NewVertical(sensor.A, -9, 0, 20),
		sensor.NewVertical(sensor.B, 9, 0, 20),
		sensor.NewVertical(sensor.C, -9, -24, 0),
		sensor.NewVertical(sensor.D, 9, -24, 0),
		sensor.NewHorizontal(sensor.M, 4, -10, 0),
		sensor.NewHorizontal(sensor.N, 4, 0, 10),
		sensor.NewVertical(sensor.U, 0, -4, -4),
	}

	airborne := normal
	airborne[idx(sensor.M)] = sensor.NewHorizontal(sensor.M, 0, -11, 0)
	airborne[idx(sensor.N)] = sensor.NewHorizontal(sensor.N, 0, 0, 11)

	jumpRoll := [7]sensor.Sensor{
		sensor.NewVertical(sensor.A, -5, 0, 19),
		sensor.NewVertical(sensor.B, 5, 0, 19),
		sensor.NewVertical(sensor.C, -5, -10, 0),
		sensor.NewVertical(sensor.D, 5, -10, 0),
		sensor.NewHorizontal(sensor.M, 0, -11, 0),
		sensor.NewHorizontal(sensor.N, 0, 0, 11),
		sensor.NewVertical(sensor.U, 0, -4, -4),
	}

	b.sets[PoseNormal] = normal
	b.sets[PoseAirborne] = airborne
	b.sets[PoseJumpRoll] = jumpRoll
	return b
}

// Get returns the sensor for p/l, a value copy so callers may flip
// Enabled locally without mutating the bank.
func (b *Bank) Get(p Pose, l sensor.Label) sensor.Sensor {
	return b.sets[p][idx(l)]
}
