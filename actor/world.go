package actor

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/krumaska/opensurge/obstacle"
)

// Position mirrors an Actor's world coordinates as an ECS component, so
// rendering/debug systems can query many actors by component rather than
// holding direct *Actor references.
type Position struct {
	X, Y float32
}

// Kinematics mirrors an Actor's velocity/orientation as an ECS component.
type Kinematics struct {
	Xsp, Ysp float32
	Angle    Angle
}

// World hosts many simultaneously simulated actors over one obstacle
// map, each also registered as an ECS entity carrying Position and
// Kinematics, so the demo binary and debug draw can run ark queries
// instead of walking a slice by hand.
type World struct {
	ecs    *ecs.World
	actMap *ecs.Map2[Position, Kinematics]

	actors   []*Actor
	entities []ecs.Entity
}

// NewWorld creates an empty actor world.
func NewWorld() *World {
	w := ecs.NewWorld()
	return &World{
		ecs:    w,
		actMap: ecs.NewMap2[Position, Kinematics](w),
	}
}

// Spawn creates a new actor at (x, y), registers it as an ECS entity,
// and returns it.
func (w *World) Spawn(x, y float32) *Actor {
	a := New(x, y)
	pos := Position{X: x, Y: y}
	kin := Kinematics{Angle: AngleFloor}
	e := w.actMap.NewEntity(&pos, &kin)
	w.actors = append(w.actors, a)
	w.entities = append(w.entities, e)
	return a
}

// Actors returns every actor currently tracked by the world.
func (w *World) Actors() []*Actor { return w.actors }

// Update advances every actor by dt against m, then syncs each entity's
// Position/Kinematics components from its actor's resulting state.
func (w *World) Update(dt float32, m obstacle.Map) {
	for i, a := range w.actors {
		a.Update(dt, m)
		e := w.entities[i]
		p, k := w.actMap.Get(e)
		p.X, p.Y = a.X, a.Y
		k.Xsp, k.Ysp, k.Angle = a.Xsp, a.Ysp, a.Angle
	}
}

// Despawn removes an actor and its entity from the world.
func (w *World) Despawn(target *Actor) {
	for i, a := range w.actors {
		if a == target {
			w.ecs.RemoveEntity(w.entities[i])
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return
		}
	}
}
