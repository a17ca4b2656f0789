package game

import "math"

const (
	// reverseFactor scales acceleration when braking/reversing
	reverseFactor = 0.65

	// turnBase and turnSpan shape how turn rate grows with speed
	turnBase = 0.9
	turnSpan = 250.0
	turnGain = 2.2
)

// Player is the input-driven agent. Steering comes from the held
// direction set; a virtual progress index is recomputed every frame for
// placement scoring.
type Player struct {
	Car
	input *InputState
}

// NewPlayer creates the player car at the track start, facing up
func NewPlayer(trk *TrackConfig, stats VehicleStats, input *InputState) *Player {
	p := &Player{
		Car:   NewCar(trk.StartX, trk.StartY, stats),
		input: input,
	}
	p.Angle = -math.Pi / 2
	return p
}

// Body exposes the kinematics unit
func (p *Player) Body() *Car {
	return &p.Car
}

// BoostMultiplier is the player's boosted max-speed scale
func (p *Player) BoostMultiplier() float64 {
	return PlayerBoostMultiplier
}

// Update advances the player one physics step from the held direction
// set. Turn rate scales with current speed, so a stationary car turns
// slower than a fast one.
func (p *Player) Update(dt float64, trk *TrackConfig) {
	speed := p.Speed()
	turn := p.Stats.Handling * (turnBase + math.Min(speed/turnSpan, 1.0)) * turnGain

	if p.input.Held(DirLeft) {
		p.Angle -= turn * dt
	}
	if p.input.Held(DirRight) {
		p.Angle += turn * dt
	}

	if p.input.Held(DirUp) {
		p.accelerate(1.0, dt)
	}
	if p.input.Held(DirDown) {
		p.accelerate(-reverseFactor, dt)
	}

	p.step(dt, trk, PlayerBoostMultiplier)

	p.WaypointIndex = nearestWaypoint(trk.Waypoints, p.X, p.Y)
}

// nearestWaypoint returns the index of the waypoint closest to (x, y) by
// squared distance, ties resolved by first occurrence. Used only as a
// progress proxy for placement, never for steering.
func nearestWaypoint(waypoints []Point, x, y float64) int {
	best := math.MaxFloat64
	idx := 0
	for i, wp := range waypoints {
		dx := wp.X - x
		dy := wp.Y - y
		if d := dx*dx + dy*dy; d < best {
			best = d
			idx = i
		}
	}
	return idx
}
