package game

import "math"

const (
	// Car bounding box size in world units
	carWidth  = 28.0
	carHeight = 16.0

	// PlayerBoostMultiplier scales the player's max speed while boosted
	PlayerBoostMultiplier = 1.28

	// NPCBoostMultiplier scales an NPC's max speed while boosted
	NPCBoostMultiplier = 1.20

	// bumpBackDistance is the fixed positional correction applied on
	// obstacle contact, independent of dt
	bumpBackDistance = 10.0

	// roadHitDamping scales velocity on each axis that hit a road bound
	roadHitDamping = 0.6
)

// Car is the shared kinematics unit for every agent on the track.
// Position is the box center.
type Car struct {
	X, Y   float64
	VX, VY float64

	// Angle is the heading in radians; 0 points right (east)
	Angle float64

	// Stats is this car's own copy of a vehicle preset
	Stats VehicleStats

	// BoostMs is the remaining boost time in milliseconds
	BoostMs float64

	// W, H is the unrotated bounding box size
	W, H float64

	// WaypointIndex is the seek target for NPCs and the virtual progress
	// index for the player
	WaypointIndex int
}

// Agent is any car-like entity subject to kinematics and collision.
// The two variants supply only their steering policy: input-driven for
// the player, waypoint seek for NPCs.
type Agent interface {
	// Update advances the agent one physics step
	Update(dt float64, trk *TrackConfig)

	// Body exposes the underlying kinematics unit
	Body() *Car

	// BoostMultiplier is the max-speed scale applied while boosting
	BoostMultiplier() float64
}

// NewCar creates a car at the given position with its own stats copy
func NewCar(x, y float64, stats VehicleStats) Car {
	return Car{
		X:     x,
		Y:     y,
		Stats: stats,
		W:     carWidth,
		H:     carHeight,
	}
}

// Rect returns the car's axis-aligned bounding box
func (c *Car) Rect() Rect {
	return Rect{c.X - c.W/2, c.Y - c.H/2, c.W, c.H}
}

// Speed returns the velocity magnitude
func (c *Car) Speed() float64 {
	return math.Hypot(c.VX, c.VY)
}

// Boosting reports whether a boost is currently active
func (c *Car) Boosting() bool {
	return c.BoostMs > 0
}

// ActivateBoost starts (or reinitializes) the boost timer
func (c *Car) ActivateBoost(durationMs float64) {
	c.BoostMs = durationMs
}

// EffectiveMaxSpeed is the speed cap for this step: the preset max,
// scaled up while a boost is active.
func (c *Car) EffectiveMaxSpeed(boostMult float64) float64 {
	if c.Boosting() {
		return c.Stats.MaxSpeed * boostMult
	}
	return c.Stats.MaxSpeed
}

// BumpBack displaces the car a fixed distance opposite its direction of
// travel. A stationary car is pushed along a fixed backward direction so
// the normalization never produces NaN.
func (c *Car) BumpBack() {
	nx, ny := -1.0, 0.0
	if s := c.Speed(); s > 1e-9 {
		nx = -c.VX / s
		ny = -c.VY / s
	}
	c.X += nx * bumpBackDistance
	c.Y += ny * bumpBackDistance
}

// accelerate applies acceleration along the heading, scaled by factor
// (negative for reverse)
func (c *Car) accelerate(factor, dt float64) {
	c.VX += math.Cos(c.Angle) * c.Stats.Accel * factor * dt
	c.VY += math.Sin(c.Angle) * c.Stats.Accel * factor * dt
}

// clampSpeed rescales the velocity vector if it exceeds the effective
// max, preserving direction exactly
func (c *Car) clampSpeed(boostMult float64) {
	maxS := c.EffectiveMaxSpeed(boostMult)
	if s := c.Speed(); s > maxS {
		scale := maxS / s
		c.VX *= scale
		c.VY *= scale
	}
}

// applyFriction bleeds speed off multiplicatively, once per step
func (c *Car) applyFriction(trk *TrackConfig) {
	c.VX *= trk.TerrainFriction
	c.VY *= trk.TerrainFriction
}

// clampToRoad keeps the car's box inside the road bounds. It fires every
// frame the car sits at or past a bound, damping velocity on each axis
// that hit.
func (c *Car) clampToRoad(trk *TrackConfig) {
	r := trk.RoadBounds
	left := r.X + c.W/2
	right := r.X + r.W - c.W/2
	top := r.Y + c.H/2
	bottom := r.Y + r.H - c.H/2

	hitX, hitY := false, false
	if c.X < left {
		c.X = left
		hitX = true
	}
	if c.X > right {
		c.X = right
		hitX = true
	}
	if c.Y < top {
		c.Y = top
		hitY = true
	}
	if c.Y > bottom {
		c.Y = bottom
		hitY = true
	}

	if hitX {
		c.VX *= roadHitDamping
	}
	if hitY {
		c.VY *= roadHitDamping
	}
}

// tickBoost decrements the boost timer by the elapsed milliseconds
func (c *Car) tickBoost(dt float64) {
	if c.BoostMs > 0 {
		c.BoostMs -= dt * 1000
	}
}

// step runs the shared post-steering integration: speed clamp, movement,
// friction, road clamp, boost timer. Variants call it after applying
// their steering and throttle.
func (c *Car) step(dt float64, trk *TrackConfig, boostMult float64) {
	c.clampSpeed(boostMult)
	c.X += c.VX * dt
	c.Y += c.VY * dt
	c.applyFriction(trk)
	c.clampToRoad(trk)
	c.tickBoost(dt)
}
