package game

import (
	"image/color"
	"math"
)

const (
	// npcArrivalRadius is how close an NPC must get before advancing to
	// the next waypoint
	npcArrivalRadius = 60.0

	// npcThrottle scales NPC forward acceleration; NPCs never brake
	npcThrottle = 0.72

	// npcTurnGain converts handling into the NPC turn rate in rad/s
	npcTurnGain = 2.0
)

// NPC is the autonomous agent. It seeks the current target waypoint,
// advancing through the cyclic route on arrival.
type NPC struct {
	Car
}

// NewNPC creates an opponent at a start offset determined by its index
// in the grid. The stats copy is scaled by the difficulty tier and
// tinted so opponents are distinguishable from the player.
func NewNPC(trk *TrackConfig, base VehicleStats, scale float64, index int) *NPC {
	stats := base
	stats.MaxSpeed *= scale
	stats.Accel *= scale
	stats.Handling *= scale
	stats.Color = tintColor(stats.Color, 40)

	sx := trk.StartX - 30 - float64(index)*18
	sy := trk.StartY + 40 + float64(index)*28

	return &NPC{Car: NewCar(sx, sy, stats)}
}

// Body exposes the kinematics unit
func (n *NPC) Body() *Car {
	return &n.Car
}

// BoostMultiplier is the NPC boosted max-speed scale
func (n *NPC) BoostMultiplier() float64 {
	return NPCBoostMultiplier
}

// Update seeks the current target waypoint. The frame of arrival both
// advances the target and steers toward the new one. The heading turns
// at handling*2.0 rad/s, clamped so it never overshoots the desired
// angle within a single step.
func (n *NPC) Update(dt float64, trk *TrackConfig) {
	if len(trk.Waypoints) == 0 {
		return
	}

	target := trk.Waypoints[n.WaypointIndex%len(trk.Waypoints)]
	dx := target.X - n.X
	dy := target.Y - n.Y

	if math.Hypot(dx, dy) < npcArrivalRadius {
		n.WaypointIndex++
		target = trk.Waypoints[n.WaypointIndex%len(trk.Waypoints)]
		dx = target.X - n.X
		dy = target.Y - n.Y
	}

	desired := math.Atan2(dy, dx)
	diff := normalizeAngle(desired - n.Angle)
	maxTurn := n.Stats.Handling * npcTurnGain * dt
	n.Angle += clamp(diff, -maxTurn, maxTurn)

	n.accelerate(npcThrottle, dt)

	n.step(dt, trk, NPCBoostMultiplier)
}

// tintColor darkens a color by amount per channel, clamping at zero
func tintColor(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v, d uint8) uint8 {
		if v < d {
			return 0
		}
		return v - d
	}
	return color.RGBA{sub(c.R, amount), sub(c.G, amount), sub(c.B, amount), c.A}
}
