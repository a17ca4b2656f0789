package game

import (
	"math"
	"testing"
)

func testTrack() TrackConfig {
	return GetTrackConfig(TrackCityCircuit)
}

func TestClampSpeedPreservesDirection(t *testing.T) {
	c := NewCar(500, 340, GetVehicleStats(VehicleRoadster))
	c.VX = 300
	c.VY = 400

	c.clampSpeed(PlayerBoostMultiplier)

	if got := c.Speed(); math.Abs(got-c.Stats.MaxSpeed) > 1e-9 {
		t.Fatalf("speed after clamp = %v, want %v", got, c.Stats.MaxSpeed)
	}
	// 3:4 ratio must survive the rescale exactly
	if math.Abs(c.VX/c.VY-0.75) > 1e-9 {
		t.Fatalf("direction changed by clamp: vx=%v vy=%v", c.VX, c.VY)
	}
}

func TestEffectiveMaxSpeedWithBoost(t *testing.T) {
	c := NewCar(0, 0, GetVehicleStats(VehicleRoadster))

	if got := c.EffectiveMaxSpeed(PlayerBoostMultiplier); got != c.Stats.MaxSpeed {
		t.Fatalf("unboosted max = %v, want %v", got, c.Stats.MaxSpeed)
	}

	c.ActivateBoost(850)
	want := c.Stats.MaxSpeed * PlayerBoostMultiplier
	if got := c.EffectiveMaxSpeed(PlayerBoostMultiplier); got != want {
		t.Fatalf("boosted max = %v, want %v", got, want)
	}
}

func TestBoostTimerExpires(t *testing.T) {
	trk := testTrack()
	c := NewCar(500, 340, GetVehicleStats(VehicleRoadster))
	c.ActivateBoost(850)

	for i := 0; i < 20; i++ {
		c.step(0.05, &trk, PlayerBoostMultiplier)
	}

	if c.Boosting() {
		t.Fatalf("boost still active after 1000ms, BoostMs=%v", c.BoostMs)
	}
	if got := c.EffectiveMaxSpeed(PlayerBoostMultiplier); got != c.Stats.MaxSpeed {
		t.Fatalf("max speed after boost expiry = %v, want %v", got, c.Stats.MaxSpeed)
	}
}

func TestFrictionIsExponentialDecay(t *testing.T) {
	trk := testTrack()
	c := NewCar(500, 340, GetVehicleStats(VehicleRoadster))
	c.VX = 100

	c.applyFriction(&trk)
	if math.Abs(c.VX-100*trk.TerrainFriction) > 1e-9 {
		t.Fatalf("vx after one friction step = %v, want %v", c.VX, 100*trk.TerrainFriction)
	}
	c.applyFriction(&trk)
	want := 100 * trk.TerrainFriction * trk.TerrainFriction
	if math.Abs(c.VX-want) > 1e-9 {
		t.Fatalf("vx after two friction steps = %v, want %v", c.VX, want)
	}
}

func TestClampToRoadDampsEveryFrameAtBound(t *testing.T) {
	trk := testTrack()
	c := NewCar(0, 340, GetVehicleStats(VehicleRoadster))
	c.VX = -100

	left := trk.RoadBounds.X + c.W/2

	c.clampToRoad(&trk)
	if c.X != left {
		t.Fatalf("x after clamp = %v, want %v", c.X, left)
	}
	if math.Abs(c.VX - -60) > 1e-9 {
		t.Fatalf("vx after first boundary frame = %v, want -60", c.VX)
	}

	// Still pressed against the bound next frame; damping must repeat
	c.X = left - 1
	c.clampToRoad(&trk)
	if math.Abs(c.VX - -36) > 1e-9 {
		t.Fatalf("vx after second boundary frame = %v, want -36", c.VX)
	}
}

func TestClampToRoadDampsOnlyHitAxis(t *testing.T) {
	trk := testTrack()
	c := NewCar(0, 340, GetVehicleStats(VehicleRoadster))
	c.VX = -100
	c.VY = 50

	c.clampToRoad(&trk)

	if math.Abs(c.VX - -60) > 1e-9 {
		t.Fatalf("vx = %v, want -60", c.VX)
	}
	if c.VY != 50 {
		t.Fatalf("vy damped without hitting a vertical bound: %v", c.VY)
	}
}

func TestBumpBackOpposesVelocity(t *testing.T) {
	c := NewCar(500, 340, GetVehicleStats(VehicleRoadster))
	c.VX = 120

	c.BumpBack()

	if math.Abs(c.X-490) > 1e-9 || c.Y != 340 {
		t.Fatalf("position after bump = (%v, %v), want (490, 340)", c.X, c.Y)
	}
}

func TestBumpBackStationaryUsesFixedDirection(t *testing.T) {
	c := NewCar(500, 340, GetVehicleStats(VehicleRoadster))

	c.BumpBack()

	if math.IsNaN(c.X) || math.IsNaN(c.Y) {
		t.Fatalf("bump-back produced NaN: (%v, %v)", c.X, c.Y)
	}
	if c.X != 490 || c.Y != 340 {
		t.Fatalf("stationary bump = (%v, %v), want (490, 340)", c.X, c.Y)
	}
}

// Drives a player flat out with constant turning for a while and checks
// the two per-frame invariants: speed never exceeds the effective max
// and the box never leaves the road.
func TestKinematicsInvariants(t *testing.T) {
	trk := testTrack()
	input := NewInputState()
	input.Press(DirUp)
	input.Press(DirRight)
	p := NewPlayer(&trk, GetVehicleStats(VehicleHyper), input)

	road := trk.RoadBounds
	for i := 0; i < 2000; i++ {
		p.Update(0.016, &trk)

		maxS := p.EffectiveMaxSpeed(PlayerBoostMultiplier)
		if s := p.Speed(); s > maxS+1e-6 {
			t.Fatalf("frame %d: speed %v exceeds effective max %v", i, s, maxS)
		}
		if p.X < road.X+p.W/2-1e-6 || p.X > road.X+road.W-p.W/2+1e-6 ||
			p.Y < road.Y+p.H/2-1e-6 || p.Y > road.Y+road.H-p.H/2+1e-6 {
			t.Fatalf("frame %d: position (%v, %v) outside road", i, p.X, p.Y)
		}
	}
}
