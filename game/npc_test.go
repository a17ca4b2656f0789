package game

import (
	"math"
	"testing"
)

func TestNPCAdvancesWaypointOnArrival(t *testing.T) {
	trk := testTrack()
	npc := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 0)

	// Inside the arrival radius of waypoint 0
	npc.X = trk.Waypoints[0].X + 10
	npc.Y = trk.Waypoints[0].Y

	npc.Update(0.016, &trk)

	if npc.WaypointIndex != 1 {
		t.Fatalf("waypoint index = %d, want 1", npc.WaypointIndex)
	}
}

func TestNPCSteersTowardNewTargetOnArrivalFrame(t *testing.T) {
	trk := testTrack()
	npc := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 0)

	npc.X = trk.Waypoints[0].X
	npc.Y = trk.Waypoints[0].Y
	npc.Angle = 0

	// Waypoint 1 is due east of waypoint 0 on this track, so the very
	// frame of arrival should not turn away from east
	npc.Update(0.016, &trk)

	desired := math.Atan2(trk.Waypoints[1].Y-npc.Y, trk.Waypoints[1].X-npc.X)
	if math.Abs(normalizeAngle(npc.Angle-desired)) > 0.2 {
		t.Fatalf("heading %v not aimed at new target angle %v", npc.Angle, desired)
	}
}

func TestNPCTurnNeverOvershoots(t *testing.T) {
	trk := TrackConfig{
		RoadBounds:      Rect{0, 0, 2000, 2000},
		TerrainFriction: 0.985,
		Waypoints:       []Point{{1000, 1000}},
	}
	npc := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 0)
	npc.X, npc.Y = 1000, 500
	npc.WaypointIndex = 0

	// Tiny misalignment well under one step's turn budget
	desired := math.Atan2(1000-npc.Y, 1000-npc.X)
	npc.Angle = desired + 0.01

	npc.Update(0.016, &trk)

	if math.Abs(normalizeAngle(npc.Angle-desired)) > 1e-9 {
		t.Fatalf("heading %v overshot desired %v", npc.Angle, desired)
	}
}

func TestNPCEmptyWaypointsIsNoOp(t *testing.T) {
	trk := TrackConfig{
		RoadBounds:      Rect{0, 0, 2000, 2000},
		TerrainFriction: 0.985,
	}
	npc := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 0)
	x, y, angle := npc.X, npc.Y, npc.Angle

	npc.Update(0.016, &trk)

	if npc.X != x || npc.Y != y || npc.Angle != angle {
		t.Fatal("NPC moved with an empty waypoint list")
	}
}

func TestNPCStatsAreIndependentCopies(t *testing.T) {
	trk := testTrack()
	base := GetVehicleStats(VehicleRoadster)

	a := NewNPC(&trk, base, 1.18, 0)
	b := NewNPC(&trk, base, 0.85, 1)

	if base.MaxSpeed != GetVehicleStats(VehicleRoadster).MaxSpeed {
		t.Fatal("template mutated by NPC construction")
	}
	if math.Abs(a.Stats.MaxSpeed-base.MaxSpeed*1.18) > 1e-9 {
		t.Fatalf("scaled max speed = %v, want %v", a.Stats.MaxSpeed, base.MaxSpeed*1.18)
	}

	a.Stats.MaxSpeed = 1
	if b.Stats.MaxSpeed == 1 {
		t.Fatal("NPC stats copies are shared")
	}
}

func TestNPCSpawnOffsetsPerIndex(t *testing.T) {
	trk := testTrack()
	first := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 0)
	second := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.0, 1)

	if first.X == second.X && first.Y == second.Y {
		t.Fatal("NPCs spawned on top of each other")
	}
	if first.X != trk.StartX-30 || first.Y != trk.StartY+40 {
		t.Fatalf("first NPC spawn = (%v, %v), want (%v, %v)",
			first.X, first.Y, trk.StartX-30, trk.StartY+40)
	}
}

func TestNPCNeverExceedsEffectiveMax(t *testing.T) {
	trk := testTrack()
	npc := NewNPC(&trk, GetVehicleStats(VehicleRoadster), 1.18, 0)

	for i := 0; i < 2000; i++ {
		npc.Update(0.016, &trk)
		maxS := npc.EffectiveMaxSpeed(NPCBoostMultiplier)
		if s := npc.Speed(); s > maxS+1e-6 {
			t.Fatalf("frame %d: NPC speed %v exceeds %v", i, s, maxS)
		}
	}
}
