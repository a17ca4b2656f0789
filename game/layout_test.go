package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestLayoutCountsPerDifficulty(t *testing.T) {
	cases := []struct {
		tier      Difficulty
		obstacles int
		boosts    int
		npcs      int
	}{
		{DifficultyEasy, 6, 5, 2},
		{DifficultyNormal, 9, 5, 3},
		{DifficultyHard, 13, 4, 4},
		{DifficultyImpossible, 16, 3, 5},
	}

	trk := testTrack()
	for _, tc := range cases {
		t.Run(GetDifficultyConfig(tc.tier).Name, func(t *testing.T) {
			diff := GetDifficultyConfig(tc.tier)
			l := BuildLayout(rand.New(rand.NewSource(1)), &trk, diff, 500)

			if len(l.Obstacles) != tc.obstacles {
				t.Errorf("obstacles = %d, want %d", len(l.Obstacles), tc.obstacles)
			}
			if len(l.Boosts) != tc.boosts {
				t.Errorf("boosts = %d, want %d", len(l.Boosts), tc.boosts)
			}
			if diff.NPCCount != tc.npcs {
				t.Errorf("npc count = %d, want %d", diff.NPCCount, tc.npcs)
			}
		})
	}
}

func TestLayoutPlacementConstraints(t *testing.T) {
	for id := TrackID(0); id < TrackCount; id++ {
		trk := GetTrackConfig(id)
		diff := GetDifficultyConfig(DifficultyImpossible)
		l := BuildLayout(rand.New(rand.NewSource(42)), &trk, diff, 500)

		rects := make([]Rect, 0, len(l.Obstacles)+len(l.Boosts))
		for _, ob := range l.Obstacles {
			rects = append(rects, ob.Rect)
		}
		for _, pad := range l.Boosts {
			rects = append(rects, pad.Rect)
		}

		for i, r := range rects {
			if !trk.RoadBounds.ContainsRect(r) {
				t.Errorf("%s: item %d at %+v outside road", trk.Name, i, r)
			}
			if d := math.Hypot(r.X-trk.StartX, r.Y-trk.StartY); d < minStartSpacing {
				t.Errorf("%s: item %d only %v from start", trk.Name, i, d)
			}
			if trk.FinishRect.Intersects(r) {
				t.Errorf("%s: item %d overlaps finish line", trk.Name, i)
			}
		}
	}
}

// A road too small for the start-spacing constraint must exhaust the
// retry budget and land every item on the deterministic fallback
// instead of looping.
func TestLayoutFallbackIsDeterministic(t *testing.T) {
	trk := TrackConfig{
		Name:       "Cramped",
		RoadBounds: Rect{0, 0, 100, 100},
		FinishRect: Rect{0, 40, 10, 20},
		StartX:     50,
		StartY:     50,
		Waypoints:  []Point{{50, 50}},
	}
	diff := DifficultyConfig{ObstacleCount: 2, BoostCount: 1}

	l := BuildLayout(rand.New(rand.NewSource(7)), &trk, diff, 50)

	wantObstacle := Rect{fallbackOffset, fallbackOffset, obstacleSize, obstacleSize}
	for i, ob := range l.Obstacles {
		if ob.Rect != wantObstacle {
			t.Errorf("obstacle %d = %+v, want fallback %+v", i, ob.Rect, wantObstacle)
		}
	}
	wantPad := Rect{fallbackOffset, fallbackOffset, boostPadSize, boostPadSize}
	if l.Boosts[0].Rect != wantPad {
		t.Errorf("pad = %+v, want fallback %+v", l.Boosts[0].Rect, wantPad)
	}
}

func TestLayoutRebuildKeepsCardinality(t *testing.T) {
	trk := testTrack()
	diff := GetDifficultyConfig(DifficultyHard)

	first := BuildLayout(rand.New(rand.NewSource(1)), &trk, diff, 500)
	second := BuildLayout(rand.New(rand.NewSource(99)), &trk, diff, 500)

	if len(first.Obstacles) != len(second.Obstacles) {
		t.Errorf("obstacle counts differ: %d vs %d", len(first.Obstacles), len(second.Obstacles))
	}
	if len(first.Boosts) != len(second.Boosts) {
		t.Errorf("boost counts differ: %d vs %d", len(first.Boosts), len(second.Boosts))
	}
}

func TestLayoutSeedReproducible(t *testing.T) {
	trk := testTrack()
	diff := GetDifficultyConfig(DifficultyNormal)

	a := BuildLayout(rand.New(rand.NewSource(5)), &trk, diff, 500)
	b := BuildLayout(rand.New(rand.NewSource(5)), &trk, diff, 500)

	for i := range a.Obstacles {
		if a.Obstacles[i].Rect != b.Obstacles[i].Rect {
			t.Fatalf("obstacle %d differs between identical seeds", i)
		}
	}
	for i := range a.Boosts {
		if a.Boosts[i].Rect != b.Boosts[i].Rect {
			t.Fatalf("pad %d differs between identical seeds", i)
		}
	}
}
