package game

import (
	"math"
	"math/rand"
)

const (
	obstacleSize    = 36.0
	boostPadSize    = 30.0
	minStartSpacing = 120.0

	// fallbackOffset positions an item when the retry budget runs out
	fallbackOffset = 200.0
)

// Obstacle is a static roadblock
type Obstacle struct {
	Rect Rect
}

// BoostPad grants a one-shot temporary speed boost. Used flips once per
// race and never reverts until the layout is rebuilt.
type BoostPad struct {
	Rect Rect
	Used bool
}

// Layout is a freshly scattered set of race objects for one race
type Layout struct {
	Obstacles []*Obstacle
	Boosts    []*BoostPad
}

// BuildLayout scatters obstacles and boost pads for the given track and
// difficulty tier. The generator is injected so scenario tests can seed
// it; the frame loop never touches global rand.
func BuildLayout(rng *rand.Rand, trk *TrackConfig, diff DifficultyConfig, retries int) *Layout {
	l := &Layout{
		Obstacles: make([]*Obstacle, 0, diff.ObstacleCount),
		Boosts:    make([]*BoostPad, 0, diff.BoostCount),
	}

	for i := 0; i < diff.ObstacleCount; i++ {
		r := randomRectOnRoad(rng, trk, obstacleSize, obstacleSize, minStartSpacing, retries)
		l.Obstacles = append(l.Obstacles, &Obstacle{Rect: r})
	}
	for i := 0; i < diff.BoostCount; i++ {
		r := randomRectOnRoad(rng, trk, boostPadSize, boostPadSize, minStartSpacing, retries)
		l.Boosts = append(l.Boosts, &BoostPad{Rect: r})
	}
	return l
}

// randomRectOnRoad picks a spot fully inside the road, at least
// minFromStart away from the start position and clear of the finish
// line. After the attempt budget it falls back to a fixed default so
// generation always terminates.
func randomRectOnRoad(rng *rand.Rand, trk *TrackConfig, w, h, minFromStart float64, retries int) Rect {
	road := trk.RoadBounds
	spanW := math.Max(1, road.W-w)
	spanH := math.Max(1, road.H-h)

	for tries := 0; tries < retries; tries++ {
		x := road.X + rng.Float64()*spanW
		y := road.Y + rng.Float64()*spanH
		candidate := Rect{x, y, w, h}

		if !road.ContainsRect(candidate) {
			continue
		}
		if math.Hypot(x-trk.StartX, y-trk.StartY) < minFromStart {
			continue
		}
		if trk.FinishRect.Intersects(candidate) {
			continue
		}
		return candidate
	}

	return Rect{road.X + fallbackOffset, road.Y + fallbackOffset, w, h}
}
