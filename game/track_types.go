package game

import "image/color"

// TrackID identifies a track preset
type TrackID int

const (
	TrackCityCircuit TrackID = iota
	TrackDesertLoop
	TrackSnowRun
	TrackCount // Total number of track presets
)

// TrackConfig holds the static layout of a track. Immutable once a race
// has been built from it.
type TrackConfig struct {
	Name string

	// RoadBounds is the drivable area; cars are clamped inside it
	RoadBounds Rect

	// FinishRect is the finish line strip
	FinishRect Rect

	// StartX, StartY is the player spawn position
	StartX, StartY float64

	// TerrainFriction is the multiplicative velocity decay applied once
	// per physics step, in (0, 1]
	TerrainFriction float64

	// Waypoints is the cyclic route NPCs follow, in order
	Waypoints []Point

	// Visual theme
	TerrainColor color.RGBA
	RoadColor    color.RGBA
}

// GetTrackConfig returns the layout for a track preset
func GetTrackConfig(id TrackID) TrackConfig {
	switch id {
	case TrackCityCircuit:
		return TrackConfig{
			Name:            "City Circuit",
			RoadBounds:      Rect{80, 80, 840, 540},
			FinishRect:      Rect{900, 330, 20, 80}, // right side
			StartX:          160,
			StartY:          340,
			TerrainFriction: 0.985,
			Waypoints: []Point{
				{140, 140},
				{860, 140},
				{860, 560},
				{140, 560},
			},
			TerrainColor: color.RGBA{30, 55, 40, 255},
			RoadColor:    color.RGBA{55, 55, 60, 255},
		}
	case TrackDesertLoop:
		return TrackConfig{
			Name:            "Desert Loop",
			RoadBounds:      Rect{90, 110, 820, 500},
			FinishRect:      Rect{90, 330, 20, 80}, // left side
			StartX:          820,
			StartY:          360,
			TerrainFriction: 0.975,
			Waypoints: []Point{
				{820, 160},
				{160, 160},
				{160, 560},
				{820, 560},
			},
			TerrainColor: color.RGBA{160, 130, 70, 255},
			RoadColor:    color.RGBA{80, 70, 60, 255},
		}
	case TrackSnowRun:
		return TrackConfig{
			Name:            "Snow Run",
			RoadBounds:      Rect{110, 90, 800, 520},
			FinishRect:      Rect{480, 90, 80, 20}, // top
			StartX:          520,
			StartY:          540,
			TerrainFriction: 0.968,
			Waypoints: []Point{
				{860, 520},
				{860, 140},
				{160, 140},
				{160, 520},
			},
			TerrainColor: color.RGBA{190, 210, 225, 255},
			RoadColor:    color.RGBA{70, 80, 90, 255},
		}
	default:
		return GetTrackConfig(TrackCityCircuit)
	}
}
