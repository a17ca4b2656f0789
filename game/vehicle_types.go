package game

import "image/color"

// VehicleID identifies a vehicle preset
type VehicleID int

const (
	VehicleRoadster VehicleID = iota
	VehicleMuscle
	VehicleHyper
	VehicleCount // Total number of vehicle presets
)

// VehicleStats holds the immutable template for a vehicle preset.
// Cars receive independent copies; mutating a copy never affects the
// template or other cars.
type VehicleStats struct {
	Name     string
	MaxSpeed float64 // units per second
	Accel    float64 // units per second squared
	Handling float64 // turn-rate scalar
	Color    color.RGBA
}

// GetVehicleStats returns the stats template for a vehicle preset
func GetVehicleStats(id VehicleID) VehicleStats {
	switch id {
	case VehicleRoadster:
		return VehicleStats{
			Name:     "Roadster",
			MaxSpeed: 300.0,
			Accel:    260.0,
			Handling: 1.35,
			Color:    color.RGBA{220, 60, 60, 255}, // Red
		}
	case VehicleMuscle:
		return VehicleStats{
			Name:     "Muscle",
			MaxSpeed: 340.0,
			Accel:    240.0,
			Handling: 1.10,
			Color:    color.RGBA{70, 110, 230, 255}, // Blue
		}
	case VehicleHyper:
		return VehicleStats{
			Name:     "Hyper",
			MaxSpeed: 380.0,
			Accel:    290.0,
			Handling: 1.25,
			Color:    color.RGBA{250, 210, 60, 255}, // Yellow
		}
	default:
		return GetVehicleStats(VehicleRoadster)
	}
}

// Difficulty identifies a difficulty tier
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyImpossible
	DifficultyCount // Total number of difficulty tiers
)

// DifficultyConfig holds the per-tier tuning for obstacles, pickups and
// opponents
type DifficultyConfig struct {
	Name          string
	ObstacleCount int
	BoostCount    int
	NPCCount      int
	NPCScale      float64 // scale applied to NPC stat copies
}

// GetDifficultyConfig returns configuration for a difficulty tier
func GetDifficultyConfig(d Difficulty) DifficultyConfig {
	switch d {
	case DifficultyEasy:
		return DifficultyConfig{
			Name:          "Easy",
			ObstacleCount: 6,
			BoostCount:    5,
			NPCCount:      2,
			NPCScale:      0.85,
		}
	case DifficultyNormal:
		return DifficultyConfig{
			Name:          "Normal",
			ObstacleCount: 9,
			BoostCount:    5,
			NPCCount:      3,
			NPCScale:      0.95,
		}
	case DifficultyHard:
		return DifficultyConfig{
			Name:          "Hard",
			ObstacleCount: 13,
			BoostCount:    4,
			NPCCount:      4,
			NPCScale:      1.05,
		}
	case DifficultyImpossible:
		return DifficultyConfig{
			Name:          "Impossible",
			ObstacleCount: 16,
			BoostCount:    3,
			NPCCount:      5,
			NPCScale:      1.18,
		}
	default:
		return GetDifficultyConfig(DifficultyNormal)
	}
}
