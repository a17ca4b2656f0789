package game

// Config holds game tuning constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// MaxDeltaTime is the upper bound on the per-frame physics delta in
	// seconds. Frame hitches longer than this are truncated instead of
	// integrated.
	MaxDeltaTime float64

	// CountdownMs is the pre-race countdown duration in milliseconds
	CountdownMs float64

	// GoFlashMs is how long the GO! message stays up after the countdown
	GoFlashMs float64

	// ExplosionMs is the crash animation duration in milliseconds
	ExplosionMs float64

	// BoostDurationMs is how long a boost pad's speed bonus lasts
	BoostDurationMs float64

	// FatalImpactSpeed is the obstacle impact speed above which the
	// player explodes instead of bouncing off
	FatalImpactSpeed float64

	// PlacementRetries is the attempt budget per obstacle/boost placement
	// before falling back to the default spot
	PlacementRetries int
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1000,
		ScreenHeight:     700,
		MaxDeltaTime:     0.05,
		CountdownMs:      5000,
		GoFlashMs:        900,
		ExplosionMs:      1100,
		BoostDurationMs:  850,
		FatalImpactSpeed: 220,
		PlacementRetries: 500,
	}
}
