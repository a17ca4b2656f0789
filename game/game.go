package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Phase is the top-level game state
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhaseRace
	PhaseExplode
	PhaseResults
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhaseCountdown:
		return "COUNTDOWN"
	case PhaseRace:
		return "RACE"
	case PhaseExplode:
		return "EXPLODE"
	case PhaseResults:
		return "RESULTS"
	default:
		return "UNKNOWN"
	}
}

// coinAwards maps finishing place (1-based) to the coin reward; places
// past the table earn the last entry
var coinAwards = []int{60, 35, 20, 12}

// Unlock prices per track/vehicle index; index 0 is always unlocked
var (
	trackCosts   = [TrackCount]int{0, 80, 140}
	vehicleCosts = [VehicleCount]int{0, 100, 160}
)

// Game owns the race session state and sequences the MENU, COUNTDOWN,
// RACE, EXPLODE and RESULTS phases. All mutation happens in the single
// per-frame update step; the renderer only reads.
type Game struct {
	config   Config
	renderer *Renderer
	rng      *rand.Rand
	input    *InputState

	phase Phase

	// Selection / progression. Coins and unlocks persist across races;
	// everything below the race-objects divider is rebuilt per race.
	selectedTrack      TrackID
	selectedVehicle    VehicleID
	selectedDifficulty Difficulty
	coins              int
	trackUnlocked      [TrackCount]bool
	vehicleUnlocked    [VehicleCount]bool

	// Live race objects
	track      TrackConfig
	player     *Player
	npcs       []*NPC
	layout     *Layout
	collisions *CollisionSystem

	// Timers and results
	countdownMs     float64
	explodeMs       float64
	raceStart       time.Time
	raceEnd         time.Time
	playerFinished  bool
	playerPlace     int
	lastImpactSpeed float64

	lastUpdateTime time.Time
}

// NewGame creates a game at the menu with only the first track and
// vehicle unlocked
func NewGame(config Config) *Game {
	g := &Game{
		config:             config,
		renderer:           NewRenderer(),
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		input:              NewInputState(),
		phase:              PhaseMenu,
		selectedDifficulty: DifficultyNormal,
		lastUpdateTime:     time.Now(),
	}
	g.trackUnlocked[0] = true
	g.vehicleUnlocked[0] = true
	return g
}

/* =========================
   READ-ONLY STATE
   ========================= */

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Coins returns the current coin balance
func (g *Game) Coins() int {
	return g.coins
}

// Placement returns the player's finishing place, or 0 before finishing
func (g *Game) Placement() int {
	return g.playerPlace
}

// LastImpactSpeed returns the speed recorded at the last fatal crash
func (g *Game) LastImpactSpeed() float64 {
	return g.lastImpactSpeed
}

// CountdownRemaining returns the countdown time left in milliseconds
func (g *Game) CountdownRemaining() float64 {
	return g.countdownMs
}

// ExplosionRemaining returns the crash animation time left in
// milliseconds
func (g *Game) ExplosionRemaining() float64 {
	return g.explodeMs
}

// RaceTimeMs returns the elapsed race time for display: zero before the
// race starts, frozen at the finish stamp once the player has finished.
func (g *Game) RaceTimeMs() int64 {
	if g.raceStart.IsZero() {
		return 0
	}
	if g.playerFinished {
		return g.raceEnd.Sub(g.raceStart).Milliseconds()
	}
	return time.Since(g.raceStart).Milliseconds()
}

/* =========================
   ACTION MUTATORS
   ========================= */

// Press marks a direction held. Inputs are collected in every phase but
// only move the car during RACE.
func (g *Game) Press(d Direction) {
	g.input.Press(d)
}

// Release clears a held direction
func (g *Game) Release(d Direction) {
	g.input.Release(d)
}

// SelectTrack changes the selected track while on the menu
func (g *Game) SelectTrack(id TrackID) bool {
	if g.phase != PhaseMenu || id < 0 || id >= TrackCount {
		return false
	}
	g.selectedTrack = id
	return true
}

// SelectVehicle changes the selected vehicle while on the menu
func (g *Game) SelectVehicle(id VehicleID) bool {
	if g.phase != PhaseMenu || id < 0 || id >= VehicleCount {
		return false
	}
	g.selectedVehicle = id
	return true
}

// SelectDifficulty changes the selected tier while on the menu
func (g *Game) SelectDifficulty(d Difficulty) bool {
	if g.phase != PhaseMenu || d < 0 || d >= DifficultyCount {
		return false
	}
	g.selectedDifficulty = d
	return true
}

// StartRace leaves the menu for a fresh countdown. Rejected outside the
// menu or while the selected track or vehicle is still locked.
func (g *Game) StartRace() bool {
	if g.phase != PhaseMenu {
		return false
	}
	if !g.trackUnlocked[g.selectedTrack] || !g.vehicleUnlocked[g.selectedVehicle] {
		return false
	}
	g.buildRace()
	return true
}

// Restart discards the current race (or results) and re-enters the
// countdown with a fresh layout at the same selection. Coins and
// unlocks are untouched.
func (g *Game) Restart() bool {
	if g.phase != PhaseRace && g.phase != PhaseResults {
		return false
	}
	g.buildRace()
	return true
}

// ReturnToMenu abandons the current race from any in-race phase
func (g *Game) ReturnToMenu() bool {
	if g.phase == PhaseMenu {
		return false
	}
	g.phase = PhaseMenu
	g.input.Reset()
	return true
}

// BuyUnlock spends coins on the selected locked track, or failing that
// the selected locked vehicle. A soft no-op on insufficient funds.
func (g *Game) BuyUnlock() bool {
	if g.phase != PhaseMenu {
		return false
	}
	if !g.trackUnlocked[g.selectedTrack] {
		cost := trackCosts[g.selectedTrack]
		if g.coins < cost {
			return false
		}
		g.coins -= cost
		g.trackUnlocked[g.selectedTrack] = true
		return true
	}
	if !g.vehicleUnlocked[g.selectedVehicle] {
		cost := vehicleCosts[g.selectedVehicle]
		if g.coins < cost {
			return false
		}
		g.coins -= cost
		g.vehicleUnlocked[g.selectedVehicle] = true
		return true
	}
	return false
}

// ResetProgress zeroes the coin balance and relocks everything except
// the first track and vehicle
func (g *Game) ResetProgress() bool {
	if g.phase != PhaseMenu {
		return false
	}
	g.coins = 0
	g.trackUnlocked = [TrackCount]bool{}
	g.vehicleUnlocked = [VehicleCount]bool{}
	g.trackUnlocked[0] = true
	g.vehicleUnlocked[0] = true
	return true
}

/* =========================
   RACE SETUP
   ========================= */

// buildRace rebuilds every race-scoped object at the current selection
// and enters the countdown. Coins and unlocks are deliberately left
// alone.
func (g *Game) buildRace() {
	g.track = GetTrackConfig(g.selectedTrack)
	diff := GetDifficultyConfig(g.selectedDifficulty)

	g.player = NewPlayer(&g.track, GetVehicleStats(g.selectedVehicle), g.input)

	// NPC stats scale from the base preset, each getting its own copy
	base := GetVehicleStats(VehicleRoadster)
	g.npcs = make([]*NPC, 0, diff.NPCCount)
	for i := 0; i < diff.NPCCount; i++ {
		g.npcs = append(g.npcs, NewNPC(&g.track, base, diff.NPCScale, i))
	}

	g.layout = BuildLayout(g.rng, &g.track, diff, g.config.PlacementRetries)
	g.collisions = NewCollisionSystem(g.layout)

	g.playerFinished = false
	g.playerPlace = 0
	g.raceStart = time.Time{}
	g.raceEnd = time.Time{}
	g.countdownMs = g.config.CountdownMs
	g.phase = PhaseCountdown
}

/* =========================
   PER-FRAME UPDATE
   ========================= */

// step advances the phase-appropriate update by dt seconds. It is the
// whole core loop; Update only wraps it with clock and input capture.
func (g *Game) step(dt float64) {
	switch g.phase {
	case PhaseCountdown:
		g.updateCountdown(dt)
	case PhaseRace:
		g.updateRace(dt)
	case PhaseExplode:
		g.updateExplode(dt)
	case PhaseMenu, PhaseResults:
		// no physics
	}
}

func (g *Game) updateCountdown(dt float64) {
	g.countdownMs -= dt * 1000
	if g.countdownMs <= 0 {
		g.phase = PhaseRace
		g.raceStart = time.Now()
	}
}

func (g *Game) updateRace(dt float64) {
	g.player.Update(dt, &g.track)
	for _, npc := range g.npcs {
		npc.Update(dt, &g.track)
	}

	impact := g.collisions.Resolve(g.player, g.npcs, g.config.BoostDurationMs, g.config.FatalImpactSpeed)
	if impact != nil {
		g.lastImpactSpeed = impact.Speed
		g.explodeMs = g.config.ExplosionMs
		g.phase = PhaseExplode
		return
	}

	if !g.playerFinished && g.track.FinishRect.Intersects(g.player.Rect()) {
		g.playerFinished = true
		g.raceEnd = time.Now()
		g.playerPlace = g.computePlace()
		g.coins += coinAward(g.playerPlace)
		g.phase = PhaseResults
	}
}

func (g *Game) updateExplode(dt float64) {
	g.explodeMs -= dt * 1000
	if g.explodeMs <= 0 {
		// restart from the start position at the same selection
		g.buildRace()
	}
}

// computePlace ranks the player by waypoint progress at the finish
// moment: 1 plus the number of NPCs whose seek index is ahead of the
// player's virtual progress index. A proxy for rank, not a finish-order
// record; NPCs are never evaluated against the finish line.
func (g *Game) computePlace() int {
	better := 0
	for _, npc := range g.npcs {
		if npc.WaypointIndex > g.player.WaypointIndex {
			better++
		}
	}
	return better + 1
}

// coinAward returns the reward for a 1-based finishing place
func coinAward(place int) int {
	if place < 1 {
		place = 1
	}
	if place > len(coinAwards) {
		place = len(coinAwards)
	}
	return coinAwards[place-1]
}

/* =========================
   EBITEN INTEGRATION
   ========================= */

// Update implements ebiten.Game. It computes the clamped frame delta,
// forwards device input through the action mutators, and runs one step.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if dt > g.config.MaxDeltaTime {
		dt = g.config.MaxDeltaTime
	}

	g.readKeyboard()
	g.readMouse()
	g.step(dt)
	return nil
}

// directionKeys maps each direction to its WASD and arrow bindings
var directionKeys = map[Direction][]ebiten.Key{
	DirUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	DirDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	DirLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	DirRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

func (g *Game) readKeyboard() {
	for dir, keys := range directionKeys {
		held := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				held = true
				break
			}
		}
		if held {
			g.Press(dir)
		} else {
			g.Release(dir)
		}
	}

	switch g.phase {
	case PhaseResults:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.ReturnToMenu()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Restart()
		}
	case PhaseRace:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Restart()
		}
		fallthrough
	case PhaseCountdown, PhaseExplode:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.ReturnToMenu()
		}
	}
}

func (g *Game) readMouse() {
	if g.phase != PhaseMenu || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	g.handleMenuClick(float64(mx), float64(my))
}

// handleMenuClick hit-tests the menu boxes and buttons
func (g *Game) handleMenuClick(x, y float64) {
	for i := 0; i < int(TrackCount); i++ {
		if trackOptionRect(i).Contains(x, y) {
			g.SelectTrack(TrackID(i))
		}
	}
	for i := 0; i < int(VehicleCount); i++ {
		if vehicleOptionRect(i).Contains(x, y) {
			g.SelectVehicle(VehicleID(i))
		}
	}
	for i := 0; i < int(DifficultyCount); i++ {
		if difficultyOptionRect(i).Contains(x, y) {
			g.SelectDifficulty(Difficulty(i))
		}
	}

	switch {
	case btnStart.Contains(x, y):
		g.StartRace()
	case btnBuy.Contains(x, y):
		g.BuyUnlock()
	case btnReset.Contains(x, y):
		g.ResetProgress()
	}
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
