package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Menu hit boxes, shared between drawing and click handling
var (
	btnStart = Rect{60, 560, 240, 55}
	btnBuy   = Rect{320, 560, 240, 55}
	btnReset = Rect{580, 560, 240, 55}
)

func trackOptionRect(i int) Rect {
	return Rect{60 + float64(i)*260, 230, 240, 70}
}

func vehicleOptionRect(i int) Rect {
	return Rect{60 + float64(i)*260, 360, 240, 70}
}

func difficultyOptionRect(i int) Rect {
	return Rect{60 + float64(i)*180, 490, 160, 45}
}

// Renderer draws the menu, the world and the phase overlays. It only
// reads game state and never mutates it.
type Renderer struct {
	face *text.GoXFace
}

// NewRenderer creates a renderer with the bitmap UI face
func NewRenderer() *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws one frame for the current phase
func (r *Renderer) Render(screen *ebiten.Image, g *Game) {
	screen.Fill(color.RGBA{20, 20, 24, 255})

	if g.phase == PhaseMenu {
		r.drawMenu(screen, g)
		return
	}

	r.drawWorld(screen, g)
	r.drawHUD(screen, g)

	switch g.phase {
	case PhaseCountdown:
		r.drawCountdownOverlay(screen, g)
	case PhaseRace:
		// GO! lingers briefly after the countdown ends
		if float64(g.RaceTimeMs()) < g.config.GoFlashMs {
			r.drawTextCentered(screen, "GO!",
				float64(g.config.ScreenWidth)/2, float64(g.config.ScreenHeight)/2-60,
				7, color.White)
		}
	case PhaseExplode:
		r.drawExplosionOverlay(screen, g)
	case PhaseResults:
		r.drawResultsOverlay(screen, g)
	}
}

/* =========================
   MENU
   ========================= */

func (r *Renderer) drawMenu(screen *ebiten.Image, g *Game) {
	r.drawText(screen, "2D RACING", 60, 50, 4, color.White)
	r.drawText(screen, "Controls: WASD or Arrow Keys. R to restart race. ESC to return to Menu.", 60, 110, 1, color.White)
	r.drawText(screen, fmt.Sprintf("Coins: %d", g.coins), 60, 140, 1.5, color.White)

	r.drawText(screen, "Select Track:", 60, 200, 1.5, color.White)
	for i := 0; i < int(TrackCount); i++ {
		trk := GetTrackConfig(TrackID(i))
		r.drawOptionBox(screen, trackOptionRect(i),
			fmt.Sprintf("Track %d", i+1), trk.Name,
			TrackID(i) == g.selectedTrack, g.trackUnlocked[i], trackCosts[i])
	}

	r.drawText(screen, "Select Vehicle:", 60, 330, 1.5, color.White)
	for i := 0; i < int(VehicleCount); i++ {
		vs := GetVehicleStats(VehicleID(i))
		line2 := fmt.Sprintf("Max %d  Acc %d  Handle %d",
			int(vs.MaxSpeed), int(vs.Accel), int(vs.Handling*100))
		r.drawOptionBox(screen, vehicleOptionRect(i),
			vs.Name, line2,
			VehicleID(i) == g.selectedVehicle, g.vehicleUnlocked[i], vehicleCosts[i])
	}

	r.drawText(screen, "Select Difficulty:", 60, 460, 1.5, color.White)
	for i := 0; i < int(DifficultyCount); i++ {
		r.drawSmallOption(screen, difficultyOptionRect(i),
			GetDifficultyConfig(Difficulty(i)).Name,
			Difficulty(i) == g.selectedDifficulty)
	}

	r.drawButton(screen, btnStart, "START RACE")
	r.drawButton(screen, btnBuy, "BUY UNLOCK")
	r.drawButton(screen, btnReset, "RESET COINS")

	r.drawText(screen, "Tip: Select a locked item, then click BUY UNLOCK (if you have enough coins).",
		60, 650, 1, color.RGBA{210, 210, 210, 255})
}

func (r *Renderer) drawOptionBox(screen *ebiten.Image, box Rect, line1, line2 string, selected, unlocked bool, cost int) {
	fill := color.RGBA{40, 40, 50, 255}
	if selected {
		fill = color.RGBA{50, 120, 220, 255}
	}
	fillRect(screen, box, fill)
	strokeRect(screen, box, color.RGBA{255, 255, 255, 40})

	r.drawText(screen, line1, box.X+12, box.Y+10, 1.3, color.White)
	r.drawText(screen, line2, box.X+12, box.Y+40, 1, color.White)

	if !unlocked {
		fillRect(screen, box, color.RGBA{0, 0, 0, 150})
		lock := fmt.Sprintf("LOCKED (%d coins)", cost)
		r.drawTextCentered(screen, lock, box.CenterX(), box.Y+28, 1.2, color.White)
	}
}

func (r *Renderer) drawSmallOption(screen *ebiten.Image, box Rect, label string, selected bool) {
	fill := color.RGBA{55, 55, 65, 255}
	if selected {
		fill = color.RGBA{50, 120, 220, 255}
	}
	fillRect(screen, box, fill)
	strokeRect(screen, box, color.RGBA{255, 255, 255, 40})
	r.drawTextCentered(screen, label, box.CenterX(), box.Y+16, 1.2, color.White)
}

func (r *Renderer) drawButton(screen *ebiten.Image, box Rect, label string) {
	fillRect(screen, box, color.RGBA{80, 80, 95, 255})
	strokeRect(screen, box, color.RGBA{255, 255, 255, 45})
	r.drawTextCentered(screen, label, box.CenterX(), box.Y+20, 1.3, color.White)
}

/* =========================
   WORLD
   ========================= */

func (r *Renderer) drawWorld(screen *ebiten.Image, g *Game) {
	// Terrain and road
	fillRect(screen, Rect{0, 0, float64(g.config.ScreenWidth), float64(g.config.ScreenHeight)}, g.track.TerrainColor)
	fillRect(screen, g.track.RoadBounds, g.track.RoadColor)

	// Track markings
	inner := g.track.RoadBounds
	inner.X += 18
	inner.Y += 18
	inner.W -= 36
	inner.H -= 36
	strokeRect(screen, inner, color.RGBA{255, 255, 255, 45})

	for _, pad := range g.layout.Boosts {
		r.drawBoostPad(screen, pad)
	}
	for _, ob := range g.layout.Obstacles {
		fillRect(screen, ob.Rect, color.RGBA{25, 25, 25, 255})
		strokeRect(screen, ob.Rect, color.RGBA{255, 80, 80, 140})
	}

	r.drawFinishLine(screen, g.track.FinishRect)

	for _, npc := range g.npcs {
		r.drawCar(screen, &npc.Car, false)
	}
	r.drawCar(screen, &g.player.Car, true)
}

func (r *Renderer) drawBoostPad(screen *ebiten.Image, pad *BoostPad) {
	if pad.Used {
		fillRect(screen, pad.Rect, color.RGBA{255, 255, 255, 40})
		return
	}
	fillRect(screen, pad.Rect, color.RGBA{80, 220, 120, 255})
	strokeRect(screen, pad.Rect, color.RGBA{255, 255, 255, 120})

	// Arrow marker
	cx := float32(pad.Rect.CenterX())
	cy := float32(pad.Rect.CenterY())
	vector.StrokeLine(screen, cx-8, cy-10, cx+10, cy, 2, color.White, true)
	vector.StrokeLine(screen, cx-8, cy+10, cx+10, cy, 2, color.White, true)
}

func (r *Renderer) drawFinishLine(screen *ebiten.Image, finish Rect) {
	fillRect(screen, finish, color.White)

	// Checker pattern
	const size = 10.0
	for y := finish.Y; y < finish.Y+finish.H; y += size {
		for x := finish.X; x < finish.X+finish.W; x += size {
			if int((x+y)/size)%2 == 0 {
				w := math.Min(size, finish.X+finish.W-x)
				h := math.Min(size, finish.Y+finish.H-y)
				fillRect(screen, Rect{x, y, w, h}, color.Black)
			}
		}
	}
	strokeRect(screen, finish, color.RGBA{255, 255, 255, 140})
}

// drawCar renders a car as its bounding box, a heading line, and boost
// and player markers
func (r *Renderer) drawCar(screen *ebiten.Image, c *Car, isPlayer bool) {
	fillRect(screen, c.Rect(), c.Stats.Color)

	// Heading line
	tipX := c.X + math.Cos(c.Angle)*c.W*0.9
	tipY := c.Y + math.Sin(c.Angle)*c.W*0.9
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tipX), float32(tipY),
		2, color.RGBA{255, 255, 255, 160}, true)

	if c.Boosting() {
		backX := c.X - math.Cos(c.Angle)*c.W*0.7
		backY := c.Y - math.Sin(c.Angle)*c.W*0.7
		vector.DrawFilledCircle(screen, float32(backX), float32(backY), 5,
			color.RGBA{255, 255, 255, 130}, true)
	}

	if isPlayer {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.W/2+6),
			2, color.RGBA{255, 255, 255, 200}, true)
	}
}

/* =========================
   HUD + OVERLAYS
   ========================= */

func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	trk := GetTrackConfig(g.selectedTrack)
	vs := GetVehicleStats(g.selectedVehicle)
	diff := GetDifficultyConfig(g.selectedDifficulty)

	line := fmt.Sprintf("Track: %s   Vehicle: %s   Difficulty: %s   Coins: %d",
		trk.Name, vs.Name, diff.Name, g.coins)
	r.drawText(screen, line, 20, 12, 1, color.White)

	if g.phase == PhaseRace || g.phase == PhaseExplode || g.phase == PhaseResults {
		r.drawText(screen, "Time: "+formatRaceTime(g.RaceTimeMs()), 20, 36, 1, color.White)
		if g.player != nil {
			r.drawText(screen, fmt.Sprintf("Speed: %d", int(g.player.Speed())), 20, 58, 1, color.White)
		}
	}
}

func (r *Renderer) drawCountdownOverlay(screen *ebiten.Image, g *Game) {
	r.dimScreen(screen, g, 160)

	secLeft := int(math.Ceil(g.countdownMs / 1000))
	var msg string
	switch {
	case secLeft >= 4:
		msg = "READY"
	case secLeft >= 1:
		msg = fmt.Sprintf("%d", secLeft)
	default:
		msg = "GO!"
	}

	cx := float64(g.config.ScreenWidth) / 2
	cy := float64(g.config.ScreenHeight) / 2
	r.drawTextCentered(screen, msg, cx, cy-60, 7, color.White)
	r.drawTextCentered(screen, "Movement locked during countdown", cx, cy+30, 1.3, color.White)
}

func (r *Renderer) drawExplosionOverlay(screen *ebiten.Image, g *Game) {
	if g.player == nil {
		return
	}
	r.dimScreen(screen, g, 120)

	// Expanding circles from animation progress
	p := clamp(1-g.explodeMs/g.config.ExplosionMs, 0, 1)
	cx := float32(g.player.X)
	cy := float32(g.player.Y)
	radius := float32(20 + p*140)

	vector.DrawFilledCircle(screen, cx, cy, radius, color.RGBA{255, 160, 0, 180}, true)
	vector.DrawFilledCircle(screen, cx, cy, radius*0.65, color.RGBA{255, 60, 0, 180}, true)

	mid := float64(g.config.ScreenWidth) / 2
	r.drawTextCentered(screen, "CRASH! Restarting...", mid, 60, 2.2, color.White)
	r.drawTextCentered(screen, fmt.Sprintf("Impact speed: %d", int(g.lastImpactSpeed)), mid, 100, 1.2, color.White)
}

func (r *Renderer) drawResultsOverlay(screen *ebiten.Image, g *Game) {
	r.dimScreen(screen, g, 170)

	cx := float64(g.config.ScreenWidth) / 2
	r.drawTextCentered(screen, "RESULTS", cx, 130, 4, color.White)
	r.drawTextCentered(screen, fmt.Sprintf("Place: %d", g.playerPlace), cx, 240, 2.2, color.White)
	r.drawTextCentered(screen, "Time: "+formatRaceTime(g.RaceTimeMs()), cx, 290, 1.7, color.White)
	r.drawTextCentered(screen, "Press ENTER to return to Menu, or R to race again.", cx, 370, 1.3, color.White)
}

func (r *Renderer) dimScreen(screen *ebiten.Image, g *Game, alpha uint8) {
	fillRect(screen, Rect{0, 0, float64(g.config.ScreenWidth), float64(g.config.ScreenHeight)},
		color.RGBA{0, 0, 0, alpha})
}

/* =========================
   PRIMITIVES
   ========================= */

func fillRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, clr, false)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) drawTextCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, r.face, 0)
	r.drawText(screen, s, cx-w*scale/2, y, scale, clr)
}

// formatRaceTime renders milliseconds as m:ss.mmm
func formatRaceTime(ms int64) string {
	sec := ms / 1000
	rem := ms % 1000
	return fmt.Sprintf("%d:%02d.%03d", sec/60, sec%60, rem)
}
