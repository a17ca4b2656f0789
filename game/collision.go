package game

const (
	// Velocity scales applied after an obstacle hit
	playerHitDamping = 0.4
	npcHitDamping    = 0.3
)

// CollisionSystem resolves agent intersections against the static race
// objects once per race-phase frame, after all agents have moved.
type CollisionSystem struct {
	obstacles []*Obstacle
	boosts    []*BoostPad
}

// NewCollisionSystem creates a resolver over one race's layout
func NewCollisionSystem(l *Layout) *CollisionSystem {
	return &CollisionSystem{
		obstacles: l.Obstacles,
		boosts:    l.Boosts,
	}
}

// Impact describes a fatal player-obstacle collision
type Impact struct {
	// Speed is the player's velocity magnitude before the collision
	// response was applied
	Speed float64
}

// Resolve runs pad pickups first, then obstacle collisions. A player
// impact above fatalSpeed returns a non-nil Impact and pre-empts the
// remaining resolver work for this frame.
func (cs *CollisionSystem) Resolve(player *Player, npcs []*NPC, boostMs, fatalSpeed float64) *Impact {
	cs.resolvePads(player, boostMs)
	for _, npc := range npcs {
		cs.resolvePads(npc, boostMs)
	}

	if impact := cs.resolvePlayerObstacles(player, fatalSpeed); impact != nil {
		return impact
	}

	for _, npc := range npcs {
		cs.resolveNPCObstacles(npc)
	}
	return nil
}

// resolvePads grants a boost for each unused pad the agent touches and
// marks the pad spent for the rest of the race
func (cs *CollisionSystem) resolvePads(agent Agent, boostMs float64) {
	body := agent.Body()
	for _, pad := range cs.boosts {
		if !pad.Used && pad.Rect.Intersects(body.Rect()) {
			pad.Used = true
			body.ActivateBoost(boostMs)
		}
	}
}

// resolvePlayerObstacles bumps the player off any obstacle it overlaps.
// If the pre-response speed exceeded fatalSpeed the hit is fatal and
// resolution stops immediately.
func (cs *CollisionSystem) resolvePlayerObstacles(player *Player, fatalSpeed float64) *Impact {
	for _, ob := range cs.obstacles {
		if !ob.Rect.Intersects(player.Rect()) {
			continue
		}
		speed := player.Speed()
		player.BumpBack()
		player.VX *= playerHitDamping
		player.VY *= playerHitDamping

		if speed > fatalSpeed {
			return &Impact{Speed: speed}
		}
	}
	return nil
}

// resolveNPCObstacles bumps an NPC off any obstacle it overlaps. NPCs
// never explode.
func (cs *CollisionSystem) resolveNPCObstacles(npc *NPC) {
	for _, ob := range cs.obstacles {
		if ob.Rect.Intersects(npc.Rect()) {
			npc.BumpBack()
			npc.VX *= npcHitDamping
			npc.VY *= npcHitDamping
		}
	}
}
