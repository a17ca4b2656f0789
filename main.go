package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Forgee4G/Racing-Game/game"
)

func main() {
	config := game.DefaultConfig()
	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("2D Racing")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
