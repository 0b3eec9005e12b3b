package main

import (
	"bytes"
	_ "embed"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"tilechase/game"
	"tilechase/sim"
	"tilechase/tilemap"
)

//go:embed maps/level1.txt
var defaultLevel []byte

func main() {
	mapPath := flag.String("map", "", "Level file to load (default: built-in level)")
	seed := flag.Int64("seed", 1, "Seed for projectile spread")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile of the whole run to this file")
	profilesDir := flag.String("profiles", "profiles", "Directory for F9 profile captures")
	flag.Parse()

	config := sim.DefaultConfig()
	config.Seed = *seed
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, err := loadLevel(*mapPath, config.TileSize)
	if err != nil {
		log.Fatal(err)
	}

	if *cpuProfile != "" {
		stop, err := game.StartSessionProfile(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer stop()
	}

	g, err := game.NewGame(&config, level, game.NewProfiler(*profilesDir))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tile Chase")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadLevel(path string, tileSize float64) (*tilemap.Map, error) {
	if path == "" {
		return tilemap.Parse(bytes.NewReader(defaultLevel), tileSize)
	}
	level, err := tilemap.Load(path, tileSize)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded map %s", path)
	return level, nil
}
