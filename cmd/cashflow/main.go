package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cashflow/game"
	"github.com/plus3/cashflow/game/debugui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to the built-in zone rules.")
	balance := flag.Bool("balance", false, "Use the balance rules when no config file is given.")
	debug := flag.Bool("debug", false, "Show the ImGui session inspector.")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *balance)
	if err != nil {
		log.Fatal(err)
	}

	controller, err := game.NewController(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Starting %s session on a %dx%d board", cfg.Variant(), cfg.BoardCols, cfg.BoardRows)

	g := newGame(controller)
	width, height := g.screenSize()

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Cashflow", width+debugPanelWidth, height)
		imgui.CurrentIO().SetIniFilename("")

		g.backend = backend
		g.overlay = debugui.NewOverlay(controller)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Cashflow")
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string, balance bool) (game.Config, error) {
	if path != "" {
		return game.LoadConfig(path)
	}
	if balance {
		return game.BalanceConfig(), nil
	}
	return game.DefaultConfig(), nil
}
