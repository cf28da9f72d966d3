package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli"

	"runedrag/config"
	"runedrag/controller"
	"runedrag/engine"
	"runedrag/render"
	"runedrag/ui"
)

func main() {
	app := cli.NewApp()
	app.Name = "runedrag"
	app.Usage = "drag-to-swap match-three puzzle"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "runedrag.yaml",
			Usage: "path to the YAML config file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "open the game window",
			Action: play,
		},
		{
			Name:  "demo",
			Usage: "play one scripted drag on the terminal",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed, overrides the config",
				},
				cli.StringFlag{
					Name:  "path",
					Value: "0,0;0,1",
					Usage: "drag path as row,col pairs separated by ';'",
				},
			},
			Action: demo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("runedrag failed", "error", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return nil, nil, err
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          "runedrag",
	})

	return cfg, logger, nil
}

func newController(cfg *config.Config, logger *log.Logger) *controller.Controller {
	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}

	e := engine.New(cfg.Board.Rows, cfg.Board.Cols, cfg.EngineLayout(), opts...)
	return controller.New(e, logger)
}

func play(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	logger.Info("starting", "rows", cfg.Board.Rows, "cols", cfg.Board.Cols, "seed", cfg.Seed)
	ui.Run(newController(cfg, logger), logger, cfg.Window.Width, cfg.Window.Height)
	return nil
}

func demo(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	path, err := parsePath(c.String("path"))
	if err != nil {
		return err
	}

	ctrl := newController(cfg, logger)
	e := ctrl.Engine()
	lay := e.Layout()

	fmt.Println(render.Board(e.Board(), nil))

	ctrl.PointerDown(lay.CellCenter(path[0]))
	for _, cell := range path[1:] {
		ctrl.PointerMove(lay.CellCenter(cell))
	}

	// show the swapped board before the release resolves it
	swapped := e.Board()
	out := ctrl.PointerUp()

	fmt.Println(render.Board(swapped, out.Matched))
	fmt.Printf("removed %d, score %d\n", out.Removed, ctrl.Score)

	if out.Removed > 0 {
		fmt.Println(render.Board(e.Board(), nil))
	}

	if move, ok := ctrl.Hint(); ok {
		fmt.Printf("hint: %v\n", move)
	}

	return nil
}

// parsePath reads "r,c;r,c;..." into cell coordinates.
func parsePath(s string) ([]engine.Coord, error) {
	var path []engine.Coord

	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid cell %q: want row,col", pair)
		}

		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid row in %q: %w", pair, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid col in %q: %w", pair, err)
		}

		path = append(path, engine.Coord{Row: row, Col: col})
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("empty drag path")
	}

	return path, nil
}
