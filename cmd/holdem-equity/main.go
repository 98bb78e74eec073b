package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/simulator"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Show debug logs"`
	Config  string           `help:"Path to an HCL config file" default:"holdem-equity.hcl"`

	Go    GoCmd    `cmd:"" help:"Estimate equity for one spot"`
	Bench BenchCmd `cmd:"" help:"Run the built-in benchmark spots"`
	Repl  ReplCmd  `cmd:"" default:"1" help:"Interactive prompt (go/bench/quit)"`
}

type appContext struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-equity"),
		kong.Description("Monte Carlo equity calculator for Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&appContext{
		cfg:    cfg,
		logger: setupLogger(cli.Debug),
	})
	ctx.FatalIfErrorf(err)
}

// setupLogger configures zerolog with pretty console output
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// GoCmd runs one spot. The spot may be a single quoted argument or spread
// across several; up to two trailing integers are read as the game count
// and thread count.
type GoCmd struct {
	Spot []string `arg:"" required:"" passthrough:"" help:"Spot string, e.g. '4P AcTc TdTh - 5h 6h 9c' [games] [threads]"`
}

func (g *GoCmd) Run(app *appContext) error {
	return runSpot(app, g.Spot)
}

func runSpot(app *appContext, args []string) error {
	text, games, threads, err := splitSpotArgs(args, app.cfg.Defaults.Games, app.cfg.Defaults.Threads)
	if err != nil {
		return err
	}
	spot, err := simulator.ParseSpot(text)
	if err != nil {
		return err
	}

	app.logger.Debug().
		Str("spot", spot.String()).
		Int("games", games).
		Int("threads", threads).
		Int("missing", spot.Missing()).
		Msg("running spot")

	start := time.Now()
	results, played, err := simulator.Run(spot, games, threads)
	if err != nil {
		return err
	}
	printResults(os.Stdout, spot, results, played, time.Since(start))
	return nil
}

// splitSpotArgs peels up to two trailing integer tokens off the argument
// list. Card and header tokens always contain a letter or a dash, so a
// purely numeric token can only be a game or thread count.
func splitSpotArgs(args []string, defGames, defThreads int) (string, int, int, error) {
	games, threads := defGames, defThreads
	var nums []int
	for len(args) > 0 && len(nums) < 2 {
		n, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			break
		}
		nums = append([]int{n}, nums...)
		args = args[:len(args)-1]
	}
	if len(args) == 0 {
		return "", 0, 0, fmt.Errorf("missing spot")
	}
	switch len(nums) {
	case 1:
		games = nums[0]
	case 2:
		games, threads = nums[0], nums[1]
	}
	return strings.Join(args, " "), games, threads, nil
}

// BenchCmd runs the built-in spots and prints the signature.
type BenchCmd struct {
	Threads int `arg:"" optional:"" help:"Worker threads (default one per CPU)"`
}

func (b *BenchCmd) Run(app *appContext) error {
	return runBench(app, b.Threads)
}

func runBench(app *appContext, threads int) error {
	spots := bench.DefaultSpots
	games := bench.DefaultGames
	if cfg := app.cfg.Bench; cfg != nil {
		if len(cfg.Spots) > 0 {
			spots = cfg.Spots
		}
		if cfg.Games > 0 {
			games = cfg.Games
		}
		if threads == 0 {
			threads = cfg.Threads
		}
	}

	report, err := bench.Run(spots, games, threads, quartz.NewReal(), app.logger)
	if err != nil {
		return err
	}
	printBench(os.Stdout, report)
	return nil
}
