package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/profile"

	"github.com/iburimskiy/fireflies/internal/config"
	"github.com/iburimskiy/fireflies/internal/game"
	"github.com/iburimskiy/fireflies/internal/greet"
	"github.com/iburimskiy/fireflies/internal/host/ebitenhost"
	"github.com/iburimskiy/fireflies/internal/host/gifhost"
	"github.com/iburimskiy/fireflies/internal/host/termhost"
)

type settings struct {
	seed    int64
	fps     int
	frames  int
	out     string
	verbose bool
}

type runner func(s settings, logger *log.Logger) error

var hosts = map[string]runner{
	"ebiten": runEbiten,
	"term":   runTerminal,
	"gif":    runGIF,
}

func hostNames() string {
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func main() {
	var s settings
	host := flag.String("host", "ebiten", "where to draw: "+hostNames())
	name := flag.String("name", config.DefaultGreeting, "name to greet")
	prof := flag.String("profile", "", "write a cpu or mem profile")
	flag.Int64Var(&s.seed, "seed", 0, "random seed, 0 uses the clock")
	flag.IntVar(&s.fps, "fps", config.TerminalFPS, "terminal frame rate")
	flag.IntVar(&s.frames, "frames", config.GIFFrames, "frames to record for -host gif")
	flag.StringVar(&s.out, "out", config.GIFOutput, "output file for -host gif")
	flag.BoolVar(&s.verbose, "v", false, "log every firefly at startup")
	flag.Parse()

	logger := log.New(os.Stderr, "fireflies: ", log.LstdFlags)

	if err := run(*host, *name, *prof, s, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(host, name, prof string, s settings, logger *log.Logger) error {
	start, ok := hosts[host]
	if !ok {
		return fmt.Errorf("unknown host %q, want one of %s", host, hostNames())
	}

	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		return fmt.Errorf("unknown profile %q, want cpu or mem", prof)
	}

	fmt.Println(greet.Banner(name))
	greet.Log(logger, name)

	return start(s, logger)
}

func options(s settings) game.Options {
	opts := game.DefaultOptions()
	opts.Random = game.NewRandom(s.seed)
	return opts
}

func logSwarm(logger *log.Logger, swarm *game.Swarm) {
	for i, f := range swarm.Fireflies() {
		logger.Printf("firefly %2d: radius=%.1f speed=(%+.3f, %+.3f) color=%s",
			i, f.Radius(), f.Speed().X, f.Speed().Y, f.Color())
	}
}

func runEbiten(s settings, logger *log.Logger) error {
	h := ebitenhost.New(config.CanvasID, ebitenhost.WithTitle(config.WindowTitle))

	swarm, err := game.Setup(h, config.CanvasID, options(s))
	if err == nil {
		_, err = swarm.Start(h)
	}
	if err != nil {
		if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); dlgErr != nil {
			logger.Printf("error dialog: %v", dlgErr)
		}
		return err
	}
	if s.verbose {
		logSwarm(logger, swarm)
	}

	logger.Printf("running %d fireflies at scale %.2f", swarm.Len(), swarm.Scale())
	return h.Run(int(config.CanvasWidth), int(config.CanvasHeight))
}

func runTerminal(s settings, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runOnScreen(ctx, screen, s, logger)
}

// runOnScreen takes ownership of an initialized screen and finalizes it
// before anything is logged.
func runOnScreen(ctx context.Context, screen tcell.Screen, s settings, logger *log.Logger) error {
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	h := termhost.New(screen, config.CanvasID, s.fps)
	swarm, err := game.Setup(h, config.CanvasID, options(s))
	if err != nil {
		return err
	}
	loop, err := swarm.Start(h)
	if err != nil {
		return err
	}

	err = h.Run(ctx)
	fini()

	if s.verbose {
		logSwarm(logger, swarm)
	}
	logger.Printf("drew %d frames of %d fireflies", loop.Frames(), swarm.Len())
	return err
}

func runGIF(s settings, logger *log.Logger) error {
	h := gifhost.New(config.CanvasID, gifhost.WithDelay(config.GIFDelay))

	swarm, err := game.Setup(h, config.CanvasID, options(s))
	if err != nil {
		return err
	}
	if s.verbose {
		logSwarm(logger, swarm)
	}
	if _, err := swarm.Start(h); err != nil {
		return err
	}

	n := h.Record(s.frames)

	f, err := os.Create(s.out)
	if err != nil {
		return err
	}
	if err := h.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Printf("wrote %d frames to %s", n, s.out)
	return nil
}
