// husk demo: a terminal particle sandbox driving one world of glyph
// entities. Particles drift, bounce off the screen edges and expire
// through the deferred-deletion sweep while the renderer is still
// consuming the tick's query results.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/sedgewren/husk/config"
	"github.com/sedgewren/husk/registry"
	"github.com/sedgewren/husk/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	worlds := registry.New(logger)
	world := worlds.Current()

	expired := 0
	sub := world.Events.Subscribe(system.EventParticleExpired, func(args ...any) {
		expired++
	})
	defer sub.Cancel()

	sim := cfg.Simulation
	world.AddProcessor(system.NewSpawner(sim.Particles, sim.MinLife, sim.MaxLife, screen.Size), system.PrioritySpawn)
	world.AddProcessor(system.NewMovement(), system.PriorityMovement)
	world.AddProcessor(system.NewBounce(screen.Size), system.PriorityBounce)
	world.AddProcessor(system.NewExpiry(), system.PriorityExpiry)
	world.AddProcessor(system.NewRender(screen), system.PriorityRender)

	logger.Info("simulation started",
		zap.String("world", worlds.CurrentName()),
		zap.Duration("tick_rate", sim.TickRate),
		zap.Int("particles", sim.Particles))

	// Input events arrive on their own goroutine; the world itself is
	// only ever touched from the tick loop below.
	inputCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			inputCh <- ev
		}
	}()

	ticker := time.NewTicker(sim.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := world.TimedProcess(sim.TickRate); err != nil {
				return err
			}
		case ev := <-inputCh:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q' {
					logTimings(logger, world.ProcessTimes(), expired)
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	// The terminal belongs to tcell, so logs go to a file
	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}
	return zcfg.Build()
}

func logTimings(logger *zap.Logger, times map[string]time.Duration, expired int) {
	fields := []zap.Field{zap.Int("particles_expired", expired)}
	for name, d := range times {
		fields = append(fields, zap.Duration(name, d))
	}
	logger.Info("simulation stopped", fields...)
}
