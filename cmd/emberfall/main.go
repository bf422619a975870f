package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emberfall/engine/internal/component"
	"github.com/emberfall/engine/internal/config"
	"github.com/emberfall/engine/internal/core/ecs"
	"github.com/emberfall/engine/internal/core/event"
	"github.com/emberfall/engine/internal/data"
	"github.com/emberfall/engine/internal/scripting"
	"github.com/emberfall/engine/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := flag.String("config", "config/engine.toml", "path to engine config")
	flag.Parse()
	if p := os.Getenv("EMBERFALL_CONFIG"); p != "" {
		*cfgPath = p
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Optional profiling session
	switch cfg.Profiling.Mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profiling mode %q", cfg.Profiling.Mode)
	}

	// 4. Create world and event bus
	world := ecs.NewWorld(ecs.WithLogger(log))
	bus := event.NewBus()

	event.Subscribe(bus, func(ev event.EntityExpired) {
		log.Debug("entity expired", zap.Uint32("id", uint32(ev.ID)))
	})

	// 5. Load spawn data and populate the world
	spawns, err := data.LoadSpawnTable(cfg.Data.SpawnFile)
	if err != nil {
		return fmt.Errorf("load spawn table: %w", err)
	}
	spawned := populate(world, bus, spawns)
	log.Info("world populated",
		zap.Int("templates", spawns.Count()),
		zap.Int("entities", spawned))

	// 6. Register systems
	if err := registerSystems(world, bus, log, cfg); err != nil {
		return fmt.Errorf("register systems: %w", err)
	}
	log.Info("systems registered", zap.Strings("order", world.Systems().SystemNames()))

	// 7. Tick loop until signal or tick budget
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Engine.TickRate)
	defer ticker.Stop()

	log.Info("engine running", zap.Duration("tick_rate", cfg.Engine.TickRate))
	for {
		select {
		case sig := <-shutdownCh:
			log.Info("shutting down", zap.String("signal", sig.String()))
			return nil
		case <-ticker.C:
			world.Update(cfg.Engine.TickRate)
			if cfg.Engine.MaxTicks > 0 && world.Tick() >= uint64(cfg.Engine.MaxTicks) {
				log.Info("tick budget reached", zap.Uint64("ticks", world.Tick()))
				return nil
			}
		}
	}
}

// populate assembles one entity per template instance.
func populate(world *ecs.World, bus *event.Bus, spawns *data.SpawnTable) int {
	total := 0
	spawns.Each(func(tpl *data.SpawnTemplate) {
		count := tpl.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			e := world.CreateEntity()
			ecs.Add(world, e, component.Kind{Name: tpl.Kind})
			ecs.Add(world, e, component.Position{X: tpl.X + float64(i), Y: tpl.Y})
			if tpl.DX != 0 || tpl.DY != 0 {
				ecs.Add(world, e, component.Velocity{DX: tpl.DX, DY: tpl.DY})
			}
			if tpl.HP > 0 {
				ecs.Add(world, e, component.Health{Cur: tpl.HP, Max: tpl.HP})
			}
			if tpl.Lifetime > 0 {
				ecs.Add(world, e, component.Lifetime{
					Remaining: time.Duration(tpl.Lifetime * float64(time.Second)),
				})
			}
			event.Emit(bus, event.EntitySpawned{ID: e, Kind: tpl.Kind})
			total++
		}
	})
	return total
}

func registerSystems(world *ecs.World, bus *event.Bus, log *zap.Logger, cfg *config.Config) error {
	if err := world.AddSystemWithOrder(system.NewDispatchSystem(bus), "events", ecs.ExecutionOrder{Tier: ecs.TierCritical}); err != nil {
		return err
	}
	if err := world.AddSystemWithOrder(system.NewMovementSystem(), "movement", ecs.ExecutionOrder{Tier: ecs.TierHigh}); err != nil {
		return err
	}
	if err := world.AddSystemWithOrder(system.NewStatsSystem(log), "stats", ecs.ExecutionOrder{Tier: ecs.TierLow}); err != nil {
		return err
	}
	if err := world.AddSystemWithOrder(system.NewLifetimeSystem(bus), "lifetime", ecs.ExecutionOrder{Tier: ecs.TierCleanup}); err != nil {
		return err
	}

	// Scripted systems run in the Normal tier, ordered by discovery.
	if cfg.Scripts.Dir != "" {
		lua, err := scripting.NewEngine(cfg.Scripts.Dir, log)
		if err != nil {
			return err
		}
		if lua.HasFunc("on_tick") {
			if err := world.AddSystem(scripting.NewSystem(lua, "on_tick"), "lua:on_tick"); err != nil {
				return err
			}
		}
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
