package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/config"
	"github.com/KirkDiggler/doodle-api/internal/engine"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/game"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/idle"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
	"github.com/KirkDiggler/doodle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/doodle-api/internal/pkg/random"
	"github.com/KirkDiggler/doodle-api/internal/redis"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
	"github.com/KirkDiggler/doodle-api/internal/services/simulation"
)

const redisPingTimeout = 5 * time.Second

// app is the assembled game stack behind the gRPC server
type app struct {
	game    game.Service
	runner  *idle.Runner
	handler *v1.Handler
	bus     events.EventBus
	closers []func() error
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded catalog", "path", path, "monsters", len(cat.Templates()), "areas", cat.AreaCount())
	return cat, nil
}

func newSource(cfg *config.Config) random.Source {
	if cfg.Seed != nil {
		slog.Info("Using seeded random source", "seed", *cfg.Seed)
		return random.NewSeeded(*cfg.Seed)
	}
	return random.NewDiceSource()
}

func newSaveRepo(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, clk clock.Clock) (save.Repository, func() error, error) {
	saveCfg := save.Config{
		Codec: &save.Codec{
			StartingGold: cat.Costs().StartingGold,
			AreaCount:    cat.AreaCount(),
		},
		Clock:     clk,
		Key:       cfg.SaveKey,
		LegacyKey: cfg.LegacySaveKey,
	}

	if cfg.RedisAddr == "" {
		slog.Info("Using in-memory save store")
		repo, err := save.NewInMemory(&saveCfg)
		return repo, func() error { return nil }, err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	repo, err := save.NewRedis(&save.RedisConfig{Config: saveCfg, Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	slog.Info("Using redis save store", "addr", cfg.RedisAddr, "key", cfg.SaveKey)
	return repo, client.Close, nil
}

// subscribeEventLog logs game events worth celebrating
func subscribeEventLog(bus events.EventBus) {
	bus.SubscribeFunc(game.EventDoodleSummoned, 0, func(_ context.Context, e events.Event) error {
		d, ok := e.Source().(*gacha.Doodle)
		if !ok || d.Rarity != gacha.RarityLegendary {
			return nil
		}
		slog.Info("Legendary doodle summoned", "uid", d.UID, "name", d.Name, "vibe", d.Vibe)
		return nil
	})
	bus.SubscribeFunc(game.EventAreaUnlocked, 0, func(_ context.Context, e events.Event) error {
		if area, ok := e.Target().(*game.AreaEntity); ok {
			slog.Info("New area reached", "area", area.Index, "name", area.Area.Name)
		}
		return nil
	})
	bus.SubscribeFunc(game.EventSaveCleared, 0, func(_ context.Context, e events.Event) error {
		slog.Info("Game reset", "session", e.Source().GetID())
		return nil
	})
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	clk := clock.New()

	eng, err := engine.New(&engine.Config{
		Catalog: cat,
		Source:  newSource(cfg),
		Period:  cfg.TickInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	repo, closeRepo, err := newSaveRepo(ctx, cfg, cat, clk)
	if err != nil {
		return nil, fmt.Errorf("failed to create save store: %w", err)
	}
	a := &app{closers: []func() error{closeRepo}}

	a.bus = events.NewBus()
	subscribeEventLog(a.bus)

	a.game, err = game.NewOrchestrator(&game.Config{
		Engine:      eng,
		Catalog:     cat,
		SaveRepo:    repo,
		IDGenerator: idgen.NewUUID("doodle"),
		EventBus:    a.bus,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	if _, err := a.game.Load(ctx, &game.LoadInput{}); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	a.runner, err = idle.NewRunner(&idle.Config{
		Game:     a.game,
		Clock:    clk,
		Interval: cfg.TickInterval,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create idle runner: %w", err)
	}

	sim, err := simulation.NewService(&simulation.Config{Catalog: cat})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create simulation service: %w", err)
	}

	a.handler, err = v1.NewHandler(&v1.HandlerConfig{
		GameService:       a.game,
		SimulationService: sim,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game handler: %w", err)
	}

	return a, nil
}
