// Package game implements the game orchestrator that owns the progression
// state of a single player session
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/doodle-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/engine"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
)

// DefaultSessionID identifies the single local session
const DefaultSessionID = "local"

// Service defines the interface for game operations
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Player actions
	Summon(ctx context.Context, input *SummonInput) (*SummonOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)
	UpgradeSlot(ctx context.Context, input *UpgradeSlotInput) (*UpgradeSlotOutput, error)
	ChangeArea(ctx context.Context, input *ChangeAreaInput) (*ChangeAreaOutput, error)
	UnlockNextArea(ctx context.Context, input *UnlockNextAreaInput) (*UnlockNextAreaOutput, error)
	ClearSave(ctx context.Context, input *ClearSaveInput) (*ClearSaveOutput, error)

	// Idle income
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Engine      engine.Engine
	Catalog     *catalog.Catalog
	SaveRepo    save.Repository
	IDGenerator idgen.Generator
	// EventBus is optional. Events are not published when it is nil.
	EventBus  events.EventBus
	SessionID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   engine.Engine
	catalog  *catalog.Catalog
	saveRepo save.Repository
	idGen    idgen.Generator
	eventBus events.EventBus
	session  *SessionEntity

	// mu serializes every read and mutation of the fields below
	mu          sync.Mutex
	state       *gacha.ProgressionState
	lastIncome  int
	carry       time.Duration
	saveWarning string
}

// NewOrchestrator creates a new game orchestrator starting from a fresh
// state. Call Load to restore a saved game.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	return &orchestrator{
		engine:   cfg.Engine,
		catalog:  cfg.Catalog,
		saveRepo: cfg.SaveRepo,
		idGen:    cfg.IDGenerator,
		eventBus: cfg.EventBus,
		session:  &SessionEntity{ID: sessionID},
		state:    gacha.NewProgressionState(cfg.Catalog.Costs().StartingGold),
	}, nil
}

func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loaded, err := o.saveRepo.Load(ctx, &save.LoadInput{})
	output := &LoadOutput{}

	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case err == nil:
		o.state = loaded.State
		output.Found = true
		output.Legacy = loaded.Legacy
		slog.Info("Loaded saved game",
			"key", loaded.Key,
			"version", loaded.Version,
			"gold", loaded.State.Gold,
			"inventory", len(loaded.State.Inventory))
	case errors.IsNotFound(err):
		o.state = o.freshState()
		slog.Info("No saved game, starting fresh", "gold", o.state.Gold)
	case errors.GetCode(err) == errors.CodeDataLoss:
		o.state = o.freshState()
		output.Corrupt = true
		slog.Warn("Saved game is unreadable, starting fresh", "error", err)
	default:
		return nil, errors.Wrap(err, "failed to load saved game")
	}

	o.lastIncome = 0
	o.carry = 0

	if output.Legacy {
		o.persist(ctx)
	}

	output.View = o.view()
	return output, nil
}

func (o *orchestrator) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetStateOutput{
		State: o.state.Clone(),
		View:  o.view(),
	}, nil
}

func (o *orchestrator) Summon(ctx context.Context, input *SummonInput) (*SummonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()

	cost := o.engine.SummonCost(o.state.AreaIndex)
	if !o.state.CanAfford(cost) {
		balance := o.state.Gold
		o.mu.Unlock()
		slog.Debug("Summon rejected", "cost", cost, "balance", balance)
		return nil, errors.InsufficientFunds(gacha.ActionSummon, cost, balance)
	}

	rolled, err := o.engine.NewDoodle(&engine.NewDoodleInput{
		UID:       o.idGen.Generate(),
		AreaIndex: o.state.AreaIndex,
	})
	if err != nil {
		o.mu.Unlock()
		return nil, errors.Wrap(err, "failed to summon doodle")
	}

	if err := o.state.Spend(gacha.ActionSummon, cost); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	o.state.AddDoodle(rolled.Doodle)
	o.persist(ctx)

	revealed := *rolled.Doodle
	output := &SummonOutput{
		Doodle:  &revealed,
		Cost:    cost,
		Balance: o.state.Gold,
		View:    o.view(),
	}
	o.mu.Unlock()

	slog.Info("Doodle summoned",
		"uid", rolled.Doodle.UID,
		"template", rolled.Doodle.TemplateID,
		"rarity", rolled.Doodle.Rarity.String(),
		"vibe", rolled.Doodle.Vibe,
		"cost", cost)

	o.publish(ctx, events.NewGameEvent(EventDoodleSummoned, rolled.Doodle, o.session))

	return output, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DoodleID == "" {
		return nil, errors.InvalidArgument("doodle ID is required")
	}

	o.mu.Lock()

	slot, changed, err := o.state.Equip(input.DoodleID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if changed {
		o.persist(ctx)
	}

	doodle, _ := o.state.FindDoodle(input.DoodleID)
	target := &SlotEntity{Index: slot, Level: o.state.Slots[slot].Level}
	output := &EquipOutput{
		SlotIndex: slot,
		Changed:   changed,
		View:      o.view(),
	}
	o.mu.Unlock()

	if changed {
		slog.Info("Doodle equipped", "uid", input.DoodleID, "slot", slot)
		o.publish(ctx, events.NewGameEvent(EventDoodleEquipped, doodle, target))
	}

	return output, nil
}

func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	changed, err := o.state.Unequip(input.SlotIndex)
	if err != nil {
		return nil, err
	}
	if changed {
		o.persist(ctx)
		slog.Info("Slot cleared", "slot", input.SlotIndex)
	}

	return &UnequipOutput{
		Changed: changed,
		View:    o.view(),
	}, nil
}

func (o *orchestrator) UpgradeSlot(ctx context.Context, input *UpgradeSlotInput) (*UpgradeSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SlotIndex < 0 || input.SlotIndex >= gacha.SlotCount {
		return nil, errors.InvalidArgumentf("slot index %d out of range", input.SlotIndex)
	}

	o.mu.Lock()

	cost := o.engine.UpgradeCost(o.state.Slots[input.SlotIndex].Level)
	level, err := o.state.UpgradeSlot(input.SlotIndex, cost)
	if err != nil {
		o.mu.Unlock()
		slog.Debug("Slot upgrade rejected", "slot", input.SlotIndex, "cost", cost, "error", err)
		return nil, err
	}
	o.persist(ctx)

	output := &UpgradeSlotOutput{
		Level:    level,
		Cost:     cost,
		NextCost: o.engine.UpgradeCost(level),
		View:     o.view(),
	}
	o.mu.Unlock()

	slog.Info("Slot upgraded", "slot", input.SlotIndex, "level", level, "cost", cost)
	o.publish(ctx, events.NewGameEvent(EventSlotUpgraded, o.session,
		&SlotEntity{Index: input.SlotIndex, Level: level}))

	return output, nil
}

func (o *orchestrator) ChangeArea(ctx context.Context, input *ChangeAreaInput) (*ChangeAreaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	changed, err := o.state.ChangeArea(input.Direction, o.catalog.AreaCount())
	if err != nil {
		return nil, err
	}
	if changed {
		o.persist(ctx)
		slog.Info("Area changed", "area", o.state.AreaIndex)
	}

	return &ChangeAreaOutput{
		AreaIndex: o.state.AreaIndex,
		Changed:   changed,
		View:      o.view(),
	}, nil
}

func (o *orchestrator) UnlockNextArea(ctx context.Context, input *UnlockNextAreaInput) (*UnlockNextAreaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()

	areas := o.catalog.Areas()
	next := o.state.UnlockedAreaIndex + 1
	changed, err := o.state.UnlockNextArea(areas)
	if err != nil {
		o.mu.Unlock()
		slog.Debug("Area unlock rejected", "area", next, "error", err)
		return nil, err
	}

	output := &UnlockNextAreaOutput{
		AreaIndex: o.state.AreaIndex,
		Changed:   changed,
	}
	if changed {
		output.Cost = areas[next].Cost
		o.persist(ctx)
	}
	output.View = o.view()
	o.mu.Unlock()

	if changed {
		slog.Info("Area unlocked", "area", next, "name", areas[next].Name, "cost", output.Cost)
		o.publish(ctx, events.NewGameEvent(EventAreaUnlocked, o.session,
			&AreaEntity{Index: next, Area: areas[next]}))
	}

	return output, nil
}

func (o *orchestrator) ClearSave(ctx context.Context, input *ClearSaveInput) (*ClearSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()

	deleted := 0
	o.saveWarning = ""
	out, err := o.saveRepo.Delete(ctx, &save.DeleteInput{})
	if err != nil {
		o.saveWarning = errors.GetMessage(err)
		slog.Warn("Failed to delete saved game", "error", err)
	} else {
		deleted = out.Deleted
	}

	o.state = o.freshState()
	o.lastIncome = 0
	o.carry = 0

	output := &ClearSaveOutput{
		KeysDeleted: deleted,
		View:        o.view(),
	}
	o.mu.Unlock()

	slog.Info("Saved game cleared", "keys_deleted", deleted)
	o.publish(ctx, events.NewGameEvent(EventSaveCleared, o.session, nil))

	return output, nil
}

func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	income := o.engine.Income(o.state)
	o.state.Credit(float64(income))
	o.lastIncome = income
	o.persist(ctx)

	return &TickOutput{
		Income:  income,
		Balance: o.state.Gold,
	}, nil
}

func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	accrued, err := o.engine.Accrue(&engine.AccrueInput{
		State:   o.state,
		Elapsed: input.Elapsed,
		Carry:   o.carry,
	})
	if err != nil {
		return nil, err
	}

	o.state = accrued.State
	o.carry = accrued.Carry
	if accrued.Ticks > 0 {
		o.lastIncome = accrued.IncomePerTick
		o.persist(ctx)
		slog.Debug("Accrued idle income",
			"ticks", accrued.Ticks,
			"credited", accrued.Credited,
			"carry", accrued.Carry)
	}

	return &AdvanceOutput{
		Ticks:    accrued.Ticks,
		Credited: accrued.Credited,
		Balance:  o.state.Gold,
		Carry:    accrued.Carry,
	}, nil
}

func (o *orchestrator) freshState() *gacha.ProgressionState {
	return gacha.NewProgressionState(o.catalog.Costs().StartingGold)
}

// persist writes the current state. Failures are logged and surfaced on the
// view but never undo the mutation. Callers must hold mu.
func (o *orchestrator) persist(ctx context.Context) {
	if _, err := o.saveRepo.Save(ctx, &save.SaveInput{State: o.state}); err != nil {
		o.saveWarning = errors.GetMessage(err)
		slog.Warn("Failed to save game", "error", err)
		return
	}
	o.saveWarning = ""
}

// view builds the presentation snapshot. Callers must hold mu.
func (o *orchestrator) view() *View {
	return buildView(o.state.Clone(), o.engine, o.catalog, o.lastIncome, o.saveWarning)
}

func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event", "type", event.Type(), "error", err)
	}
}
