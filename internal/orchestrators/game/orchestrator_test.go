package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/engine"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/game"
	"github.com/KirkDiggler/doodle-api/internal/pkg/clock"
	"github.com/KirkDiggler/doodle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/doodle-api/internal/pkg/random"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
	savemock "github.com/KirkDiggler/doodle-api/internal/repositories/save/mock"
	"github.com/KirkDiggler/doodle-api/internal/testutils"
	"github.com/KirkDiggler/doodle-api/internal/testutils/builders"
	"github.com/KirkDiggler/doodle-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *catalog.Catalog
	engine  engine.Engine
	repo    *save.InMemoryRepository
	bus     events.EventBus
	orch    game.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = catalog.Default()

	// Every draw is 0.1: a Common Scrap-Ball with 5/5/5 stats in the first area
	eng, err := engine.New(&engine.Config{
		Catalog: s.catalog,
		Source:  random.NewFixed(0.1),
	})
	s.Require().NoError(err)
	s.engine = eng

	s.repo, err = save.NewInMemory(&save.Config{
		Codec: &save.Codec{StartingGold: gacha.DefaultStartingGold, AreaCount: s.catalog.AreaCount()},
		Clock: clock.NewFixed(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)

	s.bus = events.NewBus()
	s.orch = s.newOrchestrator(s.repo)
}

func (s *OrchestratorTestSuite) newOrchestrator(repo save.Repository) game.Service {
	orch, err := game.NewOrchestrator(&game.Config{
		Engine:      s.engine,
		Catalog:     s.catalog,
		SaveRepo:    repo,
		IDGenerator: idgen.NewSequential("doodle"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
	return orch
}

// seed saves state and loads it into the orchestrator
func (s *OrchestratorTestSuite) seed(state *gacha.ProgressionState) {
	_, err := s.repo.Save(s.ctx, &save.SaveInput{State: state})
	s.Require().NoError(err)
	out, err := s.orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)
	s.Require().True(out.Found)
}

func (s *OrchestratorTestSuite) saved() *gacha.ProgressionState {
	out, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().NoError(err)
	return out.State
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := game.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = game.NewOrchestrator(&game.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Engine")
	s.Contains(err.Error(), "Catalog")
	s.Contains(err.Error(), "SaveRepo")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestLoadWithoutSaveStartsFresh() {
	out, err := s.orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)

	s.False(out.Found)
	s.False(out.Corrupt)
	s.Equal(int64(100), out.View.Gold)
	s.Equal("The Scrap Paper", out.View.Area.Name)
	s.Empty(out.View.Inventory)
	s.Require().Len(out.View.Slots, gacha.SlotCount)
	for _, slot := range out.View.Slots {
		s.Equal(1, slot.Level)
		s.Nil(slot.Doodle)
	}
}

func (s *OrchestratorTestSuite) TestLoadRestoresSavedGame() {
	s.seed(testutils.CreateTestState(testutils.StageEquipped))

	out, err := s.orch.GetState(s.ctx, &game.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(42.5, out.State.Gold)
	s.Equal(int64(42), out.View.Gold)
	s.Require().NotNil(out.View.Slots[0].Doodle)
	s.Equal("doodle-1", out.View.Slots[0].Doodle.UID)
	s.Equal(400.0, out.View.Slots[0].UpgradeCost)
}

func (s *OrchestratorTestSuite) TestLoadMigratesLegacySave() {
	s.repo.Put(save.DefaultLegacyKey, []byte(`{"gold": 77, "inventory": [], "areaIndex": 0, "areasUnlocked": 0}`))

	out, err := s.orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)
	s.True(out.Found)
	s.True(out.Legacy)
	s.Equal(int64(77), out.View.Gold)

	reloaded, err := s.repo.Load(s.ctx, &save.LoadInput{})
	s.Require().NoError(err)
	s.False(reloaded.Legacy)
	s.Equal(save.DefaultKey, reloaded.Key)
}

func (s *OrchestratorTestSuite) TestLoadCorruptSaveFallsBackToDefaults() {
	s.repo.Put(save.DefaultKey, []byte("{not json"))

	out, err := s.orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)
	s.True(out.Corrupt)
	s.False(out.Found)
	s.Equal(int64(100), out.View.Gold)
}

func (s *OrchestratorTestSuite) TestLoadStorageFailure() {
	ctrl := gomock.NewController(s.T())
	repo := savemock.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("connection refused"))

	_, err := s.newOrchestrator(repo).Load(s.ctx, &game.LoadInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSummonUntilBroke() {
	for i := 0; i < 10; i++ {
		out, err := s.orch.Summon(s.ctx, &game.SummonInput{})
		s.Require().NoError(err)
		s.Equal(10.0, out.Cost)
		s.Equal(float64(90-i*10), out.Balance)
	}

	_, err := s.orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().Error(err)
	s.True(errors.IsInsufficientFunds(err))
	s.Equal(10.0, errors.GetMeta(err)["cost"])
	s.Equal(0.0, errors.GetMeta(err)["balance"])

	out, err := s.orch.GetState(s.ctx, &game.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(0.0, out.State.Gold)
	s.Len(out.State.Inventory, 10)
	s.Len(s.saved().Inventory, 10)
}

func (s *OrchestratorTestSuite) TestSummonRevealsDoodle() {
	out, err := s.orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().NoError(err)

	s.Equal("doodle_1", out.Doodle.UID)
	s.Equal("Scrap-Ball", out.Doodle.Name)
	s.Equal(gacha.RarityCommon, out.Doodle.Rarity)
	s.Equal(gacha.Stats{Attack: 5, Defense: 5, Speed: 5}, out.Doodle.Stats)
	s.Equal(15, out.Doodle.Vibe)

	s.Require().Len(out.View.Inventory, 1)
	s.False(out.View.Inventory[0].Equipped)
	s.Equal(int64(90), out.View.Gold)
}

func (s *OrchestratorTestSuite) TestSummonPublishesEvent() {
	var received []events.Event
	s.bus.SubscribeFunc(game.EventDoodleSummoned, 0, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	_, err := s.orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().NoError(err)

	s.Require().Len(received, 1)
	s.Equal(game.EventDoodleSummoned, received[0].Type())
	s.Equal("doodle_1", received[0].Source().GetID())
	s.Equal(gacha.EntityTypeDoodle, received[0].Source().GetType())
}

func (s *OrchestratorTestSuite) TestSummonCostScalesWithArea() {
	s.seed(builders.NewStateBuilder().WithGold(100).WithAreas(2, 2).Build())

	out, err := s.orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().NoError(err)
	s.Equal(30.0, out.Cost)
	s.Equal(70.0, out.Balance)
	// Art Studio triples the base stats
	s.Equal(gacha.Stats{Attack: 16, Defense: 16, Speed: 16}, out.Doodle.Stats)
}

func (s *OrchestratorTestSuite) TestEquipFillsSlotsThenOverwritesFirst() {
	s.seed(builders.NewStateBuilder().WithDoodles(4, 30).Build())

	for i, uid := range []string{"doodle-1", "doodle-2", "doodle-3"} {
		out, err := s.orch.Equip(s.ctx, &game.EquipInput{DoodleID: uid})
		s.Require().NoError(err)
		s.True(out.Changed)
		s.Equal(i, out.SlotIndex)
	}

	out, err := s.orch.Equip(s.ctx, &game.EquipInput{DoodleID: "doodle-4"})
	s.Require().NoError(err)
	s.Equal(0, out.SlotIndex)

	s.Equal("doodle-4", out.View.Slots[0].Doodle.UID)
	// newest first
	s.Equal("doodle-4", out.View.Inventory[0].Doodle.UID)
	s.True(out.View.Inventory[0].Equipped)
	s.Equal("doodle-1", out.View.Inventory[3].Doodle.UID)
	s.False(out.View.Inventory[3].Equipped)

	s.Equal("doodle-4", s.saved().Slots[0].EquippedID)
}

func (s *OrchestratorTestSuite) TestEquipAlreadyEquipped() {
	s.seed(testutils.CreateTestState(testutils.StageEquipped))

	out, err := s.orch.Equip(s.ctx, &game.EquipInput{DoodleID: "doodle-2"})
	s.Require().NoError(err)
	s.False(out.Changed)
	s.Equal(1, out.SlotIndex)
}

func (s *OrchestratorTestSuite) TestEquipErrors() {
	_, err := s.orch.Equip(s.ctx, &game.EquipInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.Equip(s.ctx, &game.EquipInput{DoodleID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUnequip() {
	s.seed(testutils.CreateTestState(testutils.StageEquipped))

	out, err := s.orch.Unequip(s.ctx, &game.UnequipInput{SlotIndex: 1})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Nil(out.View.Slots[1].Doodle)
	s.Empty(s.saved().Slots[1].EquippedID)

	out, err = s.orch.Unequip(s.ctx, &game.UnequipInput{SlotIndex: 2})
	s.Require().NoError(err)
	s.False(out.Changed)

	_, err = s.orch.Unequip(s.ctx, &game.UnequipInput{SlotIndex: 3})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpgradeSlot() {
	s.seed(builders.NewStateBuilder().WithGold(650).Build())

	out, err := s.orch.UpgradeSlot(s.ctx, &game.UpgradeSlotInput{SlotIndex: 0})
	s.Require().NoError(err)
	s.Equal(2, out.Level)
	s.Equal(200.0, out.Cost)
	s.Equal(400.0, out.NextCost)
	s.Equal(int64(450), out.View.Gold)

	out, err = s.orch.UpgradeSlot(s.ctx, &game.UpgradeSlotInput{SlotIndex: 0})
	s.Require().NoError(err)
	s.Equal(3, out.Level)

	_, err = s.orch.UpgradeSlot(s.ctx, &game.UpgradeSlotInput{SlotIndex: 0})
	s.True(errors.IsInsufficientFunds(err))

	state := s.saved()
	s.Equal(50.0, state.Gold)
	s.Equal(3, state.Slots[0].Level)
}

func (s *OrchestratorTestSuite) TestUpgradeSlotOutOfRange() {
	_, err := s.orch.UpgradeSlot(s.ctx, &game.UpgradeSlotInput{SlotIndex: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnlockAndTravel() {
	var unlocked []events.Event
	s.bus.SubscribeFunc(game.EventAreaUnlocked, 0, func(_ context.Context, e events.Event) error {
		unlocked = append(unlocked, e)
		return nil
	})
	s.seed(builders.NewStateBuilder().WithGold(600).Build())

	out, err := s.orch.UnlockNextArea(s.ctx, &game.UnlockNextAreaInput{})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(1, out.AreaIndex)
	s.Equal(500.0, out.Cost)
	s.Equal("School Notebook", out.View.Area.Name)
	s.Equal(20.0, out.View.SummonCost)
	s.Require().NotNil(out.View.NextUnlock)
	s.Equal("Unlock Next ($2500)", out.View.NextUnlock.Label)
	s.True(out.View.CanGoBack)
	s.False(out.View.CanGoForward)

	s.Require().Len(unlocked, 1)
	s.Equal("area-1", unlocked[0].Target().GetID())

	_, err = s.orch.UnlockNextArea(s.ctx, &game.UnlockNextAreaInput{})
	s.True(errors.IsInsufficientFunds(err))

	moved, err := s.orch.ChangeArea(s.ctx, &game.ChangeAreaInput{Direction: -1})
	s.Require().NoError(err)
	s.True(moved.Changed)
	s.Equal(0, moved.AreaIndex)
	s.True(moved.View.CanGoForward)

	moved, err = s.orch.ChangeArea(s.ctx, &game.ChangeAreaInput{Direction: -1})
	s.Require().NoError(err)
	s.False(moved.Changed)

	_, err = s.orch.ChangeArea(s.ctx, &game.ChangeAreaInput{Direction: 2})
	s.True(errors.IsInvalidArgument(err))

	state := s.saved()
	s.Equal(0, state.AreaIndex)
	s.Equal(1, state.UnlockedAreaIndex)
	s.Equal(100.0, state.Gold)
}

func (s *OrchestratorTestSuite) TestUnlockWhenEverythingUnlocked() {
	s.seed(builders.NewStateBuilder().WithGold(5000).WithAreas(2, 2).Build())

	out, err := s.orch.UnlockNextArea(s.ctx, &game.UnlockNextAreaInput{})
	s.Require().NoError(err)
	s.False(out.Changed)
	s.Nil(out.View.NextUnlock)
	s.Equal(int64(5000), out.View.Gold)
}

func (s *OrchestratorTestSuite) TestTickCreditsIncome() {
	s.seed(testutils.CreateTestState(testutils.StageEquipped))

	out, err := s.orch.Tick(s.ctx, &game.TickInput{})
	s.Require().NoError(err)
	s.Equal(20, out.Income)
	s.Equal(62.5, out.Balance)
	s.Equal(62.5, s.saved().Gold)

	state, err := s.orch.GetState(s.ctx, &game.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(20, state.View.LastIncome)
}

func (s *OrchestratorTestSuite) TestTickWithNothingEquipped() {
	out, err := s.orch.Tick(s.ctx, &game.TickInput{})
	s.Require().NoError(err)
	s.Equal(0, out.Income)
	s.Equal(100.0, out.Balance)
}

func (s *OrchestratorTestSuite) TestAdvanceCarriesPartialPeriods() {
	s.seed(testutils.CreateTestState(testutils.StageEquipped))

	out, err := s.orch.Advance(s.ctx, &game.AdvanceInput{Elapsed: 1500 * time.Millisecond})
	s.Require().NoError(err)
	s.Equal(1, out.Ticks)
	s.Equal(20, out.Credited)
	s.Equal(500*time.Millisecond, out.Carry)

	out, err = s.orch.Advance(s.ctx, &game.AdvanceInput{Elapsed: 600 * time.Millisecond})
	s.Require().NoError(err)
	s.Equal(1, out.Ticks)
	s.Equal(100*time.Millisecond, out.Carry)
	s.Equal(82.5, out.Balance)

	_, err = s.orch.Advance(s.ctx, &game.AdvanceInput{Elapsed: -time.Second})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestClearSave() {
	var cleared int
	s.bus.SubscribeFunc(game.EventSaveCleared, 0, func(_ context.Context, _ events.Event) error {
		cleared++
		return nil
	})
	s.seed(testutils.CreateTestState(testutils.StageLateGame))

	out, err := s.orch.ClearSave(s.ctx, &game.ClearSaveInput{})
	s.Require().NoError(err)
	s.Equal(1, out.KeysDeleted)
	s.Equal(int64(100), out.View.Gold)
	s.Empty(out.View.Inventory)
	s.Equal(0, out.View.Area.Index)
	s.Equal(1, cleared)

	_, err = s.repo.Load(s.ctx, &save.LoadInput{})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSaveFailureDoesNotUndoMutation() {
	ctrl := gomock.NewController(s.T())
	repo := savemock.NewMockRepository(ctrl)
	mocks.ExpectSaveFailure(repo, errors.Unavailable("redis unavailable"))

	orch := s.newOrchestrator(repo)
	out, err := orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().NoError(err)
	s.Equal(90.0, out.Balance)
	s.Equal("redis unavailable", out.View.SaveWarning)
	s.Len(out.View.Inventory, 1)
}

func (s *OrchestratorTestSuite) TestGetStateReturnsCopy() {
	out, err := s.orch.GetState(s.ctx, &game.GetStateInput{})
	s.Require().NoError(err)
	out.State.Gold = 1e9

	again, err := s.orch.GetState(s.ctx, &game.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(100.0, again.State.Gold)
}

func (s *OrchestratorTestSuite) TestNilInputs() {
	_, err := s.orch.Summon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orch.Tick(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orch.Load(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEveryMutationSaves() {
	ctrl := gomock.NewController(s.T())
	repo := savemock.NewMockRepository(ctrl)
	state := builders.NewStateBuilder().WithGold(1000).Build()

	var balances []float64
	gomock.InOrder(
		mocks.ExpectLoadState(s.ctx, repo, state),
		mocks.ExpectSaves(repo, &balances),
	)

	orch := s.newOrchestrator(repo)
	loaded, err := orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)
	s.True(loaded.Found)
	s.Empty(balances)

	_, err = orch.Summon(s.ctx, &game.SummonInput{})
	s.Require().NoError(err)
	_, err = orch.UpgradeSlot(s.ctx, &game.UpgradeSlotInput{SlotIndex: 0})
	s.Require().NoError(err)

	s.Equal([]float64{990, 790}, balances)
}

func (s *OrchestratorTestSuite) TestLoadMissingDoesNotSave() {
	ctrl := gomock.NewController(s.T())
	repo := savemock.NewMockRepository(ctrl)
	mocks.ExpectLoadMissing(s.ctx, repo)

	orch := s.newOrchestrator(repo)
	out, err := orch.Load(s.ctx, &game.LoadInput{})
	s.Require().NoError(err)
	s.False(out.Found)
	s.Equal(int64(gacha.DefaultStartingGold), out.View.Gold)
}
