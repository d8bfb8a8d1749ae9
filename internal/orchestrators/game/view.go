package game

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/doodle-api/internal/catalog"
	"github.com/KirkDiggler/doodle-api/internal/engine"
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

// View carries everything a client needs to render the game after a change
type View struct {
	// Gold is the floored balance
	Gold       int64
	SummonCost float64
	Area       AreaView
	// NextUnlock is nil when every area is unlocked
	NextUnlock   *UnlockView
	CanGoBack    bool
	CanGoForward bool
	Slots        []SlotView
	// Inventory is newest first
	Inventory []InventoryItem
	// LastIncome is the income of the most recent tick
	LastIncome int
	// SaveWarning is set when the last save attempt failed
	SaveWarning string
}

// AreaView describes the active area
type AreaView struct {
	Index          int
	Name           string
	LuckMultiplier float64
	StatMultiplier float64
}

// UnlockView describes the next locked area
type UnlockView struct {
	Index int
	Name  string
	Cost  float64
	Label string
}

// SlotView is one equipment bay. Doodle is nil for an empty slot.
type SlotView struct {
	Index       int
	Level       int
	UpgradeCost float64
	Doodle      *gacha.Doodle
}

// InventoryItem is an owned doodle and where it is equipped
type InventoryItem struct {
	Doodle    *gacha.Doodle
	Equipped  bool
	SlotIndex int
}

func buildView(state *gacha.ProgressionState, eng engine.Engine, cat *catalog.Catalog, lastIncome int, saveWarning string) *View {
	v := &View{
		Gold:        int64(math.Floor(state.Gold)),
		SummonCost:  eng.SummonCost(state.AreaIndex),
		LastIncome:  lastIncome,
		SaveWarning: saveWarning,
		Slots:       make([]SlotView, 0, gacha.SlotCount),
		Inventory:   make([]InventoryItem, 0, len(state.Inventory)),
	}

	if area, ok := cat.Area(state.AreaIndex); ok {
		v.Area = AreaView{
			Index:          state.AreaIndex,
			Name:           area.Name,
			LuckMultiplier: area.LuckMultiplier,
			StatMultiplier: area.StatMultiplier,
		}
	}
	next := state.UnlockedAreaIndex + 1
	if area, ok := cat.Area(next); ok {
		v.NextUnlock = &UnlockView{
			Index: next,
			Name:  area.Name,
			Cost:  area.Cost,
			Label: fmt.Sprintf("Unlock Next ($%g)", area.Cost),
		}
	}
	v.CanGoBack = state.AreaIndex > 0
	v.CanGoForward = state.AreaIndex < state.UnlockedAreaIndex

	for i, slot := range state.Slots {
		sv := SlotView{
			Index:       i,
			Level:       slot.Level,
			UpgradeCost: eng.UpgradeCost(slot.Level),
		}
		if d, ok := state.ResolveSlot(i); ok {
			sv.Doodle = d
		}
		v.Slots = append(v.Slots, sv)
	}

	for i := len(state.Inventory) - 1; i >= 0; i-- {
		d := state.Inventory[i]
		slot, equipped := state.EquippedSlot(d.UID)
		v.Inventory = append(v.Inventory, InventoryItem{
			Doodle:    d,
			Equipped:  equipped,
			SlotIndex: slot,
		})
	}

	return v
}
