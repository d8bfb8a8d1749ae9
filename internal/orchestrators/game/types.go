package game

import (
	"time"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

// LoadInput defines the request for restoring the saved game
type LoadInput struct{}

// LoadOutput defines the response for restoring the saved game
type LoadOutput struct {
	View *View
	// Found is false when the game started from defaults
	Found bool
	// Legacy is true when the save was read from the legacy key and migrated
	Legacy bool
	// Corrupt is true when an unreadable save was replaced by defaults
	Corrupt bool
}

// GetStateInput defines the request for reading the game
type GetStateInput struct{}

// GetStateOutput defines the response for reading the game
type GetStateOutput struct {
	State *gacha.ProgressionState
	View  *View
}

// SummonInput defines the request for summoning a doodle
type SummonInput struct{}

// SummonOutput defines the response for summoning a doodle
type SummonOutput struct {
	// Doodle is the newly summoned doodle for the reveal
	Doodle  *gacha.Doodle
	Cost    float64
	Balance float64
	View    *View
}

// EquipInput defines the request for equipping a doodle
type EquipInput struct {
	DoodleID string
}

// EquipOutput defines the response for equipping a doodle
type EquipOutput struct {
	SlotIndex int
	// Changed is false when the doodle was already equipped
	Changed bool
	View    *View
}

// UnequipInput defines the request for clearing a slot
type UnequipInput struct {
	SlotIndex int
}

// UnequipOutput defines the response for clearing a slot
type UnequipOutput struct {
	Changed bool
	View    *View
}

// UpgradeSlotInput defines the request for upgrading a slot
type UpgradeSlotInput struct {
	SlotIndex int
}

// UpgradeSlotOutput defines the response for upgrading a slot
type UpgradeSlotOutput struct {
	Level    int
	Cost     float64
	NextCost float64
	View     *View
}

// ChangeAreaInput defines the request for moving between unlocked areas
type ChangeAreaInput struct {
	// Direction is -1 or 1
	Direction int
}

// ChangeAreaOutput defines the response for moving between unlocked areas
type ChangeAreaOutput struct {
	AreaIndex int
	Changed   bool
	View      *View
}

// UnlockNextAreaInput defines the request for unlocking the next area
type UnlockNextAreaInput struct{}

// UnlockNextAreaOutput defines the response for unlocking the next area
type UnlockNextAreaOutput struct {
	AreaIndex int
	// Changed is false when every area is already unlocked
	Changed bool
	Cost    float64
	View    *View
}

// ClearSaveInput defines the request for wiping the saved game
type ClearSaveInput struct{}

// ClearSaveOutput defines the response for wiping the saved game
type ClearSaveOutput struct {
	KeysDeleted int
	View        *View
}

// TickInput defines the request for one accrual period
type TickInput struct{}

// TickOutput defines the response for one accrual period
type TickOutput struct {
	Income  int
	Balance float64
}

// AdvanceInput defines the request for accruing elapsed wall-clock time
type AdvanceInput struct {
	Elapsed time.Duration
}

// AdvanceOutput defines the response for accruing elapsed wall-clock time
type AdvanceOutput struct {
	Ticks    int
	Credited int
	Balance  float64
	// Carry is the time left over until the next whole period
	Carry time.Duration
}
