package game

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

// Event types published on the event bus
const (
	EventDoodleSummoned = "doodle.summoned"
	EventDoodleEquipped = "doodle.equipped"
	EventSlotUpgraded   = "slot.upgraded"
	EventAreaUnlocked   = "area.unlocked"
	EventSaveCleared    = "save.cleared"
)

// Entity types used as event sources and targets
const (
	EntityTypeSession = "session"
	EntityTypeSlot    = "slot"
	EntityTypeArea    = "area"
)

// SessionEntity is the game session an event belongs to
type SessionEntity struct {
	ID string
}

// GetID implements core.Entity
func (e *SessionEntity) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *SessionEntity) GetType() string { return EntityTypeSession }

// SlotEntity is the target of slot events
type SlotEntity struct {
	Index int
	Level int
}

// GetID implements core.Entity
func (e *SlotEntity) GetID() string { return fmt.Sprintf("slot-%d", e.Index) }

// GetType implements core.Entity
func (e *SlotEntity) GetType() string { return EntityTypeSlot }

// AreaEntity is the target of area events
type AreaEntity struct {
	Index int
	Area  gacha.Area
}

// GetID implements core.Entity
func (e *AreaEntity) GetID() string { return fmt.Sprintf("area-%d", e.Index) }

// GetType implements core.Entity
func (e *AreaEntity) GetType() string { return EntityTypeArea }

var (
	_ core.Entity = (*SessionEntity)(nil)
	_ core.Entity = (*SlotEntity)(nil)
	_ core.Entity = (*AreaEntity)(nil)
)
