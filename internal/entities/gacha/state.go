package gacha

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/doodle-api/internal/errors"
)

const (
	// SlotCount is the fixed number of equipment slots
	SlotCount = 3
	// DefaultStartingGold is the balance of a fresh game
	DefaultStartingGold = 100
)

// Actions named in insufficient funds errors
const (
	ActionSummon      = "summon"
	ActionUpgradeSlot = "upgrade slot"
	ActionUnlockArea  = "unlock next area"
)

// ProgressionState is the single mutable aggregate of a game session.
// It is not safe for concurrent use; callers serialize access.
type ProgressionState struct {
	Gold              float64
	Inventory         []*Doodle
	Slots             [SlotCount]Slot
	AreaIndex         int
	UnlockedAreaIndex int
}

// NewProgressionState returns a fresh game with every slot at level 1
func NewProgressionState(startingGold float64) *ProgressionState {
	s := &ProgressionState{
		Gold:      startingGold,
		Inventory: []*Doodle{},
	}
	for i := range s.Slots {
		s.Slots[i].Level = 1
	}
	return s
}

// Clone returns a deep copy. Doodles are immutable so the pointers are shared.
func (s *ProgressionState) Clone() *ProgressionState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Inventory = make([]*Doodle, len(s.Inventory))
	copy(cp.Inventory, s.Inventory)
	return &cp
}

// FindDoodle looks a doodle up by its unique id
func (s *ProgressionState) FindDoodle(uid string) (*Doodle, bool) {
	if uid == "" {
		return nil, false
	}
	for _, d := range s.Inventory {
		if d != nil && d.UID == uid {
			return d, true
		}
	}
	return nil, false
}

// ResolveSlot returns the doodle equipped in slot i. An empty slot, an index
// out of range and a reference missing from the inventory all resolve to
// (nil, false).
func (s *ProgressionState) ResolveSlot(i int) (*Doodle, bool) {
	if i < 0 || i >= SlotCount {
		return nil, false
	}
	return s.FindDoodle(s.Slots[i].EquippedID)
}

// EquippedSlot returns the slot holding uid
func (s *ProgressionState) EquippedSlot(uid string) (int, bool) {
	if uid == "" {
		return -1, false
	}
	for i, slot := range s.Slots {
		if slot.EquippedID == uid {
			return i, true
		}
	}
	return -1, false
}

// IsEquipped reports whether uid occupies any slot
func (s *ProgressionState) IsEquipped(uid string) bool {
	_, ok := s.EquippedSlot(uid)
	return ok
}

// CanAfford reports whether the balance covers cost
func (s *ProgressionState) CanAfford(cost float64) bool {
	return s.Gold >= cost
}

// Spend deducts cost or returns an insufficient funds error leaving the
// balance untouched.
func (s *ProgressionState) Spend(action string, cost float64) error {
	if cost < 0 {
		return errors.InvalidArgumentf("cost of %s must not be negative", action)
	}
	if !s.CanAfford(cost) {
		return errors.InsufficientFunds(action, cost, s.Gold)
	}
	s.Gold -= cost
	return nil
}

// Credit adds income. Non-positive amounts are ignored.
func (s *ProgressionState) Credit(amount float64) {
	if amount > 0 {
		s.Gold += amount
	}
}

// AddDoodle appends to the inventory
func (s *ProgressionState) AddDoodle(d *Doodle) {
	s.Inventory = append(s.Inventory, d)
}

// Equip places uid in the first empty slot, or overwrites slot 0 when every
// slot is occupied. A doodle already in a slot stays where it is.
func (s *ProgressionState) Equip(uid string) (int, bool, error) {
	if _, ok := s.FindDoodle(uid); !ok {
		return -1, false, errors.NotFoundf("doodle %s not in inventory", uid)
	}

	if slot, ok := s.EquippedSlot(uid); ok {
		return slot, false, nil
	}

	target := 0
	for i := range s.Slots {
		if _, occupied := s.ResolveSlot(i); !occupied {
			target = i
			break
		}
	}

	s.Slots[target].EquippedID = uid
	return target, true, nil
}

// Unequip clears a slot. Clearing an empty slot is not an error.
func (s *ProgressionState) Unequip(slot int) (bool, error) {
	if err := validateSlotIndex(slot); err != nil {
		return false, err
	}
	if s.Slots[slot].Empty() {
		return false, nil
	}
	s.Slots[slot].EquippedID = ""
	return true, nil
}

// UpgradeSlot pays cost and raises the slot level by one
func (s *ProgressionState) UpgradeSlot(slot int, cost float64) (int, error) {
	if err := validateSlotIndex(slot); err != nil {
		return 0, err
	}
	if err := s.Spend(ActionUpgradeSlot, cost); err != nil {
		return s.Slots[slot].Level, err
	}
	s.Slots[slot].Level++
	return s.Slots[slot].Level, nil
}

// ChangeArea moves the active area one step. Moving outside the unlocked
// range is a no-op.
func (s *ProgressionState) ChangeArea(direction, areaCount int) (bool, error) {
	if direction != -1 && direction != 1 {
		return false, errors.InvalidArgumentf("direction must be -1 or 1, got %d", direction)
	}

	next := s.AreaIndex + direction
	if next < 0 || next > s.UnlockedAreaIndex || next >= areaCount {
		return false, nil
	}
	s.AreaIndex = next
	return true, nil
}

// UnlockNextArea pays for the area after the highest unlocked one and moves
// to it. Returns false when every area is already unlocked.
func (s *ProgressionState) UnlockNextArea(areas []Area) (bool, error) {
	next := s.UnlockedAreaIndex + 1
	if next >= len(areas) {
		return false, nil
	}
	if err := s.Spend(ActionUnlockArea, areas[next].Cost); err != nil {
		return false, err
	}
	s.UnlockedAreaIndex = next
	s.AreaIndex = next
	return true, nil
}

// Normalize repairs a state decoded from an older or hand edited save so the
// aggregate invariants hold.
func (s *ProgressionState) Normalize(areaCount int) {
	if s.Gold < 0 || math.IsNaN(s.Gold) || math.IsInf(s.Gold, 0) {
		s.Gold = 0
	}

	inventory := make([]*Doodle, 0, len(s.Inventory))
	for _, d := range s.Inventory {
		if d != nil {
			inventory = append(inventory, d)
		}
	}
	s.Inventory = inventory

	seen := make(map[string]bool, SlotCount)
	for i := range s.Slots {
		if s.Slots[i].Level < 1 {
			s.Slots[i].Level = 1
		}
		id := s.Slots[i].EquippedID
		if id == "" {
			continue
		}
		if seen[id] {
			s.Slots[i].EquippedID = ""
			continue
		}
		seen[id] = true
	}

	maxIndex := areaCount - 1
	if maxIndex < 0 {
		maxIndex = 0
	}
	s.UnlockedAreaIndex = clamp(s.UnlockedAreaIndex, 0, maxIndex)
	s.AreaIndex = clamp(s.AreaIndex, 0, s.UnlockedAreaIndex)
}

// Validate reports every broken aggregate invariant
func (s *ProgressionState) Validate(areaCount int) error {
	vb := errors.NewValidationBuilder()

	if s.Gold < 0 {
		vb.Field("gold", "must not be negative")
	}
	if s.UnlockedAreaIndex < 0 || s.UnlockedAreaIndex >= areaCount {
		vb.Fieldf("unlocked_area_index", "must be between 0 and %d", areaCount-1)
	}
	if s.AreaIndex < 0 || s.AreaIndex > s.UnlockedAreaIndex {
		vb.Field("area_index", "must be between 0 and the unlocked area index")
	}

	seen := make(map[string]int, SlotCount)
	for i, slot := range s.Slots {
		if slot.Level < 1 {
			vb.Field(slotField(i, "level"), "must be at least 1")
		}
		if slot.Empty() {
			continue
		}
		if prev, dup := seen[slot.EquippedID]; dup {
			vb.Fieldf(slotField(i, "equipped_id"), "already equipped in slot %d", prev)
		}
		seen[slot.EquippedID] = i
	}

	return vb.Build()
}

func validateSlotIndex(slot int) error {
	if slot < 0 || slot >= SlotCount {
		return errors.InvalidArgumentf("slot index must be between 0 and %d, got %d", SlotCount-1, slot)
	}
	return nil
}

func slotField(i int, name string) string {
	return fmt.Sprintf("slots[%d].%s", i, name)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
