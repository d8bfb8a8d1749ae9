package v1

// Doodle is an owned creature on the wire
type Doodle struct {
	UID        string `json:"uid"`
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Rarity     string `json:"rarity"`
	Image      string `json:"img"`
	Stats      Stats  `json:"stats"`
	Vibe       int    `json:"vibe"`
}

// Stats uses the short keys of the save format
type Stats struct {
	Attack  int `json:"atk"`
	Defense int `json:"def"`
	Speed   int `json:"spd"`
}

// Area is the active area
type Area struct {
	Index          int     `json:"index"`
	Name           string  `json:"name"`
	LuckMultiplier float64 `json:"luck"`
	StatMultiplier float64 `json:"mult"`
}

// Unlock is the next area that can be bought
type Unlock struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Cost  float64 `json:"cost"`
	Label string  `json:"label"`
}

// Slot is an equipment bay. Doodle is absent when the slot is empty.
type Slot struct {
	Index       int     `json:"index"`
	Level       int     `json:"level"`
	UpgradeCost float64 `json:"upgrade_cost"`
	Doodle      *Doodle `json:"doodle,omitempty"`
}

// InventoryItem is an owned doodle. SlotIndex is -1 when not equipped.
type InventoryItem struct {
	Doodle    *Doodle `json:"doodle"`
	Equipped  bool    `json:"equipped"`
	SlotIndex int     `json:"slot_index"`
}

// GameView is everything a client renders after a change
type GameView struct {
	Gold         int64           `json:"gold"`
	SummonCost   float64         `json:"summon_cost"`
	Area         Area            `json:"area"`
	NextUnlock   *Unlock         `json:"next_unlock,omitempty"`
	CanGoBack    bool            `json:"can_go_back"`
	CanGoForward bool            `json:"can_go_forward"`
	Slots        []Slot          `json:"slots"`
	Inventory    []InventoryItem `json:"inventory"`
	LastIncome   int             `json:"last_income"`
	SaveWarning  string          `json:"save_warning,omitempty"`
}

// GetStateRequest asks for the current view
type GetStateRequest struct{}

// GetStateResponse carries the current view
type GetStateResponse struct {
	View *GameView `json:"view"`
}

// SummonRequest buys one summon in the active area
type SummonRequest struct{}

// SummonResponse reveals the summoned doodle
type SummonResponse struct {
	Doodle  *Doodle   `json:"doodle"`
	Cost    float64   `json:"cost"`
	Balance float64   `json:"balance"`
	View    *GameView `json:"view"`
}

// EquipRequest equips an owned doodle
type EquipRequest struct {
	DoodleID string `json:"doodle_id"`
}

// EquipResponse reports the slot the doodle landed in
type EquipResponse struct {
	SlotIndex int       `json:"slot_index"`
	Changed   bool      `json:"changed"`
	View      *GameView `json:"view"`
}

// UnequipRequest clears a slot
type UnequipRequest struct {
	SlotIndex int `json:"slot_index"`
}

// UnequipResponse reports whether the slot held anything
type UnequipResponse struct {
	Changed bool      `json:"changed"`
	View    *GameView `json:"view"`
}

// UpgradeSlotRequest raises a slot level
type UpgradeSlotRequest struct {
	SlotIndex int `json:"slot_index"`
}

// UpgradeSlotResponse reports the new level and price of the next one
type UpgradeSlotResponse struct {
	Level    int       `json:"level"`
	Cost     float64   `json:"cost"`
	NextCost float64   `json:"next_cost"`
	View     *GameView `json:"view"`
}

// ChangeAreaRequest moves one area back (-1) or forward (1)
type ChangeAreaRequest struct {
	Direction int `json:"direction"`
}

// ChangeAreaResponse reports the active area
type ChangeAreaResponse struct {
	AreaIndex int       `json:"area_index"`
	Changed   bool      `json:"changed"`
	View      *GameView `json:"view"`
}

// UnlockNextAreaRequest buys the next area
type UnlockNextAreaRequest struct{}

// UnlockNextAreaResponse reports the unlocked area
type UnlockNextAreaResponse struct {
	AreaIndex int       `json:"area_index"`
	Changed   bool      `json:"changed"`
	Cost      float64   `json:"cost"`
	View      *GameView `json:"view"`
}

// ClearSaveRequest wipes the saved game
type ClearSaveRequest struct{}

// ClearSaveResponse carries the reset view
type ClearSaveResponse struct {
	KeysDeleted int       `json:"keys_deleted"`
	View        *GameView `json:"view"`
}

// SimulateRequest runs a summon simulation without touching the game
type SimulateRequest struct {
	AreaIndex int    `json:"area_index"`
	Trials    int    `json:"trials"`
	Seed      uint64 `json:"seed"`
	Policy    string `json:"policy,omitempty"`
}

// SimulateResponse holds rarity frequencies keyed by rarity name
type SimulateResponse struct {
	AreaName      string             `json:"area_name"`
	HighThreshold float64            `json:"high_threshold"`
	MidThreshold  float64            `json:"mid_threshold"`
	Trials        int                `json:"trials"`
	Observed      map[string]float64 `json:"observed"`
	Expected      map[string]float64 `json:"expected"`
	MeanVibe      float64            `json:"mean_vibe"`
	MaxVibe       int                `json:"max_vibe"`
}
