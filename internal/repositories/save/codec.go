package save

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/errors"
)

// SnapshotVersion is written into every new save
const SnapshotVersion = 1

// Codec converts between the progression state and the saved JSON. Decoding
// is a shallow merge over a fresh game: fields missing from older snapshots
// keep their defaults.
type Codec struct {
	StartingGold float64
	AreaCount    int
}

// Validate checks the codec settings
func (c *Codec) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.StartingGold < 0 {
		vb.Field("StartingGold", "must not be negative")
	}
	if c.AreaCount < 1 {
		vb.Field("AreaCount", "must be at least 1")
	}
	return vb.Build()
}

// Snapshot is the metadata of a decoded save
type Snapshot struct {
	Version int
	SavedAt time.Time
}

type snapshot struct {
	Gold          float64        `json:"gold"`
	Inventory     []doodleRecord `json:"inventory"`
	Slots         []slotRecord   `json:"slots"`
	AreaIndex     int            `json:"areaIndex"`
	AreasUnlocked int            `json:"areasUnlocked"`
	Version       int            `json:"version,omitempty"`
	SavedAt       string         `json:"savedAt,omitempty"`
}

type doodleRecord struct {
	UID        flexID      `json:"uid"`
	TemplateID string      `json:"templateId,omitempty"`
	Name       string      `json:"name"`
	Rarity     string      `json:"rarity"`
	Image      string      `json:"img"`
	Stats      statsRecord `json:"stats"`
	Vibe       int         `json:"vibe"`
}

type statsRecord struct {
	Atk int `json:"atk"`
	Def int `json:"def"`
	Spd int `json:"spd"`
}

type slotRecord struct {
	Level      int    `json:"level"`
	EquippedID flexID `json:"equippedId"`
}

// flexID accepts the numeric ids written by early versions of the game as
// well as strings. An empty id encodes as null.
type flexID string

func (f flexID) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(f))
}

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = flexID(n.String())
	}
	return nil
}

// Encode serializes the state with the save time
func (c *Codec) Encode(state *gacha.ProgressionState, savedAt time.Time) ([]byte, error) {
	if state == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	snap := fromState(state)
	snap.Version = SnapshotVersion
	if !savedAt.IsZero() {
		snap.SavedAt = savedAt.UTC().Format(time.RFC3339Nano)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

// Decode parses a saved game over the defaults and repairs the invariants
func (c *Codec) Decode(data []byte) (*gacha.ProgressionState, *Snapshot, error) {
	snap := fromState(gacha.NewProgressionState(c.StartingGold))
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode snapshot")
	}

	state := toState(snap)
	state.Normalize(c.AreaCount)

	meta := &Snapshot{Version: snap.Version}
	if snap.SavedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, snap.SavedAt); err == nil {
			meta.SavedAt = t
		}
	}
	return state, meta, nil
}

func fromState(state *gacha.ProgressionState) snapshot {
	snap := snapshot{
		Gold:          state.Gold,
		Inventory:     make([]doodleRecord, 0, len(state.Inventory)),
		Slots:         make([]slotRecord, 0, gacha.SlotCount),
		AreaIndex:     state.AreaIndex,
		AreasUnlocked: state.UnlockedAreaIndex,
	}
	for _, d := range state.Inventory {
		if d == nil {
			continue
		}
		snap.Inventory = append(snap.Inventory, doodleRecord{
			UID:        flexID(d.UID),
			TemplateID: d.TemplateID,
			Name:       d.Name,
			Rarity:     d.Rarity.String(),
			Image:      d.Image,
			Stats:      statsRecord{Atk: d.Stats.Attack, Def: d.Stats.Defense, Spd: d.Stats.Speed},
			Vibe:       d.Vibe,
		})
	}
	for _, slot := range state.Slots {
		snap.Slots = append(snap.Slots, slotRecord{Level: slot.Level, EquippedID: flexID(slot.EquippedID)})
	}
	return snap
}

func toState(snap snapshot) *gacha.ProgressionState {
	state := &gacha.ProgressionState{
		Gold:              snap.Gold,
		Inventory:         make([]*gacha.Doodle, 0, len(snap.Inventory)),
		AreaIndex:         snap.AreaIndex,
		UnlockedAreaIndex: snap.AreasUnlocked,
	}
	for _, rec := range snap.Inventory {
		rarity, err := gacha.ParseRarity(rec.Rarity)
		if err != nil {
			rarity = gacha.RarityUnspecified
		}
		state.Inventory = append(state.Inventory, &gacha.Doodle{
			UID:        string(rec.UID),
			TemplateID: rec.TemplateID,
			Name:       rec.Name,
			Rarity:     rarity,
			Image:      rec.Image,
			Stats:      gacha.Stats{Attack: rec.Stats.Atk, Defense: rec.Stats.Def, Speed: rec.Stats.Spd},
			Vibe:       rec.Vibe,
		})
	}
	for i := range state.Slots {
		state.Slots[i].Level = 1
		if i < len(snap.Slots) {
			state.Slots[i] = gacha.Slot{Level: snap.Slots[i].Level, EquippedID: string(snap.Slots[i].EquippedID)}
		}
	}
	return state
}
