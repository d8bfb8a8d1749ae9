package v1

import (
	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/orchestrators/game"
	"github.com/KirkDiggler/doodle-api/internal/services/simulation"
)

func convertDoodle(d *gacha.Doodle) *Doodle {
	if d == nil {
		return nil
	}
	return &Doodle{
		UID:        d.UID,
		TemplateID: d.TemplateID,
		Name:       d.Name,
		Rarity:     d.Rarity.String(),
		Image:      d.Image,
		Stats: Stats{
			Attack:  d.Stats.Attack,
			Defense: d.Stats.Defense,
			Speed:   d.Stats.Speed,
		},
		Vibe: d.Vibe,
	}
}

func convertView(v *game.View) *GameView {
	if v == nil {
		return nil
	}

	out := &GameView{
		Gold:       v.Gold,
		SummonCost: v.SummonCost,
		Area: Area{
			Index:          v.Area.Index,
			Name:           v.Area.Name,
			LuckMultiplier: v.Area.LuckMultiplier,
			StatMultiplier: v.Area.StatMultiplier,
		},
		CanGoBack:    v.CanGoBack,
		CanGoForward: v.CanGoForward,
		Slots:        make([]Slot, 0, len(v.Slots)),
		Inventory:    make([]InventoryItem, 0, len(v.Inventory)),
		LastIncome:   v.LastIncome,
		SaveWarning:  v.SaveWarning,
	}

	if v.NextUnlock != nil {
		out.NextUnlock = &Unlock{
			Index: v.NextUnlock.Index,
			Name:  v.NextUnlock.Name,
			Cost:  v.NextUnlock.Cost,
			Label: v.NextUnlock.Label,
		}
	}

	for _, slot := range v.Slots {
		out.Slots = append(out.Slots, Slot{
			Index:       slot.Index,
			Level:       slot.Level,
			UpgradeCost: slot.UpgradeCost,
			Doodle:      convertDoodle(slot.Doodle),
		})
	}

	for _, item := range v.Inventory {
		out.Inventory = append(out.Inventory, InventoryItem{
			Doodle:    convertDoodle(item.Doodle),
			Equipped:  item.Equipped,
			SlotIndex: item.SlotIndex,
		})
	}

	return out
}

func convertSimulation(out *simulation.RunOutput) *SimulateResponse {
	resp := &SimulateResponse{
		AreaName:      out.Area.Name,
		HighThreshold: out.Policy.HighThreshold,
		MidThreshold:  out.Policy.MidThreshold,
		Trials:        out.Trials,
		Observed:      make(map[string]float64, len(out.Observed)),
		Expected:      make(map[string]float64, len(out.Expected)),
		MeanVibe:      out.MeanVibe,
		MaxVibe:       out.MaxVibe,
	}
	for r, p := range out.Observed {
		resp.Observed[r.String()] = p
	}
	for r, p := range out.Expected {
		resp.Expected[r.String()] = p
	}
	return resp
}
