package catalog

import (
	"fmt"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
)

var defaultTemplates = []gacha.MonsterTemplate{
	{ID: "m1", Name: "Scrap-Ball", Rarity: gacha.RarityCommon, Base: 5, Variance: 5, Image: "scrap_ball.png"},
	{ID: "m2", Name: "Pencil-Stub", Rarity: gacha.RarityCommon, Base: 8, Variance: 6, Image: "pencil_stub.png"},
	{ID: "m3", Name: "Coffee-Stain", Rarity: gacha.RarityRare, Base: 15, Variance: 10, Image: "coffee_stain.png"},
	{ID: "m4", Name: "Origami-Frog", Rarity: gacha.RarityRare, Base: 20, Variance: 12, Image: "origami_frog.png"},
	{ID: "m5", Name: "Ink-Dragon", Rarity: gacha.RarityLegendary, Base: 50, Variance: 30, Image: "ink_dragon.png"},
	{ID: "m6", Name: "Gold-Star", Rarity: gacha.RarityLegendary, Base: 60, Variance: 40, Image: "gold_star.png"},
}

var defaultAreas = []gacha.Area{
	{Name: "The Scrap Paper", Cost: 0, StatMultiplier: 1, LuckMultiplier: 1},
	{Name: "School Notebook", Cost: 500, StatMultiplier: 1.5, LuckMultiplier: 1.2},
	{Name: "Art Studio", Cost: 2500, StatMultiplier: 3.0, LuckMultiplier: 1.5},
}

func indexed(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
