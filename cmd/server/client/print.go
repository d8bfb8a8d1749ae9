package client

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	v1 "github.com/KirkDiggler/doodle-api/internal/handlers/game/v1"
)

func printView(view *v1.GameView) {
	writeView(os.Stdout, view)
}

func writeView(w io.Writer, view *v1.GameView) {
	if view == nil {
		return
	}

	fmt.Fprintf(w, "\n💰 Gold: %d (+%d/s)\n", view.Gold, view.LastIncome)
	fmt.Fprintf(w, "🗺️  Area: %s (luck x%g, stats x%g)\n", view.Area.Name, view.Area.LuckMultiplier, view.Area.StatMultiplier)
	fmt.Fprintf(w, "✨ Summon cost: %g\n", view.SummonCost)
	if view.NextUnlock != nil {
		fmt.Fprintf(w, "🔒 %s: %s\n", view.NextUnlock.Label, view.NextUnlock.Name)
	} else {
		fmt.Fprintln(w, "🔓 All areas unlocked")
	}
	if view.SaveWarning != "" {
		fmt.Fprintf(w, "⚠️  Save failed: %s\n", view.SaveWarning)
	}

	fmt.Fprintln(w, "\nSlots:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, slot := range view.Slots {
		occupant := "(empty)"
		if slot.Doodle != nil {
			occupant = fmt.Sprintf("%s [%s] vibe %d", slot.Doodle.Name, slot.Doodle.UID, slot.Doodle.Vibe)
		}
		fmt.Fprintf(tw, "  #%d\tLv %d\tupgrade %g\t%s\n", slot.Index, slot.Level, slot.UpgradeCost, occupant)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nInventory (%d):\n", len(view.Inventory))
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range view.Inventory {
		marker := ""
		if item.Equipped {
			marker = fmt.Sprintf("equipped #%d", item.SlotIndex)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\tvibe %d\t%s\n",
			item.Doodle.UID, item.Doodle.Name, item.Doodle.Rarity, item.Doodle.Vibe, marker)
	}
	_ = tw.Flush()
}
