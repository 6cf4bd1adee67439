package game

import (
	"github.com/appengine-ltd/blockfall/internal/items"
	"github.com/appengine-ltd/blockfall/internal/logging"
)

// CraftMatcher re-evaluates a crafting grid against the catalog every tick
// while its surface is open, and manages the output slot: producing a fresh
// result when the arrangement matches a recipe and invalidating an unclaimed
// one when the ingredients are disturbed.
type CraftMatcher struct {
	registry *items.Registry
	grid     *SlotCollection
	output   *Slot
}

func NewCraftMatcher(registry *items.Registry, grid *SlotCollection, output *Slot) *CraftMatcher {
	return &CraftMatcher{registry: registry, grid: grid, output: output}
}

func (m *CraftMatcher) Grid() *SlotCollection { return m.grid }
func (m *CraftMatcher) Output() *Slot         { return m.output }

// GridRecipe maps the live grid onto the recipe window: a 4-slot grid fills
// the top-left 2x2 corner, a 9-slot grid the full 3x3. Any other slot count
// is malformed and yields the empty recipe rather than an error.
func (m *CraftMatcher) GridRecipe() items.Recipe {
	var recipe items.Recipe
	var width int
	switch m.grid.Len() {
	case 4:
		width = 2
	case 9:
		width = 3
	default:
		logging.Log.WithField("slots", m.grid.Len()).Warn("unsupported crafting grid size")
		return recipe
	}
	for i, slot := range m.grid.Slots {
		if !slot.Occupied() {
			continue
		}
		recipe.Cells[i/width][i%width] = slot.Stack.Def.ID
	}
	return recipe
}

// Check normalises the live grid and compares it against every craftable
// definition. On the first match it fills an empty output slot with a fresh
// JustCrafted result of quantity 1. When nothing matches, an unclaimed
// JustCrafted output is destroyed so no ghost result lingers after the
// ingredients were disturbed. A result already detached into a drag session
// is never touched.
func (m *CraftMatcher) Check() {
	live := m.GridRecipe().Normalised()
	if !live.IsEmpty() {
		for _, def := range m.registry.Craftable() {
			if !def.Recipe.Normalised().Equal(live) {
				continue
			}
			if m.output.Occupied() {
				// A stale unclaimed result from a previous arrangement
				// makes way for the new match.
				if m.output.Stack.JustCrafted && m.output.Stack.Def != def {
					m.output.SetQuantity(0)
				} else {
					return
				}
			}
			result := NewStack(def, 1)
			result.JustCrafted = true
			m.output.Put(result)
			return
		}
	}
	if m.output.Occupied() && m.output.Stack.JustCrafted {
		m.output.SetQuantity(0)
	}
}

// Consume decrements every occupied grid cell by one unit. Called when the
// output stack is actually taken; matching alone never consumes.
func (m *CraftMatcher) Consume() {
	for _, slot := range m.grid.Slots {
		if slot.Occupied() {
			slot.SetQuantity(slot.Stack.Quantity - 1)
		}
	}
}
