package game

// SlotView is the read model a renderer gets: enough to draw the slot and
// nothing it could mutate.
type SlotView struct {
	Role      SlotRole
	Index     int
	Bounds    Rect
	Highlight bool

	ItemID      string
	ItemName    string
	Icon        string
	Quantity    int
	JustCrafted bool
}

func viewOf(s *Slot) SlotView {
	v := SlotView{
		Role:      s.Role,
		Index:     s.Index,
		Bounds:    s.Bounds,
		Highlight: s.Highlight,
	}
	if s.Occupied() {
		v.ItemID = s.Stack.Def.ID
		v.ItemName = s.Stack.Def.Name
		v.Icon = s.Stack.Def.Icon
		v.Quantity = s.Stack.Quantity
		v.JustCrafted = s.Stack.JustCrafted
	}
	return v
}

func viewsOf(collections ...*SlotCollection) []SlotView {
	total := 0
	for _, c := range collections {
		total += c.Len()
	}
	views := make([]SlotView, 0, total)
	for _, c := range collections {
		for _, slot := range c.Slots {
			views = append(views, viewOf(slot))
		}
	}
	return views
}

// Snapshot returns read models for the hotbar and bag, in layout order.
func (c *InventoryController) Snapshot() []SlotView {
	return viewsOf(c.Hotbar, c.Bag)
}

// Snapshot returns read models for the shadow hotbar, shadow bag, crafting
// grid and output slot, in layout order.
func (s *CraftingStationController) Snapshot() []SlotView {
	views := viewsOf(s.ShadowHotbar, s.ShadowBag, s.Grid)
	return append(views, viewOf(s.Result))
}
