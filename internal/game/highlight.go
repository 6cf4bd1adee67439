package game

// updateHighlight picks the single slot under the pointer. Exact containment
// wins immediately; otherwise the nearest slot center within the highlight
// radius is the candidate. The previous highlight is cleared before the new
// one is set so at most one slot is ever lit.
func (e *DragEngine) updateHighlight(p Vec2) {
	best := nearestSlot(e.interactiveSlots(), p, e.highlightRadius)
	if best == e.highlighted {
		return
	}
	if e.highlighted != nil {
		e.highlighted.Highlight = false
	}
	e.highlighted = best
	if best != nil {
		best.Highlight = true
	}
}

// interactiveSlots is everything the pointer can target: the drop slots
// plus the output slot, which is pickable but never a drop target.
func (e *DragEngine) interactiveSlots() []*Slot {
	slots := e.provider.DropSlots()
	if out := e.provider.OutputSlot(); out != nil {
		withOutput := make([]*Slot, 0, len(slots)+1)
		withOutput = append(withOutput, slots...)
		withOutput = append(withOutput, out)
		return withOutput
	}
	return slots
}

// nearestDropSlot resolves the drop target for the held stack: containment
// first, then minimum pointer-to-center distance with no cap. Unlike
// highlighting, a drop always finds a slot as long as any valid one exists.
func (e *DragEngine) nearestDropSlot(p Vec2) *Slot {
	return nearestSlot(e.provider.DropSlots(), p, 0)
}

// nearestSlot returns the slot containing p, else the one with the smallest
// center distance. A positive maxDist rejects slots farther than that;
// maxDist <= 0 means unlimited.
func nearestSlot(slots []*Slot, p Vec2, maxDist float32) *Slot {
	var best *Slot
	var bestDist float32
	for _, slot := range slots {
		if slot.Bounds.Contains(p) {
			return slot
		}
		d := distance(slot.Bounds.Center(), p)
		if maxDist > 0 && d > maxDist {
			continue
		}
		if best == nil || d < bestDist {
			best = slot
			bestDist = d
		}
	}
	return best
}
