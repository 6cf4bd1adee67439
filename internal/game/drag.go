package game

import "github.com/appengine-ltd/blockfall/internal/logging"

// SlotProvider is the capability a UI surface hands to its drag engine.
// The engine itself is surface-agnostic; which slots are valid drop targets,
// whether there is a crafting grid, and where thrown items fly from all
// come from the provider.
type SlotProvider interface {
	// DropSlots are the valid drop targets, in layout order. The output
	// slot is never a drop target and must not be included.
	DropSlots() []*Slot
	// ReturnSlots is the hotbar-then-bag order searched when the surface
	// closes with a stack still held.
	ReturnSlots() []*Slot
	// OutputSlot is the crafting result slot, nil when the surface has none.
	OutputSlot() *Slot
	// Matcher is the surface's crafting matcher, nil when it has no grid.
	Matcher() *CraftMatcher
	// PanelBounds is the interactive area; clicks outside it throw the
	// held stack into the world.
	PanelBounds() Rect
	// ResolveSlot maps a remembered slot reference back to a live slot.
	ResolveSlot(ref SlotRef) (*Slot, bool)
	// ThrowPoses supplies the world poses for a thrown stack.
	ThrowPoses() (origin, target Pose)
}

// DragEngine runs the pick-up/drop protocol for one surface: a single-slot
// machine that is either Idle (nothing held) or Holding. All transitions
// happen inside Update, once per tick, driven by pointer edge events.
type DragEngine struct {
	provider SlotProvider
	spawner  ItemSpawner

	highlightRadius float32

	held        *ItemStack
	origin      SlotRef
	hasOrigin   bool
	justPicked  bool
	highlighted *Slot
	pointer     Vec2
}

func NewDragEngine(provider SlotProvider, spawner ItemSpawner, highlightRadius float32) *DragEngine {
	if spawner == nil {
		spawner = NullSpawner{}
	}
	return &DragEngine{
		provider:        provider,
		spawner:         spawner,
		highlightRadius: highlightRadius,
	}
}

// Held returns the stack currently following the pointer, nil when idle.
func (e *DragEngine) Held() *ItemStack { return e.held }

// Pointer returns the last pointer position, where the held stack draws.
func (e *DragEngine) Pointer() Vec2 { return e.pointer }

// Highlighted returns the slot under (or nearest to) the pointer.
func (e *DragEngine) Highlighted() *Slot { return e.highlighted }

// Update processes one tick of pointer input. The justPicked guard stops a
// pickup and a drop from both firing off the same click edge; it lives for
// exactly one tick.
func (e *DragEngine) Update(frame PointerFrame) {
	e.pointer = frame.Pos
	e.updateHighlight(frame.Pos)
	if e.held == nil {
		e.handleIdle(frame)
	} else {
		e.handleHolding(frame)
	}
	e.justPicked = false
}

func (e *DragEngine) handleIdle(frame PointerFrame) {
	if !frame.Primary && !frame.Secondary {
		return
	}
	slot := e.highlighted
	if slot == nil || !slot.Occupied() {
		return
	}
	if slot == e.provider.OutputSlot() {
		e.pickUpOutput(slot)
		return
	}
	if frame.Primary {
		e.held = slot.Take()
		e.origin = slot.Ref()
		e.hasOrigin = true
		e.justPicked = true
		return
	}
	// Secondary: half pickup. The remainder stays behind as a new stack
	// instance; a quantity of one is picked up whole.
	st := slot.Take()
	if rest := SplitHalf(st); rest != nil {
		slot.Put(rest)
	}
	e.held = st
	e.origin = slot.Ref()
	e.hasOrigin = true
	e.justPicked = true
}

// pickUpOutput takes the crafting result. The output slot only ever gives up
// its whole stack, and taking it is what consumes the grid materials.
func (e *DragEngine) pickUpOutput(slot *Slot) {
	st := slot.Take()
	st.JustCrafted = false
	e.held = st
	e.hasOrigin = false
	e.justPicked = true
	if m := e.provider.Matcher(); m != nil {
		m.Consume()
	}
}

func (e *DragEngine) handleHolding(frame PointerFrame) {
	if e.justPicked {
		return
	}
	if !frame.Primary && !frame.Secondary {
		return
	}
	if !e.provider.PanelBounds().Contains(frame.Pos) {
		e.throw(frame.Primary)
		return
	}
	target := e.nearestDropSlot(frame.Pos)
	if target == nil {
		return
	}
	if frame.Primary {
		e.dropOn(target)
	} else {
		e.splitOneOn(target)
	}
}

// dropOn places, merges or swaps the held stack against the target slot.
func (e *DragEngine) dropOn(target *Slot) {
	if !target.Occupied() {
		target.Put(e.held)
		e.clearHeld()
		return
	}
	if target.Stack.Def == e.held.Def {
		moved, absorbed := Merge(e.held, target.Stack, StackCap)
		if absorbed {
			e.clearHeld()
			return
		}
		if moved == 0 {
			logging.Log.WithField("item", e.held.Def.ID).Warn("stack at capacity, nothing merged")
		}
		// Partial merge: keep holding the reduced stack.
		return
	}
	// Different item: full swap. The new held stack inherits the dragged
	// stack's remembered return slot.
	prev := target.Take()
	target.Put(e.held)
	e.held = prev
}

// splitOneOn moves a single unit of the held stack into the target slot.
func (e *DragEngine) splitOneOn(target *Slot) {
	if !target.Occupied() {
		if e.held.Quantity == 1 {
			target.Put(e.held)
			e.clearHeld()
			return
		}
		target.Put(&ItemStack{Def: e.held.Def, Quantity: 1})
		e.setHeldQuantity(e.held.Quantity - 1)
		return
	}
	if target.Stack.Def == e.held.Def {
		if target.Stack.Quantity >= StackCap {
			logging.Log.WithField("item", e.held.Def.ID).Warn("stack at capacity, nothing placed")
			return
		}
		target.SetQuantity(target.Stack.Quantity + 1)
		e.setHeldQuantity(e.held.Quantity - 1)
		return
	}
	// Different item underneath: behave like a full drop, i.e. swap.
	e.dropOn(target)
}

// throw hands the held stack to the world spawner: everything for the
// primary button, one unit for the secondary.
func (e *DragEngine) throw(all bool) {
	origin, targetPose := e.provider.ThrowPoses()
	if all {
		e.spawner.SpawnDroppedItem(e.held.Def, e.held.Quantity, origin, targetPose)
		e.clearHeld()
		return
	}
	e.spawner.SpawnDroppedItem(e.held.Def, 1, origin, targetPose)
	e.setHeldQuantity(e.held.Quantity - 1)
}

// Close resolves a held stack before the surface goes away, in order: merge
// or place back into the remembered origin slot, then the first empty
// return slot, then the world spawner. A closed UI never deletes a held
// stack.
func (e *DragEngine) Close() {
	if e.highlighted != nil {
		e.highlighted.Highlight = false
		e.highlighted = nil
	}
	if e.held == nil {
		return
	}
	if e.hasOrigin {
		if slot, ok := e.provider.ResolveSlot(e.origin); ok {
			if !slot.Occupied() {
				slot.Put(e.held)
				e.clearHeld()
				return
			}
			if slot.Stack.Def == e.held.Def {
				if _, absorbed := Merge(e.held, slot.Stack, StackCap); absorbed {
					e.clearHeld()
					return
				}
			}
		}
	}
	for _, slot := range e.provider.ReturnSlots() {
		if !slot.Occupied() {
			slot.Put(e.held)
			e.clearHeld()
			return
		}
	}
	origin, targetPose := e.provider.ThrowPoses()
	e.spawner.SpawnDroppedItem(e.held.Def, e.held.Quantity, origin, targetPose)
	e.clearHeld()
}

func (e *DragEngine) clearHeld() {
	e.held = nil
	e.hasOrigin = false
}

func (e *DragEngine) setHeldQuantity(quantity int) {
	if !setQuantity(e.held, quantity) {
		e.clearHeld()
	}
}
