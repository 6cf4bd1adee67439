package game

import (
	"github.com/appengine-ltd/blockfall/internal/items"
)

// CraftingStationController owns a crafting grid and its output slot, plus a
// mirrored view of the player's hotbar and bag shown alongside them. The
// mirror is a deliberate duplication: shadows are rebuilt from the real
// slots on open and reconciled back on close, and the InventoryController
// stays the source of truth throughout.
type CraftingStationController struct {
	registry *items.Registry
	inv      *InventoryController

	Grid         *SlotCollection
	Result       *Slot
	ShadowHotbar *SlotCollection
	ShadowBag    *SlotCollection

	matcher *CraftMatcher
	engine  *DragEngine
	spawner ItemSpawner

	open        bool
	panel       Rect
	throwOrigin Pose
	throwTarget Pose
}

// NewCraftingStationController builds a station around the given inventory.
// gridSlots is 4 for a 2x2 grid or 9 for a 3x3 one; anything else never
// matches a recipe.
func NewCraftingStationController(registry *items.Registry, inv *InventoryController, gridSlots int, spawner ItemSpawner, highlightRadius float32) *CraftingStationController {
	s := &CraftingStationController{
		registry:     registry,
		inv:          inv,
		Grid:         NewSlotCollection(SlotCrafting, gridSlots),
		Result:       &Slot{Role: SlotOutput},
		ShadowHotbar: NewSlotCollection(SlotHotbar, inv.Hotbar.Len()),
		ShadowBag:    NewSlotCollection(SlotBag, inv.Bag.Len()),
		spawner:      spawner,
	}
	s.matcher = NewCraftMatcher(registry, s.Grid, s.Result)
	s.engine = NewDragEngine(s, spawner, highlightRadius)
	return s
}

func (s *CraftingStationController) Name() string { return "crafting-station" }

func (s *CraftingStationController) IsOpen() bool { return s.open }

// Open rebuilds the shadow slots from the real ones: any stale shadow stack
// is destroyed first, then occupied real slots get a fresh shadow copy.
func (s *CraftingStationController) Open() {
	if s.open {
		return
	}
	for _, pair := range s.mirrorPairs() {
		pair.shadow.SetQuantity(0)
		if pair.real.Occupied() {
			pair.shadow.Put(&ItemStack{
				Def:      pair.real.Stack.Def,
				Quantity: pair.real.Stack.Quantity,
			})
		}
	}
	s.open = true
}

// Close reconciles the shadow slots back into the real inventory, empties
// the crafting grid through GetItem so every unit finds a real slot again,
// and discards an unclaimed crafted result. Net item count is conserved.
func (s *CraftingStationController) Close() {
	if !s.open {
		return
	}
	// A stack still on the pointer goes back into the shadows first so the
	// reconcile below accounts for it.
	s.engine.Close()

	for _, pair := range s.mirrorPairs() {
		s.reconcile(pair.shadow, pair.real)
		pair.shadow.SetQuantity(0)
	}

	for _, slot := range s.Grid.Slots {
		if !slot.Occupied() {
			continue
		}
		def := slot.Stack.Def
		quantity := slot.Stack.Quantity
		slot.SetQuantity(0)
		for unit := 0; unit < quantity; unit++ {
			if s.inv.GetItem(def) {
				continue
			}
			// Inventory full: the rest of this stack goes to the world
			// rather than vanishing.
			origin, target := s.ThrowPoses()
			s.spawnerOrNull().SpawnDroppedItem(def, quantity-unit, origin, target)
			break
		}
	}

	if s.Result.Occupied() && s.Result.Stack.JustCrafted {
		s.Result.SetQuantity(0)
	}
	s.open = false
}

// reconcile copies one shadow slot back onto its real slot. The shadow view
// is authoritative at close: while the station was open the player only ever
// manipulated shadows, so a shadow that emptied means the real stack moved
// on (into the grid, merged into another slot, or thrown) and keeping it
// would duplicate items. Units that went into the grid are restored by the
// grid clear that follows.
func (s *CraftingStationController) reconcile(shadow, real *Slot) {
	switch {
	case shadow.Occupied() && real.Occupied() && shadow.Stack.Def == real.Stack.Def:
		real.SetQuantity(shadow.Stack.Quantity)
	case shadow.Occupied():
		// Different item, or a slot filled while the station was open:
		// the real slot adopts the shadow's identity and quantity.
		real.SetQuantity(0)
		real.Put(&ItemStack{Def: shadow.Stack.Def, Quantity: shadow.Stack.Quantity})
	case real.Occupied():
		real.SetQuantity(0)
	}
}

func (s *CraftingStationController) Toggle() {
	if s.open {
		s.Close()
	} else {
		s.Open()
	}
}

// Update runs one tick of the open station: recipe re-evaluation first so
// the output slot is current, then highlight and drag processing.
func (s *CraftingStationController) Update(frame PointerFrame) {
	if !s.open {
		return
	}
	s.matcher.Check()
	s.engine.Update(frame)
}

// Engine exposes the drag engine for rendering the held stack.
func (s *CraftingStationController) Engine() *DragEngine { return s.engine }

// CraftMatcher exposes the matcher, mainly for tests and tooling.
func (s *CraftingStationController) CraftMatcher() *CraftMatcher { return s.matcher }

func (s *CraftingStationController) SetPanelBounds(r Rect) { s.panel = r }

func (s *CraftingStationController) SetThrowPoses(origin, target Pose) {
	s.throwOrigin = origin
	s.throwTarget = target
}

type mirrorPair struct {
	shadow *Slot
	real   *Slot
}

func (s *CraftingStationController) mirrorPairs() []mirrorPair {
	pairs := make([]mirrorPair, 0, s.ShadowHotbar.Len()+s.ShadowBag.Len())
	for i, shadow := range s.ShadowHotbar.Slots {
		pairs = append(pairs, mirrorPair{shadow: shadow, real: s.inv.Hotbar.Slots[i]})
	}
	for i, shadow := range s.ShadowBag.Slots {
		pairs = append(pairs, mirrorPair{shadow: shadow, real: s.inv.Bag.Slots[i]})
	}
	return pairs
}

func (s *CraftingStationController) spawnerOrNull() ItemSpawner {
	if s.spawner == nil {
		return NullSpawner{}
	}
	return s.spawner
}

// SlotProvider implementation. The station's drop set includes the crafting
// grid and explicitly excludes the output slot.

func (s *CraftingStationController) DropSlots() []*Slot {
	slots := make([]*Slot, 0, s.ShadowHotbar.Len()+s.ShadowBag.Len()+s.Grid.Len())
	slots = append(slots, s.ShadowHotbar.Slots...)
	slots = append(slots, s.ShadowBag.Slots...)
	slots = append(slots, s.Grid.Slots...)
	return slots
}

func (s *CraftingStationController) ReturnSlots() []*Slot {
	slots := make([]*Slot, 0, s.ShadowHotbar.Len()+s.ShadowBag.Len())
	slots = append(slots, s.ShadowHotbar.Slots...)
	slots = append(slots, s.ShadowBag.Slots...)
	return slots
}

func (s *CraftingStationController) OutputSlot() *Slot { return s.Result }

func (s *CraftingStationController) Matcher() *CraftMatcher { return s.matcher }

func (s *CraftingStationController) PanelBounds() Rect { return s.panel }

func (s *CraftingStationController) ResolveSlot(ref SlotRef) (*Slot, bool) {
	var slot *Slot
	switch ref.Role {
	case SlotHotbar:
		slot = s.ShadowHotbar.Slot(ref.Index)
	case SlotBag:
		slot = s.ShadowBag.Slot(ref.Index)
	case SlotCrafting:
		slot = s.Grid.Slot(ref.Index)
	}
	return slot, slot != nil
}

func (s *CraftingStationController) ThrowPoses() (Pose, Pose) {
	return s.throwOrigin, s.throwTarget
}
