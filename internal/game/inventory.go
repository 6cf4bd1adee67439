package game

import (
	"github.com/appengine-ltd/blockfall/internal/items"
	"github.com/appengine-ltd/blockfall/internal/logging"
)

// InventoryController owns the player's hotbar and bag. It is the world's
// pickup entry point and one of the two drag surfaces; the crafting station
// mirrors these slots while it is open but this controller stays the source
// of truth.
type InventoryController struct {
	registry *items.Registry
	Hotbar   *SlotCollection
	Bag      *SlotCollection

	engine  *DragEngine
	spawner ItemSpawner

	open     bool
	selected int

	panel       Rect
	throwOrigin Pose
	throwTarget Pose
}

func NewInventoryController(registry *items.Registry, hotbarSlots, bagSlots int, spawner ItemSpawner, highlightRadius float32) *InventoryController {
	c := &InventoryController{
		registry: registry,
		Hotbar:   NewSlotCollection(SlotHotbar, hotbarSlots),
		Bag:      NewSlotCollection(SlotBag, bagSlots),
		spawner:  spawner,
	}
	c.engine = NewDragEngine(c, spawner, highlightRadius)
	return c
}

func (c *InventoryController) Name() string { return "inventory" }

func (c *InventoryController) IsOpen() bool { return c.open }

func (c *InventoryController) Open() {
	c.open = true
}

// Close resolves any held stack first so closing never loses items.
func (c *InventoryController) Close() {
	if !c.open {
		return
	}
	c.engine.Close()
	c.open = false
}

func (c *InventoryController) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

// Update runs one tick of the open panel: highlight tracking and drag
// processing. The surface has already assigned slot bounds for this layout.
func (c *InventoryController) Update(frame PointerFrame) {
	if !c.open {
		return
	}
	c.engine.Update(frame)
}

// Engine exposes the drag engine for rendering the held stack.
func (c *InventoryController) Engine() *DragEngine { return c.engine }

// GetItem tries to take one unit of the item from the world, in strict
// order: an existing hotbar stack with room, an existing bag stack with
// room, an empty hotbar slot, an empty bag slot. A full inventory rejects
// the pickup; the item stays in the world and a warning is logged.
func (c *InventoryController) GetItem(def *items.Definition) bool {
	if def == nil {
		return false
	}
	if slot, ok := c.Hotbar.FirstWithRoom(def); ok {
		slot.SetQuantity(slot.Stack.Quantity + 1)
		return true
	}
	if slot, ok := c.Bag.FirstWithRoom(def); ok {
		slot.SetQuantity(slot.Stack.Quantity + 1)
		return true
	}
	if slot, ok := c.Hotbar.FirstEmpty(); ok {
		slot.Put(NewStack(def, 1))
		return true
	}
	if slot, ok := c.Bag.FirstEmpty(); ok {
		slot.Put(NewStack(def, 1))
		return true
	}
	logging.Log.WithField("item", def.ID).Warn("inventory full, pickup rejected")
	return false
}

// GetItemByName resolves a display name through the registry fallback chain
// before picking the item up. Used when the world only knows a name.
func (c *InventoryController) GetItemByName(name string) bool {
	def, ok := c.registry.FindByName(name)
	if !ok {
		entry := logging.Log.WithField("name", name)
		if suggestion, ok := c.registry.Suggest(name); ok {
			entry = entry.WithField("closest", suggestion)
		}
		entry.Warn("unknown item name, pickup dropped")
		return false
	}
	return c.GetItem(def)
}

// SelectHotbar moves the active hotbar selection, wrapping at both ends.
// The block-placement collaborator reads the selection to know what to
// place.
func (c *InventoryController) SelectHotbar(index int) {
	n := c.Hotbar.Len()
	if n == 0 {
		return
	}
	c.selected = ((index % n) + n) % n
}

func (c *InventoryController) SelectedHotbar() int { return c.selected }

// SelectedStack returns the stack in the active hotbar slot, nil when empty.
func (c *InventoryController) SelectedStack() *ItemStack {
	slot := c.Hotbar.Slot(c.selected)
	if slot == nil {
		return nil
	}
	return slot.Stack
}

// SetPanelBounds is called by the surface after layout; clicks outside this
// rect throw the held stack.
func (c *InventoryController) SetPanelBounds(r Rect) { c.panel = r }

// SetThrowPoses updates where thrown stacks spawn, typically from the
// camera each frame.
func (c *InventoryController) SetThrowPoses(origin, target Pose) {
	c.throwOrigin = origin
	c.throwTarget = target
}

// SlotProvider implementation. The inventory surface has no crafting grid:
// its drop set is hotbar plus bag and there is no output slot.

func (c *InventoryController) DropSlots() []*Slot {
	slots := make([]*Slot, 0, c.Hotbar.Len()+c.Bag.Len())
	slots = append(slots, c.Hotbar.Slots...)
	slots = append(slots, c.Bag.Slots...)
	return slots
}

func (c *InventoryController) ReturnSlots() []*Slot { return c.DropSlots() }

func (c *InventoryController) OutputSlot() *Slot { return nil }

func (c *InventoryController) Matcher() *CraftMatcher { return nil }

func (c *InventoryController) PanelBounds() Rect { return c.panel }

func (c *InventoryController) ResolveSlot(ref SlotRef) (*Slot, bool) {
	var slot *Slot
	switch ref.Role {
	case SlotHotbar:
		slot = c.Hotbar.Slot(ref.Index)
	case SlotBag:
		slot = c.Bag.Slot(ref.Index)
	}
	return slot, slot != nil
}

func (c *InventoryController) ThrowPoses() (Pose, Pose) {
	return c.throwOrigin, c.throwTarget
}
