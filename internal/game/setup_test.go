package game

import (
	"testing"

	"github.com/appengine-ltd/blockfall/internal/items"
)

type droppedItem struct {
	def      *items.Definition
	quantity int
}

// recordingSpawner captures world hand-offs so tests can assert on thrown
// stacks.
type recordingSpawner struct {
	drops []droppedItem
}

func (r *recordingSpawner) SpawnDroppedItem(def *items.Definition, quantity int, origin, target Pose) {
	r.drops = append(r.drops, droppedItem{def: def, quantity: quantity})
}

func (r *recordingSpawner) total(id string) int {
	sum := 0
	for _, drop := range r.drops {
		if drop.def.ID == id {
			sum += drop.quantity
		}
	}
	return sum
}

func testDef(t *testing.T, registry *items.Registry, id string) *items.Definition {
	t.Helper()
	def, ok := registry.ByID(id)
	if !ok {
		t.Fatalf("missing catalog item %s", id)
	}
	return def
}

// layoutSlots assigns synthetic screen bounds in a wide grid so hit testing
// and nearest-slot resolution behave as they would after a real layout pass.
func layoutSlots(slots []*Slot) {
	for i, slot := range slots {
		slot.Bounds = Rect{
			X: float32(i%10) * 60,
			Y: float32(i/10) * 60,
			W: 50,
			H: 50,
		}
	}
}

func newTestInventory(t *testing.T, spawner ItemSpawner) (*InventoryController, *items.Registry) {
	t.Helper()
	registry := items.DefaultCatalog()
	inv := NewInventoryController(registry, 9, 27, spawner, 40)
	layoutSlots(inv.DropSlots())
	inv.SetPanelBounds(Rect{X: -10, Y: -10, W: 2000, H: 2000})
	inv.Open()
	return inv, registry
}

func newTestStation(t *testing.T, spawner ItemSpawner) (*CraftingStationController, *InventoryController, *items.Registry) {
	t.Helper()
	registry := items.DefaultCatalog()
	inv := NewInventoryController(registry, 9, 27, spawner, 40)
	layoutSlots(inv.DropSlots())
	inv.SetPanelBounds(Rect{X: -10, Y: -10, W: 2000, H: 2000})
	station := NewCraftingStationController(registry, inv, 9, spawner, 40)
	layoutSlots(station.DropSlots())
	station.Result.Bounds = Rect{X: 720, Y: 300, W: 50, H: 50}
	station.SetPanelBounds(Rect{X: -10, Y: -10, W: 2000, H: 2000})
	return station, inv, registry
}

// press delivers one click edge at the position, then one quiet tick so the
// same-tick pickup guard clears the way a real frame sequence would.
func press(update func(PointerFrame), pos Vec2, primary bool) {
	frame := PointerFrame{Pos: pos}
	if primary {
		frame.Primary = true
	} else {
		frame.Secondary = true
	}
	update(frame)
	update(PointerFrame{Pos: pos})
}

// itemTotals sums quantities per item ID across the given collections.
func itemTotals(collections ...*SlotCollection) map[string]int {
	totals := make(map[string]int)
	for _, c := range collections {
		for _, slot := range c.Slots {
			if slot.Occupied() {
				totals[slot.Stack.Def.ID] += slot.Stack.Quantity
			}
		}
	}
	return totals
}
