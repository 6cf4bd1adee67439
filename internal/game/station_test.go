package game

import (
	"testing"
)

func TestOpenBuildsShadowCopies(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Hotbar.Slot(1).Put(NewStack(wood, 17))

	station.Open()
	shadow := station.ShadowHotbar.Slot(1)
	if !shadow.Occupied() || shadow.Stack.Def != wood || shadow.Stack.Quantity != 17 {
		t.Fatalf("expected shadow copy of the real stack, got %+v", shadow.Stack)
	}
	if shadow.Stack == inv.Hotbar.Slot(1).Stack {
		t.Fatalf("expected the shadow to be a separate instance")
	}

	// Shadow edits do not leak into the real slots until close.
	shadow.SetQuantity(3)
	if got := inv.Hotbar.Slot(1).Stack.Quantity; got != 17 {
		t.Fatalf("expected real slot untouched while open, got %d", got)
	}
}

func TestCloseRoundTripConservesItems(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	stone := testDef(t, registry, "stone")
	inv.Bag.Slot(0).Put(NewStack(wood, 12))
	inv.Bag.Slot(1).Put(NewStack(stone, 7))
	before := itemTotals(inv.Hotbar, inv.Bag)

	station.Open()
	// Move the wood into the crafting grid, then close without crafting.
	source := station.ShadowBag.Slot(0)
	target := station.Grid.Slot(4)
	press(station.Update, source.Bounds.Center(), true)
	press(station.Update, target.Bounds.Center(), true)
	if !target.Occupied() {
		t.Fatalf("expected wood in the grid")
	}
	station.Close()

	after := itemTotals(inv.Hotbar, inv.Bag)
	if len(after) != len(before) || after["wood"] != before["wood"] || after["stone"] != before["stone"] {
		t.Fatalf("close lost or duplicated items: before %v after %v", before, after)
	}
	if station.Grid.Slot(4).Occupied() {
		t.Fatalf("expected the grid cleared on close")
	}
}

func TestCloseWritesShadowQuantitiesBack(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 10))

	station.Open()
	// Split half out of the shadow stack and park it in another shadow
	// slot: totals are unchanged but the distribution is new.
	source := station.ShadowBag.Slot(0)
	other := station.ShadowBag.Slot(3)
	press(station.Update, source.Bounds.Center(), false)
	press(station.Update, other.Bounds.Center(), true)
	station.Close()

	if got := inv.Bag.Slot(0).Stack.Quantity; got != 5 {
		t.Fatalf("expected real slot 0 reduced to 5, got %d", got)
	}
	if got := inv.Bag.Slot(3).Stack.Quantity; got != 5 {
		t.Fatalf("expected real slot 3 holding the split 5, got %d", got)
	}
	if got := itemTotals(inv.Hotbar, inv.Bag)["wood"]; got != 10 {
		t.Fatalf("expected 10 wood in total, got %d", got)
	}
}

func TestCloseAdoptsSwappedItems(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	stone := testDef(t, registry, "stone")
	inv.Bag.Slot(0).Put(NewStack(wood, 2))
	inv.Bag.Slot(1).Put(NewStack(stone, 6))

	station.Open()
	a := station.ShadowBag.Slot(0)
	b := station.ShadowBag.Slot(1)
	// Swap by drag: pick wood, drop on stone (swap), drop stone on the
	// emptied slot.
	press(station.Update, a.Bounds.Center(), true)
	press(station.Update, b.Bounds.Center(), true)
	press(station.Update, a.Bounds.Center(), true)
	station.Close()

	if inv.Bag.Slot(0).Stack.Def != stone || inv.Bag.Slot(0).Stack.Quantity != 6 {
		t.Fatalf("expected real slot 0 to adopt the stone, got %+v", inv.Bag.Slot(0).Stack)
	}
	if inv.Bag.Slot(1).Stack.Def != wood || inv.Bag.Slot(1).Stack.Quantity != 2 {
		t.Fatalf("expected real slot 1 to adopt the wood, got %+v", inv.Bag.Slot(1).Stack)
	}
}

func TestCraftCollectAndClose(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 3))

	station.Open()
	source := station.ShadowBag.Slot(0)
	cell := station.Grid.Slot(0)
	press(station.Update, source.Bounds.Center(), true)
	press(station.Update, cell.Bounds.Center(), true)

	// The next tick's recipe check fills the output slot.
	station.Update(PointerFrame{Pos: Vec2{X: -200, Y: -200}})
	if !station.Result.Occupied() || station.Result.Stack.Def.ID != "plank" {
		t.Fatalf("expected a plank result, got %+v", station.Result.Stack)
	}

	// Collecting the result consumes one wood from the grid.
	press(station.Update, station.Result.Bounds.Center(), true)
	held := station.Engine().Held()
	if held == nil || held.Def.ID != "plank" || held.JustCrafted {
		t.Fatalf("expected detached plank with crafted flag cleared, got %+v", held)
	}
	if got := cell.Stack.Quantity; got != 2 {
		t.Fatalf("expected grid cell reduced to 2, got %d", got)
	}

	// Park the plank in a shadow slot and close.
	park := station.ShadowBag.Slot(5)
	press(station.Update, park.Bounds.Center(), true)
	station.Close()

	totals := itemTotals(inv.Hotbar, inv.Bag)
	if totals["plank"] != 1 {
		t.Fatalf("expected the crafted plank kept, got %d", totals["plank"])
	}
	if totals["wood"] != 2 {
		t.Fatalf("expected 2 wood left after crafting, got %d", totals["wood"])
	}
}

func TestUncollectedResultDiscardedOnClose(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 1))

	station.Open()
	source := station.ShadowBag.Slot(0)
	cell := station.Grid.Slot(0)
	press(station.Update, source.Bounds.Center(), true)
	press(station.Update, cell.Bounds.Center(), true)
	station.Update(PointerFrame{Pos: Vec2{X: -200, Y: -200}})
	if !station.Result.Occupied() {
		t.Fatalf("expected an uncollected result before close")
	}
	station.Close()

	if station.Result.Occupied() {
		t.Fatalf("expected the uncollected result discarded")
	}
	totals := itemTotals(inv.Hotbar, inv.Bag)
	if totals["plank"] != 0 || totals["wood"] != 1 {
		t.Fatalf("expected only the original wood back, got %v", totals)
	}
}

func TestDetachedResultSurvivesGridDisturbance(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 2))

	station.Open()
	source := station.ShadowBag.Slot(0)
	cell := station.Grid.Slot(0)
	press(station.Update, source.Bounds.Center(), true)
	press(station.Update, cell.Bounds.Center(), true)
	station.Update(PointerFrame{Pos: Vec2{X: -200, Y: -200}})

	// Collect, then disturb the remaining ingredient.
	press(station.Update, station.Result.Bounds.Center(), true)
	held := station.Engine().Held()
	cell.SetQuantity(0)
	station.Update(PointerFrame{Pos: Vec2{X: -200, Y: -200}})

	if held == nil || held.Quantity != 1 {
		t.Fatalf("expected the detached result untouched, got %+v", held)
	}
	if station.Result.Occupied() {
		t.Fatalf("expected no new result from an empty grid")
	}
}

// The same item sitting in two bag slots while one copy moves through the
// crafting grid is the ambiguous case the mirror reconciliation has to get
// right; pin the conservation law for it.
func TestDuplicateItemAcrossSlotsSurvivesRoundTrip(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 4))
	inv.Bag.Slot(1).Put(NewStack(wood, 9))

	station.Open()
	source := station.ShadowBag.Slot(0)
	cell := station.Grid.Slot(2)
	press(station.Update, source.Bounds.Center(), true)
	press(station.Update, cell.Bounds.Center(), true)
	station.Close()

	if got := itemTotals(inv.Hotbar, inv.Bag)["wood"]; got != 13 {
		t.Fatalf("expected 13 wood conserved across the round trip, got %d", got)
	}
}

func TestCloseWithHeldStackNeverLosesIt(t *testing.T) {
	station, inv, registry := newTestStation(t, nil)
	wood := testDef(t, registry, "wood")
	inv.Bag.Slot(0).Put(NewStack(wood, 6))

	station.Open()
	source := station.ShadowBag.Slot(0)
	press(station.Update, source.Bounds.Center(), true)
	if station.Engine().Held() == nil {
		t.Fatalf("expected a held stack before close")
	}
	station.Close()

	if got := itemTotals(inv.Hotbar, inv.Bag)["wood"]; got != 6 {
		t.Fatalf("expected the held stack returned on close, got %d", got)
	}
}

func TestGridClearOverflowGoesToWorld(t *testing.T) {
	spawner := &recordingSpawner{}
	station, inv, registry := newTestStation(t, spawner)
	wood := testDef(t, registry, "wood")
	stone := testDef(t, registry, "stone")

	station.Open()
	// Fill the whole inventory after opening, then leave wood in the grid:
	// the grid clear cannot find a slot and must hand the wood to the
	// world instead of deleting it.
	for _, slot := range inv.DropSlots() {
		slot.SetQuantity(0)
		slot.Put(NewStack(stone, StackCap))
	}
	for _, shadow := range station.ReturnSlots() {
		shadow.SetQuantity(0)
		shadow.Put(NewStack(stone, StackCap))
	}
	station.Grid.Slot(0).Put(NewStack(wood, 3))
	station.Close()

	if got := spawner.total("wood"); got != 3 {
		t.Fatalf("expected 3 wood handed to the world, got %d", got)
	}
}
