//go:build cgo

package gui

import (
	"fmt"

	"github.com/appengine-ltd/blockfall/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slot bounds live on the core's slots and are reassigned every frame, so
// the model's hit testing always matches what was last drawn, including
// after a window resize.

func (ui *gameUI) layoutInventory() {
	s := ui.conf.UI.SlotSize
	g := ui.conf.UI.SlotGap
	cols := ui.inv.Hotbar.Len()
	bagRows := rows(ui.inv.Bag.Len(), cols)

	panelW := float32(cols)*(s+g) + g + 24
	panelH := float32(bagRows+1)*(s+g) + g + 24 + 46
	panel := game.Rect{
		X: (float32(ui.width) - panelW) / 2,
		Y: (float32(ui.height) - panelH) / 2,
		W: panelW,
		H: panelH,
	}

	x0 := panel.X + 12 + g/2
	y0 := panel.Y + 40
	layoutGrid(ui.inv.Bag.Slots, x0, y0, cols, s, g)
	hotbarY := y0 + float32(bagRows)*(s+g) + 12
	layoutGrid(ui.inv.Hotbar.Slots, x0, hotbarY, cols, s, g)

	ui.inv.SetPanelBounds(panel)
	ui.inv.SetThrowPoses(ui.cameraPoses())
}

func (ui *gameUI) layoutStation() {
	s := ui.conf.UI.SlotSize
	g := ui.conf.UI.SlotGap
	cols := ui.inv.Hotbar.Len()
	bagRows := rows(ui.station.ShadowBag.Len(), cols)
	gridCols := gridWidth(ui.station.Grid.Len())

	craftH := float32(gridCols)*(s+g) + 32
	panelW := float32(cols)*(s+g) + g + 24
	panelH := float32(bagRows+1)*(s+g) + g + 24 + 46 + craftH
	panel := game.Rect{
		X: (float32(ui.width) - panelW) / 2,
		Y: (float32(ui.height) - panelH) / 2,
		W: panelW,
		H: panelH,
	}

	x0 := panel.X + 12 + g/2
	y0 := panel.Y + 40

	// Crafting grid top left, output to its right.
	gridX := x0 + (s+g)*1.5
	layoutGrid(ui.station.Grid.Slots, gridX, y0, gridCols, s, g)
	outX := gridX + float32(gridCols)*(s+g) + s
	outY := y0 + (float32(gridCols)*(s+g)-s-g)/2
	ui.station.Result.Bounds = game.Rect{X: outX, Y: outY, W: s, H: s}

	// Mirrored bag and hotbar underneath.
	bagY := y0 + craftH
	layoutGrid(ui.station.ShadowBag.Slots, x0, bagY, cols, s, g)
	hotbarY := bagY + float32(bagRows)*(s+g) + 12
	layoutGrid(ui.station.ShadowHotbar.Slots, x0, hotbarY, cols, s, g)

	ui.station.SetPanelBounds(panel)
	ui.station.SetThrowPoses(ui.cameraPoses())
}

// cameraPoses fakes the player camera until the movement system provides a
// real one: drops originate at the player and fly forward.
func (ui *gameUI) cameraPoses() (game.Pose, game.Pose) {
	origin := game.Pose{X: 0, Y: 1.6, Z: 0}
	target := game.Pose{X: 0, Y: 1.2, Z: 2.5}
	return origin, target
}

func layoutGrid(slots []*game.Slot, x0, y0 float32, cols int, size, gap float32) {
	for i, slot := range slots {
		col := i % cols
		row := i / cols
		slot.Bounds = game.Rect{
			X: x0 + float32(col)*(size+gap),
			Y: y0 + float32(row)*(size+gap),
			W: size,
			H: size,
		}
	}
}

func rows(count, cols int) int {
	if cols <= 0 {
		return 0
	}
	return (count + cols - 1) / cols
}

func gridWidth(slots int) int {
	switch slots {
	case 4:
		return 2
	default:
		return 3
	}
}

func (ui *gameUI) drawInventory() {
	drawPanel(toRayRect(ui.inv.PanelBounds()), "Inventory")
	for _, view := range ui.inv.Snapshot() {
		drawSlotView(view)
	}
}

func (ui *gameUI) drawStation() {
	drawPanel(toRayRect(ui.station.PanelBounds()), "Crafting")
	for _, view := range ui.station.Snapshot() {
		drawSlotView(view)
	}
	out := ui.station.Result.Bounds
	rl.DrawText("->", int32(out.X)-26, int32(out.Y)+int32(out.H/2)-10, 20, colorDim)
}

// drawHUDHotbar keeps the hotbar visible at the bottom of the world view
// even while every panel is closed.
func (ui *gameUI) drawHUDHotbar() {
	if ui.coord.AnyOpen() {
		return
	}
	s := ui.conf.UI.SlotSize
	g := ui.conf.UI.SlotGap
	cols := ui.inv.Hotbar.Len()
	x0 := (float32(ui.width) - float32(cols)*(s+g)) / 2
	y0 := float32(ui.height) - s - 34
	layoutGrid(ui.inv.Hotbar.Slots, x0, y0, cols, s, g)
	for _, slot := range ui.inv.Hotbar.Slots {
		view := snapshotSlot(ui.inv, slot.Index)
		drawSlotView(view)
		if slot.Index == ui.inv.SelectedHotbar() {
			rl.DrawRectangleLinesEx(toRayRect(slot.Bounds), 3, colorHighlight)
		}
	}
}

func snapshotSlot(inv *game.InventoryController, index int) game.SlotView {
	return inv.Snapshot()[index]
}

func (ui *gameUI) drawHeld(engine *game.DragEngine) {
	held := engine.Held()
	if held == nil {
		return
	}
	s := ui.conf.UI.SlotSize
	p := engine.Pointer()
	rect := rl.NewRectangle(p.X-s/2, p.Y-s/2, s, s)
	drawStackIcon(rect, held.Def.ID, held.Def.Name, held.Quantity, false)
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorText)
}

func drawSlotView(view game.SlotView) {
	rect := toRayRect(view.Bounds)
	rl.DrawRectangleRec(rect, colorSlot)
	line := colorSlotLine
	if view.Highlight {
		line = colorHighlight
	}
	rl.DrawRectangleLinesEx(rect, 2, line)
	if view.ItemID == "" {
		return
	}
	drawStackIcon(rect, view.ItemID, view.ItemName, view.Quantity, view.JustCrafted)
}

// drawStackIcon renders the placeholder icon: a tinted quad keyed off the
// item ID with the item initial and the stack count. Real icon textures
// slot in here once the asset pipeline lands.
func drawStackIcon(rect rl.Rectangle, id, name string, quantity int, crafted bool) {
	inner := rl.NewRectangle(rect.X+6, rect.Y+6, rect.Width-12, rect.Height-12)
	rl.DrawRectangleRec(inner, itemColor(id))
	initial := "?"
	if name != "" {
		initial = string(name[0])
	}
	rl.DrawText(initial, int32(inner.X)+4, int32(inner.Y)+2, 18, colorText)
	if quantity > 1 {
		label := fmt.Sprintf("%d", quantity)
		w := rl.MeasureText(label, 16)
		rl.DrawText(label, int32(rect.X+rect.Width)-w-4, int32(rect.Y+rect.Height)-18, 16, colorText)
	}
	if crafted {
		rl.DrawRectangleLinesEx(inner, 1, colorCrafted)
	}
}

// itemColor derives a stable tint from the item ID.
func itemColor(id string) rl.Color {
	var h uint32 = 2166136261
	for i := 0; i < len(id); i++ {
		h ^= uint32(id[i])
		h *= 16777619
	}
	r := uint8(80 + h%120)
	g := uint8(80 + (h>>8)%120)
	b := uint8(80 + (h>>16)%120)
	return rl.NewColor(r, g, b, 255)
}
