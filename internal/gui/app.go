//go:build cgo

package gui

import (
	"time"

	"github.com/appengine-ltd/blockfall/internal/config"
	"github.com/appengine-ltd/blockfall/internal/game"
	"github.com/appengine-ltd/blockfall/internal/items"
	"github.com/appengine-ltd/blockfall/internal/logging"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version    string
	Commit     string
	BuildDate  string
	ConfigPath string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

var (
	colorBG        = rl.NewColor(16, 18, 24, 255)
	colorPanel     = rl.NewColor(30, 34, 44, 255)
	colorBorder    = rl.NewColor(92, 102, 122, 255)
	colorSlot      = rl.NewColor(22, 25, 33, 255)
	colorSlotLine  = rl.NewColor(58, 64, 80, 255)
	colorHighlight = rl.NewColor(240, 214, 96, 255)
	colorText      = rl.NewColor(222, 228, 238, 255)
	colorDim       = rl.NewColor(128, 138, 154, 255)
	colorCrafted   = rl.NewColor(120, 230, 150, 255)
)

type gameUI struct {
	cfg  AppConfig
	conf *config.Config

	registry *items.Registry
	coord    *game.UICoordinator
	inv      *game.InventoryController
	station  *game.CraftingStationController
	drops    *dropLayer

	width    int32
	height   int32
	lastTick time.Time
	quit     bool

	demoIndex int
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	conf := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}

	registry := items.DefaultCatalog()
	if conf.Items.CatalogPath != "" {
		loaded, err := items.LoadCatalog(conf.Items.CatalogPath)
		if err != nil {
			return nil, err
		}
		registry = loaded
	}

	ui := &gameUI{
		cfg:      cfg,
		conf:     conf,
		registry: registry,
		coord:    game.NewUICoordinator(),
		drops:    newDropLayer(),
		width:    int32(conf.Window.Width),
		height:   int32(conf.Window.Height),
	}
	ui.inv = game.NewInventoryController(registry, conf.Inventory.HotbarSlots, conf.Inventory.BagSlots, ui.drops, conf.UI.HighlightRadius)
	ui.station = game.NewCraftingStationController(registry, ui.inv, conf.Crafting.GridSlots, ui.drops, conf.UI.HighlightRadius)
	ui.coord.Register(ui.inv)
	ui.coord.Register(ui.station)
	ui.lastTick = time.Now()
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "blockfall")
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(ui.conf.Window.FPS))

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(delta time.Duration) {
	ui.handleKeys()
	ui.drops.update(delta)

	frame := game.PointerFrame{
		Pos:       toVec2(rl.GetMousePosition()),
		Primary:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Secondary: rl.IsMouseButtonPressed(rl.MouseRightButton),
	}

	switch {
	case ui.station.IsOpen():
		ui.layoutStation()
		ui.station.Update(frame)
	case ui.inv.IsOpen():
		ui.layoutInventory()
		ui.inv.Update(frame)
	}
}

func (ui *gameUI) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.coord.CloseAll()
	case rl.IsKeyPressed(rl.KeyE):
		if ui.station.IsOpen() {
			ui.station.Close()
		} else {
			ui.inv.Toggle()
		}
	case rl.IsKeyPressed(rl.KeyC):
		if ui.inv.IsOpen() {
			ui.inv.Close()
		}
		ui.station.Toggle()
	case rl.IsKeyPressed(rl.KeyQ) && !ui.coord.AnyOpen():
		ui.quit = true
	}

	// Movement and block interaction suspend themselves through the
	// coordinator while a panel is open; the HUD hotbar selection does too.
	if !ui.coord.AnyOpen() {
		for key := int32(rl.KeyOne); key <= int32(rl.KeyNine); key++ {
			if rl.IsKeyPressed(key) {
				ui.inv.SelectHotbar(int(key - int32(rl.KeyOne)))
			}
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			ui.inv.SelectHotbar(ui.inv.SelectedHotbar() - int(wheel))
		}
		// Dev pickup: cycles catalog items until the world interaction
		// systems land in this shell.
		if rl.IsKeyPressed(rl.KeyG) {
			ui.pickupNextDemoItem()
		}
	}
}

func (ui *gameUI) pickupNextDemoItem() {
	defs := ui.registry.All()
	if len(defs) == 0 {
		return
	}
	def := defs[ui.demoIndex%len(defs)]
	ui.demoIndex++
	if !ui.inv.GetItem(def) {
		logging.Log.WithField("item", def.ID).Info("world pickup rejected")
	}
}

func (ui *gameUI) draw() {
	ui.drawWorldBackdrop()
	ui.drawHUDHotbar()

	switch {
	case ui.station.IsOpen():
		ui.drawStation()
		ui.drawHeld(ui.station.Engine())
	case ui.inv.IsOpen():
		ui.drawInventory()
		ui.drawHeld(ui.inv.Engine())
	}

	ui.drops.draw()
	ui.drawStatusLine()
}

func (ui *gameUI) drawWorldBackdrop() {
	// Placeholder for the voxel scene; the world renderer composites
	// underneath these panels and is not part of this core.
	step := int32(48)
	for x := int32(0); x < ui.width; x += step {
		rl.DrawLine(x, 0, x, ui.height, colorSlot)
	}
	for y := int32(0); y < ui.height; y += step {
		rl.DrawLine(0, y, ui.width, y, colorSlot)
	}
	if !ui.coord.AnyOpen() {
		cx, cy := ui.width/2, ui.height/2
		rl.DrawLine(cx-8, cy, cx+8, cy, colorDim)
		rl.DrawLine(cx, cy-8, cx, cy+8, colorDim)
	}
}

func (ui *gameUI) drawStatusLine() {
	text := "E inventory  C crafting  G pick up  1-9 hotbar  Q quit"
	if ui.coord.AnyOpen() {
		text = "LMB pick/drop  RMB half/one  click outside panel to throw  Esc close"
	}
	rl.DrawText(text, 12, ui.height-24, 16, colorDim)
}

func toVec2(v rl.Vector2) game.Vec2 {
	return game.Vec2{X: v.X, Y: v.Y}
}

func toRayRect(r game.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}
