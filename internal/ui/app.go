// Package ui is a terminal inspector for the inventory core. It drives the
// same controllers as the raylib surfaces by synthesising pointer frames at
// slot centers, which makes it usable for debugging drag and crafting
// behaviour on machines without a GL context.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/blockfall/internal/game"
	"github.com/appengine-ltd/blockfall/internal/items"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newInspectorModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	styleSlot  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleFresh = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type inspectorModel struct {
	cfg      AppConfig
	registry *items.Registry
	inv      *game.InventoryController
	station  *game.CraftingStationController
	coord    *game.UICoordinator

	demoIndex int
	status    string
}

func newInspectorModel(cfg AppConfig) inspectorModel {
	registry := items.DefaultCatalog()
	inv := game.NewInventoryController(registry, 9, 27, game.NullSpawner{}, 42)
	station := game.NewCraftingStationController(registry, inv, 9, game.NullSpawner{}, 42)
	coord := game.NewUICoordinator()
	coord.Register(inv)
	coord.Register(station)
	m := inspectorModel{
		cfg:      cfg,
		registry: registry,
		inv:      inv,
		station:  station,
		coord:    coord,
		status:   "g: pick up next catalog item",
	}
	m.layoutVirtualSlots()
	return m
}

// layoutVirtualSlots assigns synthetic bounds so the drag engine's hit
// testing works without a real window.
func (m *inspectorModel) layoutVirtualSlots() {
	const size, gap = 10, 2
	place := func(slots []*game.Slot, row int) {
		for i, slot := range slots {
			slot.Bounds = game.Rect{
				X: float32(i * (size + gap)),
				Y: float32(row * (size + gap)),
				W: size, H: size,
			}
		}
	}
	place(m.inv.Hotbar.Slots, 0)
	place(m.inv.Bag.Slots, 1)
	place(m.station.ShadowHotbar.Slots, 2)
	place(m.station.ShadowBag.Slots, 3)
	place(m.station.Grid.Slots, 4)
	m.station.Result.Bounds = game.Rect{X: 200, Y: 4 * (size + gap), W: size, H: size}
	m.inv.SetPanelBounds(game.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	m.station.SetPanelBounds(game.Rect{X: 0, Y: 0, W: 1000, H: 1000})
}

// clickSlot simulates a primary-button tick on the slot, plus the idle tick
// that clears the same-tick pickup guard.
func (m *inspectorModel) clickSlot(slot *game.Slot) {
	center := slot.Bounds.Center()
	m.station.Update(game.PointerFrame{Pos: center, Primary: true})
	m.station.Update(game.PointerFrame{Pos: center})
}

func (m inspectorModel) Init() tea.Cmd {
	return nil
}

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		m.pickupNext()
	case "c":
		m.station.Toggle()
		if m.station.IsOpen() {
			m.status = "crafting station open"
		} else {
			m.status = "crafting station closed, mirror reconciled"
		}
	case "m":
		m.moveIntoGrid()
	case "t":
		m.takeOutput()
	}
	if m.station.IsOpen() {
		m.station.Update(game.PointerFrame{Pos: game.Vec2{X: -100, Y: -100}})
	}
	return m, nil
}

func (m *inspectorModel) pickupNext() {
	defs := m.registry.All()
	def := defs[m.demoIndex%len(defs)]
	m.demoIndex++
	if m.inv.GetItem(def) {
		m.status = "picked up " + def.Name
	} else {
		m.status = styleWarn.Render("inventory full, " + def.Name + " stays in the world")
	}
}

// moveIntoGrid drags the first occupied shadow slot into the first empty
// grid cell through real pointer frames.
func (m *inspectorModel) moveIntoGrid() {
	if !m.station.IsOpen() {
		m.status = styleWarn.Render("open the station first (c)")
		return
	}
	var source *game.Slot
	for _, slot := range m.station.ReturnSlots() {
		if slot.Occupied() {
			source = slot
			break
		}
	}
	if source == nil {
		m.status = styleWarn.Render("nothing to move")
		return
	}
	target, ok := m.station.Grid.FirstEmpty()
	if !ok {
		m.status = styleWarn.Render("grid full")
		return
	}
	m.clickSlot(source)
	m.clickSlot(target)
	m.status = "moved one stack into the grid"
}

func (m *inspectorModel) takeOutput() {
	if !m.station.IsOpen() || !m.station.Result.Occupied() {
		m.status = styleWarn.Render("no crafted output to take")
		return
	}
	name := m.station.Result.Stack.Def.Name
	m.clickSlot(m.station.Result)
	if target, ok := m.station.ShadowHotbar.FirstEmpty(); ok {
		m.clickSlot(target)
	}
	m.status = "took " + name
}

func (m inspectorModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("blockfall inventory inspector %s", m.cfg.Version)))
	b.WriteString("\n\n")

	b.WriteString(renderCollection("hotbar", m.inv.Hotbar))
	b.WriteString(renderCollection("bag", m.inv.Bag))

	if m.station.IsOpen() {
		b.WriteString("\n" + styleTitle.Render("crafting station") + "\n")
		b.WriteString(renderCollection("grid", m.station.Grid))
		out := "empty"
		if m.station.Result.Occupied() {
			out = fmt.Sprintf("%s x%d", m.station.Result.Stack.Def.Name, m.station.Result.Stack.Quantity)
			if m.station.Result.Stack.JustCrafted {
				out = styleFresh.Render(out + " (fresh)")
			}
		}
		b.WriteString("output: " + out + "\n")
		b.WriteString(renderCollection("mirror hotbar", m.station.ShadowHotbar))
		b.WriteString(renderCollection("mirror bag", m.station.ShadowBag))
	}

	b.WriteString("\n" + m.status + "\n")
	b.WriteString(styleDim.Render("g pickup  c station  m move to grid  t take output  q quit"))
	return b.String()
}

func renderCollection(label string, c *game.SlotCollection) string {
	cells := make([]string, 0, c.Len())
	for _, slot := range c.Slots {
		if !slot.Occupied() {
			cells = append(cells, styleDim.Render("[ .. ]"))
			continue
		}
		cells = append(cells, styleSlot.Render(fmt.Sprintf("[%s x%d]", slot.Stack.Def.ID, slot.Stack.Quantity)))
	}
	return fmt.Sprintf("%-14s %s\n", label, strings.Join(cells, " "))
}
