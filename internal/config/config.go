package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all client configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Inventory InventoryConfig `yaml:"inventory"`
	Crafting  CraftingConfig  `yaml:"crafting"`
	UI        UIConfig        `yaml:"ui"`
	Items     ItemsConfig     `yaml:"items"`
}

// WindowConfig holds window and loop settings.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// InventoryConfig sizes the player's slot collections.
type InventoryConfig struct {
	HotbarSlots int `yaml:"hotbar_slots"`
	BagSlots    int `yaml:"bag_slots"`
}

// CraftingConfig sizes the station grid. Only 4 (2x2) and 9 (3x3) ever
// match recipes.
type CraftingConfig struct {
	GridSlots int `yaml:"grid_slots"`
}

// UIConfig holds panel layout tuning shared by the surfaces.
type UIConfig struct {
	SlotSize        float32 `yaml:"slot_size"`
	SlotGap         float32 `yaml:"slot_gap"`
	HighlightRadius float32 `yaml:"highlight_radius"`
}

// ItemsConfig points at the item catalog data.
type ItemsConfig struct {
	CatalogPath string `yaml:"catalog_path"` // empty = builtin catalog
}

// Load reads configuration from a YAML file and applies defaults for
// anything unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the builtin configuration.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1366
	}
	if c.Window.Height == 0 {
		c.Window.Height = 768
	}
	if c.Window.FPS == 0 {
		c.Window.FPS = 60
	}
	if c.Inventory.HotbarSlots == 0 {
		c.Inventory.HotbarSlots = 9
	}
	if c.Inventory.BagSlots == 0 {
		c.Inventory.BagSlots = 27
	}
	if c.Crafting.GridSlots == 0 {
		c.Crafting.GridSlots = 9
	}
	if c.UI.SlotSize == 0 {
		c.UI.SlotSize = 52
	}
	if c.UI.SlotGap == 0 {
		c.UI.SlotGap = 8
	}
	if c.UI.HighlightRadius == 0 {
		c.UI.HighlightRadius = 42
	}
}
