package items

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Items []catalogItem `yaml:"items"`
}

type catalogItem struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Icon   string     `yaml:"icon,omitempty"`
	Model  string     `yaml:"model,omitempty"`
	Recipe [][]string `yaml:"recipe,omitempty"` // rows of up to 3 ingredient IDs
}

// LoadCatalog reads an item catalog from a YAML file.
func LoadCatalog(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a registry from raw catalog YAML.
func ParseCatalog(data []byte) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	defs := make([]Definition, 0, len(file.Items))
	for _, entry := range file.Items {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry without id (name %q)", entry.Name)
		}
		def := Definition{
			ID:    entry.ID,
			Name:  entry.Name,
			Icon:  entry.Icon,
			Model: entry.Model,
		}
		if def.Icon == "" {
			def.Icon = "icons/" + entry.ID + ".png"
		}
		if def.Model == "" {
			def.Model = "models/" + entry.ID + ".obj"
		}
		if len(entry.Recipe) > 0 {
			recipe, err := recipeFromRows(entry.Recipe)
			if err != nil {
				return nil, fmt.Errorf("catalog entry %s: %w", entry.ID, err)
			}
			def.Recipe = &recipe
		}
		defs = append(defs, def)
	}
	return NewRegistry(defs), nil
}

func recipeFromRows(rows [][]string) (Recipe, error) {
	if len(rows) > RecipeSize {
		return Recipe{}, fmt.Errorf("recipe has %d rows, max %d", len(rows), RecipeSize)
	}
	var recipe Recipe
	for rowIdx, row := range rows {
		if len(row) > RecipeSize {
			return Recipe{}, fmt.Errorf("recipe row %d has %d cells, max %d", rowIdx, len(row), RecipeSize)
		}
		for colIdx, cell := range row {
			recipe.Cells[rowIdx][colIdx] = cell
		}
	}
	return recipe, nil
}

// DefaultCatalog is the builtin item set used when no catalog file is
// configured. Kept small; real content ships as data.
func DefaultCatalog() *Registry {
	plankRecipe := Recipe{}
	plankRecipe.Cells[0][0] = "wood"

	stickRecipe := Recipe{}
	stickRecipe.Cells[0][0] = "plank"
	stickRecipe.Cells[1][0] = "plank"

	tableRecipe := Recipe{}
	tableRecipe.Cells[0][0] = "plank"
	tableRecipe.Cells[0][1] = "plank"
	tableRecipe.Cells[1][0] = "plank"
	tableRecipe.Cells[1][1] = "plank"

	pickaxeRecipe := Recipe{}
	pickaxeRecipe.Cells[0][0] = "plank"
	pickaxeRecipe.Cells[0][1] = "plank"
	pickaxeRecipe.Cells[0][2] = "plank"
	pickaxeRecipe.Cells[1][1] = "stick"
	pickaxeRecipe.Cells[2][1] = "stick"

	swordRecipe := Recipe{}
	swordRecipe.Cells[0][0] = "plank"
	swordRecipe.Cells[1][0] = "plank"
	swordRecipe.Cells[2][0] = "stick"

	torchRecipe := Recipe{}
	torchRecipe.Cells[0][0] = "coal"
	torchRecipe.Cells[1][0] = "stick"

	return NewRegistry([]Definition{
		{ID: "wood", Name: "Wood"},
		{ID: "plank", Name: "Plank", Recipe: &plankRecipe},
		{ID: "stick", Name: "Stick", Recipe: &stickRecipe},
		{ID: "crafting_table", Name: "Crafting Table", Recipe: &tableRecipe},
		{ID: "wood_pickaxe", Name: "Wood Pickaxe", Recipe: &pickaxeRecipe},
		{ID: "wood_sword", Name: "Wood Sword", Recipe: &swordRecipe},
		{ID: "torch", Name: "Torch", Recipe: &torchRecipe},
		{ID: "stone", Name: "Stone"},
		{ID: "coal", Name: "Coal"},
		{ID: "apple", Name: "Apple"},
	})
}
