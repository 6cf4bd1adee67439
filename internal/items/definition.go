package items

// Definition is one immutable catalog entry per item type. Definitions are
// shared read-only; runtime quantities live in game.ItemStack.
type Definition struct {
	ID     string
	Name   string
	Icon   string // texture key under assets/icons
	Model  string // world-model key for dropped entities
	Recipe *Recipe
}

// Craftable reports whether the definition carries a non-empty recipe.
func (d *Definition) Craftable() bool {
	return d != nil && d.Recipe != nil && !d.Recipe.IsEmpty()
}

// RecipeSize is the fixed edge of the recipe window. Smaller crafting grids
// map onto the top-left corner of this window.
const RecipeSize = 3

// Recipe is a 3x3 arrangement of ingredient item IDs. An empty string marks
// an unset cell. Recipes are only ever compared in normalised form.
type Recipe struct {
	Cells [RecipeSize][RecipeSize]string
}

// IsEmpty reports whether every cell is unset.
func (r Recipe) IsEmpty() bool {
	for _, row := range r.Cells {
		for _, cell := range row {
			if cell != "" {
				return false
			}
		}
	}
	return true
}

// Normalised translates the filled cells so the arrangement is anchored at
// the top-left corner. This makes matching position-independent: the same
// pattern entered anywhere inside the window normalises to the same recipe.
func (r Recipe) Normalised() Recipe {
	minRow, minCol := RecipeSize, RecipeSize
	for row := 0; row < RecipeSize; row++ {
		for col := 0; col < RecipeSize; col++ {
			if r.Cells[row][col] == "" {
				continue
			}
			if row < minRow {
				minRow = row
			}
			if col < minCol {
				minCol = col
			}
		}
	}
	if minRow == RecipeSize {
		return Recipe{}
	}
	var out Recipe
	for row := minRow; row < RecipeSize; row++ {
		for col := minCol; col < RecipeSize; col++ {
			out.Cells[row-minRow][col-minCol] = r.Cells[row][col]
		}
	}
	return out
}

// Equal compares two recipes cell by cell. Callers normalise both sides
// first when they want position-independent matching.
func (r Recipe) Equal(other Recipe) bool {
	return r.Cells == other.Cells
}
