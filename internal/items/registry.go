package items

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Registry is the immutable item catalog. It is built once at startup and
// shared read-only by every controller.
type Registry struct {
	defs []*Definition
	byID map[string]*Definition
}

func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		defs: make([]*Definition, 0, len(defs)),
		byID: make(map[string]*Definition, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		def.ID = strings.ToLower(strings.TrimSpace(def.ID))
		if def.ID == "" {
			continue
		}
		if _, exists := r.byID[def.ID]; exists {
			continue
		}
		d := &def
		r.defs = append(r.defs, d)
		r.byID[def.ID] = d
	}
	return r
}

// ByID resolves a definition by its identity key.
func (r *Registry) ByID(id string) (*Definition, bool) {
	def, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return def, ok
}

// All returns the catalog in registration order.
func (r *Registry) All() []*Definition {
	return r.defs
}

// Craftable returns the definitions that carry a recipe.
func (r *Registry) Craftable() []*Definition {
	out := make([]*Definition, 0, len(r.defs))
	for _, def := range r.defs {
		if def.Craftable() {
			out = append(out, def)
		}
	}
	return out
}

// FindByName resolves a definition from a display name. Tried in order:
// exact match, case-insensitive match, whitespace-insensitive match. Used
// when a stack has to be rehydrated from a name alone, e.g. to spawn a
// world entity for it.
func (r *Registry) FindByName(name string) (*Definition, bool) {
	for _, def := range r.defs {
		if def.Name == name {
			return def, true
		}
	}
	for _, def := range r.defs {
		if strings.EqualFold(def.Name, name) {
			return def, true
		}
	}
	squashed := squashName(name)
	if squashed == "" {
		return nil, false
	}
	for _, def := range r.defs {
		if squashName(def.Name) == squashed {
			return def, true
		}
	}
	return nil, false
}

// Suggest returns the catalog name closest to the given one, for warning
// messages when FindByName gives up. Only near misses are suggested.
func (r *Registry) Suggest(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	best := ""
	bestDist := 0
	for _, def := range r.defs {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(def.Name))
		if best == "" || dist < bestDist {
			best = def.Name
			bestDist = dist
		}
	}
	if best == "" || bestDist > suggestLimit(len(name)) {
		return "", false
	}
	return best, true
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func squashName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '\t' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
