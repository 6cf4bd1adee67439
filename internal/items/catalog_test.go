package items

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCatalog = `
items:
  - id: wood
    name: Wood
  - id: plank
    name: Plank
    icon: icons/custom_plank.png
    recipe:
      - [wood]
  - id: stick
    name: Stick
    recipe:
      - [plank]
      - [plank]
`

func TestParseCatalog(t *testing.T) {
	registry, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := len(registry.All()); got != 3 {
		t.Fatalf("expected 3 definitions, got %d", got)
	}

	wood, ok := registry.ByID("wood")
	if !ok {
		t.Fatalf("wood missing from registry")
	}
	if wood.Icon != "icons/wood.png" || wood.Model != "models/wood.obj" {
		t.Fatalf("expected derived asset paths, got icon %q model %q", wood.Icon, wood.Model)
	}

	plank, _ := registry.ByID("plank")
	if plank.Icon != "icons/custom_plank.png" {
		t.Fatalf("expected explicit icon kept, got %q", plank.Icon)
	}
	if !plank.Craftable() || plank.Recipe.Cells[0][0] != "wood" {
		t.Fatalf("plank recipe not loaded: %+v", plank.Recipe)
	}

	stick, _ := registry.ByID("stick")
	if stick.Recipe.Cells[0][0] != "plank" || stick.Recipe.Cells[1][0] != "plank" {
		t.Fatalf("stick recipe rows misread: %+v", stick.Recipe)
	}
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"not yaml", "items: [", "parse"},
		{"missing id", "items:\n  - name: Nameless\n", "without id"},
		{"too many rows", "items:\n  - id: wide\n    name: Wide\n    recipe:\n      - [a]\n      - [a]\n      - [a]\n      - [a]\n", "rows"},
		{"too many cells", "items:\n  - id: wide\n    name: Wide\n    recipe:\n      - [a, a, a, a]\n", "cells"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.data))
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}
	registry, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := registry.ByID("stick"); !ok {
		t.Fatalf("expected stick in loaded catalog")
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultCatalogRecipesResolve(t *testing.T) {
	registry := DefaultCatalog()
	for _, def := range registry.Craftable() {
		for _, row := range def.Recipe.Cells {
			for _, cell := range row {
				if cell == "" {
					continue
				}
				if _, ok := registry.ByID(cell); !ok {
					t.Fatalf("%s recipe references unknown ingredient %q", def.ID, cell)
				}
			}
		}
	}
}
