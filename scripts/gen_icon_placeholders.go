//go:build ignore

// gen_icon_placeholders.go – run with:
//
//	go run scripts/gen_icon_placeholders.go
//
// Creates assets/icons/*.png placeholder icons for the builtin item
// catalog: a flat tinted square per item with a darker border. Replace
// with real art at any time – the catalog only stores the file names.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

var itemIDs = []string{
	"wood", "plank", "stick", "crafting_table", "wood_pickaxe",
	"wood_sword", "torch", "stone", "coal", "apple",
}

func main() {
	if err := os.MkdirAll(filepath.Join("assets", "icons"), 0o755); err != nil {
		log.Fatal(err)
	}
	for _, id := range itemIDs {
		path := filepath.Join("assets", "icons", id+".png")
		if err := genIcon(path, 32, tint(id)); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Placeholder icons written to assets/icons/")
}

func genIcon(path string, size int, fill color.RGBA) error {
	border := color.RGBA{
		R: fill.R / 2,
		G: fill.G / 2,
		B: fill.B / 2,
		A: 0xFF,
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < 2 || y < 2 || x >= size-2 || y >= size-2 {
				img.Set(x, y, border)
				continue
			}
			img.Set(x, y, fill)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// tint derives a stable colour from the item ID, matching the in-game
// placeholder quads.
func tint(id string) color.RGBA {
	var h uint32 = 2166136261
	for i := 0; i < len(id); i++ {
		h ^= uint32(id[i])
		h *= 16777619
	}
	return color.RGBA{
		R: uint8(80 + h%120),
		G: uint8(80 + (h>>8)%120),
		B: uint8(80 + (h>>16)%120),
		A: 0xFF,
	}
}
