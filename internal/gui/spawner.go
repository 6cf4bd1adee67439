//go:build cgo

package gui

import (
	"time"

	"github.com/appengine-ltd/blockfall/internal/game"
	"github.com/appengine-ltd/blockfall/internal/items"
	"github.com/appengine-ltd/blockfall/internal/logging"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const dropFlightTime = 600 * time.Millisecond

// dropLayer is the gui-side implementation of the world spawn contract.
// The core fires and forgets; this layer owes it nothing back. Until the
// entity system takes over it plays a short throw animation and logs the
// hand-off.
type dropLayer struct {
	drops []flyingDrop
}

type flyingDrop struct {
	def      *items.Definition
	quantity int
	age      time.Duration
	from     rl.Vector2
	to       rl.Vector2
}

func newDropLayer() *dropLayer {
	return &dropLayer{}
}

// SpawnDroppedItem screen-animates the throw for now; origin and target
// become world entity poses once the entity system takes over.
func (d *dropLayer) SpawnDroppedItem(def *items.Definition, quantity int, origin, target game.Pose) {
	logging.Log.WithField("item", def.ID).WithField("quantity", quantity).Debug("spawning dropped item")
	mouse := rl.GetMousePosition()
	d.drops = append(d.drops, flyingDrop{
		def:      def,
		quantity: quantity,
		from:     mouse,
		to:       rl.NewVector2(mouse.X, mouse.Y-160),
	})
}

func (d *dropLayer) update(delta time.Duration) {
	alive := d.drops[:0]
	for _, drop := range d.drops {
		drop.age += delta
		if drop.age < dropFlightTime {
			alive = append(alive, drop)
		}
	}
	d.drops = alive
}

func (d *dropLayer) draw() {
	for _, drop := range d.drops {
		t := float32(drop.age) / float32(dropFlightTime)
		x := drop.from.X + (drop.to.X-drop.from.X)*t
		y := drop.from.Y + (drop.to.Y-drop.from.Y)*t
		size := 18 * (1 - t*0.5)
		rect := rl.NewRectangle(x-size/2, y-size/2, size, size)
		rl.DrawRectangleRec(rect, itemColor(drop.def.ID))
		rl.DrawRectangleLinesEx(rect, 1, colorBorder)
	}
}
