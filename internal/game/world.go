package game

import "github.com/appengine-ltd/blockfall/internal/items"

// Pose is a world-space position and facing handed to the drop spawner so it
// can animate the thrown entity.
type Pose struct {
	X, Y, Z float32
	Yaw     float32
}

// ItemSpawner is the narrow contract to the world: hand it a stack and
// forget about it. The core never waits for or queries the result.
type ItemSpawner interface {
	SpawnDroppedItem(def *items.Definition, quantity int, origin, target Pose)
}

// NullSpawner discards drops. Used as a safe default until a surface wires
// the real world spawner in.
type NullSpawner struct{}

func (NullSpawner) SpawnDroppedItem(*items.Definition, int, Pose, Pose) {}
