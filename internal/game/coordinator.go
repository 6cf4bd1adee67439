package game

// Surface is any UI surface that can hold pointer focus: the player
// inventory panel, a crafting station, later chests and furnaces.
type Surface interface {
	Name() string
	IsOpen() bool
	Close()
}

// UICoordinator tracks the registered surfaces so collaborators like
// movement and block interaction can ask one object whether any
// inventory-like UI is open, instead of reading shared globals.
type UICoordinator struct {
	surfaces []Surface
}

func NewUICoordinator() *UICoordinator {
	return &UICoordinator{}
}

func (c *UICoordinator) Register(s Surface) {
	if s == nil {
		return
	}
	c.surfaces = append(c.surfaces, s)
}

// AnyOpen reports whether any registered surface is open. Movement and
// world-interaction input is suspended while this is true.
func (c *UICoordinator) AnyOpen() bool {
	for _, s := range c.surfaces {
		if s.IsOpen() {
			return true
		}
	}
	return false
}

// CloseAll closes every open surface. Only one can be open at a time, but
// callers do not need to know which.
func (c *UICoordinator) CloseAll() {
	for _, s := range c.surfaces {
		if s.IsOpen() {
			s.Close()
		}
	}
}
