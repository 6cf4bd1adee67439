package game

import "github.com/appengine-ltd/blockfall/internal/items"

// SlotRole tags a slot with the collection it belongs to.
type SlotRole int

const (
	SlotHotbar SlotRole = iota
	SlotBag
	SlotCrafting
	SlotOutput
)

func (r SlotRole) String() string {
	switch r {
	case SlotHotbar:
		return "hotbar"
	case SlotBag:
		return "bag"
	case SlotCrafting:
		return "crafting"
	case SlotOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Slot is a single storage cell. It exclusively owns at most one stack at a
// time; a stack is referenced by exactly one slot or by the drag session,
// never both. Bounds is assigned by the owning surface on every layout pass.
type Slot struct {
	Role      SlotRole
	Index     int
	Bounds    Rect
	Highlight bool
	Stack     *ItemStack
}

func (s *Slot) Occupied() bool {
	return s != nil && s.Stack != nil
}

// SetQuantity routes all slot quantity changes through the stack destruction
// funnel: a quantity <= 0 destroys the stack and clears the slot in the same
// operation, so the two can never disagree.
func (s *Slot) SetQuantity(quantity int) {
	if s == nil || s.Stack == nil {
		return
	}
	if !setQuantity(s.Stack, quantity) {
		s.Stack = nil
	}
}

// Take detaches and returns the slot's stack.
func (s *Slot) Take() *ItemStack {
	st := s.Stack
	s.Stack = nil
	return st
}

// Put places a stack into an empty slot. Putting into an occupied slot is a
// caller bug; the occupant would leak, so it is kept and the put ignored.
func (s *Slot) Put(st *ItemStack) {
	if s == nil || s.Stack != nil || st == nil {
		return
	}
	s.Stack = st
}

// Ref identifies the slot by role and index instead of a back-pointer, so a
// remembered origin can never dangle after its stack is destroyed.
func (s *Slot) Ref() SlotRef {
	return SlotRef{Role: s.Role, Index: s.Index}
}

// SlotRef is a stable slot identity, resolved through the owning surface.
type SlotRef struct {
	Role  SlotRole
	Index int
}

// SlotCollection is an ordered sequence of slots of one role.
type SlotCollection struct {
	Role  SlotRole
	Slots []*Slot
}

func NewSlotCollection(role SlotRole, size int) *SlotCollection {
	c := &SlotCollection{Role: role, Slots: make([]*Slot, size)}
	for i := range c.Slots {
		c.Slots[i] = &Slot{Role: role, Index: i}
	}
	return c
}

func (c *SlotCollection) Len() int {
	return len(c.Slots)
}

func (c *SlotCollection) Slot(index int) *Slot {
	if index < 0 || index >= len(c.Slots) {
		return nil
	}
	return c.Slots[index]
}

// FirstEmpty returns the lowest-index unoccupied slot.
func (c *SlotCollection) FirstEmpty() (*Slot, bool) {
	for _, slot := range c.Slots {
		if !slot.Occupied() {
			return slot, true
		}
	}
	return nil, false
}

// FirstWithRoom returns the lowest-index slot holding the given item with
// spare capacity.
func (c *SlotCollection) FirstWithRoom(def *items.Definition) (*Slot, bool) {
	for _, slot := range c.Slots {
		if slot.Occupied() && slot.Stack.Def == def && slot.Stack.Quantity < StackCap {
			return slot, true
		}
	}
	return nil, false
}
