package game

import "github.com/appengine-ltd/blockfall/internal/items"

// StackCap is the most units one slot can hold of a single item type.
const StackCap = 64

// ItemStack is a runtime quantity of one item type. Quantity is always >= 1
// while the stack exists; a stack that reaches zero is destroyed through
// setQuantity and must never stay referenced.
type ItemStack struct {
	Def         *items.Definition
	Quantity    int
	JustCrafted bool
}

// NewStack creates a stack of the given quantity, clamped into [1, StackCap].
func NewStack(def *items.Definition, quantity int) *ItemStack {
	if quantity < 1 {
		quantity = 1
	}
	if quantity > StackCap {
		quantity = StackCap
	}
	return &ItemStack{Def: def, Quantity: quantity}
}

// setQuantity is the single quantity-mutation path for stacks. It reports
// whether the stack is still alive; a false return means the caller owns the
// only reference and must clear it. Keeping destruction funnelled here is
// what guarantees no slot ever holds a zero-quantity stack.
func setQuantity(st *ItemStack, quantity int) (alive bool) {
	if st == nil {
		return false
	}
	if quantity <= 0 {
		st.Quantity = 0
		return false
	}
	st.Quantity = quantity
	return true
}
