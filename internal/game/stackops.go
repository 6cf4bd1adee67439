package game

// Pure stack arithmetic shared by the drag engine and the controllers.
// Everything here preserves total quantity; destruction only ever happens
// through the setQuantity funnel.

// Merge pours source into target up to the cap. It returns the number of
// units moved and whether source was fully absorbed; on a true return the
// caller must drop its source reference. Different item types never merge.
func Merge(source, target *ItemStack, cap int) (moved int, absorbed bool) {
	if source == nil || target == nil || source.Def != target.Def {
		return 0, false
	}
	room := cap - target.Quantity
	if room <= 0 {
		return 0, false
	}
	if source.Quantity <= room {
		moved = source.Quantity
		setQuantity(target, target.Quantity+moved)
		setQuantity(source, 0)
		return moved, true
	}
	moved = room
	setQuantity(target, cap)
	setQuantity(source, source.Quantity-moved)
	return moved, false
}

// SplitHalf prepares a half pickup: the stack itself keeps the picked-up
// portion (ceil(n/2)) and the returned remainder stays behind in the origin
// slot. A nil return means the whole stack should be picked up instead.
func SplitHalf(st *ItemStack) (remainder *ItemStack) {
	if st == nil || st.Quantity <= 1 {
		return nil
	}
	pickup := (st.Quantity + 1) / 2
	remain := st.Quantity - pickup
	if remain == 0 {
		return nil
	}
	setQuantity(st, pickup)
	return &ItemStack{Def: st.Def, Quantity: remain}
}
