package shop

import "github.com/lpautet/mud-r-sub003/internal/model"

// Inventory consolidation keeps logically identical items contiguous in
// the keeper's held sequence, so listing and counting walk distinct
// groups instead of every item. sortedPrefix tracks how many items from
// the front already satisfy the invariant; new arrivals are appended
// past it and folded in here.
// CircleMUD reference: shop.c sort_keeper_objs() / slide_obj().

// producing reports whether the item duplicates one of the shop's
// manufactured prototypes: such goods are infinite stock.
func (e *Engine) producing(it *model.Item, s *Shop) bool {
	if it.Proto == model.NoProto {
		return false
	}
	for _, vnum := range s.Producing {
		proto := e.world.ItemProto(vnum)
		if proto != nil && it.IdenticalTo(proto) {
			return true
		}
	}
	return false
}

// findByProto returns the first held item spawned from the prototype.
func findByProto(keeper *model.Character, vnum model.ProtoID) *model.Item {
	for _, it := range keeper.Carrying {
		if it.Proto == vnum {
			return it
		}
	}
	return nil
}

// consolidate restores the contiguity invariant. The unsorted suffix is
// drained into a queue; draining it, a producing prototype without an
// exemplar in the sorted prefix is placed at the prefix's growing edge
// (one physical exemplar stands for infinite stock), everything else
// goes through slide.
func (e *Engine) consolidate(keeper *model.Character, s *Shop) {
	var queue []*model.Item
	for int(s.sortedPrefix) < len(keeper.Carrying) {
		queue = append(queue, keeper.RemoveItemAt(int(s.sortedPrefix)))
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if e.producing(it, s) && findByProto(keeper, it.Proto) == nil {
			keeper.InsertItem(it, int(s.sortedPrefix))
			s.sortedPrefix++
		} else {
			e.slide(it, keeper, s)
		}
	}
}

// slide places one incoming item into the keeper's held sequence.
// A duplicate of a producing prototype is destroyed — infinite stock
// needs no second exemplar. Otherwise the item is appended and spliced
// in immediately after an existing run of identical items (staying at
// the end if there is none), and the sorted prefix grows by one.
func (e *Engine) slide(it *model.Item, keeper *model.Character, s *Shop) {
	if int(s.sortedPrefix) < len(keeper.Carrying) {
		e.consolidate(keeper, s)
	}

	if e.producing(it, s) {
		e.world.ExtractItem(it)
		return
	}

	runEnd := -1
	for i, held := range keeper.Carrying {
		if held.IdenticalTo(it) {
			runEnd = i
		}
	}
	if runEnd >= 0 {
		keeper.InsertItem(it, runEnd+1)
	} else {
		keeper.AddItem(it)
	}
	s.sortedPrefix++
}
