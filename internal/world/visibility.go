package world

import "github.com/lpautet/mud-r-sub003/internal/model"

// CanSee reports whether viewer perceives target.
// Gods see everything; invisible characters are hidden from anyone
// without see-invisible.
// CircleMUD reference: utils.h CAN_SEE().
func (w *World) CanSee(viewer, target *model.Character) bool {
	if viewer == target {
		return true
	}
	if viewer.IsGod() {
		return true
	}
	if target.Invisible && !viewer.SeesInvisible {
		return false
	}
	return true
}

// CanSeeItem reports whether viewer perceives the item.
func (w *World) CanSeeItem(viewer *model.Character, it *model.Item) bool {
	if viewer.IsGod() {
		return true
	}
	if it.HasFlag(model.FlagInvisible) && !viewer.SeesInvisible {
		return false
	}
	return true
}
