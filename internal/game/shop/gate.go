package shop

import "github.com/lpautet/mud-r-sub003/internal/model"

// Fixed keeper retorts. Exact wording is observable behavior.
// CircleMUD reference: shop.h MSG_x defines.
const (
	msgNotOpenYet      = "Come back later!"
	msgNotReopenYet    = "Sorry, we have closed, but come back later."
	msgClosedForDay    = "Sorry, come back tomorrow."
	msgNoStealHere     = "$n is a bloody thief!"
	msgNoSeeChar       = "I don't trade with someone I can't see!"
	msgNoSellAlign     = "Get out of here before I call the guards!"
	msgNoSellClass     = "We don't serve your kind here!"
	msgNoUsedWandStaff = "I don't buy used up wands or staves!"
	msgCantKillKeeper  = "Get out of here before I call the guards!"
)

// isOpen checks the two daily open windows against the game hour.
// The retort names the boundary that failed: not opened yet, between
// the windows, or done for the day.
func (e *Engine) isOpen(keeper *model.Character, s *Shop, announce bool) bool {
	hour := e.world.Clock().Hour()

	var m string
	if s.Open1 > hour {
		m = msgNotOpenYet
	} else if s.Close1 < hour {
		if s.Open2 > hour {
			m = msgNotReopenYet
		} else if s.Close2 < hour {
			m = msgClosedForDay
		}
	}
	if m == "" {
		return true
	}
	if announce {
		e.msg.Say(keeper, m)
	}
	return false
}

// isOKChar checks the customer against the shop's policy: the keeper
// must perceive them, and they must pass the alignment and (for
// players) class restrictions. Gods bypass everything past visibility.
func (e *Engine) isOKChar(keeper, ch *model.Character, s *Shop) bool {
	if !e.world.CanSee(keeper, ch) {
		e.msg.Say(keeper, msgNoSeeChar)
		return false
	}
	if ch.IsGod() {
		return true
	}

	if ch.IsGood() && s.NoTradeGood() ||
		ch.IsEvil() && s.NoTradeEvil() ||
		ch.IsNeutral() && s.NoTradeNeutral() {
		e.msg.Tell(keeper, ch, msgNoSellAlign)
		return false
	}
	if ch.NPC {
		return true
	}

	if ch.Class == model.ClassMagicUser && s.NoTradeMagicUser() ||
		ch.Class == model.ClassCleric && s.NoTradeCleric() ||
		ch.Class == model.ClassThief && s.NoTradeThief() ||
		ch.Class == model.ClassWarrior && s.NoTradeWarrior() {
		e.msg.Tell(keeper, ch, msgNoSellClass)
		return false
	}
	return true
}

// isOK gates one trade attempt: open hours first, then the customer.
// At most one message, no side effects.
func (e *Engine) isOK(keeper, ch *model.Character, s *Shop) bool {
	if !e.isOpen(keeper, s, true) {
		return false
	}
	return e.isOKChar(keeper, ch, s)
}
