package shop

import (
	"github.com/lpautet/mud-r-sub003/internal/comm"
	"github.com/lpautet/mud-r-sub003/internal/model"
)

// Handler — процедура, привязанная к киперу. Движок сам реализует её
// (IsDefault()==true); магазин может нести вторичный обработчик,
// который получает команду первым.
type Handler interface {
	// Handle processes one command addressed at the keeper's room.
	// Returns true when the command was consumed.
	Handle(ch, keeper *model.Character, cmd, arg string) bool
	// IsDefault reports whether this is the engine's own procedure.
	IsDefault() bool
}

// IsDefault marks the engine as the stock keeper procedure.
func (e *Engine) IsDefault() bool { return true }

// Handle — процедура кипера. Команда игрока в комнате кипера проходит
// сначала через вторичный обработчик магазина (если он есть и не
// является самим движком), затем через торговые глаголы.
//
// Команда самого кипера сбрасывает счётчик сортировки: "drop all" и
// подобное перестраивают инвентарь за спиной движка.
func (e *Engine) Handle(ch, keeper *model.Character, cmd, arg string) bool {
	s := e.ShopForKeeper(keeper)
	if s == nil {
		return false
	}

	if s.Secondary != nil && !s.Secondary.IsDefault() {
		if s.Secondary.Handle(ch, keeper, cmd, arg) {
			return true
		}
	}

	if keeper == ch {
		if cmd != "" {
			s.ResetSort()
		}
		return false
	}

	if !s.InRoom(ch.Room) {
		return false
	}
	if !keeper.Awake() {
		return false
	}

	switch cmd {
	case "steal":
		e.msg.ToChar(ch, comm.ExpandAct("$N shouts '"+msgNoStealHere+"'", ch, keeper))
		e.msg.Act(keeper, ch, "$n slaps $N.")
		return true
	case "buy":
		e.Buy(ch, keeper, s, arg)
		return true
	case "sell":
		e.Sell(ch, keeper, s, arg)
		return true
	case "value":
		e.Value(ch, keeper, s, arg)
		return true
	case "list":
		e.List(ch, keeper, s, arg)
		return true
	}
	return false
}

// OkDamageKeeper gates an attack on a keeper: a shop without the fight
// capability makes its proprietor untouchable, with a warning and a slap
// instead of combat.
func (e *Engine) OkDamageKeeper(attacker, keeper *model.Character) bool {
	s := e.ShopForKeeper(keeper)
	if s == nil || s.WillFight() {
		return true
	}
	e.msg.Tell(keeper, attacker, msgCantKillKeeper)
	e.msg.Act(keeper, attacker, "$n slaps $N.")
	return false
}
