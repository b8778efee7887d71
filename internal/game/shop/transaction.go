package shop

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// oneArgument splits off the first whitespace-delimited word, lowercased,
// and returns it with the trimmed remainder.
func oneArgument(arg string) (string, string) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", ""
	}
	if i := strings.IndexByte(arg, ' '); i >= 0 {
		return strings.ToLower(arg[:i]), strings.TrimSpace(arg[i+1:])
	}
	return strings.ToLower(arg), ""
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// transactionQuantity parses the optional leading count: "buy 5 bread"
// means five of "bread", while "buy 5" means one of item "5" (or "#5").
func transactionQuantity(arg string) (int32, string) {
	first, rest := oneArgument(arg)
	if rest != "" && first != "" && isNumber(first) {
		n, _ := strconv.Atoi(first)
		return int32(n), rest
	}
	return 1, strings.TrimSpace(arg)
}

// splitOrdinal parses the "N.name" selector into its ordinal and name.
// A plain name is ordinal 1; "0.name" is invalid and yields 0.
func splitOrdinal(name string) (int, string) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return 1, name
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		return 1, name
	}
	return n, name[i+1:]
}

// slideMatch resolves the Nth distinct run of name-matching visible
// items in the list: duplicates inside one identical run count once.
func (e *Engine) slideMatch(ch *model.Character, name string, list []*model.Item) *model.Item {
	number, word := splitOrdinal(name)
	if number == 0 {
		return nil
	}
	var last *model.Item
	j := 1
	for _, it := range list {
		if j > number {
			break
		}
		if model.IsName(word, it.Name) && e.world.CanSeeItem(ch, it) &&
			(last == nil || !last.IdenticalTo(it)) {
			if j == number {
				return it
			}
			last = it
			j++
		}
	}
	return nil
}

// hashMatch resolves the "#N" / bare-number selector: the Nth distinct
// saleable group in the list, in listing order.
func (e *Engine) hashMatch(ch *model.Character, name string, list []*model.Item) *model.Item {
	var qindex int
	switch {
	case isNumber(name):
		qindex, _ = strconv.Atoi(name)
	case strings.HasPrefix(name, "#") && isNumber(name[1:]):
		qindex, _ = strconv.Atoi(name[1:])
	default:
		return nil
	}

	var last *model.Item
	for _, it := range list {
		if e.world.CanSeeItem(ch, it) && it.Cost > 0 &&
			(last == nil || !last.IdenticalTo(it)) {
			qindex--
			if qindex == 0 {
				return it
			}
			last = it
		}
	}
	return nil
}

// getPurchaseObj resolves the customer's selector against the keeper's
// goods. Worthless items found on the way are destroyed outright and
// the resolution retried.
func (e *Engine) getPurchaseObj(ch *model.Character, arg string, keeper *model.Character, s *Shop, announce bool) *model.Item {
	name, _ := oneArgument(arg)
	for {
		var obj *model.Item
		if strings.HasPrefix(name, "#") || isNumber(name) {
			obj = e.hashMatch(ch, name, keeper.Carrying)
		} else {
			obj = e.slideMatch(ch, name, keeper.Carrying)
		}
		if obj == nil {
			if announce {
				e.msg.Tell(keeper, ch, expandTemplate(s.Messages.NoSuchItemKeeper, ch.Name, 0))
			}
			return nil
		}
		if obj.Cost <= 0 {
			e.world.ExtractItem(obj)
			continue
		}
		return obj
	}
}

// getSellingObj finds the named item in the customer's inventory and
// runs it through the trade classifier. Anything but Accepted ends with
// one refusal message (when announce is set) and no item.
func (e *Engine) getSellingObj(ch *model.Character, name string, keeper *model.Character, s *Shop, announce bool) *model.Item {
	number, word := splitOrdinal(name)
	var obj *model.Item
	j := 1
	for _, it := range ch.Carrying {
		if j > number {
			break
		}
		if model.IsName(word, it.Name) && e.world.CanSeeItem(ch, it) {
			if j == number {
				obj = it
				break
			}
			j++
		}
	}
	if obj == nil {
		if announce {
			e.msg.Tell(keeper, ch, expandTemplate(s.Messages.NoSuchItemPlayer, ch.Name, 0))
		}
		return nil
	}

	result := Classify(obj, s)
	if result == Accepted {
		return obj
	}
	if !announce {
		return nil
	}
	switch result {
	case Worthless:
		e.msg.Tell(keeper, ch, "You've got to be kidding, that thing is worthless!")
	case Refused:
		e.msg.Tell(keeper, ch, expandTemplate(s.Messages.DoNotBuy, ch.Name, 0))
	case Depleted:
		e.msg.Tell(keeper, ch, msgNoUsedWandStaff)
	default:
		slog.Error("illegal classification from trade classifier", "result", int(result), "shop", s.VNum)
		e.msg.Tell(keeper, ch, "An error has occurred.")
	}
	return nil
}

// timesMessage renders a stack description: the item's short description
// (or an article plus the bare name when the item is already gone),
// with an "(x N)" multiplier past one unit.
func timesMessage(it *model.Item, name string, n int32) string {
	var buf string
	if it != nil {
		buf = it.ShortDesc
	} else {
		if i := strings.IndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		buf = model.An(name) + " " + name
	}
	if n > 1 {
		buf += fmt.Sprintf(" (x %d)", n)
	}
	return buf
}

// Buy handles "buy [count] <item>": a run of identical units bounded by
// the customer's gold, carry count, carry weight and the keeper's stock.
// Producing shops manufacture fresh exemplars instead of handing over
// their own display copy. A partial run ends with a diagnostic naming
// the limiting resource.
func (e *Engine) Buy(ch, keeper *model.Character, s *Shop, arg string) {
	if !e.isOK(keeper, ch, s) {
		return
	}
	if int(s.sortedPrefix) < len(keeper.Carrying) {
		e.consolidate(keeper, s)
	}

	buynum, rest := transactionQuantity(arg)
	if buynum < 0 {
		e.msg.Tell(keeper, ch, "A negative amount?  Try selling me something.")
		return
	}
	if rest == "" || buynum == 0 {
		e.msg.Tell(keeper, ch, "What do you want to buy??")
		return
	}

	obj := e.getPurchaseObj(ch, rest, keeper, s, true)
	if obj == nil {
		return
	}

	if BuyPrice(obj, s, keeper, ch) > ch.Gold && !ch.IsGod() {
		e.msg.Tell(keeper, ch, expandTemplate(s.Messages.MissingCashPlayer, ch.Name, 0))
		switch s.Temper {
		case 0:
			e.msg.Act(keeper, ch, "$n pukes on $N.")
		case 1:
			e.msg.Emote(keeper, "smokes on his joint.")
		}
		return
	}
	if ch.CarryCount()+1 > ch.MaxCarryItems {
		e.msg.ToChar(ch, fmt.Sprintf("%s: You can't carry any more items.", model.FName(obj.Name)))
		return
	}
	if ch.CarryWeight()+obj.Weight > ch.MaxCarryWeight {
		e.msg.ToChar(ch, fmt.Sprintf("%s: You can't carry that much weight.", model.FName(obj.Name)))
		return
	}

	var bought, goldamt int32
	var last *model.Item
	for obj != nil &&
		(ch.Gold >= BuyPrice(obj, s, keeper, ch) || ch.IsGod()) &&
		ch.CarryCount() < ch.MaxCarryItems &&
		bought < buynum &&
		ch.CarryWeight()+obj.Weight <= ch.MaxCarryWeight {
		bought++

		if e.producing(obj, s) {
			fresh, err := e.world.SpawnItem(obj.Proto)
			if err != nil {
				slog.Error("manufacturing shop product", "shop", s.VNum, "proto", obj.Proto, "err", err)
				bought--
				break
			}
			obj = fresh
		} else {
			if idx := e.world.TakeItem(obj); idx >= 0 && int32(idx) < s.sortedPrefix {
				s.sortedPrefix--
			}
		}
		e.world.GiveItem(obj, ch)

		charged := BuyPrice(obj, s, keeper, ch)
		goldamt += charged
		if !ch.IsGod() {
			ch.Gold -= charged
		}

		last = obj
		obj = e.getPurchaseObj(ch, rest, keeper, s, false)
		if obj != nil && !obj.IdenticalTo(last) {
			break
		}
	}

	if bought < buynum {
		var m string
		switch {
		case obj == nil || !obj.IdenticalTo(last):
			m = fmt.Sprintf("I only have %d to sell you.", bought)
		case ch.Gold < BuyPrice(obj, s, keeper, ch):
			m = fmt.Sprintf("You can only afford %d.", bought)
		case ch.CarryCount() >= ch.MaxCarryItems:
			m = fmt.Sprintf("You can only hold %d.", bought)
		case ch.CarryWeight()+obj.Weight > ch.MaxCarryWeight:
			m = fmt.Sprintf("You can only carry %d.", bought)
		default:
			m = fmt.Sprintf("Something screwy only gave you %d.", bought)
		}
		e.msg.Tell(keeper, ch, m)
	}

	if !ch.IsGod() {
		keeper.Gold += goldamt
	}

	stack := timesMessage(last, "", bought)
	e.msg.Act(ch, nil, "$n buys "+stack+".")
	e.msg.Tell(keeper, ch, expandTemplate(s.Messages.Buy, ch.Name, goldamt))
	e.msg.ToChar(ch, "You now have "+stack+".")

	if s.UsesBank() && keeper.Gold > e.bankMax {
		s.BankAccount += keeper.Gold - e.bankMax
		keeper.Gold = e.bankMax
	}
}

// Sell handles "sell [count] <item>": units are re-resolved by name and
// repriced one by one, bounded by what the keeper can pay from gold plus
// bank reserve. Sold goods pass through slide; duplicates of producing
// prototypes are discarded there, the shop can re-make them anyway.
func (e *Engine) Sell(ch, keeper *model.Character, s *Shop, arg string) {
	if !e.isOK(keeper, ch, s) {
		return
	}

	sellnum, rest := transactionQuantity(arg)
	if sellnum < 0 {
		e.msg.Tell(keeper, ch, "A negative amount?  Try buying something.")
		return
	}
	if rest == "" || sellnum == 0 {
		e.msg.Tell(keeper, ch, "What do you want to sell??")
		return
	}
	name, _ := oneArgument(rest)

	obj := e.getSellingObj(ch, name, keeper, s, true)
	if obj == nil {
		return
	}

	if keeper.Gold+s.BankAccount < SellPrice(obj, s, keeper, ch) {
		e.msg.Tell(keeper, ch, expandTemplate(s.Messages.MissingCashKeeper, ch.Name, 0))
		return
	}

	var sold, goldamt int32
	for obj != nil &&
		keeper.Gold+s.BankAccount >= SellPrice(obj, s, keeper, ch) &&
		sold < sellnum {
		charged := SellPrice(obj, s, keeper, ch)
		goldamt += charged
		keeper.Gold -= charged

		sold++
		e.world.TakeItem(obj)
		e.slide(obj, keeper, s)
		obj = e.getSellingObj(ch, name, keeper, s, false)
	}

	if sold < sellnum {
		var m string
		switch {
		case obj == nil:
			m = fmt.Sprintf("You only have %d of those.", sold)
		case keeper.Gold+s.BankAccount < SellPrice(obj, s, keeper, ch):
			m = fmt.Sprintf("I can only afford to buy %d of those.", sold)
		default:
			m = fmt.Sprintf("Something really screwy made me buy %d.", sold)
		}
		e.msg.Tell(keeper, ch, m)
	}

	ch.Gold += goldamt

	stack := timesMessage(nil, name, sold)
	e.msg.Act(ch, nil, "$n sells "+stack+".")
	e.msg.Tell(keeper, ch, expandTemplate(s.Messages.Sell, ch.Name, goldamt))
	e.msg.ToChar(ch, "The shopkeeper now has "+stack+".")

	// Draw the on-hand gold back up from the bank reserve.
	if keeper.Gold < e.bankMin {
		draw := min(e.bankMax-keeper.Gold, s.BankAccount)
		s.BankAccount -= draw
		keeper.Gold += draw
	}
}

// Value handles "value <item>": a pure quote, same refusal path as Sell.
func (e *Engine) Value(ch, keeper *model.Character, s *Shop, arg string) {
	if !e.isOK(keeper, ch, s) {
		return
	}
	if strings.TrimSpace(arg) == "" {
		e.msg.Tell(keeper, ch, "What do you want me to evaluate??")
		return
	}
	name, _ := oneArgument(arg)

	obj := e.getSellingObj(ch, name, keeper, s, true)
	if obj == nil {
		return
	}
	e.msg.Tell(keeper, ch, fmt.Sprintf("I'll give you %d gold coins for that!",
		SellPrice(obj, s, keeper, ch)))
}

const listHeader = " ##   Available   Item                                               Cost\n" +
	"-------------------------------------------------------------------------\n"

// List handles "list [name]": walks the consolidated inventory grouping
// contiguous identical runs, one line per group with count (or Unlimited
// for manufactured goods) and the customer's buy price.
func (e *Engine) List(ch, keeper *model.Character, s *Shop, arg string) {
	if !e.isOK(keeper, ch, s) {
		return
	}
	if int(s.sortedPrefix) < len(keeper.Carrying) {
		e.consolidate(keeper, s)
	}

	name, _ := oneArgument(arg)

	var b strings.Builder
	b.WriteString(listHeader)

	var last *model.Item
	var cnt, lindex int32
	found := false
	for _, it := range keeper.Carrying {
		if !e.world.CanSeeItem(ch, it) || it.Cost <= 0 {
			continue
		}
		switch {
		case last == nil:
			last = it
			cnt = 1
		case last.IdenticalTo(it):
			cnt++
		default:
			lindex++
			if name == "" || model.IsName(name, last.Name) {
				b.WriteString(e.listLine(last, cnt, lindex, s, keeper, ch))
				found = true
			}
			cnt = 1
			last = it
		}
	}

	if last == nil {
		e.msg.ToChar(ch, "Currently, there is nothing for sale.")
		return
	}
	lindex++
	if name == "" || model.IsName(name, last.Name) {
		b.WriteString(e.listLine(last, cnt, lindex, s, keeper, ch))
		found = true
	}
	if !found {
		e.msg.ToChar(ch, "Presently, none of those are for sale.")
		return
	}
	e.msg.ToChar(ch, strings.TrimRight(b.String(), "\n"))
}

func (e *Engine) listLine(it *model.Item, cnt, idx int32, s *Shop, keeper, ch *model.Character) string {
	quantity := strconv.FormatInt(int64(cnt), 10)
	if e.producing(it, s) {
		quantity = "Unlimited"
	}

	itemname := it.ShortDesc
	switch it.Type {
	case model.ItemDrinkCon:
		if it.Values[model.ValCapacity] != 0 {
			itemname += " of " + drinkName(it.Values[model.ValLiquid])
		}
	case model.ItemWand, model.ItemStaff:
		if it.Values[model.ValCharges] < it.Values[model.ValMaxCharges] {
			itemname += " (partially used)"
		}
	}

	return fmt.Sprintf(" %2d)  %9s   %-48s %6d\n",
		idx, quantity, itemname, BuyPrice(it, s, keeper, ch))
}

func drinkName(liquid int32) string {
	if liquid < 0 || int(liquid) >= len(model.DrinkNames) {
		return "something"
	}
	return model.DrinkNames[liquid]
}
